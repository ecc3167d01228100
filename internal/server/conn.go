package server

import (
	"encoding/json"
	"log"

	"github.com/gorilla/websocket"
)

// Connection wraps a websocket connection with a buffered outgoing queue.
type Connection struct {
	ws   *websocket.Conn
	send chan []byte
}

// NewConnection creates a new connection wrapper.
func NewConnection(ws *websocket.Conn) *Connection {
	return &Connection{
		ws:   ws,
		send: make(chan []byte, 256),
	}
}

// ReadPump reads requests until the connection closes, handing each one to
// the session and queueing the response.
func (c *Connection) ReadPump(s *Session) {
	defer close(c.send)
	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Error reading message: %v", err)
			}
			return
		}
		var req Request
		if err := json.Unmarshal(data, &req); err != nil {
			c.Send(errorResponse("BAD_MESSAGE", "%v", err))
			continue
		}
		c.Send(s.Handle(req))
	}
}

// WritePump writes queued messages until the queue is closed.
func (c *Connection) WritePump() {
	defer c.ws.Close()
	for message := range c.send {
		if err := c.ws.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("Error writing message: %v", err)
			return
		}
	}
	c.ws.WriteMessage(websocket.CloseMessage, []byte{})
}

// Send queues a response. A client that does not keep up is disconnected.
func (c *Connection) Send(resp Response) {
	data, err := json.Marshal(resp)
	if err != nil {
		log.Printf("Error marshaling response: %v", err)
		return
	}
	select {
	case c.send <- data:
	default:
		c.ws.Close()
	}
}
