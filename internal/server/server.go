// Package server streams generated worlds to websocket clients. Each
// connection owns a session with its own world.
package server

import (
	"log"
	"net/http"

	"codeberg.org/steppe/mountain"
	"codeberg.org/steppe/mountain/internal/store"
	"github.com/gorilla/websocket"
)

// Server is the http.Handler upgrading requests to websocket sessions.
type Server struct {
	cfg      mountain.Config
	store    store.Storage
	upgrader websocket.Upgrader
}

// New returns a server generating worlds with cfg and saving them in s.
func New(cfg mountain.Config, s store.Storage) *Server {
	return &Server{
		cfg:   cfg,
		store: s,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (srv *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := srv.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Failed to upgrade connection: %v", err)
		return
	}
	log.Printf("New connection from %s", ws.RemoteAddr())
	conn := NewConnection(ws)
	go conn.WritePump()
	conn.ReadPump(NewSession(srv.cfg, srv.store))
}
