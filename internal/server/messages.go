package server

import (
	"encoding/json"
	"fmt"

	"codeberg.org/steppe/mountain"
)

// MessageType identifies the kind of a message.
type MessageType string

const (
	MessageTypeNew      MessageType = "new"      // generate a world
	MessageTypeMap      MessageType = "map"      // fetch a map
	MessageTypeTraverse MessageType = "traverse" // follow a portal
	MessageTypeSave     MessageType = "save"     // store the world under a name
	MessageTypeLoad     MessageType = "load"     // restore a stored world
	MessageTypeList     MessageType = "list"     // list stored worlds
	MessageTypeWorld    MessageType = "world"
	MessageTypeWorlds   MessageType = "worlds"
	MessageTypeError    MessageType = "error"
)

// Request is a message sent by a client.
type Request struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Response is a message sent to a client.
type Response struct {
	Type    MessageType `json:"type"`
	Payload any         `json:"payload,omitempty"`
}

type NewWorldMessage struct {
	Seed uint64 `json:"seed"`
}

type MapMessage struct {
	Map int `json:"map"`
}

type TraverseMessage struct {
	Map int `json:"map"`
	X   int `json:"x"`
	Y   int `json:"y"`
}

type NameMessage struct {
	Name string `json:"name"`
}

// WorldInfo describes the world of a session.
type WorldInfo struct {
	Seed string `json:"seed"`
	Maps int    `json:"maps"`
	Name string `json:"name,omitempty"`
}

// Position is a map cell.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// PortalView describes a portal of a map. Dest is -1 until the destination
// is generated.
type PortalView struct {
	Position
	Name string `json:"name"`
	Dest int    `json:"dest"`
}

// MapView is the text rendering of a map with its portals.
type MapView struct {
	ID      int          `json:"id"`
	Name    string       `json:"name"`
	Kind    string       `json:"kind"`
	Level   int          `json:"level"`
	Width   int          `json:"width"`
	Height  int          `json:"height"`
	Rows    []string     `json:"rows"`
	Start   Position     `json:"start"`
	Arrival *Position    `json:"arrival,omitempty"`
	Portals []PortalView `json:"portals"`
}

// ErrorMessage reports a failed request.
type ErrorMessage struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func errorResponse(code string, format string, args ...any) Response {
	return Response{
		Type:    MessageTypeError,
		Payload: ErrorMessage{Code: code, Message: fmt.Sprintf(format, args...)},
	}
}

func newMapView(m *mountain.Map) *MapView {
	mv := &MapView{
		ID:     int(m.ID),
		Name:   m.Name,
		Kind:   m.Kind.String(),
		Level:  m.Level,
		Width:  m.W,
		Height: m.H,
		Start:  Position{m.Start.X, m.Start.Y},
	}
	row := make([]rune, 0, m.W)
	for p := range m.Terrain.All() {
		row = append(row, m.RuneAt(p))
		if p.X == m.W-1 {
			mv.Rows = append(mv.Rows, string(row))
			row = row[:0]
		}
	}
	for _, pt := range m.Portals {
		mv.Portals = append(mv.Portals, PortalView{
			Position: Position{pt.P.X, pt.P.Y},
			Name:     pt.Name,
			Dest:     int(pt.Dest),
		})
	}
	return mv
}
