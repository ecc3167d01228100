package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"codeberg.org/anaseto/gruid"
	"codeberg.org/steppe/mountain"
	"codeberg.org/steppe/mountain/internal/store"
)

// Session holds the world of one client. Worlds are not safe for concurrent
// use: every request goes through the session mutex.
type Session struct {
	mu    sync.Mutex
	cfg   mountain.Config
	store store.Storage
	world *mountain.World
	name  string
}

// NewSession returns a session without a world. The store may be nil, in
// which case save and load requests fail.
func NewSession(cfg mountain.Config, s store.Storage) *Session {
	return &Session{cfg: cfg, store: s}
}

// Handle processes a request and returns the response to send back.
func (s *Session) Handle(req Request) Response {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch req.Type {
	case MessageTypeNew:
		var msg NewWorldMessage
		if err := decode(req, &msg); err != nil {
			return errorResponse("BAD_PAYLOAD", "%v", err)
		}
		w, err := mountain.NewWorld(s.cfg, mountain.NewSeed(msg.Seed))
		if err != nil {
			return errorResponse("GENERATION_FAILED", "%v", err)
		}
		s.world, s.name = w, ""
		return s.worldResponse()
	case MessageTypeMap:
		var msg MapMessage
		if err := decode(req, &msg); err != nil {
			return errorResponse("BAD_PAYLOAD", "%v", err)
		}
		if s.world == nil {
			return errorResponse("NO_WORLD", "no world in session")
		}
		m, err := s.world.Map(mountain.MapID(msg.Map))
		if err != nil {
			return errorResponse("UNKNOWN_MAP", "%v", err)
		}
		return Response{Type: MessageTypeMap, Payload: newMapView(m)}
	case MessageTypeTraverse:
		var msg TraverseMessage
		if err := decode(req, &msg); err != nil {
			return errorResponse("BAD_PAYLOAD", "%v", err)
		}
		if s.world == nil {
			return errorResponse("NO_WORLD", "no world in session")
		}
		m, p, err := s.world.Traverse(mountain.MapID(msg.Map), gruid.Point{msg.X, msg.Y})
		switch {
		case errors.Is(err, mountain.ErrUnknownMap):
			return errorResponse("UNKNOWN_MAP", "%v", err)
		case errors.Is(err, mountain.ErrNoPortal):
			return errorResponse("NO_PORTAL", "%v", err)
		case err != nil:
			log.Printf("traverse: %v", err)
			return errorResponse("GENERATION_FAILED", "%v", err)
		}
		mv := newMapView(m)
		mv.Arrival = &Position{p.X, p.Y}
		return Response{Type: MessageTypeMap, Payload: mv}
	case MessageTypeSave:
		var msg NameMessage
		if err := decode(req, &msg); err != nil || msg.Name == "" {
			return errorResponse("BAD_PAYLOAD", "save needs a name")
		}
		if s.world == nil {
			return errorResponse("NO_WORLD", "no world in session")
		}
		if s.store == nil {
			return errorResponse("NO_STORE", "no storage configured")
		}
		if err := store.Put(s.store, msg.Name, s.world); err != nil {
			log.Printf("saving world: %v", err)
			return errorResponse("STORAGE_FAILED", "%v", err)
		}
		s.name = msg.Name
		return s.worldResponse()
	case MessageTypeLoad:
		var msg NameMessage
		if err := decode(req, &msg); err != nil || msg.Name == "" {
			return errorResponse("BAD_PAYLOAD", "load needs a name")
		}
		if s.store == nil {
			return errorResponse("NO_STORE", "no storage configured")
		}
		w, err := store.Get(s.store, msg.Name)
		switch {
		case errors.Is(err, store.ErrNotFound):
			return errorResponse("NOT_FOUND", "%v", err)
		case err != nil:
			return errorResponse("STORAGE_FAILED", "%v", err)
		}
		s.world, s.name = w, msg.Name
		return s.worldResponse()
	case MessageTypeList:
		if s.store == nil {
			return errorResponse("NO_STORE", "no storage configured")
		}
		names, err := s.store.ListWorlds()
		if err != nil {
			return errorResponse("STORAGE_FAILED", "%v", err)
		}
		return Response{Type: MessageTypeWorlds, Payload: names}
	default:
		log.Printf("Unknown message type: %s", req.Type)
		return errorResponse("UNKNOWN_MESSAGE_TYPE", "unknown message type %q", req.Type)
	}
}

func (s *Session) worldResponse() Response {
	w := s.world
	return Response{Type: MessageTypeWorld, Payload: WorldInfo{
		Seed: fmt.Sprintf("%016x%016x", w.Seed.Hi, w.Seed.Lo),
		Maps: len(w.Maps),
		Name: s.name,
	}}
}

func decode(req Request, v any) error {
	if len(req.Payload) == 0 {
		return nil
	}
	return json.Unmarshal(req.Payload, v)
}
