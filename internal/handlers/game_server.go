// internal/handlers/game_server.go
package handlers

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Ab-dur-Rehman/UNO/internal/game"
	"github.com/Ab-dur-Rehman/UNO/internal/room"
)

const writeTimeout = 3 * time.Second

// GameServer owns the room and game registries and the per-room table of
// live websocket connections.
type GameServer struct {
	Logger *logrus.Logger
	Rooms  *room.Store
	Games  *game.Store

	// TurnTimeLimit is read once at startup and applied to every game at
	// construction time.
	TurnTimeLimit time.Duration

	connMu sync.Mutex
	conns  map[string]map[uuid.UUID]*websocket.Conn
}

// NewGameServer builds a server with empty registries. TURN_TIME_LIMIT (a Go
// duration) overrides the default per-turn deadline.
func NewGameServer(logger *logrus.Logger) *GameServer {
	limit := game.DefaultTurnTimeLimit
	if v := os.Getenv("TURN_TIME_LIMIT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			logger.Warnf("Ignoring invalid TURN_TIME_LIMIT %q", v)
		} else {
			limit = d
		}
	}
	return &GameServer{
		Logger:        logger,
		Rooms:         room.NewStore(),
		Games:         game.NewStore(),
		TurnTimeLimit: limit,
		conns:         make(map[string]map[uuid.UUID]*websocket.Conn),
	}
}

// registerConn records a player's live connection for a room.
func (s *GameServer) registerConn(code string, playerID uuid.UUID, c *websocket.Conn) {
	s.connMu.Lock()
	defer s.connMu.Unlock()
	if s.conns[code] == nil {
		s.conns[code] = make(map[uuid.UUID]*websocket.Conn)
	}
	s.conns[code][playerID] = c
}

// unregisterConn drops the player's connection, unless a newer connection
// has already replaced it.
func (s *GameServer) unregisterConn(code string, playerID uuid.UUID, c *websocket.Conn) {
	s.connMu.Lock()
	defer s.connMu.Unlock()
	if s.conns[code][playerID] == c {
		delete(s.conns[code], playerID)
		if len(s.conns[code]) == 0 {
			delete(s.conns, code)
		}
	}
}

// sendTo delivers a payload to one player in a room. Marshaling happens on
// the caller's goroutine, the write is handed off so callers holding a game
// lock never block on a slow client.
func (s *GameServer) sendTo(code string, playerID uuid.UUID, payload interface{}) {
	s.connMu.Lock()
	c := s.conns[code][playerID]
	s.connMu.Unlock()
	if c == nil {
		return
	}

	data, err := json.Marshal(payload)
	if err != nil {
		s.Logger.Errorf("Failed to marshal message for player %s in room %s: %v", playerID, code, err)
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()
		if err := c.Write(ctx, websocket.MessageText, data); err != nil {
			s.Logger.Warnf("Failed to write to player %s in room %s: %v", playerID, code, err)
		}
	}()
}

// broadcastRoom delivers a payload to every connected player in a room.
func (s *GameServer) broadcastRoom(code string, payload interface{}) {
	s.connMu.Lock()
	targets := make(map[uuid.UUID]*websocket.Conn, len(s.conns[code]))
	for pid, c := range s.conns[code] {
		targets[pid] = c
	}
	s.connMu.Unlock()

	data, err := json.Marshal(payload)
	if err != nil {
		s.Logger.Errorf("Failed to marshal broadcast for room %s: %v", code, err)
		return
	}
	go func() {
		for pid, c := range targets {
			ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
			err := c.Write(ctx, websocket.MessageText, data)
			cancel()
			if err != nil {
				s.Logger.Warnf("Failed to write broadcast to player %s in room %s: %v", pid, code, err)
			}
		}
	}()
}
