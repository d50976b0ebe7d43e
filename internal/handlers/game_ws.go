// internal/handlers/game_ws.go
package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Ab-dur-Rehman/UNO/internal/auth"
	"github.com/Ab-dur-Rehman/UNO/internal/game"
	"github.com/Ab-dur-Rehman/UNO/internal/models"
	"github.com/Ab-dur-Rehman/UNO/internal/room"
)

// GameMessage is the envelope for incoming websocket messages.
type GameMessage struct {
	Type string `json:"type"`

	// CardID identifies the card for play_card / play_drawn_card.
	CardID string `json:"cardId,omitempty"`

	// ChosenColor accompanies wild plays.
	ChosenColor string `json:"chosenColor,omitempty"`
}

// GameWSHandler upgrades the connection for a room member identified by a
// guest token (?token=...) and runs the read loop until disconnect. Path:
// /game/ws/{code}.
func GameWSHandler(logger *logrus.Logger, srv *GameServer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := strings.ToUpper(strings.Trim(strings.TrimPrefix(r.URL.Path, "/game/ws/"), "/"))
		if code == "" {
			http.Error(w, "Missing room code in path (/game/ws/{code})", http.StatusBadRequest)
			return
		}

		playerID, err := auth.VerifyGuestToken(r.URL.Query().Get("token"))
		if err != nil {
			http.Error(w, "Invalid or missing token", http.StatusUnauthorized)
			return
		}

		rm, ok := srv.Rooms.Get(code)
		if !ok {
			http.Error(w, "Room not found", http.StatusNotFound)
			return
		}
		if !rm.HasMember(playerID) {
			http.Error(w, "You are not a member of this room", http.StatusForbidden)
			return
		}

		c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
			Subprotocols:   []string{"uno"},
			OriginPatterns: []string{"*"}, // Adjust for production security.
		})
		if err != nil {
			logger.Warnf("WebSocket accept error for room %s: %v", code, err)
			return
		}
		defer c.Close(websocket.StatusInternalError, "Internal server error during handler exit.")

		logger.Infof("Player %s connected to room %s from %s", playerID, code, r.RemoteAddr)
		srv.registerConn(code, playerID, c)
		srv.broadcastRoom(code, map[string]interface{}{
			"type":    "room_state",
			"players": rm.Members(),
			"status":  rm.Status(),
		})

		// If a game is already running (reconnect after a refresh), resync.
		if g, ok := srv.Games.Get(code); ok {
			srv.sendTo(code, playerID, game.Event{Type: game.EventGameState, State: g.ViewFor(playerID)})
		}

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		srv.readGameMessages(ctx, c, rm, playerID)

		srv.unregisterConn(code, playerID, c)
		srv.handleLeave(rm, playerID)
		logger.Infof("Player %s left room %s", playerID, code)
	}
}

// readGameMessages reads and routes client messages until the connection
// drops. The engine serializes all mutations internally, so each message is
// a single engine call.
func (s *GameServer) readGameMessages(ctx context.Context, c *websocket.Conn, rm *room.Room, playerID uuid.UUID) {
	for {
		msgType, data, err := c.Read(ctx)
		if err != nil {
			status := websocket.CloseStatus(err)
			if status == websocket.StatusNormalClosure || status == websocket.StatusGoingAway {
				s.Logger.Infof("WebSocket closed normally for player %s in room %s", playerID, rm.Code)
			} else if !strings.Contains(err.Error(), "context canceled") {
				s.Logger.Warnf("WebSocket read error for player %s in room %s: %v", playerID, rm.Code, err)
			}
			return
		}
		if msgType != websocket.MessageText {
			continue
		}

		var msg GameMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			sendWsError(c, "Invalid JSON format.")
			continue
		}
		s.Logger.Debugf("Received %q from player %s in room %s", msg.Type, playerID, rm.Code)

		switch msg.Type {
		case "start_game":
			s.handleStartGame(c, rm, playerID)

		case "play_card", "play_drawn_card":
			g, ok := s.Games.Get(rm.Code)
			if !ok {
				sendWsError(c, "No game in progress.")
				continue
			}
			cardID, err := uuid.Parse(msg.CardID)
			if err != nil {
				sendWsError(c, "Invalid card id.")
				continue
			}
			if _, err := g.SubmitPlay(playerID, cardID, models.CardColor(msg.ChosenColor)); err != nil {
				sendWsError(c, err.Error())
			}

		case "draw_card":
			g, ok := s.Games.Get(rm.Code)
			if !ok {
				sendWsError(c, "No game in progress.")
				continue
			}
			if _, err := g.HandleVoluntaryDraw(playerID); err != nil {
				sendWsError(c, err.Error())
			}

		case "keep_drawn_card":
			g, ok := s.Games.Get(rm.Code)
			if !ok {
				sendWsError(c, "No game in progress.")
				continue
			}
			if err := g.KeepDrawnCard(playerID); err != nil {
				sendWsError(c, err.Error())
			}

		case "call_uno":
			// Social broadcast only; carries no rule effect.
			name := ""
			for _, m := range rm.Members() {
				if m.ID == playerID {
					name = m.Name
					break
				}
			}
			s.broadcastRoom(rm.Code, map[string]interface{}{
				"type":       "uno_called",
				"playerId":   playerID,
				"playerName": name,
			})

		case "ping":
			sendWsMessage(c, map[string]string{"type": "pong"})

		default:
			sendWsError(c, fmt.Sprintf("Unknown action type: %s", msg.Type))
		}
	}
}

// handleStartGame builds the engine from the room's finalized roster, wires
// the broadcast hooks, and arms the first turn deadline.
func (s *GameServer) handleStartGame(c *websocket.Conn, rm *room.Room, playerID uuid.UUID) {
	if !rm.IsHost(playerID) {
		sendWsError(c, room.ErrNotHost.Error())
		return
	}
	if rm.Status() == room.StatusPlaying {
		sendWsError(c, room.ErrInProgress.Error())
		return
	}
	if rm.Size() < 2 {
		sendWsError(c, "Need at least 2 players to start.")
		return
	}

	code := rm.Code
	g, err := game.NewUnoGame(code, rm.Seats(), s.TurnTimeLimit)
	if err != nil {
		sendWsError(c, err.Error())
		return
	}
	g.BroadcastFn = func(ev game.Event) {
		s.broadcastRoom(code, ev)
	}
	g.BroadcastToPlayerFn = func(pid uuid.UUID, ev game.Event) {
		s.sendTo(code, pid, ev)
	}
	g.OnGameEnd = func(winner, loser *models.Player, reason string) {
		// Runs while the game lock is held; only touches the registries.
		s.Games.Delete(code)
		if reason == game.ReasonAbandoned {
			rm.SetStatus(room.StatusWaiting)
		} else {
			rm.SetStatus(room.StatusFinished)
		}
		s.Logger.Infof("Game in room %s ended (%s)", code, reason)
	}

	s.Games.Add(g)
	rm.SetStatus(room.StatusPlaying)
	s.Logger.Infof("Game started in room %s with %d players", code, rm.Size())

	s.broadcastRoom(code, map[string]interface{}{"type": "game_started"})
	for _, seat := range rm.Seats() {
		s.sendTo(code, seat.ID, game.Event{Type: game.EventGameState, State: g.ViewFor(seat.ID)})
	}
	g.Start()
}

// handleLeave removes a departing player from the room and aborts any game
// they were seated in.
func (s *GameServer) handleLeave(rm *room.Room, playerID uuid.UUID) {
	code := rm.Code

	if g, ok := s.Games.Get(code); ok {
		// The roster is fixed for a game's lifetime; losing a seat aborts it.
		s.broadcastRoom(code, map[string]interface{}{
			"type":   "game_aborted",
			"reason": "A player disconnected",
		})
		g.Abort()
	}

	empty, hostChanged := rm.Leave(playerID)
	if empty {
		s.Rooms.Remove(code)
		s.Logger.Infof("Room %s deleted", code)
		return
	}
	s.broadcastRoom(code, map[string]interface{}{
		"type":        "player_left",
		"playerId":    playerID,
		"players":     rm.Members(),
		"hostChanged": hostChanged,
	})
}
