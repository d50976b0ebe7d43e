// internal/handlers/room.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Ab-dur-Rehman/UNO/internal/auth"
	"github.com/Ab-dur-Rehman/UNO/internal/room"
)

type createRoomRequest struct {
	Name string `json:"name"`
}

type joinRoomRequest struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

type roomResponse struct {
	Code     string        `json:"code"`
	PlayerID uuid.UUID     `json:"playerId"`
	Token    string        `json:"token"`
	IsHost   bool          `json:"isHost"`
	Players  []room.Member `json:"players"`
}

// CreateRoomHandler allocates a room, seats the caller as host, and returns
// the invite code with a guest token for the websocket connect.
func (s *GameServer) CreateRoomHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req createRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		http.Error(w, "a player name is required", http.StatusBadRequest)
		return
	}

	playerID, _ := uuid.NewRandom()
	token, err := auth.CreateGuestToken(playerID)
	if err != nil {
		s.Logger.Errorf("Failed to create guest token: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	rm := s.Rooms.Create(playerID, strings.TrimSpace(req.Name))
	s.Logger.Infof("Room %s created by %s (%s)", rm.Code, req.Name, playerID)

	writeJSON(w, http.StatusCreated, roomResponse{
		Code:     rm.Code,
		PlayerID: playerID,
		Token:    token,
		IsHost:   true,
		Players:  rm.Members(),
	})
}

// JoinRoomHandler seats the caller in an existing waiting room.
func (s *GameServer) JoinRoomHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req joinRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Name) == "" || req.Code == "" {
		http.Error(w, "a room code and player name are required", http.StatusBadRequest)
		return
	}

	rm, ok := s.Rooms.Get(req.Code)
	if !ok {
		http.Error(w, room.ErrNotFound.Error(), http.StatusNotFound)
		return
	}

	playerID, _ := uuid.NewRandom()
	if err := rm.Join(playerID, strings.TrimSpace(req.Name)); err != nil {
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	token, err := auth.CreateGuestToken(playerID)
	if err != nil {
		s.Logger.Errorf("Failed to create guest token: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	s.Logger.Infof("%s (%s) joined room %s", req.Name, playerID, rm.Code)

	// Let everyone already connected see the new roster.
	s.broadcastRoom(rm.Code, map[string]interface{}{
		"type":    "player_joined",
		"players": rm.Members(),
	})

	writeJSON(w, http.StatusOK, roomResponse{
		Code:     rm.Code,
		PlayerID: playerID,
		Token:    token,
		Players:  rm.Members(),
	})
}
