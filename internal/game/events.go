// internal/game/events.go
package game

import (
	"github.com/Ab-dur-Rehman/UNO/internal/models"
)

// EventType tags engine events pushed over the transport.
type EventType string

const (
	// EventGameState carries a per-viewer snapshot; sent privately to every
	// seat after each committed mutation.
	EventGameState EventType = "game_state"
	// EventCardsDrawn privately reveals a draw batch to the drawing player.
	EventCardsDrawn EventType = "cards_drawn"
	// EventTimeoutPenalty privately reveals a forced penalty draw.
	EventTimeoutPenalty EventType = "timeout_penalty"
	// EventGameOver announces the terminal outcome to everyone.
	EventGameOver EventType = "game_over"
)

// Event is the single envelope the engine hands to the broadcast hooks.
type Event struct {
	Type EventType `json:"type"`

	State *GameView `json:"state,omitempty"`

	Cards        []*models.Card `json:"cards,omitempty"`
	CanPlayDrawn bool           `json:"canPlayDrawn,omitempty"`
	Playable     *models.Card   `json:"playable,omitempty"`

	Winner *SeatView `json:"winner,omitempty"`
	Loser  *SeatView `json:"loser,omitempty"`
	Reason string    `json:"reason,omitempty"`
}
