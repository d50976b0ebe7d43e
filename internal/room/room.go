// internal/room/room.go
package room

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Ab-dur-Rehman/UNO/internal/models"
)

// Status tracks a room through its lifecycle.
type Status string

const (
	StatusWaiting  Status = "waiting"
	StatusPlaying  Status = "playing"
	StatusFinished Status = "finished"
)

var (
	ErrNotFound      = errors.New("room not found")
	ErrInProgress    = errors.New("game already in progress")
	ErrAlreadyJoined = errors.New("already in room")
	ErrNotHost       = errors.New("only the host can do that")
)

// Member is one participant of a room's roster.
type Member struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	IsHost bool      `json:"isHost"`
}

// Room is the pre-game and between-game gathering place for one group of
// players, addressed by its invite code. Each room carries its own lock;
// rooms never contend with each other.
type Room struct {
	Code      string
	CreatedAt time.Time

	mu      sync.Mutex
	hostID  uuid.UUID
	members []*Member
	status  Status
}

func newRoom(code string, hostID uuid.UUID, hostName string) *Room {
	return &Room{
		Code:      code,
		CreatedAt: time.Now(),
		hostID:    hostID,
		members:   []*Member{{ID: hostID, Name: hostName, IsHost: true}},
		status:    StatusWaiting,
	}
}

// Join adds a player to a waiting room.
func (r *Room) Join(playerID uuid.UUID, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.status != StatusWaiting {
		return ErrInProgress
	}
	for _, m := range r.members {
		if m.ID == playerID {
			return ErrAlreadyJoined
		}
	}
	r.members = append(r.members, &Member{ID: playerID, Name: name})
	return nil
}

// Leave removes a player. When the departing player hosted the room, the
// longest-seated remaining member becomes host. Returns whether the room is
// now empty and whether the host changed.
func (r *Room) Leave(playerID uuid.UUID) (empty, hostChanged bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, m := range r.members {
		if m.ID == playerID {
			r.members = append(r.members[:i], r.members[i+1:]...)
			break
		}
	}
	if len(r.members) == 0 {
		return true, false
	}
	if r.hostID == playerID {
		r.members[0].IsHost = true
		r.hostID = r.members[0].ID
		return false, true
	}
	return false, false
}

// HasMember reports roster membership.
func (r *Room) HasMember(playerID uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range r.members {
		if m.ID == playerID {
			return true
		}
	}
	return false
}

// IsHost reports whether playerID currently hosts the room.
func (r *Room) IsHost(playerID uuid.UUID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hostID == playerID
}

// Members returns a snapshot of the roster.
func (r *Room) Members() []Member {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Member, len(r.members))
	for i, m := range r.members {
		out[i] = *m
	}
	return out
}

// Seats returns the finalized, order-stable roster handed to the game
// engine at construction time.
func (r *Room) Seats() []models.Seat {
	r.mu.Lock()
	defer r.mu.Unlock()
	seats := make([]models.Seat, len(r.members))
	for i, m := range r.members {
		seats[i] = models.Seat{ID: m.ID, Name: m.Name}
	}
	return seats
}

func (r *Room) Status() Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.status
}

func (r *Room) SetStatus(s Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.status = s
}

// Size returns the current roster size.
func (r *Room) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.members)
}
