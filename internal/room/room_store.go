// internal/room/room_store.go
package room

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	codeLength  = 6
	codeCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// Store is the registry of live rooms, keyed by invite code. Its lock
// guards map membership and code uniqueness only.
type Store struct {
	mu    sync.Mutex
	rooms map[string]*Room
	rng   *rand.Rand
}

func NewStore() *Store {
	return &Store{
		rooms: make(map[string]*Room),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Create allocates a room with a fresh invite code, unique among live rooms.
func (s *Store) Create(hostID uuid.UUID, hostName string) *Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	var code string
	for {
		code = s.generateCode()
		if _, taken := s.rooms[code]; !taken {
			break
		}
	}
	r := newRoom(code, hostID, hostName)
	s.rooms[code] = r
	return r
}

// Get looks up a room by invite code.
func (s *Store) Get(code string) (*Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[strings.ToUpper(code)]
	return r, ok
}

// Remove deletes a room from the registry.
func (s *Store) Remove(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rooms, code)
}

// generateCode assumes the store lock is held (it uses the store's rng).
func (s *Store) generateCode() string {
	var b strings.Builder
	for i := 0; i < codeLength; i++ {
		b.WriteByte(codeCharset[s.rng.Intn(len(codeCharset))])
	}
	return b.String()
}
