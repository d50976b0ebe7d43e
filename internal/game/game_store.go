// internal/game/game_store.go
package game

import (
	"sync"
)

// Store is the registry of active games, keyed by room code. The store's
// lock guards map membership only; all game mutation locking is per
// instance, so unrelated games never contend here.
type Store struct {
	mu    sync.Mutex
	games map[string]*UnoGame
}

func NewStore() *Store {
	return &Store{
		games: make(map[string]*UnoGame),
	}
}

func (s *Store) Add(g *UnoGame) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[g.RoomCode] = g
}

func (s *Store) Get(roomCode string) (*UnoGame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.games[roomCode]
	return g, ok
}

func (s *Store) Delete(roomCode string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.games, roomCode)
}
