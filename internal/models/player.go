// internal/models/player.go
package models

import (
	"github.com/google/uuid"
)

// Seat identifies one participant in the finalized roster handed over by the
// room layer at game construction time.
type Seat struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Player is one seated participant's in-game state. Hand order is never
// significant to the rules.
type Player struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Hand []*Card   `json:"hand"`

	// IsUno is the declared low-hand flag: set when the hand reaches exactly
	// one card, cleared whenever the player draws.
	IsUno bool `json:"isUno"`
}

// CardIndex returns the position of the card with the given id in the
// player's hand, or -1 if absent.
func (p *Player) CardIndex(cardID uuid.UUID) int {
	for i, c := range p.Hand {
		if c.ID == cardID {
			return i
		}
	}
	return -1
}

// RemoveCard takes the card with the given id out of the hand and returns it,
// or nil if the player does not hold it.
func (p *Player) RemoveCard(cardID uuid.UUID) *Card {
	idx := p.CardIndex(cardID)
	if idx < 0 {
		return nil
	}
	c := p.Hand[idx]
	p.Hand = append(p.Hand[:idx], p.Hand[idx+1:]...)
	return c
}
