// internal/game/view.go
package game

import (
	"github.com/google/uuid"

	"github.com/Ab-dur-Rehman/UNO/internal/models"
)

// SeatView is what any viewer may learn about a seat: identity, card count
// and turn markers, never hand contents.
type SeatView struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	CardCount     int       `json:"cardCount"`
	IsUno         bool      `json:"isUno"`
	IsCurrentTurn bool      `json:"isCurrentTurn"`
}

// GameView is the per-viewer snapshot, the only state representation ever
// exposed beyond the engine. MyHand is populated for the requesting seat
// only.
type GameView struct {
	RoomCode string     `json:"roomCode"`
	Players  []SeatView `json:"players"`

	MyHand []*models.Card `json:"myHand"`

	TopCard         *models.Card     `json:"topCard"`
	CurrentColor    models.CardColor `json:"currentColor"`
	CurrentPlayerID uuid.UUID        `json:"currentPlayerId"`
	Direction       int              `json:"direction"`
	DrawStack       int              `json:"drawStack"`
	DrawPileCount   int              `json:"drawPileCount"`

	Status          Status    `json:"status"`
	Winner          *SeatView `json:"winner,omitempty"`
	Loser           *SeatView `json:"loser,omitempty"`
	TurnRemainingMS int64     `json:"turnRemainingMs"`
}

// ViewFor renders a consistent, fully committed snapshot for one viewer.
func (g *UnoGame) ViewFor(playerID uuid.UUID) *GameView {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.viewLocked(playerID)
}

// viewLocked assumes lock is held.
func (g *UnoGame) viewLocked(playerID uuid.UUID) *GameView {
	view := &GameView{
		RoomCode:        g.RoomCode,
		TopCard:         g.topCard(),
		CurrentColor:    g.CurrentColor,
		CurrentPlayerID: g.Players[g.CurrentPlayerIndex].ID,
		Direction:       g.Direction,
		DrawStack:       g.DrawStack,
		DrawPileCount:   len(g.DrawPile),
		Status:          g.Status,
		TurnRemainingMS: g.timeRemaining().Milliseconds(),
	}

	for _, p := range g.Players {
		view.Players = append(view.Players, g.seatView(p))
		if p.ID == playerID {
			view.MyHand = append([]*models.Card(nil), p.Hand...)
		}
	}

	if g.Winner != nil {
		sv := g.seatView(g.Winner)
		view.Winner = &sv
	}
	if g.Loser != nil {
		sv := g.seatView(g.Loser)
		view.Loser = &sv
	}
	return view
}

// seatView assumes lock is held.
func (g *UnoGame) seatView(p *models.Player) SeatView {
	return SeatView{
		ID:            p.ID,
		Name:          p.Name,
		CardCount:     len(p.Hand),
		IsUno:         p.IsUno,
		IsCurrentTurn: g.Players[g.CurrentPlayerIndex].ID == p.ID,
	}
}
