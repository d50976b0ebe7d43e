// internal/game/game.go
package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/Ab-dur-Rehman/UNO/internal/models"
)

// Status is the two-state lifecycle of a game. Finished is terminal.
type Status string

const (
	StatusPlaying  Status = "playing"
	StatusFinished Status = "finished"
)

// Terminal reasons reported through OnGameEnd and the game_over event.
const (
	ReasonEmptyHand    = "empty_hand"
	ReasonTooManyCards = "too_many_cards"
	ReasonAbandoned    = "abandoned"
)

const (
	// DefaultTurnTimeLimit applies when the game is constructed without an
	// explicit limit.
	DefaultTurnTimeLimit = 10 * time.Second

	startingHandSize    = 7
	eliminationHandSize = 30
	timeoutPenaltyDraw  = 2
)

// OnGameEndFunc receives the terminal outcome. Winner and loser may be nil
// (abandonment). Invoked while the game lock is held; implementations must
// not call back into the game.
type OnGameEndFunc func(winner, loser *models.Player, reason string)

// UnoGame holds the entire state for a single game instance in memory.
//
// Concurrency: the unexported mutex enforces the single-writer discipline.
// Every exported mutating method acquires it, as does the turn-timer
// callback, so player actions and timer firings on the same game never
// overlap. Instances share no state with each other.
type UnoGame struct {
	ID       uuid.UUID
	RoomCode string

	// Seating order is fixed for the game's lifetime and defines rotation.
	Players     []*models.Player
	DrawPile    []*models.Card
	DiscardPile []*models.Card

	CurrentPlayerIndex int
	Direction          int // +1 or -1
	CurrentColor       models.CardColor
	DrawStack          int // pending forced-draw total

	Status    Status
	Winner    *models.Player
	Loser     *models.Player
	EndReason string

	TurnStartedAt time.Time
	TurnTimeLimit time.Duration

	mu        sync.Mutex
	turnSeq   int // increments on every arm/cancel; stale firings compare against it
	turnTimer *time.Timer

	// pendingDrawn is non-nil while the acting player may still play or keep
	// the card they just drew voluntarily. Turn advance is deferred until the
	// window resolves.
	pendingDrawn *models.Card

	// BroadcastFn sends an event to every connected player. May be nil.
	BroadcastFn func(ev Event)

	// BroadcastToPlayerFn sends an event to a single player. May be nil.
	// Both broadcast hooks are invoked while the game lock is held and must
	// hand the actual write off without re-entering the game.
	BroadcastToPlayerFn func(playerID uuid.UUID, ev Event)

	// OnGameEnd reports the terminal outcome to the session layer.
	OnGameEnd OnGameEndFunc

	logger *logrus.Entry
}

// NewUnoGame builds a game from a finalized roster: fresh shuffled deck,
// seven cards per hand, and an opening discard that fixes the initial color.
// The turn clock starts at construction; no deadline is armed until Start.
func NewUnoGame(roomCode string, seats []models.Seat, turnTimeLimit time.Duration) (*UnoGame, error) {
	if len(seats) < 2 {
		return nil, ErrNotEnoughSeats
	}
	if turnTimeLimit <= 0 {
		turnTimeLimit = DefaultTurnTimeLimit
	}

	id, _ := uuid.NewRandom()
	g := &UnoGame{
		ID:            id,
		RoomCode:      roomCode,
		Direction:     1,
		Status:        StatusPlaying,
		TurnStartedAt: time.Now(),
		TurnTimeLimit: turnTimeLimit,
		logger: logrus.WithFields(logrus.Fields{
			"game": id,
			"room": roomCode,
		}),
	}
	for _, s := range seats {
		g.Players = append(g.Players, &models.Player{ID: s.ID, Name: s.Name})
	}

	g.DrawPile = buildDeck()
	shuffle(g.DrawPile)
	g.deal(startingHandSize)
	g.chooseOpeningCard()

	return g, nil
}

// Start arms the first turn deadline. Separate from construction so the
// session layer can wire broadcast hooks first.
func (g *UnoGame) Start() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Status != StatusPlaying {
		return
	}
	g.TurnStartedAt = time.Now()
	g.armTurnTimer()
	g.logger.WithField("players", len(g.Players)).Info("game started")
}

// Stop cancels any pending deadline without ending the game. Used by the
// session layer during teardown.
func (g *UnoGame) Stop() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cancelTurnTimer()
}

// PlayResult describes a committed play.
type PlayResult struct {
	GameOver bool
	Winner   *models.Player
	Loser    *models.Player
	Reason   string
}

// DrawResult describes a committed draw. CanPlayDrawn marks the deferred
// play-or-keep window; Playable is the card it refers to.
type DrawResult struct {
	Cards        []*models.Card
	CanPlayDrawn bool
	Playable     *models.Card
	GameOver     bool
	Winner       *models.Player
	Loser        *models.Player
	Reason       string
}

// SubmitPlay validates and commits one card play by the current player.
// All preconditions are checked before any mutation; a returned error means
// the state is exactly as it was.
func (g *UnoGame) SubmitPlay(playerID, cardID uuid.UUID, chosenColor models.CardColor) (*PlayResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Status != StatusPlaying {
		return nil, ErrGameFinished
	}
	p := g.playerByID(playerID)
	if p == nil {
		return nil, ErrPlayerNotFound
	}
	if g.Players[g.CurrentPlayerIndex].ID != playerID {
		return nil, ErrNotYourTurn
	}
	idx := p.CardIndex(cardID)
	if idx < 0 {
		return nil, ErrCardNotInHand
	}
	card := p.Hand[idx]
	if !CanPlay(card, g.topCard(), g.CurrentColor, g.DrawStack) {
		return nil, ErrIllegalPlay
	}
	if card.IsWild() && !chosenColor.IsPlayable() {
		return nil, ErrInvalidColorChoice
	}

	// Commit.
	p.RemoveCard(cardID)
	g.DiscardPile = append(g.DiscardPile, card)
	if card.IsWild() {
		g.CurrentColor = chosenColor
	} else {
		g.CurrentColor = card.Color
	}
	g.applyCardEffect(card)
	g.pendingDrawn = nil

	if len(p.Hand) == 0 {
		g.finish(p, nil, ReasonEmptyHand)
		return &PlayResult{GameOver: true, Winner: p, Reason: ReasonEmptyHand}, nil
	}
	p.IsUno = len(p.Hand) == 1

	g.nextTurn()
	g.broadcastState()
	return &PlayResult{}, nil
}

// applyCardEffect resolves a played card's special effect before the
// unconditional turn advance. Assumes lock is held.
func (g *UnoGame) applyCardEffect(card *models.Card) {
	n := len(g.Players)
	switch card.Value {
	case models.ValueSkip:
		g.stepTurn()
	case models.ValueReverse:
		// With two seats a flip has no visible effect, so reverse acts as an
		// immediate extra advance instead.
		if n == 2 {
			g.stepTurn()
		} else {
			g.Direction *= -1
		}
	case models.ValueSkipEveryone:
		// Step backward so the unconditional advance lands back on the
		// acting player; every other seat is skipped once.
		g.CurrentPlayerIndex = (g.CurrentPlayerIndex - g.Direction + n) % n
	default:
		if dv := card.DrawValue(); dv > 0 {
			g.DrawStack += dv
		}
	}
}

// HandleVoluntaryDraw lets the current player draw instead of playing. With
// a pending stack the whole stack is drawn and the turn advances. A plain
// single draw of a playable card opens the play-or-keep window and re-arms
// the deadline for the same player.
func (g *UnoGame) HandleVoluntaryDraw(playerID uuid.UUID) (*DrawResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Status != StatusPlaying {
		return nil, ErrGameFinished
	}
	p := g.playerByID(playerID)
	if p == nil {
		return nil, ErrPlayerNotFound
	}
	if g.Players[g.CurrentPlayerIndex].ID != playerID {
		return nil, ErrNotYourTurn
	}

	stacked := g.DrawStack > 0
	count := 1
	if stacked {
		count = g.DrawStack
	}
	g.DrawStack = 0

	cards, ended := g.drawN(p, count)
	res := &DrawResult{Cards: cards}
	if ended {
		res.GameOver = true
		res.Winner = g.Winner
		res.Loser = g.Loser
		res.Reason = g.EndReason
		return res, nil
	}

	if !stacked && len(cards) == 1 && CanPlay(cards[0], g.topCard(), g.CurrentColor, 0) {
		g.pendingDrawn = cards[0]
		res.CanPlayDrawn = true
		res.Playable = cards[0]
		// Entering the deferred-play window restarts the deadline.
		g.TurnStartedAt = time.Now()
		g.armTurnTimer()
	} else {
		g.nextTurn()
	}

	g.firePrivate(playerID, Event{
		Type:         EventCardsDrawn,
		Cards:        cards,
		CanPlayDrawn: res.CanPlayDrawn,
		Playable:     res.Playable,
	})
	g.broadcastState()
	return res, nil
}

// KeepDrawnCard resolves the deferred-play window without playing the card.
func (g *UnoGame) KeepDrawnCard(playerID uuid.UUID) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Status != StatusPlaying {
		return ErrGameFinished
	}
	if g.playerByID(playerID) == nil {
		return ErrPlayerNotFound
	}
	if g.Players[g.CurrentPlayerIndex].ID != playerID {
		return ErrNotYourTurn
	}
	if g.pendingDrawn == nil {
		return ErrNoDrawnCard
	}

	g.pendingDrawn = nil
	g.nextTurn()
	g.broadcastState()
	return nil
}

// ApplyTimeoutPenalty forces the fixed 2-card penalty draw on the current
// player and advances the turn unless the draw ended the game. Any pending
// draw stack is left untouched. This is the sole mutation the timeout path
// performs; the session layer may also invoke it directly.
func (g *UnoGame) ApplyTimeoutPenalty(playerID uuid.UUID) (*DrawResult, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Status != StatusPlaying {
		return nil, ErrGameFinished
	}
	p := g.playerByID(playerID)
	if p == nil {
		return nil, ErrPlayerNotFound
	}
	if g.Players[g.CurrentPlayerIndex].ID != playerID {
		return nil, ErrNotYourTurn
	}
	return g.applyTimeoutPenalty(p), nil
}

// applyTimeoutPenalty assumes lock is held and playerID is current.
func (g *UnoGame) applyTimeoutPenalty(p *models.Player) *DrawResult {
	g.logger.WithField("player", p.ID).Info("turn timed out, applying penalty draw")

	cards, ended := g.drawN(p, timeoutPenaltyDraw)
	g.firePrivate(p.ID, Event{Type: EventTimeoutPenalty, Cards: cards})

	res := &DrawResult{Cards: cards}
	if ended {
		res.GameOver = true
		res.Winner = g.Winner
		res.Loser = g.Loser
		res.Reason = g.EndReason
		return res
	}
	g.nextTurn()
	g.broadcastState()
	return res
}

// drawN draws up to n cards for p, reshuffling the discard pile (minus its
// top card) whenever the draw pile runs dry. When both piles are exhausted
// the batch silently comes up short. After the batch the low-hand flag is
// cleared unconditionally and the 30-card elimination is checked. Returns
// the drawn cards and whether the game ended. Assumes lock is held.
func (g *UnoGame) drawN(p *models.Player, n int) ([]*models.Card, bool) {
	var drawn []*models.Card
	for i := 0; i < n; i++ {
		if len(g.DrawPile) == 0 {
			g.reshuffle()
			if len(g.DrawPile) == 0 {
				break
			}
		}
		card := g.popDraw()
		p.Hand = append(p.Hand, card)
		drawn = append(drawn, card)
	}

	p.IsUno = false

	if len(p.Hand) >= eliminationHandSize {
		g.finishElimination(p)
		return drawn, true
	}
	return drawn, false
}

// finishElimination ends the game with p as loser; the winner is the other
// seat with the strictly smallest hand, first in seating order on ties.
// Assumes lock is held.
func (g *UnoGame) finishElimination(loser *models.Player) {
	var winner *models.Player
	for _, p := range g.Players {
		if p.ID == loser.ID {
			continue
		}
		if winner == nil || len(p.Hand) < len(winner.Hand) {
			winner = p
		}
	}
	g.finish(winner, loser, ReasonTooManyCards)
}

// finish transitions to the terminal state, cancels the deadline, pushes the
// final per-viewer state and the game_over event, and reports the outcome.
// Assumes lock is held.
func (g *UnoGame) finish(winner, loser *models.Player, reason string) {
	g.Status = StatusFinished
	g.Winner = winner
	g.Loser = loser
	g.EndReason = reason
	g.pendingDrawn = nil
	g.cancelTurnTimer()

	g.broadcastState()

	ev := Event{Type: EventGameOver, Reason: reason}
	if winner != nil {
		sv := g.seatView(winner)
		ev.Winner = &sv
	}
	if loser != nil {
		sv := g.seatView(loser)
		ev.Loser = &sv
	}
	g.fire(ev)

	g.logger.WithField("reason", reason).Info("game finished")

	if g.OnGameEnd != nil {
		g.OnGameEnd(winner, loser, reason)
	}
}

// Abort ends a still-running game without a winner, e.g. when a seated
// player abandons the session mid-game.
func (g *UnoGame) Abort() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Status != StatusPlaying {
		return
	}
	g.finish(nil, nil, ReasonAbandoned)
}

// nextTurn advances the seat pointer one step in the current direction and
// restarts the turn clock. This is the single point that re-arms the
// timeout deadline after a turn change. Assumes lock is held.
func (g *UnoGame) nextTurn() {
	g.stepTurn()
	g.TurnStartedAt = time.Now()
	g.pendingDrawn = nil
	g.armTurnTimer()
}

// stepTurn moves the seat pointer without touching the clock.
func (g *UnoGame) stepTurn() {
	n := len(g.Players)
	g.CurrentPlayerIndex = (g.CurrentPlayerIndex + g.Direction + n) % n
}

// armTurnTimer replaces any pending deadline with one for the current turn.
// The captured sequence number is revalidated under the lock when the timer
// fires, so a firing that lost the race against a player action is
// discarded instead of applied. Assumes lock is held.
func (g *UnoGame) armTurnTimer() {
	g.turnSeq++
	seq := g.turnSeq
	if g.turnTimer != nil {
		g.turnTimer.Stop()
	}
	if g.Status != StatusPlaying {
		return
	}
	remaining := time.Until(g.TurnStartedAt.Add(g.TurnTimeLimit))
	if remaining < 0 {
		remaining = 0
	}
	g.turnTimer = time.AfterFunc(remaining, func() {
		g.timeoutFired(seq)
	})
}

// cancelTurnTimer stops the pending deadline and invalidates any firing
// already in flight. Assumes lock is held.
func (g *UnoGame) cancelTurnTimer() {
	g.turnSeq++
	if g.turnTimer != nil {
		g.turnTimer.Stop()
		g.turnTimer = nil
	}
}

// timeoutFired runs on the timer goroutine.
func (g *UnoGame) timeoutFired(seq int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Status != StatusPlaying || seq != g.turnSeq {
		g.logger.WithField("seq", seq).Debug("stale turn timer fired, ignoring")
		return
	}
	g.applyTimeoutPenalty(g.Players[g.CurrentPlayerIndex])
}

// IsCurrentPlayer reports whether it is playerID's turn.
func (g *UnoGame) IsCurrentPlayer(playerID uuid.UUID) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.Status == StatusPlaying && g.Players[g.CurrentPlayerIndex].ID == playerID
}

// TimeRemaining returns how long the current player has left on the clock.
func (g *UnoGame) TimeRemaining() time.Duration {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.timeRemaining()
}

// timeRemaining assumes lock is held.
func (g *UnoGame) timeRemaining() time.Duration {
	if g.Status != StatusPlaying {
		return 0
	}
	rem := time.Until(g.TurnStartedAt.Add(g.TurnTimeLimit))
	if rem < 0 {
		return 0
	}
	return rem
}

func (g *UnoGame) playerByID(id uuid.UUID) *models.Player {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// topCard returns the discard pile's current top card.
func (g *UnoGame) topCard() *models.Card {
	return g.DiscardPile[len(g.DiscardPile)-1]
}

// fire broadcasts an event to all players. Assumes lock is held.
func (g *UnoGame) fire(ev Event) {
	if g.BroadcastFn != nil {
		g.BroadcastFn(ev)
	}
}

// firePrivate sends an event to a single player. Assumes lock is held.
func (g *UnoGame) firePrivate(playerID uuid.UUID, ev Event) {
	if g.BroadcastToPlayerFn != nil {
		g.BroadcastToPlayerFn(playerID, ev)
	}
}

// broadcastState pushes a fresh per-viewer snapshot to every seat after a
// committed mutation. Assumes lock is held.
func (g *UnoGame) broadcastState() {
	if g.BroadcastToPlayerFn == nil {
		return
	}
	for _, p := range g.Players {
		g.BroadcastToPlayerFn(p.ID, Event{Type: EventGameState, State: g.viewLocked(p.ID)})
	}
}
