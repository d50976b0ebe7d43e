// internal/game/deck.go
package game

import (
	"math/rand"
	"strings"
	"time"

	"github.com/Ab-dur-Rehman/UNO/internal/models"
)

// DeckSize is the fixed number of cards in a No-Mercy deck.
//
// Per color: one "0", two each of "1".."9" (19 number cards), two each of
// skip/reverse/draw2 (6 action cards), one skip_everyone, one draw6.
// Plus 4 wild, 4 wild_draw4, 2 wild_draw6 and 2 wild_draw10.
const DeckSize = 4*(19+6+2) + 4 + 4 + 2 + 2

var deckColors = [4]models.CardColor{models.ColorRed, models.ColorBlue, models.ColorGreen, models.ColorYellow}

// buildDeck constructs the fixed composition above, assigning each card a
// unique identifier once at allocation time.
func buildDeck() []*models.Card {
	deck := make([]*models.Card, 0, DeckSize)

	for _, color := range deckColors {
		deck = append(deck, models.NewCard(models.TypeNumber, color, "0"))
		for _, n := range []string{"1", "2", "3", "4", "5", "6", "7", "8", "9"} {
			deck = append(deck, models.NewCard(models.TypeNumber, color, n))
			deck = append(deck, models.NewCard(models.TypeNumber, color, n))
		}
		for _, action := range []string{models.ValueSkip, models.ValueReverse, models.ValueDraw2} {
			deck = append(deck, models.NewCard(models.TypeAction, color, action))
			deck = append(deck, models.NewCard(models.TypeAction, color, action))
		}
		deck = append(deck, models.NewCard(models.TypeAction, color, models.ValueSkipEveryone))
		deck = append(deck, models.NewCard(models.TypeAction, color, models.ValueDraw6))
	}

	for i := 0; i < 4; i++ {
		deck = append(deck, models.NewCard(models.TypeWild, models.ColorBlack, models.ValueWild))
		deck = append(deck, models.NewCard(models.TypeWild, models.ColorBlack, models.ValueWildDraw4))
	}
	for i := 0; i < 2; i++ {
		deck = append(deck, models.NewCard(models.TypeWild, models.ColorBlack, models.ValueWildDraw6))
		deck = append(deck, models.NewCard(models.TypeWild, models.ColorBlack, models.ValueWildDraw10))
	}

	return deck
}

// shuffle permutes the pile in place with a Fisher-Yates walk.
func shuffle(pile []*models.Card) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	for i := len(pile) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		pile[i], pile[j] = pile[j], pile[i]
	}
}

// validOpeningCard rejects wilds, every draw-effect card and skip_everyone so
// the game opens in an unconstrained state.
func validOpeningCard(c *models.Card) bool {
	if c.Type == models.TypeWild {
		return false
	}
	if strings.Contains(c.Value, "draw") {
		return false
	}
	return c.Value != models.ValueSkipEveryone
}

// deal moves perHand cards from the top of the draw pile into each hand,
// round-robin by seating order. Assumes the pile holds enough cards.
func (g *UnoGame) deal(perHand int) {
	for i := 0; i < perHand; i++ {
		for _, p := range g.Players {
			p.Hand = append(p.Hand, g.popDraw())
		}
	}
}

// chooseOpeningCard pops cards until one is eligible to open the discard
// pile, returning each rejected card to the pile and reshuffling before the
// next attempt. The chosen card fixes the initial current color.
func (g *UnoGame) chooseOpeningCard() {
	for {
		card := g.popDraw()
		if validOpeningCard(card) {
			g.DiscardPile = append(g.DiscardPile, card)
			g.CurrentColor = card.Color
			return
		}
		g.DrawPile = append(g.DrawPile, card)
		shuffle(g.DrawPile)
	}
}

// popDraw removes and returns the top card of the draw pile. Callers must
// ensure the pile is non-empty.
func (g *UnoGame) popDraw() *models.Card {
	card := g.DrawPile[len(g.DrawPile)-1]
	g.DrawPile = g.DrawPile[:len(g.DrawPile)-1]
	return card
}

// reshuffle moves every discard card except the current top back into the
// draw pile and shuffles. No-op when the discard pile holds at most one card.
func (g *UnoGame) reshuffle() {
	if len(g.DiscardPile) <= 1 {
		return
	}
	top := g.DiscardPile[len(g.DiscardPile)-1]
	g.DrawPile = append(g.DrawPile, g.DiscardPile[:len(g.DiscardPile)-1]...)
	g.DiscardPile = []*models.Card{top}
	shuffle(g.DrawPile)
	g.logger.WithField("drawPile", len(g.DrawPile)).Debug("reshuffled discard pile into draw pile")
}
