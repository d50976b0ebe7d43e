// internal/models/card.go
package models

import (
	"fmt"

	"github.com/google/uuid"
)

// CardType classifies a card as a plain number, a colored action, or a wild.
type CardType string

const (
	TypeNumber CardType = "number"
	TypeAction CardType = "action"
	TypeWild   CardType = "wild"
)

// CardColor is one of the four playable colors, or black for wilds.
type CardColor string

const (
	ColorRed    CardColor = "red"
	ColorBlue   CardColor = "blue"
	ColorGreen  CardColor = "green"
	ColorYellow CardColor = "yellow"
	ColorBlack  CardColor = "black"
)

// PlayableColors are the colors a wild play may choose from. Black is never
// a current color.
var PlayableColors = [4]CardColor{ColorRed, ColorBlue, ColorGreen, ColorYellow}

// IsPlayable reports whether c is one of the four playable colors.
func (c CardColor) IsPlayable() bool {
	for _, pc := range PlayableColors {
		if c == pc {
			return true
		}
	}
	return false
}

// Named effect values. Number cards carry "0".."9" instead.
const (
	ValueSkip         = "skip"
	ValueReverse      = "reverse"
	ValueDraw2        = "draw2"
	ValueSkipEveryone = "skip_everyone"
	ValueDraw6        = "draw6"
	ValueWild         = "wild"
	ValueWildDraw4    = "wild_draw4"
	ValueWildDraw6    = "wild_draw6"
	ValueWildDraw10   = "wild_draw10"
)

// Card is an immutable value. Cards are created once at deck construction and
// afterwards only move between piles and hands.
type Card struct {
	ID    uuid.UUID `json:"id"`
	Type  CardType  `json:"type"`
	Color CardColor `json:"color"`
	Value string    `json:"value"`
}

// NewCard allocates a card and assigns its identifier exactly once.
func NewCard(t CardType, color CardColor, value string) *Card {
	id, _ := uuid.NewRandom()
	return &Card{ID: id, Type: t, Color: color, Value: value}
}

// IsWild reports whether the card is color-neutral (black).
func (c *Card) IsWild() bool {
	return c.Type == TypeWild
}

// DrawValue returns the number of cards this card forces the next player to
// draw, or 0 for cards with no draw effect.
func (c *Card) DrawValue() int {
	switch c.Value {
	case ValueDraw2:
		return 2
	case ValueWildDraw4:
		return 4
	case ValueDraw6, ValueWildDraw6:
		return 6
	case ValueWildDraw10:
		return 10
	default:
		return 0
	}
}

func (c *Card) String() string {
	return fmt.Sprintf("%s %s", c.Color, c.Value)
}
