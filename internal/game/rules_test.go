// internal/game/rules_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ab-dur-Rehman/UNO/internal/models"
)

func number(color models.CardColor, v string) *models.Card {
	return models.NewCard(models.TypeNumber, color, v)
}

func action(color models.CardColor, v string) *models.Card {
	return models.NewCard(models.TypeAction, color, v)
}

func wild(v string) *models.Card {
	return models.NewCard(models.TypeWild, models.ColorBlack, v)
}

func TestCanPlayBasicMatching(t *testing.T) {
	top := number(models.ColorRed, "5")

	tests := []struct {
		name  string
		card  *models.Card
		color models.CardColor
		want  bool
	}{
		{"same color", number(models.ColorRed, "9"), models.ColorRed, true},
		{"same value different color", number(models.ColorBlue, "5"), models.ColorRed, true},
		{"no match", number(models.ColorBlue, "9"), models.ColorRed, false},
		{"wild always plays", wild(models.ValueWild), models.ColorRed, true},
		{"wild_draw4 always plays", wild(models.ValueWildDraw4), models.ColorRed, true},
		{"matching action color", action(models.ColorRed, models.ValueSkip), models.ColorRed, true},
		{"non matching action", action(models.ColorGreen, models.ValueSkip), models.ColorRed, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanPlay(tt.card, top, tt.color, 0))
		})
	}
}

func TestCanPlayHonorsChosenColorOverWildTop(t *testing.T) {
	// After a wild the top card is black; legality follows the chosen color.
	top := wild(models.ValueWild)

	assert.True(t, CanPlay(number(models.ColorGreen, "3"), top, models.ColorGreen, 0))
	assert.False(t, CanPlay(number(models.ColorRed, "3"), top, models.ColorGreen, 0))
}

func TestCanPlayColoredChain(t *testing.T) {
	// Pending stack of 2 on a red draw2, current color red.
	top := action(models.ColorRed, models.ValueDraw2)

	tests := []struct {
		name string
		card *models.Card
		want bool
	}{
		{"equal value any color", action(models.ColorBlue, models.ValueDraw2), true},
		{"escalate within color", action(models.ColorRed, models.ValueDraw6), true},
		{"escalate outside color", action(models.ColorGreen, models.ValueDraw6), false},
		{"black draw cannot answer colored chain", wild(models.ValueWildDraw4), false},
		{"black draw6 cannot answer colored chain", wild(models.ValueWildDraw6), false},
		{"non draw card", number(models.ColorRed, "2"), false},
		{"plain wild", wild(models.ValueWild), false},
		{"skip cannot answer", action(models.ColorRed, models.ValueSkip), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanPlay(tt.card, top, models.ColorRed, 2))
		})
	}
}

func TestCanPlayBlackChain(t *testing.T) {
	// Pending stack of 6 on a wild_draw6.
	top := wild(models.ValueWildDraw6)

	tests := []struct {
		name string
		card *models.Card
		want bool
	}{
		{"equal black draw", wild(models.ValueWildDraw6), true},
		{"escalating black draw", wild(models.ValueWildDraw10), true},
		{"de-escalating black draw", wild(models.ValueWildDraw4), false},
		{"colored draw cannot answer black chain", action(models.ColorRed, models.ValueDraw6), false},
		{"colored draw2 cannot answer black chain", action(models.ColorGreen, models.ValueDraw2), false},
		{"plain wild", wild(models.ValueWild), false},
		{"number card", number(models.ColorRed, "6"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanPlay(tt.card, top, models.ColorRed, 6))
		})
	}
}

func TestCanPlayChainOnDraw6Top(t *testing.T) {
	// Escalation above a colored draw6 must still stay in the current color.
	top := action(models.ColorBlue, models.ValueDraw6)

	assert.True(t, CanPlay(action(models.ColorGreen, models.ValueDraw6), top, models.ColorBlue, 6))
	assert.False(t, CanPlay(action(models.ColorGreen, models.ValueDraw2), top, models.ColorBlue, 6))
	assert.False(t, CanPlay(wild(models.ValueWildDraw10), top, models.ColorBlue, 6))
}
