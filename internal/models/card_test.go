// internal/models/card_test.go
package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDrawValue(t *testing.T) {
	tests := []struct {
		value string
		want  int
	}{
		{ValueDraw2, 2},
		{ValueWildDraw4, 4},
		{ValueDraw6, 6},
		{ValueWildDraw6, 6},
		{ValueWildDraw10, 10},
		{ValueSkip, 0},
		{ValueReverse, 0},
		{ValueSkipEveryone, 0},
		{ValueWild, 0},
		{"7", 0},
	}
	for _, tt := range tests {
		c := NewCard(TypeAction, ColorRed, tt.value)
		assert.Equal(t, tt.want, c.DrawValue(), tt.value)
	}
}

func TestColorIsPlayable(t *testing.T) {
	for _, c := range PlayableColors {
		assert.True(t, c.IsPlayable())
	}
	assert.False(t, ColorBlack.IsPlayable())
	assert.False(t, CardColor("").IsPlayable())
	assert.False(t, CardColor("purple").IsPlayable())
}

func TestRemoveCard(t *testing.T) {
	a := NewCard(TypeNumber, ColorRed, "1")
	b := NewCard(TypeNumber, ColorBlue, "2")
	c := NewCard(TypeNumber, ColorGreen, "3")
	p := &Player{ID: uuid.New(), Hand: []*Card{a, b, c}}

	assert.Equal(t, 1, p.CardIndex(b.ID))
	got := p.RemoveCard(b.ID)
	require.NotNil(t, got)
	assert.Equal(t, b.ID, got.ID)
	assert.Len(t, p.Hand, 2)
	assert.Equal(t, -1, p.CardIndex(b.ID))

	assert.Nil(t, p.RemoveCard(uuid.New()))
	assert.Len(t, p.Hand, 2)
}
