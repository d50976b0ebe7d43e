// internal/game/rules.go
package game

import (
	"github.com/Ab-dur-Rehman/UNO/internal/models"
)

// CanPlay is the play-legality and stacking resolver: a pure decision over
// the candidate card, the discard top, the current color and the pending
// draw-stack total. It never mutates state and is consulted before every
// mutation.
//
// With an active draw stack the escalation system is closed: colored chains
// (draw2/draw6) escalate only within the current color, black chains
// (wild_draw4/6/10) are color-blind but monotonically non-decreasing, and
// the two families never answer each other.
func CanPlay(card, top *models.Card, currentColor models.CardColor, drawStack int) bool {
	if drawStack > 0 {
		dv := card.DrawValue()
		if dv == 0 {
			// Only draw-type cards may respond to a pending stack.
			return false
		}
		topDV := top.DrawValue()
		if top.IsWild() {
			// Black chain: colored draws are out, black draws must not
			// de-escalate.
			return card.IsWild() && dv >= topDV
		}
		// Colored chain: black draws are out; equal value matches any color,
		// escalation must stay in the current color.
		if card.IsWild() {
			return false
		}
		if dv == topDV {
			return true
		}
		return dv > topDV && card.Color == currentColor
	}

	if card.IsWild() {
		return true
	}
	if card.Color == currentColor {
		return true
	}
	// Same rank or same named action.
	return card.Value == top.Value
}
