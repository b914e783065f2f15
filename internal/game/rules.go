package game

import "github.com/wmmead/fortythieves/internal/deck"

// Move validation predicates. These are pure functions and the single source
// of truth for legality; the highlight layer derives its candidate set from
// them rather than keeping rules of its own.

// CanPlaceOnTableau reports whether card may land on a tableau whose top is
// targetTop: same suit, descending by exactly one.
func CanPlaceOnTableau(card, targetTop deck.Card) bool {
	return card.Suit == targetTop.Suit && card.Rank == targetTop.Rank-1
}

// CanPlaceOnFoundation reports whether card may land on a foundation whose
// top is targetTop: same suit, ascending by exactly one.
func CanPlaceOnFoundation(card, targetTop deck.Card) bool {
	return card.Suit == targetTop.Suit && card.Rank == targetTop.Rank+1
}

// TableauAccepts reports whether the tableau container accepts card. An
// empty section accepts any card.
func TableauAccepts(tableau *Container, card deck.Card) bool {
	top, ok := tableau.Top()
	if !ok {
		return true
	}
	return CanPlaceOnTableau(card, top)
}

// FoundationAccepts reports whether the foundation container accepts card.
// Only an ace may start an empty foundation.
func FoundationAccepts(foundation *Container, card deck.Card) bool {
	top, ok := foundation.Top()
	if !ok {
		return card.IsAce()
	}
	return CanPlaceOnFoundation(card, top)
}

// Accepts reports whether the container accepts card under its kind's rules.
// Deck and discard containers never accept direct placements.
func Accepts(c *Container, card deck.Card) bool {
	switch c.Kind {
	case KindTableau:
		return TableauAccepts(c, card)
	case KindFoundation:
		return FoundationAccepts(c, card)
	default:
		return false
	}
}
