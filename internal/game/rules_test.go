package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wmmead/fortythieves/internal/deck"
)

func TestCanPlaceOnTableau(t *testing.T) {
	tests := []struct {
		name   string
		card   deck.Card
		target deck.Card
		want   bool
	}{
		{"same suit descending", deck.NewCard(deck.Hearts, 5), deck.NewCard(deck.Hearts, 6), true},
		{"same suit ascending", deck.NewCard(deck.Hearts, 7), deck.NewCard(deck.Hearts, 6), false},
		{"same suit gap", deck.NewCard(deck.Hearts, 4), deck.NewCard(deck.Hearts, 6), false},
		{"different suit descending", deck.NewCard(deck.Spades, 5), deck.NewCard(deck.Hearts, 6), false},
		{"same rank", deck.NewCard(deck.Hearts, 6), deck.NewCard(deck.Hearts, 6), false},
		{"queen on king", deck.NewCard(deck.Clubs, deck.Queen), deck.NewCard(deck.Clubs, deck.King), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanPlaceOnTableau(tt.card, tt.target))
		})
	}
}

func TestCanPlaceOnFoundation(t *testing.T) {
	tests := []struct {
		name   string
		card   deck.Card
		target deck.Card
		want   bool
	}{
		{"same suit ascending", deck.NewCard(deck.Hearts, 6), deck.NewCard(deck.Hearts, 5), true},
		{"same suit descending", deck.NewCard(deck.Hearts, 4), deck.NewCard(deck.Hearts, 5), false},
		{"different suit ascending", deck.NewCard(deck.Spades, 6), deck.NewCard(deck.Hearts, 5), false},
		{"two on ace", deck.NewCard(deck.Diamonds, 2), deck.NewCard(deck.Diamonds, deck.Ace), true},
		{"king on queen", deck.NewCard(deck.Spades, deck.King), deck.NewCard(deck.Spades, deck.Queen), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanPlaceOnFoundation(tt.card, tt.target))
		})
	}
}

func TestTableauAcceptsEmpty(t *testing.T) {
	tableau := NewContainer(TableauID(1), KindTableau)

	// Any card may land on an empty section.
	assert.True(t, TableauAccepts(tableau, deck.NewCard(deck.Hearts, deck.King)))
	assert.True(t, TableauAccepts(tableau, deck.NewCard(deck.Clubs, 7)))

	tableau.Push(deck.NewCard(deck.Hearts, 6))
	assert.True(t, TableauAccepts(tableau, deck.NewCard(deck.Hearts, 5)))
	assert.False(t, TableauAccepts(tableau, deck.NewCard(deck.Hearts, 7)))
}

func TestFoundationAcceptsEmpty(t *testing.T) {
	foundation := NewContainer(FoundationID(1), KindFoundation)

	// Only an ace starts an empty foundation.
	assert.True(t, FoundationAccepts(foundation, deck.NewCard(deck.Hearts, deck.Ace)))
	assert.False(t, FoundationAccepts(foundation, deck.NewCard(deck.Hearts, 2)))
	assert.False(t, FoundationAccepts(foundation, deck.NewCard(deck.Hearts, deck.King)))
}

func TestAcceptsByKind(t *testing.T) {
	discard := NewContainer(DiscardID, KindDiscard)
	assert.False(t, Accepts(discard, deck.NewCard(deck.Hearts, deck.Ace)),
		"discard pile never accepts direct placements")

	tableau := NewContainer(TableauID(1), KindTableau)
	assert.True(t, Accepts(tableau, deck.NewCard(deck.Hearts, deck.Ace)))
}
