package game

import (
	"fmt"

	"github.com/wmmead/fortythieves/internal/deck"
)

// ContainerKind tags a container with the operations it supports
type ContainerKind int

const (
	KindDeck ContainerKind = iota
	KindDiscard
	KindTableau
	KindFoundation
)

// String returns the kind name
func (k ContainerKind) String() string {
	switch k {
	case KindDeck:
		return "deck"
	case KindDiscard:
		return "discard"
	case KindTableau:
		return "tableau"
	case KindFoundation:
		return "foundation"
	default:
		return "unknown"
	}
}

// Container ids are stable logical names used in move records
const (
	DeckID    = "deck"
	DiscardID = "discard"
)

// TableauID returns the id of the nth tableau section (1-based)
func TableauID(n int) string {
	return fmt.Sprintf("tableau-%d", n)
}

// FoundationID returns the id of the nth foundation pile (1-based)
func FoundationID(n int) string {
	return fmt.Sprintf("foundation-%d", n)
}

// Container is an ordered pile of cards with a tagged kind. Index 0 is the
// bottom; the last element is the top (most recently placed or discarded).
type Container struct {
	ID    string
	Kind  ContainerKind
	cards []deck.Card
}

// NewContainer creates an empty container
func NewContainer(id string, kind ContainerKind) *Container {
	return &Container{ID: id, Kind: kind}
}

// Push places a card on top
func (c *Container) Push(card deck.Card) {
	c.cards = append(c.cards, card)
}

// Pop removes and returns the top card
func (c *Container) Pop() (deck.Card, bool) {
	if len(c.cards) == 0 {
		return deck.Card{}, false
	}
	card := c.cards[len(c.cards)-1]
	c.cards = c.cards[:len(c.cards)-1]
	return card, true
}

// Top returns the top card without removing it
func (c *Container) Top() (deck.Card, bool) {
	if len(c.cards) == 0 {
		return deck.Card{}, false
	}
	return c.cards[len(c.cards)-1], true
}

// Len returns the number of cards in the container
func (c *Container) Len() int {
	return len(c.cards)
}

// IsEmpty returns true when the container holds no cards
func (c *Container) IsEmpty() bool {
	return len(c.cards) == 0
}

// Cards returns a copy of the pile bottom-to-top
func (c *Container) Cards() []deck.Card {
	out := make([]deck.Card, len(c.cards))
	copy(out, c.cards)
	return out
}

// Drain removes and returns all cards bottom-to-top, leaving the container
// empty. Refill draws the deck in this order, so the oldest discard is the
// first card drawn after a refresh.
func (c *Container) Drain() []deck.Card {
	out := c.cards
	c.cards = nil
	return out
}

// Clear empties the container
func (c *Container) Clear() {
	c.cards = nil
}

// Board holds the tableau sections, foundations and the discard pile. The
// draw pile itself lives on the Session as a deck.Deck.
type Board struct {
	Tableaus    []*Container
	Foundations []*Container
	Discard     *Container

	byID map[string]*Container
}

// NewBoard creates a board with the given number of tableau sections and
// four foundations.
func NewBoard(tableauSections int) *Board {
	b := &Board{
		Discard: NewContainer(DiscardID, KindDiscard),
		byID:    make(map[string]*Container),
	}
	for i := 1; i <= tableauSections; i++ {
		t := NewContainer(TableauID(i), KindTableau)
		b.Tableaus = append(b.Tableaus, t)
		b.byID[t.ID] = t
	}
	for i := 1; i <= 4; i++ {
		f := NewContainer(FoundationID(i), KindFoundation)
		b.Foundations = append(b.Foundations, f)
		b.byID[f.ID] = f
	}
	b.byID[DiscardID] = b.Discard
	return b
}

// Container looks up a container by id. The deck is not a board container.
func (b *Board) Container(id string) (*Container, bool) {
	c, ok := b.byID[id]
	return c, ok
}

// Clear empties every container on the board
func (b *Board) Clear() {
	for _, t := range b.Tableaus {
		t.Clear()
	}
	for _, f := range b.Foundations {
		f.Clear()
	}
	b.Discard.Clear()
}

// CardCount returns the total number of cards on the board (excluding the
// draw pile).
func (b *Board) CardCount() int {
	n := b.Discard.Len()
	for _, t := range b.Tableaus {
		n += t.Len()
	}
	for _, f := range b.Foundations {
		n += f.Len()
	}
	return n
}
