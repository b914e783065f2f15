package deck

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the symbol for a suit
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// Letter returns the single-letter code used in card ids (e.g. "h" for hearts)
func (s Suit) Letter() string {
	switch s {
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	case Hearts:
		return "h"
	case Spades:
		return "s"
	default:
		return "?"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Suits lists all four suits in id order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

// Rank represents a card rank. Aces are low: 1..13 maps Ace..King.
type Rank int

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// String returns the display form of a rank ("A", "2"... "10", "J", "Q", "K")
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// Card is an immutable suit/rank pair. Two copies of every card exist in a
// double-deck game; identity for move records is the ID string, which does
// not distinguish the copies.
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// ID returns the stable card identifier, suit letter plus numeric rank
// (e.g. "h13" for the king of hearts).
func (c Card) ID() string {
	return fmt.Sprintf("%s%d", c.Suit.Letter(), int(c.Rank))
}

// String returns the display representation (e.g. "K♥")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// IsKing returns true if the card is a King
func (c Card) IsKing() bool {
	return c.Rank == King
}

// ParseCard parses a card id like "h13" back into a Card
func ParseCard(id string) (Card, error) {
	if len(id) < 2 {
		return Card{}, fmt.Errorf("invalid card id %q", id)
	}
	var suit Suit
	switch id[0] {
	case 'c':
		suit = Clubs
	case 'd':
		suit = Diamonds
	case 'h':
		suit = Hearts
	case 's':
		suit = Spades
	default:
		return Card{}, fmt.Errorf("invalid suit in card id %q", id)
	}
	rank := 0
	for _, ch := range id[1:] {
		if ch < '0' || ch > '9' {
			return Card{}, fmt.Errorf("invalid rank in card id %q", id)
		}
		rank = rank*10 + int(ch-'0')
	}
	if rank < 1 || rank > 13 {
		return Card{}, fmt.Errorf("rank %d out of range in card id %q", rank, id)
	}
	return Card{Suit: suit, Rank: Rank(rank)}, nil
}

// DoubleDeck returns the full 104-card set for a two-deck game, ordered
// suit-within-rank twice over: c1, d1, h1, s1, c2, ... repeated for the
// second deck copy.
func DoubleDeck() []Card {
	cards := make([]Card, 0, 104)
	for copies := 0; copies < 2; copies++ {
		for rank := Ace; rank <= King; rank++ {
			for _, suit := range Suits {
				cards = append(cards, NewCard(suit, rank))
			}
		}
	}
	return cards
}
