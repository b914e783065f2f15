package deck

import rand "math/rand/v2"

// Deck is the draw pile: an ordered sequence of cards whose front is the
// next draw. The zero value is an empty deck.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

// New creates a deck holding the given cards in order. The RNG is used for
// reshuffles; a nil rng falls back to the global source.
func New(cards []Card, rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, len(cards)),
		rng:   rng,
	}
	copy(d.cards, cards)
	return d
}

// NewShuffled creates a deck from a fresh Fisher-Yates permutation of the
// given cards.
func NewShuffled(cards []Card, rng *rand.Rand) *Deck {
	return New(Shuffled(cards, rng), rng)
}

// Shuffled returns a uniformly random permutation of the input without
// mutating it. Fisher-Yates, scanning from the last index down.
func Shuffled(cards []Card, rng *rand.Rand) []Card {
	shuffled := make([]Card, len(cards))
	copy(shuffled, cards)
	for i := len(shuffled) - 1; i > 0; i-- {
		var j int
		if rng != nil {
			j = rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// Draw removes and returns the front card. The false return signals
// exhaustion, not an error; callers treat it as "deck depleted".
func (d *Deck) Draw() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	card := d.cards[0]
	d.cards = d.cards[1:]
	return card, true
}

// PutFront reinserts a card at the front of the deck, making it the next
// draw. Used by draw-undo.
func (d *Deck) PutFront(card Card) {
	d.cards = append([]Card{card}, d.cards...)
}

// Refill replaces the deck contents with the given cards in order. The
// caller is responsible for draining the source pile.
func (d *Deck) Refill(cards []Card) {
	d.cards = d.cards[:0]
	d.cards = append(d.cards, cards...)
}

// CardsRemaining returns the number of cards left to draw
func (d *Deck) CardsRemaining() int {
	return len(d.cards)
}

// IsEmpty returns true if the deck has no cards left
func (d *Deck) IsEmpty() bool {
	return len(d.cards) == 0
}

// Peek returns the front card without removing it
func (d *Deck) Peek() (Card, bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	return d.cards[0], true
}

// Cards returns a copy of the remaining cards in draw order
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
