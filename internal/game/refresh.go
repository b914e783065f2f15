package game

import "fmt"

// RefreshResult describes a completed deck refresh
type RefreshResult struct {
	Cost          int
	Score         int
	DeckRemaining int
	Display       DeckDisplay
}

// RequestRefresh refills the deck from the discard pile, draining it in
// bottom-to-top order so the oldest discard is drawn first. Only legal once
// the deck is depleted; the refill replaces the deck's contents. The fee is the
// refresh count times the base cost, with the count advanced before the
// afford-check; a refused attempt leaves the count advanced, so the next
// attempt prices one multiple higher. The error message is surfaced only on
// the first consecutive refused attempt.
func (s *Session) RequestRefresh() (*RefreshResult, error) {
	if s.state != StatePlaying {
		return nil, ErrNotPlaying
	}
	if !s.deckDepleted {
		// Refusal happens before the fee gate; no counter advances.
		return nil, ErrDeckNotDepleted
	}
	cost, firstFailure, err := s.costs.payRefresh(&s.score)
	if err != nil {
		if firstFailure {
			s.notifier.ShowError(fmt.Sprintf("You need at least %d points to refresh the deck.", cost))
		}
		return nil, err
	}

	s.deck.Refill(s.board.Discard.Drain())
	s.deckDepleted = s.deck.IsEmpty()
	s.logger.Debug("deck refreshed", "cost", cost, "cards", s.deck.CardsRemaining())
	return &RefreshResult{
		Cost:          cost,
		Score:         s.score.Points(),
		DeckRemaining: s.deck.CardsRemaining(),
		Display:       s.DeckDisplay(),
	}, nil
}
