package game

// State returns the current lifecycle state
func (s *Session) State() State {
	return s.state
}

// Score returns the current score
func (s *Session) Score() int {
	return s.score.Points()
}

// MoveCount returns the number of moves currently in the ledger
func (s *Session) MoveCount() int {
	return s.ledger.Len()
}

// UndoCount returns how many undos have been paid for this game
func (s *Session) UndoCount() int {
	return s.costs.undoCount
}

// NextUndoCost returns the price of the next undo
func (s *Session) NextUndoCost() int {
	return s.costs.nextUndoCost()
}

// RefreshCount returns how many refreshes have been attempted or paid;
// failed attempts count too, since the fee schedule never rolls back.
func (s *Session) RefreshCount() int {
	return s.costs.refreshCount
}

// DeckRemaining returns the number of cards left to draw
func (s *Session) DeckRemaining() int {
	return s.deck.CardsRemaining()
}

// DeckDisplay reports what the deck slot should show: normal, the refresh
// affordance when depleted, or empty when the discard pile cannot refill it.
func (s *Session) DeckDisplay() DeckDisplay {
	if !s.deckDepleted {
		return DeckNormal
	}
	if s.board.Discard.IsEmpty() {
		return DeckEmpty
	}
	return DeckRefresh
}

// Board exposes the board containers for rendering. Callers must not mutate
// them directly.
func (s *Session) Board() *Board {
	return s.board
}

// PeekLastMove returns the most recent move without removing it
func (s *Session) PeekLastMove() (Move, bool) {
	return s.ledger.Peek()
}

// CardCount returns the total cards across deck, discard, tableaus and
// foundations. Always 104 during a game.
func (s *Session) CardCount() int {
	return s.deck.CardsRemaining() + s.board.CardCount()
}
