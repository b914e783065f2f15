package game

// UndoKind distinguishes the two undo handlers
type UndoKind int

const (
	UndoDraw  UndoKind = iota // deck draw reversed, card back on deck front
	UndoBoard                 // board move reversed, card back to origin
)

// UndoResult describes a completed undo
type UndoResult struct {
	Move  Move
	Kind  UndoKind
	Cost  int
	Score int
}

// The undo error message shown through the notifier
const undoErrorMessage = "You need more points to undo this move."

// RequestUndo reverses the most recent move. The ledger is peeked first to
// decide which handler applies; an empty ledger is silently a no-op
// (nil, nil). The escalating undo cost is paid before the reversal; if the
// score cannot afford it the action is refused, an error message is
// surfaced, and counters are unchanged.
//
// If the board has desynced from the ledger (container or card missing) the
// undo is logged and aborted without board mutation. The cost has already
// been paid and the move popped at that point; the reversal itself is what
// gets skipped.
func (s *Session) RequestUndo() (*UndoResult, error) {
	if s.state != StatePlaying {
		return nil, ErrNotPlaying
	}
	// Both undo kinds pay the same gate, so the peek only has to answer
	// whether there is anything to undo.
	if _, ok := s.ledger.Peek(); !ok {
		return nil, nil
	}

	if err := s.costs.payUndo(&s.score); err != nil {
		s.notifier.ShowError(undoErrorMessage)
		return nil, err
	}
	cost := s.costs.undoCount // payUndo advanced the counter to the paid cost
	move, _ := s.ledger.Undo()

	if move.IsDraw() {
		return s.undoDraw(move, cost)
	}
	return s.undoBoard(move, cost)
}

// undoDraw puts the drawn card back on the front of the deck
func (s *Session) undoDraw(move Move, cost int) (*UndoResult, error) {
	top, ok := s.board.Discard.Top()
	if !ok || top.ID() != move.CardID {
		s.logger.Warn("undo skipped: card not on top of discard pile",
			"card", move.CardID)
		return nil, nil
	}
	card, _ := s.board.Discard.Pop()
	s.deck.PutFront(card)
	s.deckDepleted = false
	return &UndoResult{Move: move, Kind: UndoDraw, Cost: cost, Score: s.score.Points()}, nil
}

// undoBoard relocates the card back to its origin container and reverses
// any foundation scoring.
func (s *Session) undoBoard(move Move, cost int) (*UndoResult, error) {
	from, okFrom := s.board.Container(move.From)
	to, okTo := s.board.Container(move.To)
	if !okFrom || !okTo {
		s.logger.Warn("undo skipped: container not found",
			"from", move.From, "to", move.To)
		return nil, nil
	}
	top, ok := to.Top()
	if !ok || top.ID() != move.CardID {
		s.logger.Warn("undo skipped: card not found in expected container",
			"card", move.CardID, "container", move.To)
		return nil, nil
	}
	if to.Kind == KindFoundation {
		s.score.Subtract(int(top.Rank))
	}
	card, _ := to.Pop()
	from.Push(card)
	return &UndoResult{Move: move, Kind: UndoBoard, Cost: cost, Score: s.score.Points()}, nil
}
