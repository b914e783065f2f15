package game

// Move is an immutable record of one card transition between containers.
// CardID is the stable card identifier ("h13"); From and To are container
// ids, with "deck"/"discard" used for draws.
type Move struct {
	CardID string
	From   string
	To     string
}

// IsDraw reports whether the move was a deck-to-discard draw
func (m Move) IsDraw() bool {
	return m.From == DeckID && m.To == DiscardID
}

// Ledger is the append-only move history driving undo. Strictly LIFO and
// single-branch: an undone move is gone unless re-derived by re-execution;
// there is no redo structure.
type Ledger struct {
	moves []Move
}

// NewLedger creates an empty move ledger
func NewLedger() *Ledger {
	return &Ledger{}
}

// Record appends a move to the history
func (l *Ledger) Record(move Move) {
	l.moves = append(l.moves, move)
}

// Undo pops and returns the most recent move. The false return means the
// history is empty.
func (l *Ledger) Undo() (Move, bool) {
	if len(l.moves) == 0 {
		return Move{}, false
	}
	move := l.moves[len(l.moves)-1]
	l.moves = l.moves[:len(l.moves)-1]
	return move, true
}

// Peek returns the most recent move without removing it. Used to decide
// which undo handler applies before committing to pay the cost.
func (l *Ledger) Peek() (Move, bool) {
	if len(l.moves) == 0 {
		return Move{}, false
	}
	return l.moves[len(l.moves)-1], true
}

// Len returns the number of recorded moves
func (l *Ledger) Len() int {
	return len(l.moves)
}

// Reset clears the history
func (l *Ledger) Reset() {
	l.moves = nil
}
