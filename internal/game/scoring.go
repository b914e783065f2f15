package game

// MaxScore is the highest attainable score: 4 suits x 2 decks x sum(1..13).
const MaxScore = 728

// Score is the session score. It is credited with a card's rank when the
// card lands on a foundation, debited symmetrically when the card is
// withdrawn, and debited by undo/refresh costs. It never goes below zero.
type Score struct {
	points int
}

// Points returns the current score
func (s *Score) Points() int {
	return s.points
}

// Add credits points
func (s *Score) Add(points int) {
	s.points += points
}

// Subtract debits points, clamping at a floor of zero
func (s *Score) Subtract(points int) {
	s.points -= points
	if s.points < 0 {
		s.points = 0
	}
}

// Reset zeroes the score
func (s *Score) Reset() {
	s.points = 0
}

// foundationsComplete reports whether every foundation's top card is a king
func foundationsComplete(foundations []*Container) bool {
	for _, f := range foundations {
		top, ok := f.Top()
		if !ok || !top.IsKing() {
			return false
		}
	}
	return true
}

// terminalState distinguishes the two terminal outcomes: Won when the score
// is exactly MaxScore, Cleared when all foundations are complete but
// undo/refresh costs left the score short.
func terminalState(score int) State {
	if score == MaxScore {
		return StateWon
	}
	return StateCleared
}
