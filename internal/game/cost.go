package game

import "fmt"

// BaseRefreshCost is the default price of the first deck refresh; each
// subsequent refresh costs one more multiple.
const BaseRefreshCost = 100

// InsufficientFundsError is returned when the score cannot afford an undo or
// deck refresh. The action is refused and no state is corrupted.
type InsufficientFundsError struct {
	Action string // "undo" or "refresh"
	Cost   int
	Score  int
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s refused: costs %d points, have %d", e.Action, e.Cost, e.Score)
}

// costState tracks the escalating fee schedules for one session. Undo and
// refresh escalate independently.
type costState struct {
	undoCount     int
	refreshCount  int
	refreshClicks int // consecutive refresh attempts without funds
	baseRefresh   int
}

func newCostState(baseRefresh int) *costState {
	if baseRefresh <= 0 {
		baseRefresh = BaseRefreshCost
	}
	return &costState{baseRefresh: baseRefresh}
}

func (c *costState) reset() {
	c.undoCount = 0
	c.refreshCount = 0
	c.refreshClicks = 0
}

// nextUndoCost is the price of the next undo: the first costs 1, the second
// 2, and so on.
func (c *costState) nextUndoCost() int {
	return c.undoCount + 1
}

// payUndo deducts the undo fee from score, gated on affordability. On
// success the undo counter advances; on refusal nothing changes.
func (c *costState) payUndo(score *Score) error {
	cost := c.nextUndoCost()
	if score.Points() < cost {
		return &InsufficientFundsError{Action: "undo", Cost: cost, Score: score.Points()}
	}
	score.Subtract(cost)
	c.undoCount++
	return nil
}

// payRefresh deducts the refresh fee from score. The refresh counter is
// incremented before the afford-check and is not rolled back on refusal, so
// a failed attempt still raises the price of the next one. FirstFailure is
// true only for the first consecutive refused attempt; only that attempt
// surfaces an error message to the player.
func (c *costState) payRefresh(score *Score) (cost int, firstFailure bool, err error) {
	c.refreshClicks++
	c.refreshCount++
	cost = c.refreshCount * c.baseRefresh
	if score.Points() < cost {
		firstFailure = c.refreshClicks == 1
		return cost, firstFailure, &InsufficientFundsError{Action: "refresh", Cost: cost, Score: score.Points()}
	}
	score.Subtract(cost)
	c.refreshClicks = 0
	return cost, false, nil
}
