package game

// Notifier is the user-facing error channel: a fire-and-forget notification
// the presentation layer renders transiently. The engine calls it when an
// affordability check refuses an action.
type Notifier interface {
	ShowError(message string)
}

// NopNotifier discards notifications
type NopNotifier struct{}

func (NopNotifier) ShowError(string) {}

// StatsRecorder receives game lifecycle updates for the durable statistics
// ledger. The session drives it; implementations decide how to persist.
type StatsRecorder interface {
	// GameStarted is called after a new deal: prior session archived, a
	// fresh record opened.
	GameStarted()

	// MoveCompleted is called after every committed move with the current
	// score.
	MoveCompleted(score int)

	// GameFinished is called when a terminal state is reached.
	GameFinished()
}

// NopStats discards statistics updates
type NopStats struct{}

func (NopStats) GameStarted()      {}
func (NopStats) MoveCompleted(int) {}
func (NopStats) GameFinished()     {}
