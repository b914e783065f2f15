package tui

// captureNotifier receives the engine's fire-and-forget error messages so
// the model can render them as a transient toast. Session calls happen
// synchronously inside Update, so no locking is needed.
type captureNotifier struct {
	message string
}

func (n *captureNotifier) ShowError(message string) {
	n.message = message
}

// take returns and clears the pending message
func (n *captureNotifier) take() (string, bool) {
	if n.message == "" {
		return "", false
	}
	msg := n.message
	n.message = ""
	return msg, true
}
