package tui

import (
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	rand "math/rand/v2"

	"github.com/wmmead/fortythieves/internal/game"
	"github.com/wmmead/fortythieves/internal/stats"
)

// toastDuration is how long an error notification stays on screen
const toastDuration = 3 * time.Second

// Model is the Bubble Tea model for interactive play. It is a pure consumer
// of the engine's decision surface: candidate highlighting comes from the
// session's validator, and every state change goes through a session
// operation.
type Model struct {
	session *game.Session
	ledger  *stats.Ledger
	logger  *log.Logger

	notifier *captureNotifier
	keys     keyMap
	help     help.Model

	// Selection state. Cursor walks the selectable containers; selecting a
	// source computes its legal targets.
	cursor     int
	selected   string // source container id, "" when nothing selected
	candidates map[string]bool

	toast      string
	toastSeq   int // invalidates stale expiry ticks
	width      int
	height     int
	quitting   bool
	statusLine string
}

// toastExpiredMsg clears the error toast
type toastExpiredMsg struct{ seq int }

// New creates the model, its session, and the notifier wiring between them
func New(logger *log.Logger, ledger *stats.Ledger, rng *rand.Rand, opts game.Options) *Model {
	notifier := &captureNotifier{}
	opts.Logger = logger
	opts.Notifier = notifier
	opts.RNG = rng
	if ledger != nil {
		opts.Stats = ledger
	}
	m := &Model{
		session:    game.NewSession(opts),
		ledger:     ledger,
		logger:     logger,
		notifier:   notifier,
		keys:       defaultKeyMap(),
		help:       help.New(),
		candidates: map[string]bool{},
	}
	m.session.StartNewGame()
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case toastExpiredMsg:
		if msg.seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.NewGame):
		m.session.StartNewGame()
		m.clearSelection()
		m.statusLine = "New game dealt."
		return m, nil
	}

	if m.session.State().Terminal() {
		// Only new-game, help and quit once the game has ended.
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Left):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Right):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.Cancel):
		m.clearSelection()
	case key.Matches(msg, m.keys.Select):
		return m, m.handleSelect()
	case key.Matches(msg, m.keys.Draw):
		return m, m.handleDraw()
	case key.Matches(msg, m.keys.Refresh):
		_, err := m.session.RequestRefresh()
		switch {
		case err == nil:
			m.statusLine = "Deck refreshed."
		case errors.Is(err, game.ErrDeckNotDepleted):
			m.statusLine = "Draw the deck down first."
		}
		return m, m.flushToast()
	case key.Matches(msg, m.keys.Undo):
		res, err := m.session.RequestUndo()
		if err == nil && res != nil {
			m.statusLine = "Move undone."
			m.clearSelection()
		}
		return m, m.flushToast()
	case key.Matches(msg, m.keys.Auto):
		return m, m.handleAuto()
	}
	return m, nil
}

// slots lists the selectable container ids in cursor order: discard first,
// then the tableau sections, then the foundations.
func (m *Model) slots() []string {
	board := m.session.Board()
	ids := []string{game.DiscardID}
	for _, t := range board.Tableaus {
		ids = append(ids, t.ID)
	}
	for _, f := range board.Foundations {
		ids = append(ids, f.ID)
	}
	return ids
}

func (m *Model) moveCursor(delta int) {
	n := len(m.slots())
	m.cursor = (m.cursor + delta + n) % n
}

func (m *Model) cursorID() string {
	return m.slots()[m.cursor]
}

func (m *Model) handleSelect() tea.Cmd {
	id := m.cursorID()
	if m.selected == "" {
		candidates := m.session.Candidates(id)
		if len(candidates) == 0 {
			m.statusLine = "No legal moves from there."
			return nil
		}
		m.selected = id
		m.candidates = map[string]bool{}
		for _, c := range candidates {
			m.candidates[c] = true
		}
		m.statusLine = "Pick a highlighted destination."
		return nil
	}
	if id == m.selected {
		m.clearSelection()
		return nil
	}
	if !m.candidates[id] {
		m.statusLine = "Not a legal destination."
		return nil
	}
	return m.executeMove(m.selected, id)
}

// executeMove runs the two-phase move protocol. The TUI has no transition
// animation, so it commits immediately after beginning.
func (m *Model) executeMove(fromID, toID string) tea.Cmd {
	from, ok := m.session.Board().Container(fromID)
	if !ok {
		m.clearSelection()
		return nil
	}
	card, ok := from.Top()
	if !ok {
		m.clearSelection()
		return nil
	}
	pending, err := m.session.BeginMove(card.ID(), fromID, toID)
	if err != nil {
		m.statusLine = "Move refused."
		m.clearSelection()
		return m.flushToast()
	}
	result, err := pending.Commit()
	m.clearSelection()
	if err != nil {
		return m.flushToast()
	}
	if result.ScoreDelta != 0 {
		m.statusLine = scoreDeltaStatus(result.ScoreDelta)
	} else {
		m.statusLine = ""
	}
	return m.flushToast()
}

func (m *Model) handleDraw() tea.Cmd {
	if m.session.DeckDisplay() == game.DeckRefresh {
		// The deck slot is showing the refresh affordance.
		_, err := m.session.RequestRefresh()
		if err == nil {
			m.statusLine = "Deck refreshed."
		}
		return m.flushToast()
	}
	res, err := m.session.Draw()
	if err != nil {
		return m.flushToast()
	}
	if res == nil {
		m.statusLine = "Deck is empty."
		return nil
	}
	m.statusLine = "Drew " + res.Card.String() + "."
	m.clearSelection()
	return m.flushToast()
}

func (m *Model) handleAuto() tea.Cmd {
	pending, err := m.session.AutoMove(m.cursorID())
	if err != nil || pending == nil {
		m.statusLine = "No destination for that card."
		return m.flushToast()
	}
	result, err := pending.Commit()
	m.clearSelection()
	if err != nil {
		return m.flushToast()
	}
	m.statusLine = "Moved " + pending.Card().String() + " to " + result.Move.To + "."
	return m.flushToast()
}

func (m *Model) clearSelection() {
	m.selected = ""
	m.candidates = map[string]bool{}
}

// flushToast surfaces any pending engine error message as a toast that
// auto-dismisses.
func (m *Model) flushToast() tea.Cmd {
	msg, ok := m.notifier.take()
	if !ok {
		return nil
	}
	m.toast = msg
	m.toastSeq++
	seq := m.toastSeq
	return tea.Tick(toastDuration, func(time.Time) tea.Msg {
		return toastExpiredMsg{seq: seq}
	})
}

func scoreDeltaStatus(delta int) string {
	if delta > 0 {
		return "Scored."
	}
	return "Score reduced."
}
