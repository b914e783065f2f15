package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wmmead/fortythieves/internal/deck"
	"github.com/wmmead/fortythieves/internal/game"
)

func testModel(t *testing.T) *Model {
	t.Helper()
	return New(log.New(io.Discard), nil, deck.NewRNG(1), game.Options{})
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestNewDealsGame(t *testing.T) {
	m := testModel(t)
	assert.Equal(t, game.StatePlaying, m.session.State())
	assert.Equal(t, 104, m.session.CardCount())
}

func TestSlotsOrder(t *testing.T) {
	m := testModel(t)
	slots := m.slots()

	require.Len(t, slots, 15, "discard, ten tableaus, four foundations")
	assert.Equal(t, game.DiscardID, slots[0])
	assert.Equal(t, game.TableauID(1), slots[1])
	assert.Equal(t, game.FoundationID(4), slots[14])
}

func TestCursorWraps(t *testing.T) {
	m := testModel(t)

	m.moveCursor(-1)
	assert.Equal(t, len(m.slots())-1, m.cursor)
	m.moveCursor(1)
	assert.Equal(t, 0, m.cursor)
}

func TestDrawKey(t *testing.T) {
	m := testModel(t)
	before := m.session.DeckRemaining()

	updated, _ := m.Update(keyPress('d'))
	m = updated.(*Model)

	assert.Equal(t, before-1, m.session.DeckRemaining())
	assert.Contains(t, m.statusLine, "Drew ")
}

func TestNewGameKey(t *testing.T) {
	m := testModel(t)
	m.Update(keyPress('d'))
	require.Equal(t, 1, m.session.MoveCount())

	updated, _ := m.Update(keyPress('n'))
	m = updated.(*Model)

	assert.Equal(t, 0, m.session.MoveCount())
	assert.Equal(t, "New game dealt.", m.statusLine)
}

func TestQuitKey(t *testing.T) {
	m := testModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestSelectWithoutMoves(t *testing.T) {
	m := testModel(t)
	m.cursor = 0 // discard pile, empty at the start

	m.Update(keyPress(' '))
	assert.Empty(t, m.selected)
	assert.Equal(t, "No legal moves from there.", m.statusLine)
}

func TestSelectThenCancel(t *testing.T) {
	m := testModel(t)

	// Force a known legal move onto the dealt position.
	m.session.Board().Tableaus[0].Push(deck.NewCard(deck.Hearts, 6))
	m.session.Board().Tableaus[1].Push(deck.NewCard(deck.Hearts, 5))
	m.cursor = 2 // tableau-2

	m.Update(keyPress(' '))
	require.NotEmpty(t, m.selected)
	require.NotEmpty(t, m.candidates)

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, m.selected)
	assert.Empty(t, m.candidates)
}

func TestRefreshKeyMidDeck(t *testing.T) {
	m := testModel(t)
	m.Update(keyPress('d'))
	before := m.session.DeckRemaining()

	updated, _ := m.Update(keyPress('r'))
	m = updated.(*Model)

	assert.Equal(t, "Draw the deck down first.", m.statusLine)
	assert.Equal(t, before, m.session.DeckRemaining(), "draw pile untouched")
	assert.Equal(t, 104, m.session.CardCount())
}

func TestUndoWithoutFundsShowsToast(t *testing.T) {
	m := testModel(t)
	m.Update(keyPress('d'))

	updated, cmd := m.Update(keyPress('u'))
	m = updated.(*Model)

	assert.Equal(t, "You need more points to undo this move.", m.toast)
	require.NotNil(t, cmd, "toast expiry tick scheduled")
	assert.Equal(t, 1, m.session.MoveCount(), "refused undo leaves the move")
}

func TestToastExpiry(t *testing.T) {
	m := testModel(t)
	m.toast = "stale"
	m.toastSeq = 2

	m.Update(toastExpiredMsg{seq: 1})
	assert.Equal(t, "stale", m.toast, "old tick must not clear a newer toast")

	m.Update(toastExpiredMsg{seq: 2})
	assert.Empty(t, m.toast)
}

func TestViewRenders(t *testing.T) {
	m := testModel(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	out := m.View()
	assert.Contains(t, out, "Score")
	assert.Contains(t, out, "728")
	assert.True(t, strings.Contains(out, "Deck"), "deck slot rendered")
}

func TestCaptureNotifier(t *testing.T) {
	n := &captureNotifier{}

	_, ok := n.take()
	assert.False(t, ok)

	n.ShowError("first")
	n.ShowError("second")
	msg, ok := n.take()
	require.True(t, ok)
	assert.Equal(t, "second", msg, "latest message wins")

	_, ok = n.take()
	assert.False(t, ok, "take drains the notifier")
}
