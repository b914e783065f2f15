package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wmmead/fortythieves/internal/deck"
)

func TestRefresh(t *testing.T) {
	s := testSession(t, Options{})
	clearTable(s)
	s.deckDepleted = true
	oldest := deck.NewCard(deck.Hearts, 3)
	s.board.Discard.Push(oldest)
	s.board.Discard.Push(deck.NewCard(deck.Spades, 9))
	s.score.Add(150)

	res, err := s.RequestRefresh()
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, 100, res.Cost)
	assert.Equal(t, 50, res.Score)
	assert.Equal(t, 2, res.DeckRemaining)
	assert.Equal(t, DeckNormal, res.Display)
	assert.True(t, s.Board().Discard.IsEmpty())
	assert.Equal(t, 1, s.RefreshCount())

	// The oldest discard is the first card drawn after a refresh.
	drawn, err := s.Draw()
	require.NoError(t, err)
	assert.Equal(t, oldest, drawn.Card)
}

func TestRefreshRefusedMidDeck(t *testing.T) {
	s := testSession(t, Options{})
	for i := 0; i < 5; i++ {
		_, err := s.Draw()
		require.NoError(t, err)
	}
	s.score.Add(150)
	require.Equal(t, 59, s.DeckRemaining())

	_, err := s.RequestRefresh()
	assert.ErrorIs(t, err, ErrDeckNotDepleted)

	// The remaining draw pile must survive the refused refresh intact.
	assert.Equal(t, 104, s.CardCount())
	assert.Equal(t, 59, s.DeckRemaining())
	assert.Equal(t, 5, s.Board().Discard.Len())
	assert.Equal(t, 150, s.Score(), "no fee charged")
	assert.Equal(t, 0, s.RefreshCount(), "no counter advanced")
}

func TestRefreshRefusedWithoutFunds(t *testing.T) {
	notifier := &recordingNotifier{}
	s := testSession(t, Options{Notifier: notifier})
	clearTable(s)
	s.deckDepleted = true
	s.board.Discard.Push(deck.NewCard(deck.Hearts, 3))
	s.score.Add(50)

	_, err := s.RequestRefresh()
	require.Error(t, err)
	assert.ErrorAs(t, err, new(*InsufficientFundsError))

	require.Len(t, notifier.messages, 1)
	assert.Equal(t, "You need at least 100 points to refresh the deck.", notifier.messages[0])

	assert.Equal(t, 50, s.Score(), "score untouched on refusal")
	assert.Equal(t, 1, s.Board().Discard.Len(), "discard untouched on refusal")
	assert.Equal(t, 1, s.RefreshCount(), "failed attempt still advances the schedule")

	// A second failed attempt prices at 200 and stays silent.
	_, err = s.RequestRefresh()
	require.Error(t, err)
	assert.Len(t, notifier.messages, 1)
	assert.Equal(t, 2, s.RefreshCount())
}

func TestRefreshEscalatingCost(t *testing.T) {
	s := testSession(t, Options{})
	clearTable(s)
	s.deckDepleted = true
	s.score.Add(350)

	s.board.Discard.Push(deck.NewCard(deck.Hearts, 3))
	res, err := s.RequestRefresh()
	require.NoError(t, err)
	assert.Equal(t, 100, res.Cost)

	s.Draw()
	res, err = s.RequestRefresh()
	require.NoError(t, err)
	assert.Equal(t, 200, res.Cost)
	assert.Equal(t, 50, s.Score())
}

func TestRefreshCustomBaseCost(t *testing.T) {
	notifier := &recordingNotifier{}
	s := testSession(t, Options{Notifier: notifier, BaseRefreshCost: 25})
	clearTable(s)
	s.deckDepleted = true
	s.board.Discard.Push(deck.NewCard(deck.Hearts, 3))
	s.score.Add(30)

	res, err := s.RequestRefresh()
	require.NoError(t, err)
	assert.Equal(t, 25, res.Cost)
	assert.Equal(t, 5, s.Score())
}
