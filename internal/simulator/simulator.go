// Package simulator plays unattended games with a simple greedy policy to
// estimate how the fee schedule and deal luck shape scores. Games run across
// a worker pool, each with an independent seeded RNG, so results are
// reproducible from a single seed.
package simulator

import (
	"context"
	"runtime"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/wmmead/fortythieves/internal/deck"
	"github.com/wmmead/fortythieves/internal/game"
)

// stepLimit bounds a single game so a pathological tableau shuffle cannot
// loop forever.
const stepLimit = 10000

// GameResult is the outcome of one simulated game
type GameResult struct {
	Seed  int64
	Score int
	Moves int
	State game.State
	Stuck bool // no legal action remained before a terminal state
}

// Simulator runs bulk games
type Simulator struct {
	logger  *log.Logger
	workers int
}

// New creates a simulator. Workers defaults to GOMAXPROCS.
func New(logger *log.Logger, workers int) *Simulator {
	if logger == nil {
		logger = log.Default()
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Simulator{logger: logger, workers: workers}
}

// Run plays the given number of games, deriving each game's RNG from the
// base seed, and returns aggregate results.
func (s *Simulator) Run(ctx context.Context, games int, seed int64) (*Results, error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	results := make(chan GameResult, s.workers)
	done := make(chan *Results)

	go func() {
		agg := &Results{}
		for r := range results {
			agg.add(r)
		}
		done <- agg
	}()

	for i := 0; i < games; i++ {
		gameSeed := seed + int64(i)
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			result := s.playOne(gameSeed)
			select {
			case results <- result:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}

	err := g.Wait()
	close(results)
	agg := <-done
	if err != nil {
		return nil, err
	}
	s.logger.Debug("simulation complete", "games", agg.Games, "mean", agg.Mean())
	return agg, nil
}

// playOne runs a single game to a terminal state or until stuck. Policy, in
// priority order each step: any foundation placement, then a draw, then a
// tableau consolidation, then a deck refresh if affordable.
func (s *Simulator) playOne(seed int64) GameResult {
	session := game.NewSession(game.Options{
		Logger: s.logger,
		RNG:    deck.NewRNG(seed),
	})
	session.StartNewGame()

	for step := 0; step < stepLimit && !session.State().Terminal(); step++ {
		if s.tryFoundationMove(session) {
			continue
		}
		if res, err := session.Draw(); err == nil && res != nil {
			continue
		}
		if s.tryTableauMove(session) {
			continue
		}
		if s.tryRefresh(session) {
			continue
		}
		return GameResult{
			Seed:  seed,
			Score: session.Score(),
			Moves: session.MoveCount(),
			State: session.State(),
			Stuck: true,
		}
	}
	return GameResult{
		Seed:  seed,
		Score: session.Score(),
		Moves: session.MoveCount(),
		State: session.State(),
	}
}

func (s *Simulator) tryFoundationMove(session *game.Session) bool {
	board := session.Board()
	for _, fromID := range moveSources(board) {
		from, _ := board.Container(fromID)
		card, ok := from.Top()
		if !ok {
			continue
		}
		for _, f := range board.Foundations {
			if !game.FoundationAccepts(f, card) {
				continue
			}
			if s.execute(session, card.ID(), fromID, f.ID) {
				return true
			}
		}
	}
	return false
}

func (s *Simulator) tryTableauMove(session *game.Session) bool {
	board := session.Board()
	for _, fromID := range moveSources(board) {
		from, _ := board.Container(fromID)
		card, ok := from.Top()
		if !ok {
			continue
		}
		for _, t := range board.Tableaus {
			if t.ID == fromID || t.IsEmpty() || !game.TableauAccepts(t, card) {
				continue
			}
			if s.execute(session, card.ID(), fromID, t.ID) {
				return true
			}
		}
	}
	return false
}

func (s *Simulator) tryRefresh(session *game.Session) bool {
	if session.DeckDisplay() != game.DeckRefresh {
		return false
	}
	_, err := session.RequestRefresh()
	return err == nil
}

func (s *Simulator) execute(session *game.Session, cardID, fromID, toID string) bool {
	pending, err := session.BeginMove(cardID, fromID, toID)
	if err != nil {
		return false
	}
	_, err = pending.Commit()
	return err == nil
}

// moveSources lists the containers a policy move can start from: the
// discard pile first, then every tableau section.
func moveSources(board *game.Board) []string {
	ids := make([]string, 0, len(board.Tableaus)+1)
	ids = append(ids, game.DiscardID)
	for _, t := range board.Tableaus {
		ids = append(ids, t.ID)
	}
	return ids
}
