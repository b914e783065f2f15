package game

import (
	"fmt"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/wmmead/fortythieves/internal/deck"
)

// State is the session lifecycle state
type State int

const (
	StateDealing State = iota
	StatePlaying
	StateWon
	StateCleared
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateDealing:
		return "dealing"
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Terminal reports whether the state ends the game
func (s State) Terminal() bool {
	return s == StateWon || s == StateCleared
}

// DeckDisplay tells the presentation layer what the deck slot should show
type DeckDisplay int

const (
	DeckNormal  DeckDisplay = iota // cards remain to draw
	DeckRefresh                    // depleted, discard can refill it
	DeckEmpty                      // depleted and discard empty too
)

// Default table dimensions
const (
	DefaultTableauSections = 10
	DefaultDealPerSection  = 4
)

// Options configures a session. Zero values select sensible defaults.
type Options struct {
	Logger          *log.Logger
	RNG             *rand.Rand    // shuffle source; nil uses the global source
	Notifier        Notifier      // user-facing error channel
	Stats           StatsRecorder // durable statistics sink
	TableauSections int           // default 10
	DealPerSection  int           // default 4 (40 cards dealt)
	BaseRefreshCost int           // default 100
}

// Session owns the state of one game: draw pile, board, move ledger, score
// and cost counters. It is the only type with externally visible operations;
// everything else in the package serves it. Sessions are not safe for
// concurrent use: one user action fully resolves before the next is
// accepted.
type Session struct {
	logger   *log.Logger
	rng      *rand.Rand
	notifier Notifier
	stats    StatsRecorder

	deck   *deck.Deck
	board  *Board
	ledger *Ledger
	score  Score
	costs  *costState

	state        State
	deckDepleted bool

	tableauSections int
	dealPerSection  int
}

// NewSession creates a session ready for StartNewGame
func NewSession(opts Options) *Session {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Notifier == nil {
		opts.Notifier = NopNotifier{}
	}
	if opts.Stats == nil {
		opts.Stats = NopStats{}
	}
	if opts.TableauSections <= 0 {
		opts.TableauSections = DefaultTableauSections
	}
	if opts.DealPerSection <= 0 {
		opts.DealPerSection = DefaultDealPerSection
	}
	return &Session{
		logger:          opts.Logger,
		rng:             opts.RNG,
		notifier:        opts.Notifier,
		stats:           opts.Stats,
		board:           NewBoard(opts.TableauSections),
		ledger:          NewLedger(),
		costs:           newCostState(opts.BaseRefreshCost),
		deck:            deck.New(nil, opts.RNG),
		state:           StateDealing,
		tableauSections: opts.TableauSections,
		dealPerSection:  opts.DealPerSection,
	}
}

// StartNewGame resets everything and deals a fresh game. Legal at any point;
// the prior session (if any) is archived into the statistics ledger.
func (s *Session) StartNewGame() {
	s.state = StateDealing
	s.board.Clear()
	s.ledger.Reset()
	s.score.Reset()
	s.costs.reset()
	s.deckDepleted = false

	shuffled := deck.Shuffled(deck.DoubleDeck(), s.rng)
	s.deck = deck.New(shuffled, s.rng)
	s.deal()

	s.stats.GameStarted()
	s.state = StatePlaying
	s.logger.Debug("new game dealt",
		"tableaus", len(s.board.Tableaus),
		"deck", s.deck.CardsRemaining())
}

// deal distributes cards round-robin to the tableau sections
func (s *Session) deal() {
	total := s.tableauSections * s.dealPerSection
	for i := 0; i < total; i++ {
		card, ok := s.deck.Draw()
		if !ok {
			break
		}
		s.board.Tableaus[i%s.tableauSections].Push(card)
	}
}

// DrawResult describes a completed draw
type DrawResult struct {
	Card          deck.Card
	DeckRemaining int
	Display       DeckDisplay
}

// Draw moves the next card from the deck to the discard pile and records
// the move. A nil result with nil error means the deck is depleted; that is
// an empty-signal, not an error.
func (s *Session) Draw() (*DrawResult, error) {
	if s.state != StatePlaying {
		return nil, ErrNotPlaying
	}
	card, ok := s.deck.Draw()
	if !ok {
		return nil, nil
	}
	s.board.Discard.Push(card)
	s.ledger.Record(Move{CardID: card.ID(), From: DeckID, To: DiscardID})
	if s.deck.IsEmpty() {
		s.deckDepleted = true
	}
	return &DrawResult{
		Card:          card,
		DeckRemaining: s.deck.CardsRemaining(),
		Display:       s.DeckDisplay(),
	}, nil
}

// Candidates enumerates the container ids that legally accept the top card
// of the given source container. The highlight layer renders these; the
// rules in rules.go are the only rule set.
func (s *Session) Candidates(fromID string) []string {
	from, ok := s.board.Container(fromID)
	if !ok {
		return nil
	}
	card, ok := from.Top()
	if !ok {
		return nil
	}
	var out []string
	for _, f := range s.board.Foundations {
		if f.ID != fromID && FoundationAccepts(f, card) {
			out = append(out, f.ID)
		}
	}
	for _, t := range s.board.Tableaus {
		if t.ID != fromID && TableauAccepts(t, card) {
			out = append(out, t.ID)
		}
	}
	return out
}

// PendingMove is a validated move whose state mutation is deferred until
// Commit. Begin/Commit is the two-phase protocol for callers with visual
// transitions: begin, animate, then commit when the transition completes.
// Callers without animation commit immediately.
type PendingMove struct {
	session   *Session
	card      deck.Card
	from, to  *Container
	committed bool
}

// Card returns the card being moved
func (p *PendingMove) Card() deck.Card { return p.card }

// From returns the source container id
func (p *PendingMove) From() string { return p.from.ID }

// To returns the target container id
func (p *PendingMove) To() string { return p.to.ID }

// MoveResult describes a committed move
type MoveResult struct {
	Move       Move
	Score      int
	ScoreDelta int
	State      State
}

// BeginMove validates a move of the top card of fromID onto toID and
// returns the pending transition. No state changes until Commit.
func (s *Session) BeginMove(cardID, fromID, toID string) (*PendingMove, error) {
	if s.state != StatePlaying {
		return nil, ErrNotPlaying
	}
	from, ok := s.board.Container(fromID)
	if !ok {
		s.logger.Warn("move refused: container not found", "container", fromID)
		return nil, fmt.Errorf("%w: %s", ErrMissingContainer, fromID)
	}
	to, ok := s.board.Container(toID)
	if !ok {
		s.logger.Warn("move refused: container not found", "container", toID)
		return nil, fmt.Errorf("%w: %s", ErrMissingContainer, toID)
	}
	card, ok := from.Top()
	if !ok || card.ID() != cardID {
		s.logger.Warn("move refused: card not on top of source",
			"card", cardID, "container", fromID)
		return nil, fmt.Errorf("%w: %s in %s", ErrCardNotFound, cardID, fromID)
	}
	if !Accepts(to, card) {
		return nil, fmt.Errorf("%w: %s onto %s", ErrIllegalMove, cardID, toID)
	}
	return &PendingMove{session: s, card: card, from: from, to: to}, nil
}

// Commit applies the move: container update, ledger record, scoring, win
// check. Commit may be called exactly once.
func (p *PendingMove) Commit() (*MoveResult, error) {
	if p.committed {
		return nil, ErrAlreadyCommitted
	}
	p.committed = true
	return p.session.commitMove(p.card, p.from, p.to)
}

func (s *Session) commitMove(card deck.Card, from, to *Container) (*MoveResult, error) {
	moved, ok := from.Pop()
	if !ok || moved.ID() != card.ID() {
		// Board changed between Begin and Commit; abort without mutation.
		if ok {
			from.Push(moved)
		}
		s.logger.Warn("commit aborted: card no longer on top of source",
			"card", card.ID(), "container", from.ID)
		return nil, fmt.Errorf("%w: %s in %s", ErrCardNotFound, card.ID(), from.ID)
	}
	to.Push(moved)

	before := s.score.Points()
	if to.Kind == KindFoundation {
		s.score.Add(int(card.Rank))
	}
	if from.Kind == KindFoundation && to.Kind == KindTableau {
		s.score.Subtract(int(card.Rank))
	}

	move := Move{CardID: card.ID(), From: from.ID, To: to.ID}
	s.ledger.Record(move)
	s.stats.MoveCompleted(s.score.Points())

	if to.Kind == KindFoundation && foundationsComplete(s.board.Foundations) {
		s.state = terminalState(s.score.Points())
		s.stats.GameFinished()
		s.logger.Info("game over", "state", s.state, "score", s.score.Points())
	}

	return &MoveResult{
		Move:       move,
		Score:      s.score.Points(),
		ScoreDelta: s.score.Points() - before,
		State:      s.state,
	}, nil
}

// AutoMove finds the best legal destination for the top card of fromID, in
// priority order: foundation, occupied tableau, empty tableau. Returns the
// pending move, or nil when no destination accepts the card.
func (s *Session) AutoMove(fromID string) (*PendingMove, error) {
	if s.state != StatePlaying {
		return nil, ErrNotPlaying
	}
	from, ok := s.board.Container(fromID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingContainer, fromID)
	}
	card, ok := from.Top()
	if !ok {
		return nil, fmt.Errorf("%w: empty %s", ErrCardNotFound, fromID)
	}
	for _, f := range s.board.Foundations {
		if FoundationAccepts(f, card) {
			return s.BeginMove(card.ID(), fromID, f.ID)
		}
	}
	for _, t := range s.board.Tableaus {
		if t.ID != fromID && !t.IsEmpty() && TableauAccepts(t, card) {
			return s.BeginMove(card.ID(), fromID, t.ID)
		}
	}
	for _, t := range s.board.Tableaus {
		if t.ID != fromID && t.IsEmpty() {
			return s.BeginMove(card.ID(), fromID, t.ID)
		}
	}
	return nil, nil
}
