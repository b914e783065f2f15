// Package stats maintains the durable cross-session statistics ledger: one
// record per played game, kept indefinitely in a key-value store. The ledger
// survives processes; a single game's in-memory state does not.
package stats

import (
	"encoding/json"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/wmmead/fortythieves/internal/game"
	"github.com/wmmead/fortythieves/internal/gameid"
	"github.com/wmmead/fortythieves/internal/store"
)

// Persistence key space
const (
	KeyGameStats       = "solitaireGameStats"
	KeyCurrentGameID   = "currentGameId"
	KeyCurrentGameData = "currentGameData"
)

// Record is one persisted game: move count, final score and start time.
type Record struct {
	ID        string    `json:"id"`
	Moves     int       `json:"moves"`
	Score     int       `json:"score"`
	StartedAt time.Time `json:"startedAt"`
}

// Summary is the aggregate view over archived games
type Summary struct {
	GamesPlayed  int
	AverageScore float64
	GamesWon     int
}

// Options configures a Ledger; zero values select real clock, default id
// generator and default logger.
type Options struct {
	Clock  quartz.Clock
	IDs    *gameid.Generator
	Logger *log.Logger
}

// Ledger reads and writes game records through a key-value store. The
// "current" record is the in-progress game, marked by a pointer key and
// excluded from aggregates until archived.
type Ledger struct {
	store  store.Store
	clock  quartz.Clock
	ids    *gameid.Generator
	logger *log.Logger
}

// NewLedger creates a statistics ledger over the given store
func NewLedger(st store.Store, opts Options) *Ledger {
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	if opts.IDs == nil {
		opts.IDs = gameid.NewGenerator(opts.Clock, nil)
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Ledger{
		store:  st,
		clock:  opts.Clock,
		ids:    opts.IDs,
		logger: opts.Logger,
	}
}

// All returns every stored record. A corrupt ledger is logged and treated
// as empty rather than failing the game.
func (l *Ledger) All() []Record {
	raw, ok := l.store.Get(KeyGameStats)
	if !ok || raw == "" {
		return nil
	}
	var records []Record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		l.logger.Warn("statistics ledger unreadable, treating as empty", "error", err)
		return nil
	}
	return records
}

func (l *Ledger) save(records []Record) {
	raw, err := json.Marshal(records)
	if err != nil {
		l.logger.Error("failed to encode statistics ledger", "error", err)
		return
	}
	l.store.Set(KeyGameStats, string(raw))
}

// CurrentID returns the id of the in-progress record, if any
func (l *Ledger) CurrentID() (string, bool) {
	id, ok := l.store.Get(KeyCurrentGameID)
	return id, ok && id != ""
}

// CreateRecord opens a fresh zero-move record and marks it current
func (l *Ledger) CreateRecord() Record {
	record := Record{
		ID:        l.ids.Generate(),
		StartedAt: l.clock.Now(),
	}
	l.save(append(l.All(), record))
	l.store.Set(KeyCurrentGameID, record.ID)
	return record
}

// UpdateCurrent increments the current record's move counter and overwrites
// its score. Called after every completed move. The record snapshot is also
// refreshed so an interrupted session can still be archived.
func (l *Ledger) UpdateCurrent(score int) {
	currentID, ok := l.CurrentID()
	if !ok {
		return
	}
	records := l.All()
	for i := range records {
		if records[i].ID != currentID {
			continue
		}
		records[i].Moves++
		records[i].Score = score
		l.save(records)
		if raw, err := json.Marshal(records[i]); err == nil {
			l.store.Set(KeyCurrentGameData, string(raw))
		}
		return
	}
}

// PruneZeroMoveRecords drops records with no moves, so started-but-abandoned
// sessions never count as played. Idempotent.
func (l *Ledger) PruneZeroMoveRecords() {
	records := l.All()
	kept := records[:0]
	for _, r := range records {
		if r.Moves != 0 {
			kept = append(kept, r)
		}
	}
	l.save(kept)
}

// Aggregate computes the statistics over archived records, excluding the
// in-progress record and anything with zero moves. A game is won when its
// score is exactly the maximum attainable. The average is rounded to two
// decimals.
func (l *Ledger) Aggregate() Summary {
	currentID, _ := l.CurrentID()
	var sum, played, won int
	for _, r := range l.All() {
		if r.ID == currentID || r.Moves <= 0 {
			continue
		}
		played++
		sum += r.Score
		if r.Score == game.MaxScore {
			won++
		}
	}
	summary := Summary{GamesPlayed: played, GamesWon: won}
	if played > 0 {
		summary.AverageScore = math.Round(float64(sum)/float64(played)*100) / 100
	}
	return summary
}

// ArchiveCurrentAndClear merges the current record into the durable set and
// clears the current pointer. Idempotent: a record already present by id is
// not duplicated.
func (l *Ledger) ArchiveCurrentAndClear() {
	currentID, ok := l.CurrentID()
	if !ok {
		return
	}
	records := l.All()
	for _, r := range records {
		if r.ID == currentID {
			// Already in the durable set; just drop the pointer.
			l.store.Remove(KeyCurrentGameID)
			l.store.Remove(KeyCurrentGameData)
			return
		}
	}
	raw, ok := l.store.Get(KeyCurrentGameData)
	if !ok || raw == "" {
		return
	}
	var snapshot Record
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		l.logger.Warn("current game snapshot unreadable, discarding", "error", err)
		l.store.Remove(KeyCurrentGameID)
		l.store.Remove(KeyCurrentGameData)
		return
	}
	l.save(append(records, snapshot))
	l.store.Remove(KeyCurrentGameID)
	l.store.Remove(KeyCurrentGameData)
}

// PurgeAll wipes the entire ledger and the current pointer
func (l *Ledger) PurgeAll() {
	l.store.Remove(KeyGameStats)
	l.store.Remove(KeyCurrentGameID)
	l.store.Remove(KeyCurrentGameData)
}

// Session lifecycle hooks; Ledger satisfies game.StatsRecorder.

// GameStarted archives any prior session, prunes abandoned records and
// opens a fresh one.
func (l *Ledger) GameStarted() {
	l.PruneZeroMoveRecords()
	l.ArchiveCurrentAndClear()
	l.CreateRecord()
}

// MoveCompleted records a completed move
func (l *Ledger) MoveCompleted(score int) {
	l.UpdateCurrent(score)
}

// GameFinished flushes the finished session into the durable set
func (l *Ledger) GameFinished() {
	l.ArchiveCurrentAndClear()
}

var _ game.StatsRecorder = (*Ledger)(nil)
