// Package gameid generates identifiers for persisted game records. Ids
// combine a millisecond timestamp with a random suffix, so they sort by
// start time and stay unique across rapid restarts.
package gameid

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	"github.com/coder/quartz"
)

// suffixRange bounds the random component (0..99999)
const suffixRange = 100000

// RandSource interface for dependency injection of randomness
type RandSource interface {
	Intn(n int) int
}

// Generator produces game record ids with configurable clock and randomness
type Generator struct {
	clock quartz.Clock
	rand  RandSource
}

// NewGenerator creates a generator. A nil clock uses the real clock; a nil
// RandSource uses the global math/rand source.
func NewGenerator(clock quartz.Clock, randSource RandSource) *Generator {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &Generator{clock: clock, rand: randSource}
}

// Generate creates a new record id using the default clock and randomness
func Generate() string {
	return NewGenerator(nil, nil).Generate()
}

// Generate creates a new record id of the form "game_<unixmilli>_<suffix>"
func (g *Generator) Generate() string {
	var suffix int
	if g.rand != nil {
		suffix = g.rand.Intn(suffixRange)
	} else {
		suffix = rand.Intn(suffixRange)
	}
	return fmt.Sprintf("game_%d_%d", g.clock.Now().UnixMilli(), suffix)
}

var idPattern = regexp.MustCompile(`^game_\d+_\d{1,5}$`)

// Validate checks that an id has the expected shape
func Validate(id string) error {
	if !idPattern.MatchString(id) {
		return fmt.Errorf("malformed game id %q", id)
	}
	return nil
}

// Timestamp extracts the millisecond timestamp embedded in an id
func Timestamp(id string) (int64, error) {
	if err := Validate(id); err != nil {
		return 0, err
	}
	parts := strings.Split(id, "_")
	ms, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed game id %q: %w", id, err)
	}
	return ms, nil
}
