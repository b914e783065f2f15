// Package game implements the Forty Thieves move engine: board containers,
// move validation, the undo ledger, scoring, escalating undo/refresh costs,
// and the session controller that ties them together.
//
// The main type is Session, which owns one game's state from deal to a
// terminal Won or Cleared outcome. All state lives on the session; there is
// no package-level mutable state.
//
// # Basic Usage
//
//	s := game.NewSession(game.Options{Logger: logger})
//	s.StartNewGame()
//	res, err := s.Draw()
//	// ...
//	pending, err := s.BeginMove("h1", "discard", "foundation-1")
//	result, err := pending.Commit()
//
// # Deterministic Testing
//
// Inject an RNG for reproducible shuffles:
//
//	rng := deck.NewRNG(42)
//	s := game.NewSession(game.Options{RNG: rng})
//
// # Two-Phase Moves
//
// BeginMove returns a PendingMove without touching any state. The caller
// commits once its visual transition (if any) has finished; a caller with no
// animation commits immediately. State is never observable between Begin and
// Commit.
package game
