package simulator

import (
	"math"
	"sort"

	"github.com/wmmead/fortythieves/internal/game"
)

// Results aggregates simulated game outcomes
type Results struct {
	Games  int
	Sum    float64
	Sum2   float64 // sum of squares for variance
	Scores []int

	Won      int // terminal with the maximum score
	Cleared  int // all foundations complete, score short of maximum
	Stuck    int // no legal action remained
	Best     int
	SumMoves int
}

func (r *Results) add(result GameResult) {
	score := float64(result.Score)
	r.Games++
	r.Sum += score
	r.Sum2 += score * score
	r.Scores = append(r.Scores, result.Score)
	r.SumMoves += result.Moves

	switch {
	case result.State == game.StateWon:
		r.Won++
	case result.State == game.StateCleared:
		r.Cleared++
	case result.Stuck:
		r.Stuck++
	}
	if result.Score > r.Best {
		r.Best = result.Score
	}
}

// Mean returns the average final score
func (r *Results) Mean() float64 {
	if r.Games == 0 {
		return 0
	}
	return r.Sum / float64(r.Games)
}

// Variance returns the sample variance of final scores
func (r *Results) Variance() float64 {
	if r.Games < 2 {
		return 0
	}
	mean := r.Mean()
	return (r.Sum2 - float64(r.Games)*mean*mean) / float64(r.Games-1)
}

// StdDev returns the sample standard deviation of final scores
func (r *Results) StdDev() float64 {
	return math.Sqrt(r.Variance())
}

// Median returns the median final score
func (r *Results) Median() float64 {
	if len(r.Scores) == 0 {
		return 0
	}
	sorted := make([]int, len(r.Scores))
	copy(sorted, r.Scores)
	sort.Ints(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return float64(sorted[n/2-1]+sorted[n/2]) / 2
	}
	return float64(sorted[n/2])
}

// MeanMoves returns the average number of moves per game
func (r *Results) MeanMoves() float64 {
	if r.Games == 0 {
		return 0
	}
	return float64(r.SumMoves) / float64(r.Games)
}
