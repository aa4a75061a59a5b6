package engine

import (
	"stonehenge/experiments/metrics"
	"stonehenge/game"
)

// Result is the outcome of a finished game.
type Result struct {
	Winner game.Player // None if the game ended without a majority
	Game   metrics.GameMetric
	Moves  []metrics.MoveMetric
}

// Observer is called after every applied move.
type Observer func(move metrics.MoveMetric, state *game.State)
