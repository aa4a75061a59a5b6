package agent

import (
	"errors"
	"stonehenge/experiments/metrics"
	"stonehenge/game"
)

var (
	// ErrUnknownStrategy is returned when no strategy has the requested name.
	ErrUnknownStrategy = errors.New("unknown strategy")
	// ErrNoInput is returned by the interactive strategy when its input is exhausted.
	ErrNoInput = errors.New("no more input")
)

// Strategy picks a move for the player to move in the game's current state.
// The move is one of g.LegalMoves().
type Strategy func(g *game.Game) (game.Cell, error)

// Agent is a named strategy. Metrics holds the search statistics of the
// strategy's latest move; strategies that do not search leave it empty.
type Agent struct {
	Name     string
	Strategy Strategy
	Metrics  metrics.Collector
}

// FindMove asks the agent's strategy for a move.
func (a *Agent) FindMove(g *game.Game) (game.Cell, metrics.SearchMetric, error) {
	move, err := a.Strategy(g)
	if err != nil {
		return game.InvalidCell, metrics.SearchMetric{}, err
	}
	return move, a.Metrics.Complete(), nil
}
