package engine

import (
	"context"
	"fmt"
	"stonehenge/agent"
	"stonehenge/experiments/metrics"
	"stonehenge/game"
	"stonehenge/meta"
	"time"

	"github.com/rs/zerolog/log"
)

type Engine struct {
	Game     *game.Game
	Agents   map[game.Player]*agent.Agent
	ID       string
	observer Observer
}

// LocalEngine runs g between two in-process agents.
func LocalEngine(g *game.Game, p1, p2 *agent.Agent) *Engine {
	if p1 == nil || p2 == nil {
		panic("need an agent for each player")
	}
	return &Engine{
		Game:     g,
		Agents:   map[game.Player]*agent.Agent{game.P1: p1, game.P2: p2},
		observer: func(metrics.MoveMetric, *game.State) {},
	}
}

// OnMove registers an observer for applied moves.
func (e *Engine) OnMove(observer Observer) *Engine {
	if observer != nil {
		e.observer = observer
	}
	return e
}

// Run plays until the game is over. A cancelled context stops the game between moves.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	gameMetric := metrics.GameMetric{
		ID:             e.ID,
		SideLength:     e.Game.CurrentState.SideLength(),
		StartingPlayer: e.Game.CurrentState.Player(),
		StartTime:      start,
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("game %s: %s is starting on side length %d", e.ID, gameMetric.StartingPlayer, gameMetric.SideLength)

	step := 1
	for !e.Game.IsOver(e.Game.CurrentState) && step <= meta.MAX_TURNS {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}

		player := e.Game.CurrentState.Player()
		current := e.Agents[player]

		moveStart := time.Now()
		move, search, err := current.FindMove(e.Game)
		if err != nil {
			return Result{}, fmt.Errorf("%s (%s) failed to find a move: %w", player, current.Name, err)
		}
		if err := e.Game.Play(move); err != nil {
			return Result{}, fmt.Errorf("%s (%s) played %s: %w", player, current.Name, move, err)
		}

		moveMetric := metrics.MoveMetric{
			Step:         step,
			Player:       player,
			Agent:        current.Name,
			Move:         move,
			Duration:     time.Since(moveStart),
			SearchMetric: search,
		}
		moveMetrics = append(moveMetrics, moveMetric)
		e.observer(moveMetric, e.Game.CurrentState)

		log.Debug().Msgf("game %s: step %d %s (%s) claimed %s", e.ID, step, player, current.Name, move)
		step++
	}

	gameMetric.Winner = game.Winner(e.Game.CurrentState)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(start)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Debug().Msgf("game %s over after %d moves, winner: %s", e.ID, gameMetric.TotalMoves, gameMetric.Winner)
	return Result{Winner: gameMetric.Winner, Game: gameMetric, Moves: moveMetrics}, nil
}
