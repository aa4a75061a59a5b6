package experiments

import (
	"context"
	"errors"
	"fmt"
	"stonehenge/agent"
	"stonehenge/engine"
	"stonehenge/experiments/metrics"
	"stonehenge/game"
	"stonehenge/meta"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// ErrInteractive is returned when an experiment includes a human player.
var ErrInteractive = errors.New("interactive agents cannot play experiments")

// MatchUp pairs two agent IDs; Agent1 always sits in the p1 seat.
type MatchUp struct {
	Agent1 int
	Agent2 int
}

type Experiment struct {
	Name        string
	Agents      []metrics.AgentConfig
	MatchUps    []MatchUp
	SideLengths []int
	Games       int    // Per matchup and side length
	Parallelism int    // Games played at once
	OutputDir   string // CSV records are written below it unless empty
	Seed        uint64 // Base seed for random agents
}

type Report struct {
	Games []metrics.GameRecord
	Moves []metrics.MoveRecord
	Wins  map[int]int // Agent ID to games won
	Dir   string      // Where the records were written
}

// RoundRobin pairs every agent with every other agent in both seats.
func RoundRobin(agents []metrics.AgentConfig) []MatchUp {
	matchUps := []MatchUp{}
	for _, a := range agents {
		for _, b := range agents {
			if a.ID != b.ID {
				matchUps = append(matchUps, MatchUp{Agent1: a.ID, Agent2: b.ID})
			}
		}
	}
	return matchUps
}

// Default pits the non-interactive strategies against each other on the
// boards small enough to search exhaustively.
func Default(outputDir string) Experiment {
	configs := []metrics.AgentConfig{
		{ID: 1, Strategy: agent.RoughStrategy},
		{ID: 2, Strategy: agent.RecursiveStrategy},
		{ID: 3, Strategy: agent.IterativeStrategy},
		{ID: 4, Strategy: agent.RandomStrategy},
	}
	return Experiment{
		Name:        "round_robin",
		Agents:      configs,
		MatchUps:    RoundRobin(configs),
		SideLengths: []int{1, meta.DEFAULT_SIDE_LENGTH},
		Games:       meta.GAMES,
		Parallelism: meta.GO_ROUTINES,
		OutputDir:   outputDir,
	}
}

type job struct {
	matchUp  MatchUp
	side     int
	p1Starts bool
	seed     uint64
}

func Run(ctx context.Context, exp Experiment) (Report, error) {
	strategies := make(map[int]string, len(exp.Agents))
	for _, config := range exp.Agents {
		if config.Strategy == agent.InteractiveStrategy {
			return Report{}, fmt.Errorf("%w: agent %d", ErrInteractive, config.ID)
		}
		if _, err := agent.New(config.Strategy, agent.Config{}); err != nil {
			return Report{}, err
		}
		strategies[config.ID] = config.Strategy
	}

	jobs := []job{}
	for _, matchUp := range exp.MatchUps {
		for _, id := range []int{matchUp.Agent1, matchUp.Agent2} {
			if _, ok := strategies[id]; !ok {
				return Report{}, fmt.Errorf("matchup refers to unknown agent %d", id)
			}
		}
		for _, side := range exp.SideLengths {
			for i := 0; i < exp.Games; i++ {
				jobs = append(jobs, job{
					matchUp:  matchUp,
					side:     side,
					p1Starts: i%2 == 0,
					seed:     exp.Seed + uint64(len(jobs)),
				})
			}
		}
	}

	log.Info().Msgf("starting %s experiment with %d games...", exp.Name, len(jobs))

	games := make([]metrics.GameRecord, len(jobs))
	moves := make([][]metrics.MoveRecord, len(jobs))
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(max(exp.Parallelism, 1))
	for i, j := range jobs {
		i, j := i, j
		group.Go(func() error {
			record, moveRecords, err := runGame(ctx, j, strategies)
			if err != nil {
				return err
			}
			games[i] = record
			moves[i] = moveRecords
			log.Info().Msgf("completed game %d of %d on side %d with winner: %s", i+1, len(jobs), j.side, record.Winner)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return Report{}, err
	}

	report := Report{Games: games, Wins: map[int]int{}}
	for i, record := range games {
		report.Moves = append(report.Moves, moves[i]...)
		switch record.Winner {
		case game.P1:
			report.Wins[record.Agent1]++
		case game.P2:
			report.Wins[record.Agent2]++
		}
	}
	log.Info().Msgf("completed %s experiment", exp.Name)

	if exp.OutputDir != "" {
		dir, err := store(exp, report)
		if err != nil {
			return Report{}, err
		}
		report.Dir = dir
	}
	return report, nil
}

// runGame executes a single game between two fresh agents
func runGame(ctx context.Context, j job, strategies map[int]string) (metrics.GameRecord, []metrics.MoveRecord, error) {
	g, err := game.NewGame(j.p1Starts, j.side)
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	p1, err := agent.New(strategies[j.matchUp.Agent1], agent.Config{Seed: j.seed})
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}
	p2, err := agent.New(strategies[j.matchUp.Agent2], agent.Config{Seed: j.seed + 1})
	if err != nil {
		return metrics.GameRecord{}, nil, err
	}

	e := engine.LocalEngine(g, p1, p2)
	e.ID = uuid.NewString()
	result, err := e.Run(ctx)
	if err != nil {
		return metrics.GameRecord{}, nil, fmt.Errorf("game %s: %w", e.ID, err)
	}

	moveRecords := make([]metrics.MoveRecord, len(result.Moves))
	for i, m := range result.Moves {
		moveRecords[i] = metrics.MoveRecord{Game: e.ID, MoveMetric: m}
	}
	record := metrics.GameRecord{
		Agent1:     j.matchUp.Agent1,
		Agent2:     j.matchUp.Agent2,
		GameMetric: result.Game,
	}
	return record, moveRecords, nil
}

func store(exp Experiment, report Report) (string, error) {
	writer, err := metrics.NewWriter(exp.OutputDir, exp.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	if err := writer.WriteAgentConfigs(exp.Agents); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	if err := writer.WriteGameRecords(report.Games); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(report.Moves); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")
	return writer.Dir(), nil
}
