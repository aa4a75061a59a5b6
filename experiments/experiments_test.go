package experiments

import (
	"context"
	"os"
	"path/filepath"
	"stonehenge/agent"
	"stonehenge/experiments/metrics"
	"stonehenge/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoundRobin(t *testing.T) {
	configs := []metrics.AgentConfig{{ID: 1}, {ID: 2}, {ID: 3}}

	matchUps := RoundRobin(configs)

	require.Len(t, matchUps, 6)
	require.Contains(t, matchUps, MatchUp{Agent1: 1, Agent2: 2})
	require.Contains(t, matchUps, MatchUp{Agent1: 2, Agent2: 1})
	require.NotContains(t, matchUps, MatchUp{Agent1: 3, Agent2: 3})
}

func TestRun(t *testing.T) {
	t.Run("plays every game and writes records", func(t *testing.T) {
		exp := Experiment{
			Name: "search_vs_random",
			Agents: []metrics.AgentConfig{
				{ID: 1, Strategy: agent.IterativeStrategy},
				{ID: 2, Strategy: agent.RandomStrategy},
			},
			MatchUps:    []MatchUp{{Agent1: 1, Agent2: 2}, {Agent1: 2, Agent2: 1}},
			SideLengths: []int{1, 2},
			Games:       2,
			Parallelism: 4,
			OutputDir:   t.TempDir(),
		}

		report, err := Run(context.Background(), exp)

		require.NoError(t, err)
		require.Len(t, report.Games, 8)
		ids := map[string]bool{}
		for _, record := range report.Games {
			require.NotEmpty(t, record.ID)
			require.NotEqual(t, game.None, record.Winner)
			ids[record.ID] = true
		}
		require.Len(t, ids, 8, "Every game should get its own id")

		// Any first move on side 1 captures half of the ley-lines
		for _, record := range report.Games {
			if record.SideLength == 1 {
				require.Equal(t, record.StartingPlayer, record.Winner)
			}
		}

		total := 0
		for _, wins := range report.Wins {
			total += wins
		}
		require.Equal(t, 8, total)

		for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
			_, err := os.Stat(filepath.Join(report.Dir, name))
			require.NoError(t, err, name)
		}
	})

	t.Run("rejects interactive agents", func(t *testing.T) {
		exp := Experiment{
			Agents: []metrics.AgentConfig{{ID: 1, Strategy: agent.InteractiveStrategy}},
		}

		_, err := Run(context.Background(), exp)

		require.ErrorIs(t, err, ErrInteractive)
	})

	t.Run("rejects unknown agents in matchups", func(t *testing.T) {
		exp := Experiment{
			Agents:   []metrics.AgentConfig{{ID: 1, Strategy: agent.RoughStrategy}},
			MatchUps: []MatchUp{{Agent1: 1, Agent2: 9}},
		}

		_, err := Run(context.Background(), exp)

		require.Error(t, err)
	})

	t.Run("rejects unknown strategies", func(t *testing.T) {
		exp := Experiment{
			Agents: []metrics.AgentConfig{{ID: 1, Strategy: "mcts"}},
		}

		_, err := Run(context.Background(), exp)

		require.ErrorIs(t, err, agent.ErrUnknownStrategy)
	})

	t.Run("default experiment covers every served strategy", func(t *testing.T) {
		exp := Default("")

		require.Len(t, exp.Agents, 4)
		require.Len(t, exp.MatchUps, 12)
		require.Empty(t, exp.OutputDir)
	})
}
