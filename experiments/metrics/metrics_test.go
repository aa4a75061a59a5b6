package metrics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"stonehenge/game"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	t.Run("counts nodes between start and complete", func(t *testing.T) {
		c := NewCollector()
		c.Start("iterative")
		c.AddExpansion()
		c.AddExpansion()
		c.AddTerminal()

		got := c.Complete()
		require.Equal(t, "iterative", got.Algorithm)
		require.Equal(t, 2, got.Expanded)
		require.Equal(t, 1, got.Terminals)
	})

	t.Run("start resets counters", func(t *testing.T) {
		c := NewCollector()
		c.Start("recursive")
		c.AddTerminal()
		c.Start("recursive")

		require.Equal(t, 0, c.Complete().Terminals)
	})

	t.Run("dummy collector records nothing", func(t *testing.T) {
		c := NewDummyCollector()
		c.Start("recursive")
		c.AddExpansion()

		require.Equal(t, SearchMetric{}, c.Complete())
	})
}

func TestWriter(t *testing.T) {
	w, err := NewWriter(t.TempDir(), "tournament")
	require.NoError(t, err)

	now := time.Now()
	require.NoError(t, w.WriteAgentConfigs([]AgentConfig{{ID: 1, Strategy: "iterative"}}))
	require.NoError(t, w.WriteGameRecords([]GameRecord{{
		Agent1: 1,
		Agent2: 1,
		GameMetric: GameMetric{
			ID: "g1", SideLength: 1, StartingPlayer: game.P1, Winner: game.P1,
			StartTime: now, EndTime: now, TotalMoves: 1,
		},
	}}))
	require.NoError(t, w.WriteMoveRecords([]MoveRecord{{
		Game: "g1",
		MoveMetric: MoveMetric{
			Step: 1, Player: game.P1, Agent: "iterative", Move: 'A',
			SearchMetric: SearchMetric{Algorithm: "iterative", Expanded: 1, Terminals: 3},
		},
	}}))

	rows := readCSV(t, filepath.Join(w.Dir(), "game_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, "g1", rows[1][0])
	require.Equal(t, "p1", rows[1][5])

	rows = readCSV(t, filepath.Join(w.Dir(), "move_records.csv"))
	require.Len(t, rows, 2)
	require.Equal(t, []string{"g1", "1", "p1", "iterative", "A", "0s", "iterative", "1", "3"}, rows[1])

	rows = readCSV(t, filepath.Join(w.Dir(), "agent_configs.csv"))
	require.Equal(t, [][]string{{"id", "strategy"}, {"1", "iterative"}}, rows)
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}
