package searcher

import (
	"fmt"
	"stonehenge/experiments/metrics"
	"stonehenge/game"
	"testing"

	"github.com/stretchr/testify/require"
)

/**
Tests exhaustive minimax in both formulations:
- decisions: side 1 opening is an immediate win, first winning move in board order is chosen
- terminal root: ErrNoMoves
- equivalence: recursive and iterative agree on the move and value of every reachable state
  of side 1 and side 2, and on a late side 3 position
- metrics: both formulations expand and score the same number of nodes
*/

func initial(t *testing.T, p1Starts bool, side int) *game.State {
	t.Helper()
	s, err := game.NewState(p1Starts, side)
	require.NoError(t, err)
	return s
}

func reachable(s *game.State, visit func(*game.State)) {
	visit(s)
	for _, move := range s.LegalMoves() {
		reachable(play(s, move), visit)
	}
}

func TestFindNextMove(t *testing.T) {
	searchers := map[string]Searcher{
		RecursiveAlgorithm: NewRecursive(),
		IterativeAlgorithm: NewIterative(),
	}

	for name, s := range searchers {
		t.Run(name+" wins immediately on side 1", func(t *testing.T) {
			state := initial(t, true, 1)

			move, err := s.FindNextMove(state)

			require.NoError(t, err)
			require.Equal(t, game.Cell('A'), move, "First winning move in board order should be chosen")
			next := play(state, move)
			require.True(t, game.IsOver(next))
			require.Equal(t, game.P1, game.Winner(next))
		})

		t.Run(name+" refuses finished games", func(t *testing.T) {
			state := play(initial(t, false, 1), 'B')

			move, err := s.FindNextMove(state)

			require.ErrorIs(t, err, ErrNoMoves)
			require.Equal(t, game.InvalidCell, move)
		})

		t.Run(name+" leaves the state untouched", func(t *testing.T) {
			state := initial(t, true, 2)
			before := state.String()

			_, err := s.FindNextMove(state)

			require.NoError(t, err)
			require.Equal(t, before, state.String())
		})
	}
}

func TestValue(t *testing.T) {
	t.Run("side 1 opening is won for the player to move", func(t *testing.T) {
		state := initial(t, true, 1)

		require.Equal(t, game.Win, NewRecursive().Value(state))
		require.Equal(t, game.Win, NewIterative().Value(state))
	})

	t.Run("finished game is lost for the player to move", func(t *testing.T) {
		state := play(initial(t, true, 1), 'C')

		require.Equal(t, game.Lose, NewRecursive().Value(state))
		require.Equal(t, game.Lose, NewIterative().Value(state))
	})
}

func TestSearchersAgree(t *testing.T) {
	recursive := NewRecursive()
	iterative := NewIterative()

	compare := func(t *testing.T, state *game.State) {
		require.Equal(t, recursive.Value(state), iterative.Value(state), "value of %s", state)
		if game.IsOver(state) {
			return
		}
		want, err := recursive.FindNextMove(state)
		require.NoError(t, err)
		got, err := iterative.FindNextMove(state)
		require.NoError(t, err)
		require.Equal(t, want, got, "move for %s", state)
		require.True(t, state.IsValidMove(got))
	}

	for _, side := range []int{1, 2} {
		for _, p1Starts := range []bool{true, false} {
			t.Run(fmt.Sprintf("every reachable state of side %d with p1 starting %t", side, p1Starts), func(t *testing.T) {
				reachable(initial(t, p1Starts, side), func(state *game.State) { compare(t, state) })
			})
		}
	}

	t.Run("late side 3 position", func(t *testing.T) {
		state := initial(t, true, 3)
		for len(state.LegalMoves()) > 7 {
			moves := state.LegalMoves()
			state = play(state, moves[len(moves)/2])
		}
		if game.IsOver(state) {
			t.Skip("position finished early")
		}
		compare(t, state)
	})
}

func TestSearchMetrics(t *testing.T) {
	state := initial(t, true, 2)
	recursiveMetrics := metrics.NewCollector()
	iterativeMetrics := metrics.NewCollector()

	_, err := NewRecursive(WithMetrics(recursiveMetrics)).FindNextMove(state)
	require.NoError(t, err)
	_, err = NewIterative(WithMetrics(iterativeMetrics)).FindNextMove(state)
	require.NoError(t, err)

	r := recursiveMetrics.Complete()
	i := iterativeMetrics.Complete()
	require.Equal(t, RecursiveAlgorithm, r.Algorithm)
	require.Equal(t, IterativeAlgorithm, i.Algorithm)
	require.Positive(t, r.Expanded)
	require.Positive(t, r.Terminals)
	require.Equal(t, r.Expanded, i.Expanded, "Both searches should expand the same tree")
	require.Equal(t, r.Terminals, i.Terminals, "Both searches should score the same leaves")
}
