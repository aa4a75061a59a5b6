package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoughOutcome(t *testing.T) {
	t.Run("finished game is a loss for the player to move", func(t *testing.T) {
		s := play(t, newState(t, true, 1), "A")

		require.Equal(t, Lose, RoughOutcome(s))
	})

	t.Run("immediate win", func(t *testing.T) {
		s := newState(t, true, 1)

		require.Equal(t, Win, RoughOutcome(s))
	})

	t.Run("no immediate win but a safe move exists", func(t *testing.T) {
		s := newState(t, true, 2)

		require.Equal(t, Draw, RoughOutcome(s))
	})

	t.Run("estimates agree with a two-ply lookahead on side 2", func(t *testing.T) {
		walk(newState(t, true, 2), func(_ *State, _ Cell, s *State) {
			got := RoughOutcome(s)
			if s.StateOver() {
				require.Equal(t, Lose, got)
				return
			}

			winNow, safe := false, false
			for _, move := range s.LegalMoves() {
				child, err := s.Play(move)
				require.NoError(t, err)
				winNow = winNow || child.StateOver()

				reply := false
				for _, answer := range child.LegalMoves() {
					grandchild, err := child.Play(answer)
					require.NoError(t, err)
					reply = reply || grandchild.StateOver()
				}
				safe = safe || !reply
			}
			switch {
			case winNow:
				require.Equal(t, Win, got, "state %s", s)
			case safe:
				require.Equal(t, Draw, got, "state %s", s)
			default:
				require.Equal(t, Lose, got, "state %s", s)
			}
		})
	})
}
