package game

import "fmt"

// IsOver reports whether s is terminal: a player reached the ley-line
// threshold, or no cell can be claimed.
func IsOver(s *State) bool {
	return s.StateOver() || len(s.LegalMoves()) == 0
}

// IsWinner reports whether p captured at least half of the ley-lines in the
// terminal state s.
func IsWinner(s *State, p Player) (bool, error) {
	if !IsOver(s) {
		return false, fmt.Errorf("%w: cannot decide winner of %s", ErrNotOver, s)
	}
	return 2*s.Captured(p) >= s.NumLeyLines(), nil
}

// Winner returns the winner of s, or None while the game is running or when it
// ended without either player reaching the threshold.
func Winner(s *State) Player {
	for _, p := range []Player{P1, P2} {
		if won, err := IsWinner(s, p); err == nil && won {
			return p
		}
	}
	return None
}

// Outcome scores a terminal state for its player to move. The previous mover
// completed the game, so a decided game is a loss for the player to move
// unless that player holds the majority.
func Outcome(s *State) Score {
	switch Winner(s) {
	case s.Player():
		return Win
	case s.Player().Other():
		return Lose
	}
	return Draw
}
