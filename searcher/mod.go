package searcher

import (
	"errors"
	"stonehenge/game"
)

// ErrNoMoves is returned when asked for a move in a finished game.
var ErrNoMoves = errors.New("no legal moves")

// Searcher picks a move for the player to move in a state.
type Searcher interface {
	FindNextMove(state *game.State) (game.Cell, error)
}

func play(state *game.State, move game.Cell) *game.State {
	child, err := state.Play(move)
	if err != nil {
		panic(err) // Moves come from state.LegalMoves()
	}
	return child
}
