package searcher

import (
	"stonehenge/game"
	"stonehenge/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

const RecursiveAlgorithm = "recursive"

// Recursive searches the full game tree with negamax: a state is worth the
// best negated value of its children.
type Recursive struct {
	config
}

func NewRecursive(options ...Option) *Recursive {
	return &Recursive{config: newConfig(options)}
}

func (r *Recursive) FindNextMove(state *game.State) (game.Cell, error) {
	if game.IsOver(state) {
		return game.InvalidCell, ErrNoMoves
	}

	r.metrics.Start(RecursiveAlgorithm)
	moves := state.LegalMoves()
	scores := r.childScores(state, moves)
	best := utils.ArgMax(scores)
	metric := r.metrics.Complete()

	log.Debug().
		Str("algorithm", RecursiveAlgorithm).
		Str("move", moves[best].String()).
		Stringer("score", scores[best]).
		Int("expanded", metric.Expanded).
		Int("terminals", metric.Terminals).
		Msg("found move")
	return moves[best], nil
}

// Value returns the game value of state for its player to move.
func (r *Recursive) Value(state *game.State) game.Score {
	if game.IsOver(state) {
		r.metrics.AddTerminal()
		return game.Outcome(state)
	}
	return slices.Max(r.childScores(state, state.LegalMoves()))
}

func (r *Recursive) childScores(state *game.State, moves []game.Cell) []game.Score {
	r.metrics.AddExpansion()
	scores := make([]game.Score, len(moves))
	for i, move := range moves {
		scores[i] = -r.Value(play(state, move))
	}
	return scores
}
