package searcher

import (
	"stonehenge/game"
	"stonehenge/utils"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

const IterativeAlgorithm = "iterative"

// Iterative computes the same decision as Recursive with an explicit stack of
// tree nodes instead of the call stack. Nodes are scored in post-order: an
// unexpanded node is pushed back beneath its children, and scored from them
// once it surfaces again.
type Iterative struct {
	config
}

func NewIterative(options ...Option) *Iterative {
	return &Iterative{config: newConfig(options)}
}

func (it *Iterative) FindNextMove(state *game.State) (game.Cell, error) {
	if game.IsOver(state) {
		return game.InvalidCell, ErrNoMoves
	}

	it.metrics.Start(IterativeAlgorithm)
	root := newNode(state)
	it.score(root)

	scores := root.negatedScores()
	best := utils.ArgMax(scores)
	move := state.LegalMoves()[best]
	metric := it.metrics.Complete()

	log.Debug().
		Str("algorithm", IterativeAlgorithm).
		Str("move", move.String()).
		Stringer("score", scores[best]).
		Int("expanded", metric.Expanded).
		Int("terminals", metric.Terminals).
		Msg("found move")
	return move, nil
}

// Value returns the game value of state for its player to move.
func (it *Iterative) Value(state *game.State) game.Score {
	root := newNode(state)
	it.score(root)
	return root.score
}

func (it *Iterative) score(root *node) {
	stack := []*node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch {
		case len(n.children) > 0:
			n.score = slices.Max(n.negatedScores())
			n.scored = true
			// Only the scores of n's children are needed from here on
			for _, child := range n.children {
				child.children = nil
			}
		case game.IsOver(n.state):
			it.metrics.AddTerminal()
			n.score = game.Outcome(n.state)
			n.scored = true
		default:
			it.metrics.AddExpansion()
			n.expand()
			stack = append(stack, n)
			stack = append(stack, n.children...)
		}
	}
}
