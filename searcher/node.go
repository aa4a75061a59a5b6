package searcher

import "stonehenge/game"

type node struct {
	state    *game.State
	score    game.Score
	scored   bool
	children []*node
}

func newNode(state *game.State) *node {
	return &node{state: state}
}

func (n *node) expand() {
	moves := n.state.LegalMoves()
	n.children = make([]*node, len(moves))
	for i, move := range moves {
		n.children[i] = newNode(play(n.state, move))
	}
}

// negatedScores returns the children's scores from n's point of view.
func (n *node) negatedScores() []game.Score {
	scores := make([]game.Score, len(n.children))
	for i, child := range n.children {
		if !child.scored {
			panic("child scored after its parent")
		}
		scores[i] = -child.score
	}
	return scores
}
