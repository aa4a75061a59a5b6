package game

// RoughOutcome estimates the best result the player to move in s can secure by
// looking at most two moves ahead:
//   - Lose when s is already over
//   - Win when some move ends the game
//   - Draw when some move leaves the opponent without a game-ending reply
//   - Lose otherwise
func RoughOutcome(s *State) Score {
	if s.StateOver() {
		return Lose
	}

	children := successors(s)
	for _, child := range children {
		if child.StateOver() {
			return Win
		}
	}

	for _, child := range children {
		if !hasFinishingMove(child) {
			return Draw
		}
	}
	return Lose
}

func hasFinishingMove(s *State) bool {
	for _, child := range successors(s) {
		if child.StateOver() {
			return true
		}
	}
	return false
}

func successors(s *State) []*State {
	moves := s.LegalMoves()
	children := make([]*State, 0, len(moves))
	for _, move := range moves {
		child, err := s.Play(move)
		if err != nil {
			panic(err) // Legal moves always apply
		}
		children = append(children, child)
	}
	return children
}
