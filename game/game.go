package game

// Instructions describes the rules to a human player.
const Instructions = "Players take turns claiming cells. When a player captures at " +
	"least half of the cells in a ley-line, then the player captures that " +
	"ley-line. The first player to capture at least half of the ley-lines " +
	"is the winner."

// Game is the game-facing side of a match: it tracks the current state and
// exposes the operations strategies and the engine work with.
type Game struct {
	CurrentState *State
}

// NewGame starts a game on a board of the given side length.
func NewGame(p1Starts bool, sideLength int) (*Game, error) {
	state, err := NewState(p1Starts, sideLength)
	if err != nil {
		return nil, err
	}
	return &Game{CurrentState: state}, nil
}

func (g *Game) Instructions() string {
	return Instructions
}

// LegalMoves returns the moves available in the current state.
func (g *Game) LegalMoves() []Cell {
	return g.CurrentState.LegalMoves()
}

// Play applies move to the current state. On error the current state is kept.
func (g *Game) Play(move Cell) error {
	next, err := g.CurrentState.Play(move)
	if err != nil {
		return err
	}
	g.CurrentState = next
	return nil
}

// IsOver reports whether state is terminal.
func (g *Game) IsOver(state *State) bool {
	return IsOver(state)
}

// IsWinner reports whether player won the current state.
func (g *Game) IsWinner(player Player) (bool, error) {
	return IsWinner(g.CurrentState, player)
}

// StrToMove converts user input to a move, or InvalidCell when the input does
// not name a cell of this board.
func (g *Game) StrToMove(text string) Cell {
	c := ParseCell(text)
	if c == InvalidCell || !g.CurrentState.Layout().Contains(c) {
		return InvalidCell
	}
	return c
}
