package game

import (
	"errors"
	"strings"
)

// Player identifies the owner of a cell or the captor of a ley-line. None marks
// an unclaimed cell or an uncaptured ley-line.
type Player uint8

const (
	None Player = iota
	P1
	P2
)

func (p Player) String() string {
	switch p {
	case P1:
		return "p1"
	case P2:
		return "p2"
	}
	return "none"
}

// Other returns the opponent of p. None has no opponent.
func (p Player) Other() Player {
	switch p {
	case P1:
		return P2
	case P2:
		return P1
	}
	return None
}

// Marker is the single character used for p on the textual board: '1', '2' or '@'.
func (p Player) Marker() byte {
	switch p {
	case P1:
		return '1'
	case P2:
		return '2'
	}
	return '@'
}

func playerFromMarker(m byte) (Player, bool) {
	switch m {
	case '1':
		return P1, true
	case '2':
		return P2, true
	case '@':
		return None, true
	}
	return None, false
}

// ParsePlayer accepts "p1"/"p2" (case-insensitive) or "1"/"2".
func ParsePlayer(s string) (Player, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "p1", "1":
		return P1, nil
	case "p2", "2":
		return P2, nil
	}
	return None, errors.New("unknown player " + s)
}

// Cell is a board cell label, 'A' for the first cell of the top row.
type Cell byte

// InvalidCell is the move returned when text does not name a cell.
const InvalidCell Cell = 0

func (c Cell) String() string {
	if c == InvalidCell {
		return "<invalid>"
	}
	return string(rune(c))
}

func (c Cell) index() int {
	return int(c) - 'A'
}

func cellAt(i int) Cell {
	return Cell('A' + i)
}

// ParseCell returns the cell named by text, or InvalidCell when text is not a
// single upper-case letter. Whether the cell exists on a given board is up to
// the state to decide.
func ParseCell(text string) Cell {
	text = strings.TrimSpace(text)
	if len(text) != 1 || text[0] < 'A' || text[0] > 'Z' {
		return InvalidCell
	}
	return Cell(text[0])
}

// Score is a game value from the perspective of the player to move.
type Score int

const (
	Lose Score = -1
	Draw Score = 0
	Win  Score = 1
)

func (s Score) String() string {
	switch {
	case s > 0:
		return "win"
	case s < 0:
		return "lose"
	}
	return "draw"
}

var (
	// ErrSideLength is returned when a board is requested outside the supported range.
	ErrSideLength = errors.New("side length out of range")
	// ErrInvalidMove is returned when a move names a cell that is not a legal move.
	ErrInvalidMove = errors.New("invalid move")
	// ErrNotOver is returned when a winner is requested before the game is over.
	ErrNotOver = errors.New("game is not over")
	// ErrInvalidState is returned when an encoded state violates the board invariants.
	ErrInvalidState = errors.New("invalid state")
)

// Evaluate scores a state from the perspective of its player to move.
type Evaluate func(*State) Score
