package game

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// State is one position of a Stonehenge game. A State is never modified after
// it is created: Play returns a new State and leaves the receiver untouched, so
// states can be shared freely between search branches.
type State struct {
	toMove   Player
	layout   *Layout
	owners   []Player // Indexed by cell
	leyLines []Player // Captor per ley-line, None while uncaptured
}

// NewState returns the initial state of a board with the given side length,
// all cells unclaimed and all ley-lines uncaptured.
func NewState(p1Starts bool, sideLength int) (*State, error) {
	layout, err := LayoutFor(sideLength)
	if err != nil {
		return nil, err
	}
	toMove := P2
	if p1Starts {
		toMove = P1
	}
	return &State{
		toMove:   toMove,
		layout:   layout,
		owners:   make([]Player, layout.NumCells),
		leyLines: make([]Player, len(layout.LeyLines)),
	}, nil
}

// Player returns the player to move.
func (s *State) Player() Player {
	return s.toMove
}

func (s *State) SideLength() int {
	return s.layout.SideLength
}

func (s *State) Layout() *Layout {
	return s.layout
}

// Owner returns the player that claimed c, or None.
func (s *State) Owner(c Cell) Player {
	if !s.layout.Contains(c) {
		return None
	}
	return s.owners[c.index()]
}

// LeyLine returns the captor of ley-line i, or None.
func (s *State) LeyLine(i int) Player {
	return s.leyLines[i]
}

func (s *State) NumLeyLines() int {
	return len(s.leyLines)
}

// Captured counts the ley-lines captured by p.
func (s *State) Captured(p Player) int {
	count := 0
	for _, captor := range s.leyLines {
		if captor == p {
			count++
		}
	}
	return count
}

// StateOver reports whether a player has captured at least half of the ley-lines.
func (s *State) StateOver() bool {
	total := len(s.leyLines)
	return 2*s.Captured(P1) >= total || 2*s.Captured(P2) >= total
}

// LegalMoves returns the unclaimed cells in board order, or nothing once the
// game is over. Searchers break ties by this order.
func (s *State) LegalMoves() []Cell {
	if s.StateOver() {
		return nil
	}
	moves := make([]Cell, 0, len(s.owners))
	for i, owner := range s.owners {
		if owner == None {
			moves = append(moves, cellAt(i))
		}
	}
	return moves
}

func (s *State) IsValidMove(c Cell) bool {
	return slices.Contains(s.LegalMoves(), c)
}

// Play claims c for the player to move and returns the resulting state.
func (s *State) Play(c Cell) (*State, error) {
	if !s.IsValidMove(c) {
		return nil, fmt.Errorf("%w: %s is not available", ErrInvalidMove, c)
	}

	owners := slices.Clone(s.owners)
	owners[c.index()] = s.toMove

	next := &State{
		toMove:   s.toMove.Other(),
		layout:   s.layout,
		owners:   owners,
		leyLines: captureLeyLines(s.layout, owners, s.leyLines),
	}
	return next, nil
}

// captureLeyLines re-evaluates every uncaptured ley-line against owners. A
// captured ley-line keeps its captor. P1 is checked before P2.
func captureLeyLines(layout *Layout, owners []Player, previous []Player) []Player {
	leyLines := slices.Clone(previous)
	for i, members := range layout.LeyLines {
		if leyLines[i] != None {
			continue
		}
		p1, p2 := 0, 0
		for _, cell := range members {
			switch owners[cell] {
			case P1:
				p1++
			case P2:
				p2++
			}
		}
		if 2*p1 >= len(members) {
			leyLines[i] = P1
		} else if 2*p2 >= len(members) {
			leyLines[i] = P2
		}
	}
	return leyLines
}

// Lines renders each row with claimed cells replaced by the owner's marker,
// e.g. ["1B", "C"].
func (s *State) Lines() []string {
	lines := make([]string, len(s.layout.Lines))
	for r, row := range s.layout.Lines {
		var b strings.Builder
		for _, cell := range row {
			if owner := s.owners[cell]; owner != None {
				b.WriteByte(owner.Marker())
			} else {
				b.WriteByte(byte(cellAt(cell)))
			}
		}
		lines[r] = b.String()
	}
	return lines
}

// LeyLineMarkers renders the ley-line captors in layout order, e.g. "1@1@1@".
func (s *State) LeyLineMarkers() string {
	markers := make([]byte, len(s.leyLines))
	for i, captor := range s.leyLines {
		markers[i] = captor.Marker()
	}
	return string(markers)
}

func (s *State) String() string {
	return fmt.Sprintf("p1turn: %t, side length: %d, lines: %v, ley-lines: %s",
		s.toMove == P1, s.layout.SideLength, s.Lines(), s.LeyLineMarkers())
}

// Equal reports whether both states describe the same position.
func (s *State) Equal(other *State) bool {
	if s == nil || other == nil {
		return s == other
	}
	return s.toMove == other.toMove &&
		s.layout.SideLength == other.layout.SideLength &&
		slices.Equal(s.owners, other.owners) &&
		slices.Equal(s.leyLines, other.leyLines)
}
