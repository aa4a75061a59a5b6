package game

import (
	"fmt"
	"stonehenge/meta"
)

// Layout is the static geometry of a board: the rows of cells and the ley-line
// memberships. It depends only on the side length and is shared by every state
// of a game.
type Layout struct {
	SideLength int
	NumCells   int
	Lines      [][]int // Cell indices per row, top to bottom
	LeyLines   [][]int // Horizontal family, then right diagonals, then left diagonals
}

var layouts = buildLayouts()

func buildLayouts() []*Layout {
	all := make([]*Layout, meta.MAX_SIDE_LENGTH+1)
	for n := meta.MIN_SIDE_LENGTH; n <= meta.MAX_SIDE_LENGTH; n++ {
		all[n] = newLayout(n)
	}
	return all
}

// LayoutFor returns the shared layout for side length n.
func LayoutFor(n int) (*Layout, error) {
	if n < meta.MIN_SIDE_LENGTH || n > meta.MAX_SIDE_LENGTH {
		return nil, fmt.Errorf("%w: got %d, want %d..%d", ErrSideLength, n, meta.MIN_SIDE_LENGTH, meta.MAX_SIDE_LENGTH)
	}
	return layouts[n], nil
}

func newLayout(n int) *Layout {
	l := &Layout{SideLength: n}

	// Rows 0..n-1 hold r+2 cells, the bottom row holds n
	next := 0
	for r := 0; r <= n; r++ {
		size := r + 2
		if r == n {
			size = n
		}
		row := make([]int, size)
		for i := range row {
			row[i] = next
			next++
		}
		l.Lines = append(l.Lines, row)
	}
	l.NumCells = next

	// Horizontal ley-lines are the rows themselves
	for _, row := range l.Lines {
		l.LeyLines = append(l.LeyLines, append([]int(nil), row...))
	}

	// Right diagonals: column a, with the bottom row shifted one position right
	right := make([][]int, n+1)
	for r, row := range l.Lines {
		shift := 0
		if r == n {
			shift = 1
		}
		for k, cell := range row {
			right[k+shift] = append(right[k+shift], cell)
		}
	}
	l.LeyLines = append(l.LeyLines, right...)

	// Left diagonals: row b shifted right by n-1-b, bottom row unshifted
	left := make([][]int, n+1)
	for r, row := range l.Lines {
		shift := n - 1 - r
		if r == n {
			shift = 0
		}
		for k, cell := range row {
			left[k+shift] = append(left[k+shift], cell)
		}
	}
	l.LeyLines = append(l.LeyLines, left...)

	return l
}

// Cells returns every cell label of the board in canonical order.
func (l *Layout) Cells() []Cell {
	cells := make([]Cell, l.NumCells)
	for i := range cells {
		cells[i] = cellAt(i)
	}
	return cells
}

// Contains reports whether c is a cell of this board.
func (l *Layout) Contains(c Cell) bool {
	i := c.index()
	return i >= 0 && i < l.NumCells
}

// LeyLineCells returns the labels of the cells making up ley-line i.
func (l *Layout) LeyLineCells(i int) []Cell {
	cells := make([]Cell, len(l.LeyLines[i]))
	for k, idx := range l.LeyLines[i] {
		cells[k] = cellAt(idx)
	}
	return cells
}
