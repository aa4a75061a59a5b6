package game

import (
	"encoding/json"
	"fmt"
)

type stateJSON struct {
	P1Turn     bool     `json:"p1_turn"`
	SideLength int      `json:"side_length"`
	Lines      []string `json:"lines"`
	LeyLines   string   `json:"ley_lines"`
}

func (s *State) MarshalJSON() ([]byte, error) {
	return json.Marshal(stateJSON{
		P1Turn:     s.toMove == P1,
		SideLength: s.layout.SideLength,
		Lines:      s.Lines(),
		LeyLines:   s.LeyLineMarkers(),
	})
}

// UnmarshalJSON decodes a state in the form produced by MarshalJSON and
// rejects positions that no sequence of moves could reach.
func (s *State) UnmarshalJSON(data []byte) error {
	var raw stateJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}
	decoded, err := decodeState(raw)
	if err != nil {
		return err
	}
	*s = *decoded
	return nil
}

func decodeState(raw stateJSON) (*State, error) {
	layout, err := LayoutFor(raw.SideLength)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidState, err)
	}

	if len(raw.Lines) != len(layout.Lines) {
		return nil, fmt.Errorf("%w: got %d lines, want %d", ErrInvalidState, len(raw.Lines), len(layout.Lines))
	}
	owners := make([]Player, layout.NumCells)
	for r, row := range layout.Lines {
		text := raw.Lines[r]
		if len(text) != len(row) {
			return nil, fmt.Errorf("%w: line %d is %q, want %d cells", ErrInvalidState, r, text, len(row))
		}
		for k, cell := range row {
			switch text[k] {
			case byte(cellAt(cell)):
			case P1.Marker():
				owners[cell] = P1
			case P2.Marker():
				owners[cell] = P2
			default:
				return nil, fmt.Errorf("%w: unexpected %q at cell %s", ErrInvalidState, text[k], cellAt(cell))
			}
		}
	}

	if len(raw.LeyLines) != len(layout.LeyLines) {
		return nil, fmt.Errorf("%w: got %d ley-lines, want %d", ErrInvalidState, len(raw.LeyLines), len(layout.LeyLines))
	}
	leyLines := make([]Player, len(layout.LeyLines))
	for i := range leyLines {
		captor, ok := playerFromMarker(raw.LeyLines[i])
		if !ok {
			return nil, fmt.Errorf("%w: unexpected ley-line marker %q", ErrInvalidState, raw.LeyLines[i])
		}
		leyLines[i] = captor
	}

	toMove := P2
	if raw.P1Turn {
		toMove = P1
	}
	s := &State{toMove: toMove, layout: layout, owners: owners, leyLines: leyLines}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// validate checks the invariants maintained by Play: captured ley-lines are
// held by their captor, no uncaptured ley-line is due for capture, at most one
// player won and nobody moved after that, and turns alternate.
func (s *State) validate() error {
	for i, members := range s.layout.LeyLines {
		held := map[Player]int{}
		for _, cell := range members {
			held[s.owners[cell]]++
		}
		captor := s.leyLines[i]
		if captor != None && 2*held[captor] < len(members) {
			return fmt.Errorf("%w: ley-line %d captured by %s without a majority", ErrInvalidState, i, captor)
		}
		if captor == None && (2*held[P1] >= len(members) || 2*held[P2] >= len(members)) {
			return fmt.Errorf("%w: ley-line %d should have been captured", ErrInvalidState, i)
		}
	}

	// Only the mover gains ley-lines and play stops at the threshold, so a
	// decided game has one winner and it is the player who just moved.
	total := len(s.leyLines)
	p1Won, p2Won := 2*s.Captured(P1) >= total, 2*s.Captured(P2) >= total
	if p1Won && p2Won {
		return fmt.Errorf("%w: both players hold half of the ley-lines", ErrInvalidState)
	}
	if (p1Won && s.toMove == P1) || (p2Won && s.toMove == P2) {
		return fmt.Errorf("%w: %s kept playing after %s won", ErrInvalidState, s.toMove.Other(), s.toMove)
	}

	p1, p2 := 0, 0
	for _, owner := range s.owners {
		switch owner {
		case P1:
			p1++
		case P2:
			p2++
		}
	}
	switch p1 - p2 {
	case 0:
	case 1:
		if s.toMove != P2 {
			return fmt.Errorf("%w: p1 has an extra cell but is to move", ErrInvalidState)
		}
	case -1:
		if s.toMove != P1 {
			return fmt.Errorf("%w: p2 has an extra cell but is to move", ErrInvalidState)
		}
	default:
		return fmt.Errorf("%w: p1 holds %d cells and p2 holds %d", ErrInvalidState, p1, p2)
	}
	return nil
}
