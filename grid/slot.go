package grid

import (
	"errors"
	"fmt"
)

// Direction is the orientation of a slot in the grid.
type Direction uint8

const (
	Across Direction = iota
	Down
)

func (d Direction) String() string {
	if d == Across {
		return "across"
	} else if d == Down {
		return "down"
	}
	return "none"
}

// A Cell is a (row, col) coordinate in the grid.
type Cell struct {
	Row int
	Col int
}

// A Slot is a single fillable word position: a maximal run of open cells
// in one orientation. Slots are plain value types; struct equality gives
// the identity contract, so they can be used directly as map keys.
type Slot struct {
	Row    int
	Col    int
	Dir    Direction
	Length int
}

var errBadLength = errors.New("slot length must be at least 1")

// NewSlot creates a slot anchored at (row, col). Geometry validity (the
// run staying inside the grid, over open cells) is the grid builder's
// responsibility; only the length contract is checked here.
func NewSlot(row, col int, dir Direction, length int) (Slot, error) {
	if length < 1 {
		return Slot{}, errBadLength
	}
	return Slot{Row: row, Col: col, Dir: dir, Length: length}, nil
}

// Cells returns the ordered coordinates the slot occupies; entry k is
// (Row+k, Col) for a down slot and (Row, Col+k) for an across slot.
func (s Slot) Cells() []Cell {
	cells := make([]Cell, s.Length)
	for k := 0; k < s.Length; k++ {
		if s.Dir == Down {
			cells[k] = Cell{Row: s.Row + k, Col: s.Col}
		} else {
			cells[k] = Cell{Row: s.Row, Col: s.Col + k}
		}
	}
	return cells
}

func (s Slot) String() string {
	return fmt.Sprintf("(%d, %d) %v : %d", s.Row, s.Col, s.Dir, s.Length)
}
