package grid

import (
	"errors"
	"sort"
)

// An Overlap is the single cell two crossing slots share, recorded as the
// index of that cell within each slot's cell sequence.
type Overlap struct {
	XIdx int
	YIdx int
}

// A Grid is the full puzzle graph: the open-cell mask, every discovered
// slot, and the pairwise overlap table. It is built once and read-only
// afterwards, so it is safe to share between concurrent solve sessions.
type Grid struct {
	height   int
	width    int
	open     [][]bool
	slots    []Slot
	overlaps map[[2]Slot]Overlap
	adjacent map[Slot][]Slot
}

var ErrEmptyGrid = errors.New("grid has no cells")
var errRagged = errors.New("grid mask is not rectangular")

// NewGrid builds the puzzle graph from a rectangular open-cell mask.
// Slot discovery finds every maximal run of open cells of length >= 2 in
// each orientation; isolated single cells never become slots.
func NewGrid(open [][]bool) (*Grid, error) {
	if len(open) == 0 || len(open[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	height := len(open)
	width := len(open[0])
	for _, row := range open {
		if len(row) != width {
			return nil, errRagged
		}
	}

	g := &Grid{
		height:   height,
		width:    width,
		open:     open,
		overlaps: map[[2]Slot]Overlap{},
		adjacent: map[Slot][]Slot{},
	}
	g.findSlots()
	g.computeOverlaps()
	return g, nil
}

func (g *Grid) findSlots() {
	for i := 0; i < g.height; i++ {
		for j := 0; j < g.width; j++ {
			if !g.open[i][j] {
				continue
			}
			// A cell anchors a down slot iff the cell above is blocked
			// or out of range; symmetric for across.
			if i == 0 || !g.open[i-1][j] {
				length := 1
				for k := i + 1; k < g.height && g.open[k][j]; k++ {
					length++
				}
				if length > 1 {
					g.slots = append(g.slots, Slot{Row: i, Col: j, Dir: Down, Length: length})
				}
			}
			if j == 0 || !g.open[i][j-1] {
				length := 1
				for k := j + 1; k < g.width && g.open[i][k]; k++ {
					length++
				}
				if length > 1 {
					g.slots = append(g.slots, Slot{Row: i, Col: j, Dir: Across, Length: length})
				}
			}
		}
	}
	// Scan order is already deterministic; sort anyway so the slot list
	// ordering is part of the contract.
	sort.Slice(g.slots, func(a, b int) bool {
		sa, sb := g.slots[a], g.slots[b]
		if sa.Row != sb.Row {
			return sa.Row < sb.Row
		}
		if sa.Col != sb.Col {
			return sa.Col < sb.Col
		}
		return sa.Dir < sb.Dir
	})
}

func (g *Grid) computeOverlaps() {
	for _, x := range g.slots {
		for _, y := range g.slots {
			if x == y {
				continue
			}
			// Slots are straight lines in orthogonal orientations, so
			// they share at most one cell.
			xcells, ycells := x.Cells(), y.Cells()
			found := false
			for xi, xc := range xcells {
				for yi, yc := range ycells {
					if xc == yc {
						g.overlaps[[2]Slot{x, y}] = Overlap{XIdx: xi, YIdx: yi}
						found = true
						break
					}
				}
				if found {
					break
				}
			}
			if found {
				g.adjacent[x] = append(g.adjacent[x], y)
			}
		}
	}
}

func (g *Grid) Height() int { return g.height }
func (g *Grid) Width() int  { return g.width }

// Open reports whether the cell at (row, col) is fillable.
func (g *Grid) Open(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width && g.open[row][col]
}

// Slots returns every slot in the grid, ordered by row, column, then
// direction. Callers must not mutate the returned slice.
func (g *Grid) Slots() []Slot {
	return g.slots
}

// Overlap returns the shared-cell index pair for the ordered slot pair
// (x, y). The second return is false when the slots do not cross.
func (g *Grid) Overlap(x, y Slot) (Overlap, bool) {
	ov, ok := g.overlaps[[2]Slot{x, y}]
	return ov, ok
}

// Neighbors returns every slot crossing s, excluding s itself. Callers
// must not mutate the returned slice.
func (g *Grid) Neighbors(s Slot) []Slot {
	return g.adjacent[s]
}

// LetterGrid projects a partial or complete assignment onto the grid:
// one rune per cell, zero for blocked or unfilled cells. It is the read
// surface for display and export.
func (g *Grid) LetterGrid(assignment map[Slot]string) [][]rune {
	letters := make([][]rune, g.height)
	for i := range letters {
		letters[i] = make([]rune, g.width)
	}
	for slot, word := range assignment {
		runes := []rune(word)
		for k, cell := range slot.Cells() {
			if k < len(runes) {
				letters[cell.Row][cell.Col] = runes[k]
			}
		}
	}
	return letters
}
