package grid

import (
	"strings"
	"testing"

	"github.com/matryer/is"
	"lukechampine.com/frand"
)

func mustParse(t *testing.T, lines ...string) *Grid {
	t.Helper()
	g, err := ParseStructure(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestNewSlotLength(t *testing.T) {
	is := is.New(t)
	_, err := NewSlot(0, 0, Across, 0)
	is.True(err != nil)
	s, err := NewSlot(2, 3, Down, 4)
	is.NoErr(err)
	is.Equal(s.Length, 4)
}

func TestCells(t *testing.T) {
	is := is.New(t)
	across := Slot{Row: 1, Col: 2, Dir: Across, Length: 3}
	is.Equal(across.Cells(), []Cell{{1, 2}, {1, 3}, {1, 4}})

	down := Slot{Row: 1, Col: 2, Dir: Down, Length: 3}
	is.Equal(down.Cells(), []Cell{{1, 2}, {2, 2}, {3, 2}})
}

func TestFindSlotsSingleRow(t *testing.T) {
	is := is.New(t)
	g := mustParse(t, "___")
	is.Equal(g.Slots(), []Slot{{Row: 0, Col: 0, Dir: Across, Length: 3}})
}

func TestFindSlotsCrossing(t *testing.T) {
	is := is.New(t)
	g := mustParse(t,
		"___",
		"._.",
		"._.",
	)
	is.Equal(g.Slots(), []Slot{
		{Row: 0, Col: 0, Dir: Across, Length: 3},
		{Row: 0, Col: 1, Dir: Down, Length: 3},
	})

	across := g.Slots()[0]
	down := g.Slots()[1]
	ov, ok := g.Overlap(across, down)
	is.True(ok)
	is.Equal(ov, Overlap{XIdx: 1, YIdx: 0})

	ov, ok = g.Overlap(down, across)
	is.True(ok)
	is.Equal(ov, Overlap{XIdx: 0, YIdx: 1})
}

func TestIsolatedCellsAreNotSlots(t *testing.T) {
	is := is.New(t)
	g := mustParse(t, "_._")
	is.Equal(len(g.Slots()), 0)

	g = mustParse(t, "_")
	is.Equal(len(g.Slots()), 0)
}

func TestRaggedLinesArePadded(t *testing.T) {
	is := is.New(t)
	g := mustParse(t,
		"___",
		"_",
	)
	is.Equal(g.Width(), 3)
	is.Equal(g.Height(), 2)
	is.True(!g.Open(1, 1))
	is.Equal(g.Slots(), []Slot{
		{Row: 0, Col: 0, Dir: Across, Length: 3},
		{Row: 0, Col: 0, Dir: Down, Length: 2},
	})
}

func TestParseEmpty(t *testing.T) {
	is := is.New(t)
	_, err := ParseStructure(strings.NewReader(""))
	is.Equal(err, ErrEmptyGrid)
}

func TestNeighborsExcludesSelf(t *testing.T) {
	is := is.New(t)
	g := mustParse(t,
		"___",
		"._.",
		"._.",
	)
	across := g.Slots()[0]
	down := g.Slots()[1]
	is.Equal(g.Neighbors(across), []Slot{down})
	is.Equal(g.Neighbors(down), []Slot{across})
}

// Every overlap must be symmetric: present both ways, naming the same
// physical cell through each slot's index.
func checkOverlapSymmetry(t *testing.T, g *Grid) {
	t.Helper()
	is := is.New(t)
	for _, a := range g.Slots() {
		for _, b := range g.Slots() {
			if a == b {
				continue
			}
			ab, okAB := g.Overlap(a, b)
			ba, okBA := g.Overlap(b, a)
			is.Equal(okAB, okBA)
			if !okAB {
				continue
			}
			is.Equal(ab.XIdx, ba.YIdx)
			is.Equal(ab.YIdx, ba.XIdx)
			is.Equal(a.Cells()[ab.XIdx], b.Cells()[ab.YIdx])
		}
	}
}

func TestOverlapSymmetry(t *testing.T) {
	g := mustParse(t,
		"____.",
		"_..._",
		"____.",
		"_.._.",
	)
	checkOverlapSymmetry(t, g)
}

func TestOverlapSymmetryRandomized(t *testing.T) {
	for trial := 0; trial < 200; trial++ {
		height := 2 + frand.Intn(6)
		width := 2 + frand.Intn(6)
		open := make([][]bool, height)
		for i := range open {
			open[i] = make([]bool, width)
			for j := range open[i] {
				open[i][j] = frand.Intn(100) < 60
			}
		}
		g, err := NewGrid(open)
		if err != nil {
			t.Fatal(err)
		}
		checkOverlapSymmetry(t, g)

		// Every slot's cells must be open, in range, and distinct.
		is := is.New(t)
		for _, slot := range g.Slots() {
			seen := map[Cell]bool{}
			for _, cell := range slot.Cells() {
				is.True(g.Open(cell.Row, cell.Col))
				is.True(!seen[cell])
				seen[cell] = true
			}
		}
	}
}

func TestLetterGridPartial(t *testing.T) {
	is := is.New(t)
	g := mustParse(t,
		"___",
		"._.",
		"._.",
	)
	across := g.Slots()[0]
	letters := g.LetterGrid(map[Slot]string{across: "CAT"})
	is.Equal(letters[0], []rune{'C', 'A', 'T'})
	is.Equal(letters[1][1], rune(0))
	is.Equal(letters[2][1], rune(0))
}
