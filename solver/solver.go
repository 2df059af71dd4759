// Package solver fills a crossword grid from a vocabulary by treating
// the puzzle as a constraint satisfaction problem: node consistency and
// AC-3 prune each slot's candidate words, then heuristic backtracking
// search assigns one word per slot.
package solver

import (
	"errors"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/BarnabasNovak1/crosswordpuzzle/grid"
	"github.com/BarnabasNovak1/crosswordpuzzle/lexicon"
)

// ErrNoSolution is the unsatisfiable outcome. It covers both an emptied
// domain during propagation and exhausted search; callers check it with
// errors.Is.
var ErrNoSolution = errors.New("no solution found")

// An Assignment maps slots to their chosen words. It may be partial
// while search is in flight; Solve only ever returns complete ones.
type Assignment map[grid.Slot]string

// Stats are counters for one solve session.
type Stats struct {
	Nodes      int
	Backtracks int
	Revisions  int
	Elapsed    time.Duration
}

// Solve fills the grid from the vocabulary in one shot. Callers that
// want the session's counters afterwards use NewFiller directly.
func Solve(g *grid.Grid, lex *lexicon.Lexicon) (Assignment, error) {
	return NewFiller(g, lex).Solve()
}

// A Filler is one solving session over an immutable grid. It owns the
// per-slot candidate domains, which only ever shrink.
type Filler struct {
	g       *grid.Grid
	domains map[grid.Slot]map[string]struct{}
	letters map[string][]rune
	stats   Stats
}

// NewFiller seeds every slot's domain with the full vocabulary. The
// grid is shared read-only; the domains belong to this session alone.
func NewFiller(g *grid.Grid, lex *lexicon.Lexicon) *Filler {
	f := &Filler{
		g:       g,
		domains: make(map[grid.Slot]map[string]struct{}, len(g.Slots())),
		letters: make(map[string][]rune, lex.Size()),
	}
	for _, w := range lex.Words() {
		f.letters[w] = []rune(w)
	}
	for _, slot := range g.Slots() {
		domain := make(map[string]struct{}, lex.Size())
		for _, w := range lex.Words() {
			domain[w] = struct{}{}
		}
		f.domains[slot] = domain
	}
	return f
}

// Domain returns the slot's surviving candidates in sorted order.
func (f *Filler) Domain(slot grid.Slot) []string {
	words := make([]string, 0, len(f.domains[slot]))
	for w := range f.domains[slot] {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

func (f *Filler) Stats() Stats {
	return f.stats
}

// NodeConsistency drops every candidate whose length differs from its
// slot's length. Purely unary; must run before AC3.
func (f *Filler) NodeConsistency() {
	for slot, domain := range f.domains {
		for w := range domain {
			if len(f.letters[w]) != slot.Length {
				delete(domain, w)
			}
		}
	}
}

// Revise makes x arc-consistent with respect to y: any candidate of x
// with no compatible partner at the shared cell in y's domain is
// removed. Reports whether the domain of x changed. Leaving the domain
// empty is a legitimate outcome the caller must check for.
func (f *Filler) Revise(x, y grid.Slot) bool {
	ov, ok := f.g.Overlap(x, y)
	if !ok {
		return false
	}
	f.stats.Revisions++
	revised := false
	for wx := range f.domains[x] {
		supported := false
		for wy := range f.domains[y] {
			if f.letters[wx][ov.XIdx] == f.letters[wy][ov.YIdx] {
				supported = true
				break
			}
		}
		if !supported {
			delete(f.domains[x], wx)
			revised = true
		}
	}
	return revised
}

// AC3 enforces arc consistency over the whole grid. A nil worklist
// means all arcs; passing an explicit worklist lets callers re-check a
// subset. The worklist is processed LIFO; order only affects how much
// rework happens, not the fixed point. Returns false as soon as any
// domain empties.
func (f *Filler) AC3(arcs [][2]grid.Slot) bool {
	if arcs == nil {
		for _, x := range f.g.Slots() {
			for _, y := range f.g.Neighbors(x) {
				arcs = append(arcs, [2]grid.Slot{x, y})
			}
		}
	}

	for len(arcs) > 0 {
		arc := arcs[len(arcs)-1]
		arcs = arcs[:len(arcs)-1]
		x, y := arc[0], arc[1]
		if !f.Revise(x, y) {
			continue
		}
		if len(f.domains[x]) == 0 {
			return false
		}
		// Shrinking x may break previously established support for
		// x's other neighbors.
		for _, z := range f.g.Neighbors(x) {
			if z != y {
				arcs = append(arcs, [2]grid.Slot{z, x})
			}
		}
	}
	return true
}

// Solve runs the full pipeline: node consistency, AC-3, then
// backtracking search from an empty assignment. The first complete
// consistent assignment wins.
func (f *Filler) Solve() (Assignment, error) {
	start := time.Now()
	f.NodeConsistency()
	if !f.AC3(nil) {
		f.stats.Elapsed = time.Since(start)
		log.Debug().Int("revisions", f.stats.Revisions).
			Msg("propagation emptied a domain; unsatisfiable")
		return nil, ErrNoSolution
	}
	solution := f.backtrack(Assignment{})
	f.stats.Elapsed = time.Since(start)
	log.Debug().
		Int("nodes", f.stats.Nodes).
		Int("backtracks", f.stats.Backtracks).
		Int("revisions", f.stats.Revisions).
		Dur("elapsed", f.stats.Elapsed).
		Bool("solved", solution != nil).
		Msg("fill finished")
	if solution == nil {
		return nil, ErrNoSolution
	}
	return solution, nil
}
