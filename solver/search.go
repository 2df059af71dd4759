package solver

import (
	"sort"

	"github.com/BarnabasNovak1/crosswordpuzzle/grid"
)

// backtrack is a depth-first search over partial assignments. Variable
// and value ordering come from selectUnassigned and orderDomainValues;
// domains are not re-propagated per step, so every tentative assignment
// is checked against the already-assigned neighbors directly.
func (f *Filler) backtrack(assignment Assignment) Assignment {
	if len(assignment) == len(f.g.Slots()) {
		return assignment
	}
	f.stats.Nodes++

	slot, ok := f.selectUnassigned(assignment)
	if !ok {
		return nil
	}
	for _, word := range f.orderDomainValues(slot, assignment) {
		assignment[slot] = word
		if f.consistent(assignment) {
			if result := f.backtrack(assignment); result != nil {
				return result
			}
		}
		delete(assignment, slot)
		f.stats.Backtracks++
	}
	return nil
}

// selectUnassigned picks the next slot to fill: fewest remaining
// candidates first (MRV), most neighbors on ties (degree). It rescans
// the slot list every call; slot order breaks any remaining tie, which
// keeps the search deterministic.
func (f *Filler) selectUnassigned(assignment Assignment) (grid.Slot, bool) {
	var best grid.Slot
	found := false
	for _, slot := range f.g.Slots() {
		if _, assigned := assignment[slot]; assigned {
			continue
		}
		if !found {
			best = slot
			found = true
			continue
		}
		ds, db := len(f.domains[slot]), len(f.domains[best])
		if ds < db || (ds == db && len(f.g.Neighbors(slot)) > len(f.g.Neighbors(best))) {
			best = slot
		}
	}
	return best, found
}

// orderDomainValues sorts the slot's candidates least-constraining
// first: ascending by how many candidates each would knock out of the
// unassigned neighbors' domains at the shared cell. The counting is
// read-only; nothing is removed here. Already-assigned neighbors are
// skipped entirely since their values are fixed. Ties fall back to
// lexicographic order so reruns agree.
func (f *Filler) orderDomainValues(slot grid.Slot, assignment Assignment) []string {
	type scored struct {
		word       string
		eliminated int
	}
	candidates := make([]scored, 0, len(f.domains[slot]))
	for w := range f.domains[slot] {
		candidates = append(candidates, scored{word: w})
	}

	for i := range candidates {
		wr := f.letters[candidates[i].word]
		for _, neighbor := range f.g.Neighbors(slot) {
			if _, assigned := assignment[neighbor]; assigned {
				continue
			}
			ov, ok := f.g.Overlap(slot, neighbor)
			if !ok {
				continue
			}
			for wn := range f.domains[neighbor] {
				if wr[ov.XIdx] != f.letters[wn][ov.YIdx] {
					candidates[i].eliminated++
				}
			}
		}
	}

	sort.Slice(candidates, func(a, b int) bool {
		if candidates[a].eliminated != candidates[b].eliminated {
			return candidates[a].eliminated < candidates[b].eliminated
		}
		return candidates[a].word < candidates[b].word
	})

	words := make([]string, len(candidates))
	for i, c := range candidates {
		words[i] = c.word
	}
	return words
}

// consistent checks the whole partial assignment: no word used twice,
// every word matching its slot's length, and agreeing letters at every
// assigned crossing.
func (f *Filler) consistent(assignment Assignment) bool {
	used := make(map[string]struct{}, len(assignment))
	for slot, word := range assignment {
		if _, dup := used[word]; dup {
			return false
		}
		used[word] = struct{}{}

		if len(f.letters[word]) != slot.Length {
			return false
		}
		for _, neighbor := range f.g.Neighbors(slot) {
			other, assigned := assignment[neighbor]
			if !assigned {
				continue
			}
			ov, ok := f.g.Overlap(slot, neighbor)
			if !ok {
				continue
			}
			if f.letters[word][ov.XIdx] != f.letters[other][ov.YIdx] {
				return false
			}
		}
	}
	return true
}
