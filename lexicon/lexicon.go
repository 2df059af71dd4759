// Package lexicon holds the candidate vocabulary for a fill. Words are
// uppercased and deduplicated on the way in; the solver assumes a
// normalized, duplicate-free word set.
package lexicon

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type Lexicon struct {
	words    []string
	set      map[string]struct{}
	byLength map[int][]string
}

var upper = cases.Upper(language.Und)

// New builds a lexicon from raw words. Input is uppercased with a
// language-neutral caser, blank entries are dropped, and duplicates
// after normalization collapse to one entry.
func New(raw []string) *Lexicon {
	normalized := make([]string, 0, len(raw))
	for _, w := range raw {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		normalized = append(normalized, upper.String(w))
	}
	words := lo.Uniq(normalized)
	sort.Strings(words)

	lex := &Lexicon{
		words:    words,
		set:      make(map[string]struct{}, len(words)),
		byLength: map[int][]string{},
	}
	for _, w := range words {
		lex.set[w] = struct{}{}
		n := len([]rune(w))
		lex.byLength[n] = append(lex.byLength[n], w)
	}
	return lex
}

// Load reads a word list, one word per line.
func Load(r io.Reader) (*Lexicon, error) {
	var raw []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		raw = append(raw, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading word list: %w", err)
	}
	return New(raw), nil
}

// LoadFile reads a word list file from disk.
func LoadFile(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f)
}

func (l *Lexicon) Has(word string) bool {
	_, ok := l.set[word]
	return ok
}

func (l *Lexicon) Size() int {
	return len(l.words)
}

// Words returns every word in sorted order. Callers must not mutate the
// returned slice.
func (l *Lexicon) Words() []string {
	return l.words
}

// OfLength returns the words of exactly n runes, in sorted order.
func (l *Lexicon) OfLength(n int) []string {
	return l.byLength[n]
}
