package grid

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// OpenCell is the structure-file marker for a fillable cell; any other
// character blocks the cell.
const OpenCell = '_'

// ParseStructure reads a structure description: one text line per grid
// row, with '_' marking open cells. Short lines are padded with blocked
// cells so the mask comes out rectangular.
func ParseStructure(r io.Reader) (*Grid, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading structure: %w", err)
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	width := 0
	for _, line := range lines {
		if len(line) > width {
			width = len(line)
		}
	}
	open := make([][]bool, len(lines))
	for i, line := range lines {
		open[i] = make([]bool, width)
		for j := 0; j < len(line); j++ {
			open[i][j] = line[j] == OpenCell
		}
	}
	return NewGrid(open)
}

// LoadStructure parses a structure file from disk.
func LoadStructure(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseStructure(f)
}
