// Package render draws a filled (or partially filled) grid, either as
// terminal text or as a PNG image. It is a pure projection of the
// assignment; unassigned cells come out unfilled, never as an error.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/BarnabasNovak1/crosswordpuzzle/grid"
)

const (
	// BlockedCell is how blocked cells render in terminal output.
	BlockedCell = '█'

	cellSize   = 32
	cellBorder = 2
)

// Text renders the assignment as one text line per grid row: blocked
// cells as a full block, unfilled open cells as a space.
func Text(g *grid.Grid, assignment map[grid.Slot]string) string {
	letters := g.LetterGrid(assignment)
	var sb strings.Builder
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if !g.Open(row, col) {
				sb.WriteRune(BlockedCell)
			} else if letters[row][col] != 0 {
				sb.WriteRune(letters[row][col])
			} else {
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

// PNG encodes the assignment as an image: white open cells on a black
// canvas, with each cell's letter centered in it.
func PNG(g *grid.Grid, assignment map[grid.Slot]string, w io.Writer) error {
	letters := g.LetterGrid(assignment)
	img := image.NewRGBA(image.Rect(0, 0, g.Width()*cellSize, g.Height()*cellSize))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	face := basicfont.Face7x13
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			if !g.Open(row, col) {
				continue
			}
			cell := image.Rect(
				col*cellSize+cellBorder, row*cellSize+cellBorder,
				(col+1)*cellSize-cellBorder, (row+1)*cellSize-cellBorder,
			)
			draw.Draw(img, cell, image.NewUniform(color.White), image.Point{}, draw.Src)

			if letters[row][col] == 0 {
				continue
			}
			s := string(letters[row][col])
			width := font.MeasureString(face, s).Ceil()
			d := &font.Drawer{
				Dst:  img,
				Src:  image.NewUniform(color.Black),
				Face: face,
				Dot: fixed.P(
					col*cellSize+(cellSize-width)/2,
					row*cellSize+(cellSize+face.Metrics().Ascent.Ceil())/2,
				),
			}
			d.DrawString(s)
		}
	}
	return png.Encode(w, img)
}
