package core

import (
	"io"
	"strings"
)

// Render draws the grid as text, one line per row. Every column is prefixed by
// '|' and the row is closed with a trailing '|', e.g. "| |B| |".
func (g *Grid) Render() string {
	var b strings.Builder
	b.Grow(g.size * (2*g.size + 2))
	for y := 0; y < g.size; y++ {
		row := g.cells[y*g.size : (y+1)*g.size]
		for _, c := range row {
			b.WriteByte('|')
			b.WriteRune(c.Rune())
		}
		b.WriteString("|\n")
	}
	return b.String()
}

// WriteTo writes the rendered grid to w.
func (g *Grid) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, g.Render())
	return int64(n), err
}
