package core

import (
	"fmt"
	"math"
)

type offset struct{ dx, dy int64 }

// Offsets are listed row-major by dy then dx; the zero offset is only used
// when the centre is requested.
var neighborOffsets = [...]offset{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {0, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Neighbors returns the Moore neighbourhood of p clipped to the grid bounds.
// The order is fixed: (-1,-1) (0,-1) (1,-1) (-1,0) [(0,0)] (1,0) (-1,1) (0,1) (1,1).
// It panics if a coordinate of p does not fit in an int64.
func (g *Grid) Neighbors(p Position, includeSelf bool) []Position {
	if uint64(p.X) > math.MaxInt64 || uint64(p.Y) > math.MaxInt64 {
		panic(fmt.Sprintf("core: position %v overflows signed neighbour arithmetic", p))
	}
	x, y := int64(p.X), int64(p.Y)
	n := int64(g.size)

	out := make([]Position, 0, len(neighborOffsets))
	for _, o := range neighborOffsets {
		if o.dx == 0 && o.dy == 0 && !includeSelf {
			continue
		}
		nx, ny := x+o.dx, y+o.dy
		if nx < 0 || ny < 0 || nx >= n || ny >= n {
			continue
		}
		out = append(out, Pos(uint(nx), uint(ny)))
	}
	return out
}

// All reports whether every in-bounds neighbour of p (optionally including p
// itself) satisfies pred.
func (g *Grid) All(p Position, includeSelf bool, pred func(Cell) bool) bool {
	for _, q := range g.Neighbors(p, includeSelf) {
		c, _ := g.Get(q)
		if !pred(c) {
			return false
		}
	}
	return true
}
