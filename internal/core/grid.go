package core

// Grid stores a square matrix of cells in row-major order.
type Grid struct {
	size  int
	cells []Cell
}

// NewGrid allocates a size x size grid with every cell empty.
func NewGrid(size int) *Grid {
	if size < 0 {
		size = 0
	}
	return &Grid{size: size, cells: make([]Cell, size*size)}
}

// Size returns the side length of the grid.
func (g *Grid) Size() int { return g.size }

// Contains reports whether p addresses a slot inside the grid.
func (g *Grid) Contains(p Position) bool {
	n := uint(g.size)
	return p.X < n && p.Y < n
}

// Get returns the cell at p. The boolean is false when p lies outside the grid.
func (g *Grid) Get(p Position) (Cell, bool) {
	if !g.Contains(p) {
		return CellEmpty, false
	}
	return g.cells[g.index(p)], true
}

// Set overwrites the cell at p regardless of its previous contents. Positions
// outside the grid are ignored.
func (g *Grid) Set(p Position, c Cell) {
	if !g.Contains(p) {
		return
	}
	g.cells[g.index(p)] = c
}

// PositionsOf lists every position holding c, y ascending then x ascending.
func (g *Grid) PositionsOf(c Cell) []Position {
	var out []Position
	for i, v := range g.cells {
		if v != c {
			continue
		}
		out = append(out, Pos(uint(i%g.size), uint(i/g.size)))
	}
	return out
}

// Count returns how many slots hold c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}
	return n
}

// Clone returns a deep copy that shares no storage with g.
func (g *Grid) Clone() *Grid {
	return &Grid{size: g.size, cells: append([]Cell(nil), g.cells...)}
}

// Reset empties every slot.
func (g *Grid) Reset() {
	for i := range g.cells {
		g.cells[i] = CellEmpty
	}
}

func (g *Grid) index(p Position) int { return int(p.Y)*g.size + int(p.X) }
