package core

import "fmt"

// Position addresses a single grid slot. The zero value is the top-left corner.
type Position struct {
	X, Y uint
}

// Pos is a convenience constructor for Position.
func Pos(x, y uint) Position { return Position{X: x, Y: y} }

// Equal reports whether both coordinates match.
func (p Position) Equal(other Position) bool {
	return p.X == other.X && p.Y == other.Y
}

// Chebyshev returns the king-move distance between two positions.
func (p Position) Chebyshev(other Position) uint {
	return max(absDiff(p.X, other.X), absDiff(p.Y, other.Y))
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

func absDiff(a, b uint) uint {
	if a > b {
		return a - b
	}
	return b - a
}
