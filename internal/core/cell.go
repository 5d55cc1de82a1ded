package core

// Cell enumerates what occupies a grid slot.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellBase
	CellTree
	CellWorker
)

// Rune returns the single character used when rendering the cell as text.
func (c Cell) Rune() rune {
	switch c {
	case CellEmpty:
		return ' '
	case CellBase:
		return 'B'
	case CellTree:
		return 'T'
	case CellWorker:
		return 'W'
	default:
		return '?'
	}
}

func (c Cell) String() string {
	switch c {
	case CellEmpty:
		return "empty"
	case CellBase:
		return "base"
	case CellTree:
		return "tree"
	case CellWorker:
		return "worker"
	default:
		return "unknown"
	}
}
