package colony

import (
	"errors"
	"fmt"
)

var (
	// ErrCapacity reports that the grid cannot hold the requested bases.
	ErrCapacity = errors.New("colony: not enough room for bases")
	// ErrInvalidCount reports a negative base count.
	ErrInvalidCount = errors.New("colony: invalid base count")
)

// CapacityError describes a failed base placement. It matches ErrCapacity.
type CapacityError struct {
	Size      int
	Requested int
	Placed    int
	Attempts  int
}

func (e *CapacityError) Error() string {
	if e.Attempts == 0 {
		return fmt.Sprintf("%v: %d bases requested on a %dx%d grid, at most %d fit",
			ErrCapacity, e.Requested, e.Size, e.Size, MaxBases(e.Size))
	}
	return fmt.Sprintf("%v: base %d of %d not placed after %d attempts on a %dx%d grid",
		ErrCapacity, e.Placed+1, e.Requested, e.Attempts, e.Size, e.Size)
}

// Is lets errors.Is match CapacityError against ErrCapacity.
func (e *CapacityError) Is(target error) bool { return target == ErrCapacity }
