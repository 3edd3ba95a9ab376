package fixed

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned by checked element access.
	ErrOutOfRange = errors.New("fixed: index out of range")

	// ErrLength is returned when a slice does not match the vector length.
	ErrLength = errors.New("fixed: length mismatch")
)

func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: index %d, length %d", ErrOutOfRange, i, n)
	}
	return nil
}
