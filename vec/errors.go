package vec

import "errors"

var (
	// ErrCapacityOverflow indicates a requested capacity whose byte size
	// exceeds the addressable span.
	ErrCapacityOverflow = errors.New("vec: capacity overflow")

	// ErrLengthMismatch indicates a conversion whose target size does not
	// match the array's current length.
	ErrLengthMismatch = errors.New("vec: length mismatch")
)
