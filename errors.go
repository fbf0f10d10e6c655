package vector

import "errors"

// Sentinel errors for resource-class failures. Element-hook failures
// are returned wrapped and can be unwrapped with errors.Is/As.
var (
	// ErrCapacityOverflow is returned when a requested slot count times
	// the element size exceeds the addressable size.
	ErrCapacityOverflow = errors.New("vector: capacity overflow")

	// ErrInvalidCapacity is returned for a negative capacity or size
	// request.
	ErrInvalidCapacity = errors.New("vector: negative capacity")
)
