package llrb

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("llrb: invalid configuration")
	// ErrIndexOutOfBounds signals an invalid rank.
	ErrIndexOutOfBounds = errors.New("llrb: index out of bounds")
	// ErrInvalidRange signals an invalid half-open rank interval.
	ErrInvalidRange = errors.New("llrb: invalid range")
	// ErrDuplicateKey is returned by Insert for trees configured with
	// RejectDuplicates if the key is already present.
	ErrDuplicateKey = errors.New("llrb: duplicate key")
	// ErrInvariantViolation is reported by Check for a corrupted tree.
	ErrInvariantViolation = errors.New("llrb: invariant violation")
)
