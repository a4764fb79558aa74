package vecmath

import "errors"

// Sentinel errors for vecmath operations.
var (
	// ErrZeroVector indicates that Normalize was asked to normalize a
	// vector whose length is (numerically) zero.
	ErrZeroVector = errors.New("vecmath: cannot normalize a zero-length vector")
)
