package surfel

import "errors"

// Sentinel errors for the surfel package.
var (
	// ErrIndexOutOfRange names an index outside [0, Length()).
	// MemArray's ReadSurfel and Set do not return it; they panic on such
	// an index, like slice indexing.
	ErrIndexOutOfRange = errors.New("surfel: index out of range")

	// ErrIdenticalEndpoints indicates NewEdge was given two equal
	// SurfelIds; an edge must join two distinct surfels.
	ErrIdenticalEndpoints = errors.New("surfel: edge endpoints must be distinct")
)
