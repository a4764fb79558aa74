package pvs

import "errors"

// Sentinel errors returned by the grid file and visibility file loaders.
var (
	// ErrCellIndexOutOfRange indicates CellAt was called with an index
	// outside [0, CellCount()).
	ErrCellIndexOutOfRange = errors.New("pvs: cell index out of range")

	// ErrCorruptGridFile indicates a grid file ended before its declared
	// header or cell count could be fully read.
	ErrCorruptGridFile = errors.New("pvs: grid file truncated or malformed")

	// ErrCorruptVisibilityFile indicates a visibility file holds fewer
	// bytes than the grid's cell count times the id count. Bytes past
	// that length are not read, so a longer file is not reported.
	ErrCorruptVisibilityFile = errors.New("pvs: visibility file truncated or malformed")
)
