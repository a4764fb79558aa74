package surfelio

import "errors"

// ErrCorruptStream indicates a Decode call hit end-of-stream before its
// declared surfel count was satisfied.
var ErrCorruptStream = errors.New("surfelio: stream truncated before declared surfel count")
