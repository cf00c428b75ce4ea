package browse

import "errors"

// Sentinel errors.
var (
	ErrOutOfBounds = errors.New("index out of range")
	ErrNoValue     = errors.New("no value to browse")
)
