package serial

import "errors"

// Errors returned by File operations.
var (
	// ErrShortRead indicates a read or skip reached past the end of the
	// file's data. The cursor is left where it was.
	ErrShortRead = errors.New("read past end of serialized data")
)
