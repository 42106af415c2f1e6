package bytestr

import "errors"

// Errors returned by serialization operations.
var (
	// ErrRecordTooLarge indicates a persisted record declared a length above
	// MaxRecordLen. The record is treated as corrupt and no content memory
	// is allocated for it.
	ErrRecordTooLarge = errors.New("serialized record exceeds maximum length")
)
