package history

import "errors"

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("generation record not found")
