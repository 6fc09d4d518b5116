package club

import "errors"

// ErrNotFound is returned when a referenced tournament, player or standing
// does not exist in the store.
var ErrNotFound = errors.New("record not found")
