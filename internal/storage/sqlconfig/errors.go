package sqlconfig

import "errors"

// ErrNotFound is returned when a lookup or delete matches no row.
var ErrNotFound = errors.New("record not found")
