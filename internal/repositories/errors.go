package repositories

import "errors"

// ErrNotFound is returned by every repository when the requested entity does
// not exist. Callers distinguish it from persistence faults with errors.Is.
var ErrNotFound = errors.New("record not found")
