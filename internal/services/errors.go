package services

import "errors"

// ErrInvalidInput is returned when a request fails validation. Nothing is
// persisted when it is returned.
var ErrInvalidInput = errors.New("invalid input")
