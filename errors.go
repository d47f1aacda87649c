package jwtpeek

import "errors"

var (
	// ErrTooManyArgs is returned when more than one token argument is given.
	ErrTooManyArgs = errors.New("too many arguments: expected at most one token")
	// ErrInvalidConfig wraps every Config validation failure.
	ErrInvalidConfig = errors.New("invalid config")
)
