package claims

import "errors"

var (
	// ErrNotObject is returned when a payload's top-level JSON value is not an object.
	ErrNotObject = errors.New("json value is not an object")
	// ErrInvalidJSON is returned when payload bytes are not well-formed UTF-8 JSON.
	ErrInvalidJSON = errors.New("invalid json")
)
