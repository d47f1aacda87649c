package jwt

import "errors"

var (
	// ErrPayloadUndecodable is the only error returned by DecodePayload.
	ErrPayloadUndecodable = errors.New("jwt payload undecodable")
	// ErrMalformedToken is returned by SplitToken when a token does not have three segments.
	ErrMalformedToken = errors.New("malformed token")
)
