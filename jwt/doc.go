// Package jwt decodes the payload segment of a JSON Web Token for inspection.
//
// Decoding never verifies the signature and never reads the header. The
// result must not be used to establish trust in a token; it only exposes the
// claims a token carries.
//
// # Failure model
//
// Every decode failure (wrong segment count, bad base64, bad JSON, a payload
// that is not a JSON object) is reported as [ErrPayloadUndecodable]. The
// underlying cause is logged at debug level and not returned.
package jwt
