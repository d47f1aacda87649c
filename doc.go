// Package jwtpeek prints the claims of a Calendly access token and the user
// URI derived from its user_uuid claim.
//
// The token is decoded with [jwt.DecodePayload]; its signature is never
// verified. The output is meant for a human setting up CALENDLY_USER_URI, not
// for authentication decisions.
//
// # Architecture boundaries
//
// jwtpeek is the public surface. It exposes [Config], [Reporter], and the
// sentinel errors. Token decoding lives in the jwt sub-package and JSON value
// handling in the claims sub-package.
//
// # What this package must NOT do
//
//   - Call the Calendly API or any other remote service.
//   - Treat a decoded payload as trusted.
//   - Write anywhere except the io.Writer it is given.
package jwtpeek
