// Package claims models the dynamic JSON content of a token payload.
//
// A payload is an [Object]: an ordered mapping from claim names to [Value]s.
// Key order is the order in which keys first appeared in the decoded JSON
// text, so re-rendering a payload reproduces the issuer's layout.
//
// # Architecture boundaries
//
// This package only decodes and renders JSON. It does NOT split tokens,
// decode base64 segments, or interpret registered claims; those belong to
// the jwt package.
package claims
