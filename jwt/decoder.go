package jwt

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/MrEthical07/jwtpeek/claims"
	gjwt "github.com/golang-jwt/jwt/v5"
)

const segmentCount = 3

// Decoder extracts token payloads without verification.
//
// A Decoder holds no mutable state and is safe for concurrent use.
type Decoder struct {
	parser *gjwt.Parser
	logger *slog.Logger
}

// NewDecoder returns a Decoder that logs failure causes to logger. A nil
// logger means slog.Default at call time.
func NewDecoder(logger *slog.Logger) *Decoder {
	return &Decoder{
		// Padding allowed: segments are padded with '=' up to a multiple of
		// four and decoded with the padded URL-safe alphabet.
		parser: gjwt.NewParser(gjwt.WithPaddingAllowed()),
		logger: logger,
	}
}

var defaultDecoder = NewDecoder(nil)

// DecodePayload decodes the payload segment of token using a Decoder that
// logs through slog.Default.
func DecodePayload(token string) (*claims.Object, error) {
	return defaultDecoder.DecodePayload(token)
}

// DecodePayload splits token into its three segments, base64url-decodes the
// middle one and parses it as a JSON object.
//
// DecodePayload returns ErrPayloadUndecodable for every failure.
func (d *Decoder) DecodePayload(token string) (*claims.Object, error) {
	payload, err := d.decode(token)
	if err != nil {
		d.log().Debug("jwt payload undecodable", "error", err)
		return nil, ErrPayloadUndecodable
	}
	return payload, nil
}

func (d *Decoder) decode(token string) (*claims.Object, error) {
	_, segment, _, err := SplitToken(token)
	if err != nil {
		return nil, err
	}

	raw, err := d.parser.DecodeSegment(segment)
	if err != nil {
		return nil, fmt.Errorf("decode payload segment: %w", err)
	}
	d.log().Debug("jwt payload segment decoded", "segment_len", len(segment), "bytes", len(raw))

	payload, err := claims.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse payload: %w", err)
	}
	return payload, nil
}

func (d *Decoder) log() *slog.Logger {
	if d.logger != nil {
		return d.logger
	}
	return slog.Default()
}

// SplitToken splits a compact JWT into header, payload and signature
// segments. Segments are returned as-is, without decoding.
func SplitToken(token string) (header, payload, signature string, err error) {
	parts := strings.Split(token, ".")
	if len(parts) != segmentCount {
		return "", "", "", fmt.Errorf("%w: %d segments, want %d", ErrMalformedToken, len(parts), segmentCount)
	}
	return parts[0], parts[1], parts[2], nil
}
