package jwt

import (
	"log/slog"
	"time"

	"github.com/MrEthical07/jwtpeek/claims"
	gjwt "github.com/golang-jwt/jwt/v5"
)

// Registered is a best-effort view of the RFC 7519 registered claims found in
// a payload. Claims that are absent or malformed are left zero.
type Registered struct {
	Issuer    string
	Subject   string
	Audience  []string
	IssuedAt  time.Time
	ExpiresAt time.Time
	NotBefore time.Time
}

// Inspect reads the registered claims of payload. It never fails: a payload
// with malformed registered claims still decodes, it only lacks those fields
// here.
func Inspect(payload *claims.Object) Registered {
	mc := gjwt.MapClaims(payload.Map())

	var r Registered
	r.Issuer, _ = mc.GetIssuer()
	r.Subject, _ = mc.GetSubject()
	if aud, err := mc.GetAudience(); err == nil {
		r.Audience = aud
	}
	r.IssuedAt = numericTime(mc.GetIssuedAt())
	r.ExpiresAt = numericTime(mc.GetExpirationTime())
	r.NotBefore = numericTime(mc.GetNotBefore())
	return r
}

func numericTime(d *gjwt.NumericDate, err error) time.Time {
	if err != nil || d == nil {
		return time.Time{}
	}
	return d.Time
}

// Expired reports whether the payload carried an exp claim that is before now.
func (r Registered) Expired(now time.Time) bool {
	return !r.ExpiresAt.IsZero() && now.After(r.ExpiresAt)
}

// LogValue implements slog.LogValuer, emitting only the claims that are set.
func (r Registered) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, 6)
	if r.Issuer != "" {
		attrs = append(attrs, slog.String("iss", r.Issuer))
	}
	if r.Subject != "" {
		attrs = append(attrs, slog.String("sub", r.Subject))
	}
	if len(r.Audience) > 0 {
		attrs = append(attrs, slog.Any("aud", r.Audience))
	}
	if !r.IssuedAt.IsZero() {
		attrs = append(attrs, slog.Time("iat", r.IssuedAt))
	}
	if !r.ExpiresAt.IsZero() {
		attrs = append(attrs, slog.Time("exp", r.ExpiresAt))
	}
	if !r.NotBefore.IsZero() {
		attrs = append(attrs, slog.Time("nbf", r.NotBefore))
	}
	return slog.GroupValue(attrs...)
}
