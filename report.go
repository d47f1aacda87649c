package jwtpeek

import (
	"bytes"
	"io"

	"github.com/MrEthical07/jwtpeek/claims"
)

const (
	// UserUUIDClaim is the payload key the user URI is derived from.
	UserUUIDClaim = "user_uuid"

	payloadHeading   = "🔍 Decoded JWT payload:"
	uriHeading       = "📋 Your Calendly URIs should be:"
	userURIVar       = "CALENDLY_USER_URI"
	organizationNote = "To get organization URI, you'll need the API call to work."
	failureLine      = "❌ Failed to decode JWT token"
)

// Reporter renders decode results for a human reader.
type Reporter struct {
	userURIBase string
}

// NewReporter returns a Reporter that builds URIs from cfg.UserURIBase.
func NewReporter(cfg Config) *Reporter {
	return &Reporter{userURIBase: cfg.UserURIBase}
}

// Report renders with DefaultConfig.
func Report(w io.Writer, payload *claims.Object, decodeErr error) error {
	return NewReporter(DefaultConfig()).Report(w, payload, decodeErr)
}

// Report writes the outcome of a decode to w.
//
// A non-nil decodeErr or a nil payload produces the single failure line.
// Otherwise the payload is printed as indented JSON, followed by the
// CALENDLY_USER_URI assignment when the payload has a user_uuid claim.
//
// Report returns only errors from w, or from rendering the payload. Nothing
// is written to w when rendering fails.
func (r *Reporter) Report(w io.Writer, payload *claims.Object, decodeErr error) error {
	var buf bytes.Buffer

	if decodeErr != nil || payload == nil {
		buf.WriteString(failureLine)
		buf.WriteByte('\n')
		_, err := w.Write(buf.Bytes())
		return err
	}

	body, err := payload.Indent("", "  ")
	if err != nil {
		return err
	}
	buf.WriteString(payloadHeading)
	buf.WriteByte('\n')
	buf.Write(body)
	buf.WriteByte('\n')

	if uri, ok := r.UserURI(payload); ok {
		buf.WriteString("\n" + uriHeading + "\n")
		buf.WriteString(userURIVar + `="` + uri + `"` + "\n")
		buf.WriteString("\n" + organizationNote + "\n")
	}

	_, err = w.Write(buf.Bytes())
	return err
}

// UserURI returns the Calendly user URI derived from the payload's user_uuid
// claim. A string claim is used verbatim; any other value is used as its JSON
// text, so null stays null. The second result is false when the claim is
// absent.
func (r *Reporter) UserURI(payload *claims.Object) (string, bool) {
	v, ok := payload.Get(UserUUIDClaim)
	if !ok {
		return "", false
	}
	id, isString := v.AsString()
	if !isString {
		id = v.String()
	}
	return r.userURIBase + id, true
}
