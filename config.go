package jwtpeek

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	// DefaultTokenEnv is the environment variable the token is read from when
	// no argument is given. It is the variable the Calendly integration uses
	// for its API token.
	DefaultTokenEnv = "CALENDLY_API_TOKEN"
	// DefaultUserURIBase is prefixed to user_uuid to form the user URI.
	DefaultUserURIBase = "https://api.calendly.com/users/"
)

// SampleToken is decoded when no token is supplied. Its header and payload
// are those of a Calendly personal access token; the signature segment is a
// placeholder, so the token is not a usable credential.
const SampleToken = "eyJraWQiOiIxY2UxZTEzNjE3ZGNmNzY2YjNjZWJjY2Y4ZGM1YmFmYThhNjVlNjg0MDIzZjdjMzJiZTgzNDliMjM4MDEzNWI0IiwidHlwIjoiUEFUIiwiYWxnIjoiRVMyNTYifQ" +
	".eyJpc3MiOiJodHRwczovL2F1dGguY2FsZW5kbHkuY29tIiwiaWF0IjoxNzU2MzAxNDA2LCJqdGkiOiJiMzE2OTUyNS03MmNmLTQ3NDktYjBlNC03NTE2ODM0N2IxYjQiLCJ1c2VyX3V1aWQiOiJlOGQ1ODk4Zi1iOGQxLTQ4ZDQtOTRmOC01YjU4YjJjZDczOWQifQ" +
	".c2FtcGxlLXNpZ25hdHVyZQ"

// TokenSource records where a resolved token came from.
type TokenSource int

const (
	// SourceSample means no token was supplied and SampleToken was used.
	SourceSample TokenSource = iota
	// SourceArgument means the token was the positional argument.
	SourceArgument
	// SourceEnvironment means the token came from the TokenEnv variable.
	SourceEnvironment
)

// String returns a lowercase name for logs.
func (s TokenSource) String() string {
	switch s {
	case SourceArgument:
		return "argument"
	case SourceEnvironment:
		return "environment"
	default:
		return "sample"
	}
}

// Config controls where the token is read from and how the user URI is built.
type Config struct {
	// TokenEnv names the environment variable holding the token.
	TokenEnv string

	// UserURIBase is prefixed to user_uuid. It must end with /.
	UserURIBase string
}

// DefaultConfig returns the Calendly defaults.
func DefaultConfig() Config {
	return Config{
		TokenEnv:    DefaultTokenEnv,
		UserURIBase: DefaultUserURIBase,
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if strings.TrimSpace(c.TokenEnv) == "" {
		return fmt.Errorf("%w: TokenEnv must not be blank", ErrInvalidConfig)
	}
	if strings.ContainsAny(c.TokenEnv, "= \t\n") {
		return fmt.Errorf("%w: TokenEnv %q is not a valid variable name", ErrInvalidConfig, c.TokenEnv)
	}

	u, err := url.Parse(c.UserURIBase)
	if err != nil {
		return fmt.Errorf("%w: UserURIBase: %w", ErrInvalidConfig, err)
	}
	if u.Scheme != "https" || u.Host == "" {
		return fmt.Errorf("%w: UserURIBase must be an absolute https URL", ErrInvalidConfig)
	}
	if !strings.HasSuffix(c.UserURIBase, "/") {
		return fmt.Errorf("%w: UserURIBase must end with /", ErrInvalidConfig)
	}
	return nil
}

// ResolveToken picks the token to decode: the single positional argument if
// present, else the value of TokenEnv from getenv, else SampleToken.
// Surrounding whitespace is trimmed in all cases.
func (c Config) ResolveToken(args []string, getenv func(string) string) (string, TokenSource, error) {
	if len(args) > 1 {
		return "", SourceSample, ErrTooManyArgs
	}
	if len(args) == 1 {
		return strings.TrimSpace(args[0]), SourceArgument, nil
	}
	if getenv != nil {
		if token := strings.TrimSpace(getenv(c.TokenEnv)); token != "" {
			return token, SourceEnvironment, nil
		}
	}
	return SampleToken, SourceSample, nil
}
