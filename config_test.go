package jwtpeek

import (
	"errors"
	"testing"

	"github.com/MrEthical07/jwtpeek/jwt"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantValid bool
	}{
		{
			name:      "defaults valid",
			mutate:    func(c *Config) {},
			wantValid: true,
		},
		{
			name: "custom env valid",
			mutate: func(c *Config) {
				c.TokenEnv = "CALENDLY_PAT"
			},
			wantValid: true,
		},
		{
			name: "blank env invalid",
			mutate: func(c *Config) {
				c.TokenEnv = "   "
			},
			wantValid: false,
		},
		{
			name: "env with equals invalid",
			mutate: func(c *Config) {
				c.TokenEnv = "A=B"
			},
			wantValid: false,
		},
		{
			name: "staging base valid",
			mutate: func(c *Config) {
				c.UserURIBase = "https://api.staging.calendly.com/users/"
			},
			wantValid: true,
		},
		{
			name: "http base invalid",
			mutate: func(c *Config) {
				c.UserURIBase = "http://api.calendly.com/users/"
			},
			wantValid: false,
		},
		{
			name: "relative base invalid",
			mutate: func(c *Config) {
				c.UserURIBase = "/users/"
			},
			wantValid: false,
		},
		{
			name: "base without trailing slash invalid",
			mutate: func(c *Config) {
				c.UserURIBase = "https://api.calendly.com/users"
			},
			wantValid: false,
		},
		{
			name: "unparsable base invalid",
			mutate: func(c *Config) {
				c.UserURIBase = "https://api.calendly.com/%zz/"
			},
			wantValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantValid && err != nil {
				t.Fatalf("expected valid config, got %v", err)
			}
			if !tt.wantValid {
				if err == nil {
					t.Fatal("expected invalid config")
				}
				if !errors.Is(err, ErrInvalidConfig) {
					t.Fatalf("expected ErrInvalidConfig, got %v", err)
				}
			}
		})
	}
}

func TestResolveToken(t *testing.T) {
	env := map[string]string{
		DefaultTokenEnv: "  env.token.value \n",
		"EMPTY":         "   ",
	}
	getenv := func(k string) string { return env[k] }

	tests := []struct {
		name       string
		tokenEnv   string
		args       []string
		getenv     func(string) string
		wantToken  string
		wantSource TokenSource
		wantErr    error
	}{
		{name: "argument wins", tokenEnv: DefaultTokenEnv, args: []string{" arg.token.value "}, getenv: getenv, wantToken: "arg.token.value", wantSource: SourceArgument},
		{name: "environment", tokenEnv: DefaultTokenEnv, getenv: getenv, wantToken: "env.token.value", wantSource: SourceEnvironment},
		{name: "blank environment falls back", tokenEnv: "EMPTY", getenv: getenv, wantToken: SampleToken, wantSource: SourceSample},
		{name: "unset environment falls back", tokenEnv: "UNSET", getenv: getenv, wantToken: SampleToken, wantSource: SourceSample},
		{name: "nil getenv falls back", tokenEnv: DefaultTokenEnv, wantToken: SampleToken, wantSource: SourceSample},
		{name: "too many args", tokenEnv: DefaultTokenEnv, args: []string{"a", "b"}, getenv: getenv, wantErr: ErrTooManyArgs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.TokenEnv = tt.tokenEnv
			token, source, err := cfg.ResolveToken(tt.args, tt.getenv)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected error %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr != nil {
				return
			}
			if token != tt.wantToken {
				t.Fatalf("expected token %q, got %q", tt.wantToken, token)
			}
			if source != tt.wantSource {
				t.Fatalf("expected source %s, got %s", tt.wantSource, source)
			}
		})
	}
}

func TestSampleTokenDecodes(t *testing.T) {
	payload, err := jwt.DecodePayload(SampleToken)
	if err != nil {
		t.Fatalf("decode sample token: %v", err)
	}
	want := []string{"iss", "iat", "jti", "user_uuid"}
	got := payload.Keys()
	if len(got) != len(want) {
		t.Fatalf("expected keys %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected keys %v, got %v", want, got)
		}
	}
}
