// Command calendly-uri decodes a Calendly access token without verifying it
// and prints the CALENDLY_USER_URI value derived from its user_uuid claim.
//
// Run:
//
//	go run ./cmd/calendly-uri [-v] [-env NAME] [-dotenv PATH] [token]
//
// The token is taken from the argument, else from $CALENDLY_API_TOKEN (the
// process environment first, then the .env file), else a built-in sample.
// The report goes to stdout and logs go to stderr. Decode failures are
// reported on stdout and still exit 0.
package main

import (
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/MrEthical07/jwtpeek"
	"github.com/MrEthical07/jwtpeek/jwt"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

const (
	exitOK    = 0
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.Getenv))
}

func run(args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	defaults := jwtpeek.DefaultConfig()

	fs := flag.NewFlagSet("calendly-uri", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		verbose  = fs.Bool("v", false, "log debug details to stderr")
		tokenEnv = fs.String("env", defaults.TokenEnv, "environment variable holding the token")
		base     = fs.String("base", defaults.UserURIBase, "prefix for the derived user URI")
		dotenv   = fs.String("dotenv", ".env", "env file consulted after the process environment; empty to skip")
	)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	logger := newLogger(stderr, *verbose)

	cfg := jwtpeek.Config{TokenEnv: *tokenEnv, UserURIBase: *base}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid flags", "error", err)
		return exitUsage
	}

	lookup := envLookup(logger, *dotenv, getenv)
	token, source, err := cfg.ResolveToken(fs.Args(), lookup)
	if err != nil {
		logger.Error("can't resolve token", "error", err)
		fs.Usage()
		return exitUsage
	}
	logger.Debug("token resolved", "source", source, "env", cfg.TokenEnv, "length", len(token))
	if source == jwtpeek.SourceSample {
		logger.Info("no token given, decoding the built-in sample", "env", cfg.TokenEnv)
	}

	payload, decodeErr := jwt.NewDecoder(logger).DecodePayload(token)
	if decodeErr == nil {
		registered := jwt.Inspect(payload)
		logger.Debug("registered claims", "claims", registered)
		if registered.Expired(time.Now()) {
			logger.Warn("token is expired", "exp", registered.ExpiresAt)
		}
	}

	if err := jwtpeek.NewReporter(cfg).Report(stdout, payload, decodeErr); err != nil {
		logger.Error("can't write report", "error", err)
	}
	return exitOK
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !isatty.IsTerminal(f.Fd())
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    noColor,
	}))
}

// envLookup returns getenv backed by the values in path. Variables already
// set in the environment win, as with godotenv.Load.
func envLookup(logger *slog.Logger, path string, getenv func(string) string) func(string) string {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	if path == "" {
		return getenv
	}
	values, err := godotenv.Read(path)
	if err != nil {
		logger.Debug("env file not loaded", "path", path, "error", err)
		return getenv
	}
	logger.Debug("env file loaded", "path", path, "vars", len(values))
	return func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return values[key]
	}
}
