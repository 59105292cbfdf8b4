package goplatsel

import "log/slog"

// Option configures a Selector.
type Option func(*selectorConfig) error

// selectorConfig holds all Selector configuration.
type selectorConfig struct {
	// lenientVersions enables semver-flavored query version strings
	// ("v1.2.3", "1.2.3-rc1") via platver.ParseLenient.
	lenientVersions bool

	// logger is the structured logger for debug output.
	// If nil, logging is disabled (silent mode).
	//
	// We take a *slog.Logger rather than defining a logging interface:
	// slog already separates frontend from backend, so callers can plug
	// in zap, zerolog, etc. via handlers. See https://go.dev/blog/slog
	logger *slog.Logger
}

// WithLenientVersions accepts semver-flavored version strings in queries,
// such as a leading "v" or prerelease/build metadata, truncating them to
// their release components. The strict dotted-integer grammar still
// applies to anything it can parse.
func WithLenientVersions() Option {
	return func(c *selectorConfig) error {
		c.lenientVersions = true
		return nil
	}
}

// WithLogger sets a structured logger for selection decisions.
// Pass nil (or omit the option) for silent operation:
//
//	sel, err := goplatsel.NewSelector(tax, reg,
//	    goplatsel.WithLogger(slog.Default().With("component", "platsel")))
func WithLogger(logger *slog.Logger) Option {
	return func(c *selectorConfig) error {
		c.logger = logger
		return nil
	}
}
