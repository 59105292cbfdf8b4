package goplatsel

import (
	"fmt"
	"log/slog"

	"github.com/albertocavalcante/go-platsel/dispatch"
	"github.com/albertocavalcante/go-platsel/platver"
	"github.com/albertocavalcante/go-platsel/taxonomy"
)

// Aliases for the core types, so facade users can stay in one package.
type (
	// Query describes the platform a caller is dispatching on.
	Query = dispatch.Query

	// Criterion is the composite key an entry is registered under.
	Criterion = dispatch.Criterion

	// Handler is an opaque callable bound to a Criterion.
	Handler = dispatch.Handler
)

// Selector binds a taxonomy and a registry and answers selection queries
// from raw version strings. Construct it once during setup; afterwards
// it is safe for concurrent use.
type Selector struct {
	tax *taxonomy.Taxonomy
	reg *dispatch.Registry
	cfg selectorConfig
}

// NewSelector builds a Selector over tax and reg. It seals the registry:
// handing a registry to a Selector is the transition from building to
// read-only, and registration fails afterwards.
func NewSelector(tax *taxonomy.Taxonomy, reg *dispatch.Registry, opts ...Option) (*Selector, error) {
	if tax == nil {
		return nil, fmt.Errorf("new selector: taxonomy is nil")
	}
	if reg == nil {
		return nil, fmt.Errorf("new selector: registry is nil")
	}

	var cfg selectorConfig
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, fmt.Errorf("new selector: %w", err)
		}
	}

	reg.Seal()
	return &Selector{tax: tax, reg: reg, cfg: cfg}, nil
}

// Select parses the query version strings, picks the best-matching
// registry entry, and invokes its handler with the query and extra
// arguments. Empty version strings mean the fact is absent and satisfy
// only Any specs. Handler results and errors propagate unchanged; a
// query matching nothing in a registry without a default fails with
// *dispatch.NotFoundError.
func (s *Selector) Select(family, familyVersion, version string, extra ...any) (any, error) {
	q, err := s.parseQuery(family, familyVersion, version)
	if err != nil {
		return nil, err
	}

	s.log("dispatching", slog.String("query", q.String()))
	result, err := s.reg.Select(s.tax, q, extra...)
	if err != nil {
		s.log("dispatch failed", slog.String("query", q.String()), slog.Any("error", err))
		return nil, err
	}
	return result, nil
}

// Explain parses the query version strings and returns every matching
// entry ordered most specific first, for diagnostics.
func (s *Selector) Explain(family, familyVersion, version string) ([]dispatch.Candidate, error) {
	q, err := s.parseQuery(family, familyVersion, version)
	if err != nil {
		return nil, err
	}
	return s.reg.Explain(s.tax, q), nil
}

// Taxonomy returns the bound taxonomy.
func (s *Selector) Taxonomy() *taxonomy.Taxonomy {
	return s.tax
}

// parseQuery converts raw query strings into a Query. Empty version
// strings become nil (absent) vectors.
func (s *Selector) parseQuery(family, familyVersion, version string) (Query, error) {
	fv, err := s.parseVersion(familyVersion)
	if err != nil {
		return Query{}, fmt.Errorf("family version: %w", err)
	}
	v, err := s.parseVersion(version)
	if err != nil {
		return Query{}, fmt.Errorf("component version: %w", err)
	}
	return Query{Family: family, FamilyVersion: fv, Version: v}, nil
}

func (s *Selector) parseVersion(raw string) (platver.Vector, error) {
	if raw == "" {
		return nil, nil
	}
	if s.cfg.lenientVersions {
		return platver.ParseLenient(raw)
	}
	return platver.Parse(raw)
}

func (s *Selector) log(msg string, args ...any) {
	if s.cfg.logger != nil {
		s.cfg.logger.Debug(msg, args...)
	}
}
