package dispatch

import (
	"errors"
	"fmt"

	"github.com/albertocavalcante/go-platsel/platver"
	"github.com/albertocavalcante/go-platsel/taxonomy"
)

// Sentinel errors for registry misuse.
var (
	// ErrDuplicateDefault indicates a second default handler registration.
	ErrDuplicateDefault = errors.New("default handler already registered")

	// ErrSealed indicates registration on a sealed registry.
	ErrSealed = errors.New("registry is sealed")

	// ErrNilHandler indicates a nil handler registration.
	ErrNilHandler = errors.New("handler is nil")
)

// Query describes the platform a caller is dispatching on: the current
// platform family tag, the platform's own version, and the version of
// the component being provisioned. Either vector may be nil when the
// fact is unknown; a nil vector satisfies only Any specs.
type Query struct {
	Family        taxonomy.Tag
	FamilyVersion platver.Vector
	Version       platver.Vector
}

// String renders the query as "family@familyVersion/version" with "_"
// for absent versions.
func (q Query) String() string {
	fv, v := "_", "_"
	if q.FamilyVersion != nil {
		fv = q.FamilyVersion.String()
	}
	if q.Version != nil {
		v = q.Version.String()
	}
	return q.Family + "@" + fv + "/" + v
}

// Criterion is the composite key an entry is registered under. Family is
// matched through the taxonomy's is-a relation, so an entry for "linux"
// applies to any tag that inherits from it. The zero-value specs are
// Any, leaving the corresponding version unconstrained.
type Criterion struct {
	Family        taxonomy.Tag
	FamilyVersion platver.Spec
	Version       platver.Spec
}

// String renders the criterion as "family@familySpec/spec".
func (c Criterion) String() string {
	return c.Family + "@" + c.FamilyVersion.String() + "/" + c.Version.String()
}

// matches reports whether the criterion admits the query under tax.
func (c Criterion) matches(tax *taxonomy.Taxonomy, q Query) bool {
	return tax.IsA(q.Family, c.Family) &&
		c.FamilyVersion.Matches(q.FamilyVersion) &&
		c.Version.Matches(q.Version)
}

// Handler is an opaque callable bound to a Criterion. Select invokes the
// winning handler with the original query and any extra arguments; its
// result and error pass through Select unchanged.
type Handler func(q Query, extra ...any) (any, error)

// NotFoundError reports a query that matched no entry in a registry
// without a default handler. It carries the full query for diagnostics.
type NotFoundError struct {
	Query Query
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no dispatch entry matches %s", e.Query)
}

// entry pairs a criterion with its handler. Registration order is the
// tie-break key of last resort, so entries are kept in a slice.
type entry struct {
	criterion Criterion
	handler   Handler
}

// Registry is an ordered collection of (Criterion, Handler) entries plus
// at most one default handler. Build it single-threaded, then Seal;
// a sealed registry supports concurrent Select without locking.
// The zero value is not usable; call NewRegistry.
type Registry struct {
	entries  []entry
	fallback Handler
	sealed   bool
}

// NewRegistry returns an empty registry in the building state.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends an entry. Later entries lose exact specificity ties
// to earlier ones. Fails with ErrSealed after Seal and ErrNilHandler for
// a nil handler.
func (r *Registry) Register(c Criterion, h Handler) error {
	if r.sealed {
		return ErrSealed
	}
	if h == nil {
		return ErrNilHandler
	}
	r.entries = append(r.entries, entry{criterion: c, handler: h})
	return nil
}

// RegisterDefault sets the registry's sole default handler, invoked when
// no entry matches a query. A second call fails with
// ErrDuplicateDefault.
func (r *Registry) RegisterDefault(h Handler) error {
	if r.sealed {
		return ErrSealed
	}
	if h == nil {
		return ErrNilHandler
	}
	if r.fallback != nil {
		return ErrDuplicateDefault
	}
	r.fallback = h
	return nil
}

// Seal transitions the registry from building to sealed. Registration
// fails afterwards; Select becomes safe for concurrent use. Sealing an
// already sealed registry is a no-op.
func (r *Registry) Seal() {
	r.sealed = true
}

// Sealed reports whether Seal has been called.
func (r *Registry) Sealed() bool {
	return r.sealed
}

// Len returns the number of registered entries, excluding the default.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Select picks the best entry for the query and invokes its handler with
// the query and extra arguments.
//
// When no entry matches, the default handler is invoked if registered;
// otherwise Select fails with *NotFoundError. The winner is a pure
// function of the taxonomy, the registry contents, and the query:
// identical inputs always select the identical entry.
func (r *Registry) Select(tax *taxonomy.Taxonomy, q Query, extra ...any) (any, error) {
	best := -1
	for i, e := range r.entries {
		if !e.criterion.matches(tax, q) {
			continue
		}
		// Replace only on a strictly more specific criterion, so exact
		// ties resolve to the earliest registered entry.
		if best < 0 || compareCriteria(tax, q, e.criterion, r.entries[best].criterion) > 0 {
			best = i
		}
	}
	if best < 0 {
		if r.fallback != nil {
			return r.fallback(q, extra...)
		}
		return nil, &NotFoundError{Query: q}
	}
	return r.entries[best].handler(q, extra...)
}
