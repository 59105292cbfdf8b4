package dispatch

import (
	"github.com/albertocavalcante/go-platsel/platver"
	"github.com/albertocavalcante/go-platsel/taxonomy"
)

// Binding associates a (family, family version) key with a plain value
// in a LookupMap.
type Binding[V any] struct {
	Family        taxonomy.Tag
	FamilyVersion platver.Spec
	Value         V
}

// LookupMap maps (family, family version) criteria to plain values. It
// is the two-field restriction of Registry for "pick a value per
// platform" cases: same filter and most-specific selection, but values
// instead of handlers, no default, and a missing match is a normal
// outcome rather than an error.
//
// Build the map once with NewLookupMap; it is immutable afterwards and
// safe for concurrent Lookup.
type LookupMap[V any] struct {
	bindings []Binding[V]
}

// NewLookupMap builds a lookup map from bindings. Binding order is the
// tie-break of last resort, mirroring registration order in Registry.
func NewLookupMap[V any](bindings ...Binding[V]) *LookupMap[V] {
	m := &LookupMap[V]{bindings: make([]Binding[V], len(bindings))}
	copy(m.bindings, bindings)
	return m
}

// Len returns the number of bindings.
func (m *LookupMap[V]) Len() int {
	return len(m.bindings)
}

// Lookup returns the value of the most specific binding matching the
// family and its version, or (zero, false) when none matches. The
// specificity order is the registry's, restricted to the family and
// family-version components.
func (m *LookupMap[V]) Lookup(tax *taxonomy.Taxonomy, family taxonomy.Tag, familyVersion platver.Vector) (V, bool) {
	q := Query{Family: family, FamilyVersion: familyVersion}
	best := -1
	for i, b := range m.bindings {
		c := Criterion{Family: b.Family, FamilyVersion: b.FamilyVersion}
		if !c.matches(tax, q) {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		prev := Criterion{Family: m.bindings[best].Family, FamilyVersion: m.bindings[best].FamilyVersion}
		if compareCriteria(tax, q, c, prev) > 0 {
			best = i
		}
	}
	if best < 0 {
		var zero V
		return zero, false
	}
	return m.bindings[best].Value, true
}
