package dispatch

import (
	"slices"

	"github.com/albertocavalcante/go-platsel/platver"
	"github.com/albertocavalcante/go-platsel/taxonomy"
)

// compareCriteria orders two criteria that both match q by specificity.
// Returns a positive value if a should win over b, negative if b should
// win, zero for an exact tie (resolved by registration order elsewhere).
//
// The order is lexicographic on the triple (family, family version,
// component version). Family specificity is taxonomic distance from the
// queried family: the queried tag itself (distance 0) outranks its
// parent (distance 1), and so on up the is-a chain. Both criteria must
// have passed the match filter, so their families are reachable
// ancestors and the distances are defined.
func compareCriteria(tax *taxonomy.Taxonomy, q Query, a, b Criterion) int {
	da, _ := tax.Distance(q.Family, a.Family)
	db, _ := tax.Distance(q.Family, b.Family)
	if da != db {
		// Smaller distance means a more derived, more specific family.
		if da < db {
			return 1
		}
		return -1
	}
	if c := platver.CompareSpecificity(a.FamilyVersion, b.FamilyVersion); c != 0 {
		return c
	}
	return platver.CompareSpecificity(a.Version, b.Version)
}

// Candidate describes one entry that matched a query, for diagnostics.
type Candidate struct {
	// Criterion is the matching entry's key.
	Criterion Criterion

	// Index is the entry's registration position in the registry.
	Index int

	// FamilyDistance is the number of is-a edges between the queried
	// family and the entry's family.
	FamilyDistance int

	// Selected is true for the entry Select would invoke.
	Selected bool
}

// Explain returns every entry matching the query, ordered most specific
// first with registration order breaking exact ties. The first candidate
// (marked Selected) is the entry Select invokes. An empty result means
// Select would fall back to the default handler or fail.
//
// Explain exists for diagnostics and tests; Select does not use it.
func (r *Registry) Explain(tax *taxonomy.Taxonomy, q Query) []Candidate {
	var candidates []Candidate
	for i, e := range r.entries {
		if !e.criterion.matches(tax, q) {
			continue
		}
		dist, _ := tax.Distance(q.Family, e.criterion.Family)
		candidates = append(candidates, Candidate{
			Criterion:      e.criterion,
			Index:          i,
			FamilyDistance: dist,
		})
	}
	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		// Most specific first; stable sort preserves registration order
		// within exact ties.
		return compareCriteria(tax, q, b.Criterion, a.Criterion)
	})
	if len(candidates) > 0 {
		candidates[0].Selected = true
	}
	return candidates
}
