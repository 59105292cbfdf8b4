package platver

import "fmt"

// Kind discriminates the three spec variants.
type Kind int

const (
	// KindAny matches every version, including an absent one.
	KindAny Kind = iota

	// KindExact matches vectors whose leading components equal the
	// spec's components.
	KindExact

	// KindRange matches vectors inside an inclusive interval whose ends
	// may be unbounded.
	KindRange
)

func (k Kind) String() string {
	switch k {
	case KindAny:
		return "any"
	case KindExact:
		return "exact"
	case KindRange:
		return "range"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Spec is a constraint on a version Vector. The zero value is Any.
type Spec struct {
	kind Kind

	// exact holds the prefix for KindExact.
	exact Vector

	// low and high bound a KindRange interval; nil means unbounded.
	low  Vector
	high Vector
}

// Any returns the spec that matches every version, absent included.
func Any() Spec {
	return Spec{kind: KindAny}
}

// Exact returns a spec matching any vector whose first len(v) components
// equal v. Exact(nil) is not meaningful; callers should pass a parsed
// vector with at least one component.
func Exact(v Vector) Spec {
	return Spec{kind: KindExact, exact: v}
}

// Range returns a spec matching vectors a with low <= a <= high under the
// padded component-wise order. Either bound may be nil for unbounded.
// Range(nil, nil) matches every present version but, unlike Any, not an
// absent one.
func Range(low, high Vector) Spec {
	return Spec{kind: KindRange, low: low, high: high}
}

// Kind returns the spec's variant.
func (s Spec) Kind() Kind {
	return s.kind
}

// Bounds returns the exact prefix or range bounds backing the spec.
// For KindAny all three are nil.
func (s Spec) Bounds() (exact, low, high Vector) {
	return s.exact, s.low, s.high
}

// String renders the spec for diagnostics: "*", "=1.2", or "[1.0, 2.0]"
// with "~" for an unbounded end.
func (s Spec) String() string {
	switch s.kind {
	case KindExact:
		return "=" + s.exact.String()
	case KindRange:
		low, high := "~", "~"
		if s.low != nil {
			low = s.low.String()
		}
		if s.high != nil {
			high = s.high.String()
		}
		return "[" + low + ", " + high + "]"
	default:
		return "*"
	}
}

// Matches reports whether the actual vector satisfies the spec.
// A nil (absent) actual matches only Any.
func (s Spec) Matches(actual Vector) bool {
	if actual == nil {
		return s.kind == KindAny
	}
	switch s.kind {
	case KindExact:
		// Prefix match: the first len(exact) components must agree,
		// padding a shorter actual with zeros. Extra trailing actual
		// components are ignored.
		for i := range s.exact {
			if actual.at(i) != s.exact[i] {
				return false
			}
		}
		return true
	case KindRange:
		if s.low != nil && Compare(actual, s.low) < 0 {
			return false
		}
		if s.high != nil && Compare(actual, s.high) > 0 {
			return false
		}
		return true
	default:
		return true
	}
}

// kindRank orders spec variants: Exact > Range > Any.
func (s Spec) kindRank() int {
	switch s.kind {
	case KindExact:
		return 2
	case KindRange:
		return 1
	default:
		return 0
	}
}

// CompareSpecificity orders two specs by how narrowly they constrain a
// version. Returns a positive value if a is more specific than b,
// negative if less, zero if equally specific.
//
// Exact outranks Range outranks Any. Two Exacts rank by prefix length
// (longer constrains more components), then component-wise comparison.
// Two Ranges rank by strict interval containment (the contained interval
// wins), then by number of bounded ends, then by width (narrower wins),
// then by bounds. The order is total, so ties mean the specs constrain
// equally and the caller falls back to its own tie-break.
func CompareSpecificity(a, b Spec) int {
	if c := intCompare(a.kindRank(), b.kindRank()); c != 0 {
		return c
	}
	switch a.kind {
	case KindExact:
		if c := intCompare(len(a.exact), len(b.exact)); c != 0 {
			return c
		}
		return Compare(a.exact, b.exact)
	case KindRange:
		return compareRanges(a, b)
	default:
		return 0
	}
}

// compareRanges orders two Range specs per the containment/width/bounds
// rules documented on CompareSpecificity.
func compareRanges(a, b Spec) int {
	aInB := intervalContains(b, a)
	bInA := intervalContains(a, b)
	if aInB && !bInA {
		return 1
	}
	if bInA && !aInB {
		return -1
	}
	if !aInB && !bInA {
		// Incomparable intervals: more bounded ends, then narrower width.
		if c := intCompare(a.boundedEnds(), b.boundedEnds()); c != 0 {
			return c
		}
		if a.low != nil && a.high != nil && b.low != nil && b.high != nil {
			if c := compareWidth(a, b); c != 0 {
				return -c // narrower ranks higher
			}
		}
	}
	// Equal intervals or remaining ties: higher low bound, then higher
	// high bound, nil bounds ranking lowest.
	if c := compareBound(a.low, b.low); c != 0 {
		return c
	}
	return compareBound(a.high, b.high)
}

// intervalContains reports whether outer's interval contains inner's,
// treating nil bounds as infinities.
func intervalContains(outer, inner Spec) bool {
	if outer.low != nil && (inner.low == nil || Compare(inner.low, outer.low) < 0) {
		return false
	}
	if outer.high != nil && (inner.high == nil || Compare(inner.high, outer.high) > 0) {
		return false
	}
	return true
}

func (s Spec) boundedEnds() int {
	n := 0
	if s.low != nil {
		n++
	}
	if s.high != nil {
		n++
	}
	return n
}

// compareWidth compares the widths of two doubly-bounded ranges by the
// component-wise difference of their bounds, most significant component
// first. Both arguments must have non-nil low and high.
func compareWidth(a, b Spec) int {
	n := max(len(a.low), len(a.high), len(b.low), len(b.high))
	for i := 0; i < n; i++ {
		aw := a.high.at(i) - a.low.at(i)
		bw := b.high.at(i) - b.low.at(i)
		if c := intCompare(aw, bw); c != 0 {
			return c
		}
	}
	return 0
}

// compareBound orders optional bounds with nil ranking lowest.
func compareBound(a, b Vector) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	return Compare(a, b)
}
