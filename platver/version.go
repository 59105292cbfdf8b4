// Package platver implements platform version vectors and version specs.
//
// A version vector is the parsed form of a dotted version string such as
// "14.04.2": an ordered sequence of non-negative integers. Vectors of
// unequal length compare as if the shorter one were padded with zeros, so
// "1.2" and "1.2.0" are equal under Compare.
//
// A Spec constrains a vector. Three kinds exist: Any (matches everything,
// including an absent version), Exact (prefix match against the spec's
// components), and Range (inclusive interval with optionally unbounded
// ends). Specs carry a specificity order used by the dispatch comparator:
// Exact outranks Range outranks Any, and two Ranges rank by containment,
// then width, then bounds.
package platver

import (
	"fmt"
	"strconv"
	"strings"
)

// Vector is an ordered sequence of non-negative integers parsed from a
// dotted version string. A nil Vector means "no version" (absent).
type Vector []int

// ParseError reports a malformed version string.
type ParseError struct {
	// Input is the full string handed to Parse.
	Input string

	// Index is the zero-based position of the offending component.
	Index int

	// Part is the offending component (possibly empty).
	Part string
}

func (e *ParseError) Error() string {
	if e.Part == "" {
		return fmt.Sprintf("invalid version %q: empty component at position %d", e.Input, e.Index)
	}
	return fmt.Sprintf("invalid version %q: non-numeric component %q at position %d", e.Input, e.Part, e.Index)
}

// Parse parses a dotted version string into a Vector.
//
// Every dot-separated component must be a non-negative integer; an empty
// or non-numeric component yields a *ParseError. The empty string is not
// a valid version (use a nil Vector for "absent").
func Parse(s string) (Vector, error) {
	parts := strings.Split(s, ".")
	v := make(Vector, len(parts))
	for i, part := range parts {
		if part == "" {
			return nil, &ParseError{Input: s, Index: i, Part: part}
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return nil, &ParseError{Input: s, Index: i, Part: part}
		}
		v[i] = n
	}
	return v, nil
}

// MustParse parses a dotted version string or panics.
// Use only for constants and tests.
func MustParse(s string) Vector {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the dotted form of the vector, or "" for a nil vector.
func (v Vector) String() string {
	if v == nil {
		return ""
	}
	parts := make([]string, len(v))
	for i, n := range v {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ".")
}

// IsZero returns true if the vector is absent (nil).
func (v Vector) IsZero() bool {
	return v == nil
}

// Compare compares two vectors component-wise, padding the shorter one
// with zeros. Returns -1 if v < other, 0 if equal, 1 if v > other.
// Under this order "1.2" and "1.2.0" are equal.
func Compare(v, other Vector) int {
	for i, n := 0, max(len(v), len(other)); i < n; i++ {
		if c := intCompare(v.at(i), other.at(i)); c != 0 {
			return c
		}
	}
	return 0
}

// Less returns true if v < other under Compare.
func (v Vector) Less(other Vector) bool {
	return Compare(v, other) < 0
}

// at returns the i-th component, treating missing components as zero.
func (v Vector) at(i int) int {
	if i < len(v) {
		return v[i]
	}
	return 0
}

func intCompare(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

// Vectors is a sortable slice of Vector.
type Vectors []Vector

func (v Vectors) Len() int           { return len(v) }
func (v Vectors) Swap(i, j int)      { v[i], v[j] = v[j], v[i] }
func (v Vectors) Less(i, j int) bool { return v[i].Less(v[j]) }
