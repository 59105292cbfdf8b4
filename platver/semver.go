package platver

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// FromSemver converts a parsed semantic version to a three-component
// Vector of its release triple. Prerelease and build metadata carry no
// meaning in the dotted-integer order and are discarded.
func FromSemver(v *semver.Version) Vector {
	if v == nil {
		return nil
	}
	return Vector{int(v.Major()), int(v.Minor()), int(v.Patch())}
}

// ParseLenient parses version strings that the strict dotted-integer
// grammar rejects: a leading "v", prerelease tags ("1.2.3-rc1"), and
// build metadata ("1.2.3+build"). Strictly dotted input goes through
// Parse unchanged, preserving vectors longer than three components;
// anything else is parsed as a semantic version and truncated to its
// release triple.
func ParseLenient(s string) (Vector, error) {
	if v, err := Parse(s); err == nil {
		return v, nil
	}
	sv, err := semver.NewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("parse version %q: %w", s, err)
	}
	return FromSemver(sv), nil
}
