package platver

import "testing"

func TestSpecMatches(t *testing.T) {
	tests := []struct {
		name   string
		spec   Spec
		actual Vector
		want   bool
	}{
		{"any matches anything", Any(), MustParse("3.1.4"), true},
		{"any matches absent", Any(), nil, true},
		{"exact prefix match", Exact(MustParse("1.2")), MustParse("1.2.3"), true},
		{"exact full match", Exact(MustParse("1.2.3")), MustParse("1.2.3"), true},
		{"exact mismatch", Exact(MustParse("1.3")), MustParse("1.2.3"), false},
		{"exact longer than actual pads", Exact(MustParse("1.0")), MustParse("1"), true},
		{"exact longer than actual mismatch", Exact(MustParse("1.1")), MustParse("1"), false},
		{"exact rejects absent", Exact(MustParse("1")), nil, false},
		{"range inside", Range(MustParse("1.0"), MustParse("2.0")), MustParse("1.5.0"), true},
		{"range at low bound", Range(MustParse("1.0"), MustParse("2.0")), MustParse("1.0"), true},
		{"range at high bound", Range(MustParse("1.0"), MustParse("2.0")), MustParse("2.0"), true},
		{"range below", Range(MustParse("1.0"), MustParse("2.0")), MustParse("0.9"), false},
		{"range above unbounded low", Range(nil, MustParse("1.9")), MustParse("2.0"), false},
		{"range inside unbounded low", Range(nil, MustParse("1.9")), MustParse("1.8.7"), true},
		{"range unbounded high", Range(MustParse("12.4"), nil), MustParse("14.4"), true},
		{"range padded bound", Range(MustParse("1.0"), nil), MustParse("1"), true},
		{"range rejects absent", Range(nil, nil), nil, false},
		{"range fully unbounded matches present", Range(nil, nil), MustParse("0"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.spec.Matches(tt.actual); got != tt.want {
				t.Errorf("%s.Matches(%v) = %v, want %v", tt.spec, tt.actual, got, tt.want)
			}
		})
	}
}

func TestCompareSpecificityKinds(t *testing.T) {
	exact := Exact(MustParse("1.2"))
	rng := Range(MustParse("1.0"), MustParse("2.0"))
	wildcard := Any()

	if CompareSpecificity(exact, rng) <= 0 {
		t.Error("Exact should outrank Range")
	}
	if CompareSpecificity(rng, wildcard) <= 0 {
		t.Error("Range should outrank Any")
	}
	if CompareSpecificity(exact, wildcard) <= 0 {
		t.Error("Exact should outrank Any")
	}
	if CompareSpecificity(wildcard, wildcard) != 0 {
		t.Error("Any should tie with Any")
	}
}

func TestCompareSpecificityRanges(t *testing.T) {
	tests := []struct {
		name string
		a, b Spec
		want int // sign only
	}{
		{
			"strict subset wins",
			Range(MustParse("1.2"), MustParse("1.8")),
			Range(MustParse("1.0"), MustParse("2.0")),
			1,
		},
		{
			"superset loses",
			Range(nil, nil),
			Range(MustParse("1.0"), nil),
			-1,
		},
		{
			"more bounded ends wins when incomparable",
			Range(MustParse("1.0"), MustParse("9.0")),
			Range(MustParse("2.0"), nil),
			1,
		},
		{
			"narrower width wins when incomparable",
			Range(MustParse("3.0"), MustParse("3.5")),
			Range(MustParse("1.0"), MustParse("2.0")),
			1,
		},
		{
			"equal intervals tie",
			Range(MustParse("1.0"), MustParse("2.0")),
			Range(MustParse("1.0"), MustParse("2.0")),
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompareSpecificity(tt.a, tt.b)
			if sign(got) != tt.want {
				t.Errorf("CompareSpecificity(%s, %s) = %d, want sign %d", tt.a, tt.b, got, tt.want)
			}
			if sign(CompareSpecificity(tt.b, tt.a)) != -tt.want {
				t.Errorf("CompareSpecificity(%s, %s) not antisymmetric", tt.b, tt.a)
			}
		})
	}
}

func TestCompareSpecificityExact(t *testing.T) {
	longer := Exact(MustParse("1.2.3"))
	shorter := Exact(MustParse("1.2"))
	if CompareSpecificity(longer, shorter) <= 0 {
		t.Error("longer exact prefix should outrank shorter")
	}
	if CompareSpecificity(Exact(MustParse("1.2")), Exact(MustParse("1.2"))) != 0 {
		t.Error("identical exacts should tie")
	}
}

func TestSpecString(t *testing.T) {
	tests := []struct {
		spec Spec
		want string
	}{
		{Any(), "*"},
		{Exact(MustParse("1.2")), "=1.2"},
		{Range(MustParse("1.0"), MustParse("2.0")), "[1.0, 2.0]"},
		{Range(nil, MustParse("1.9")), "[~, 1.9]"},
		{Range(MustParse("12.4"), nil), "[12.4, ~]"},
	}
	for _, tt := range tests {
		if got := tt.spec.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
