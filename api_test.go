package goplatsel

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertocavalcante/go-platsel/dispatch"
	"github.com/albertocavalcante/go-platsel/platver"
	"github.com/albertocavalcante/go-platsel/taxonomy"
)

func testSelector(t *testing.T, opts ...Option) *Selector {
	t.Helper()

	tax := taxonomy.New()
	require.NoError(t, tax.AddEdge("ubuntu", "debian"))
	require.NoError(t, tax.AddEdge("debian", "linux"))
	require.NoError(t, tax.AddEdge("centos", "linux"))

	reg := dispatch.NewRegistry()
	require.NoError(t, reg.Register(
		Criterion{Family: "linux"},
		func(Query, ...any) (any, error) { return "generic-install", nil }))
	require.NoError(t, reg.Register(
		Criterion{Family: "ubuntu", FamilyVersion: platver.Range(platver.MustParse("12.4"), nil)},
		func(Query, ...any) (any, error) { return "ubuntu-install", nil }))

	sel, err := NewSelector(tax, reg, opts...)
	require.NoError(t, err)
	return sel
}

func TestSelectorSelect(t *testing.T) {
	sel := testSelector(t)

	got, err := sel.Select("ubuntu", "14.04", "2.1")
	require.NoError(t, err)
	assert.Equal(t, "ubuntu-install", got)

	got, err = sel.Select("centos", "7.0", "1.0")
	require.NoError(t, err)
	assert.Equal(t, "generic-install", got)

	// Empty version strings are absent facts and match only Any specs.
	got, err = sel.Select("ubuntu", "", "")
	require.NoError(t, err)
	assert.Equal(t, "generic-install", got)
}

func TestSelectorSelectNotFound(t *testing.T) {
	sel := testSelector(t)

	_, err := sel.Select("windows", "10.0", "1.0")
	var nfe *dispatch.NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "windows", nfe.Query.Family)
}

func TestSelectorParseErrors(t *testing.T) {
	sel := testSelector(t)

	_, err := sel.Select("ubuntu", "14.x", "1.0")
	require.Error(t, err)
	assert.ErrorContains(t, err, "family version")

	_, err = sel.Select("ubuntu", "14.04", "one")
	require.Error(t, err)
	assert.ErrorContains(t, err, "component version")

	// Strict mode rejects semver flavor.
	_, err = sel.Select("ubuntu", "v14.04", "1.0")
	require.Error(t, err)
}

func TestSelectorLenientVersions(t *testing.T) {
	sel := testSelector(t, WithLenientVersions())

	got, err := sel.Select("ubuntu", "v14.10.6", "2.1.0-rc1")
	require.NoError(t, err)
	assert.Equal(t, "ubuntu-install", got)
}

func TestSelectorSealsRegistry(t *testing.T) {
	tax := taxonomy.New()
	require.NoError(t, tax.AddEdge("ubuntu", "linux"))
	reg := dispatch.NewRegistry()
	require.NoError(t, reg.Register(Criterion{Family: "linux"},
		func(Query, ...any) (any, error) { return "ok", nil }))

	_, err := NewSelector(tax, reg)
	require.NoError(t, err)

	assert.True(t, reg.Sealed())
	assert.ErrorIs(t, reg.Register(Criterion{Family: "ubuntu"}, nil), ErrSealed)
}

func TestSelectorNilArguments(t *testing.T) {
	_, err := NewSelector(nil, dispatch.NewRegistry())
	assert.Error(t, err)
	_, err = NewSelector(taxonomy.New(), nil)
	assert.Error(t, err)
}

func TestSelectorExplain(t *testing.T) {
	sel := testSelector(t)

	candidates, err := sel.Explain("ubuntu", "14.04", "2.1")
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	assert.True(t, candidates[0].Selected)
	assert.Equal(t, taxonomy.Tag("ubuntu"), candidates[0].Criterion.Family)
}

func TestSelectorLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	sel := testSelector(t, WithLogger(logger))

	_, err := sel.Select("ubuntu", "14.04", "2.1")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "dispatching")
	assert.Contains(t, buf.String(), "ubuntu@14.4/2.1")
}
