// Package goplatsel provides version-aware dispatch for platform
// provisioning logic: given a platform family, a platform version, and a
// component version, it selects the single best-matching handler (or
// static value) from a registry of criteria.
//
// # Overview
//
// The module has three core packages plus this facade:
//
//   - platver: version vectors parsed from dotted strings, and the
//     Any/Exact/Range specs that constrain them
//   - taxonomy: a DAG of platform-family tags with a reflexive,
//     transitive "is-a" relation
//   - dispatch: the registry, the specificity comparator, and the
//     static lookup map
//
// # Quick Start
//
// Build a taxonomy and a registry during setup, then select at runtime:
//
//	tax := taxonomy.New()
//	tax.AddEdge("ubuntu", "debian")
//	tax.AddEdge("debian", "linux")
//
//	reg := dispatch.NewRegistry()
//	reg.Register(dispatch.Criterion{Family: "linux"}, installGeneric)
//	reg.Register(dispatch.Criterion{
//	    Family:        "ubuntu",
//	    FamilyVersion: platver.Range(platver.MustParse("12.4"), nil),
//	}, installUbuntu)
//
//	sel, err := goplatsel.NewSelector(tax, reg)
//	result, err := sel.Select("ubuntu", "14.04", "2.1")
//
// The most specific matching entry wins: an entry for the queried family
// itself beats one for an ancestor family, an Exact version spec beats a
// Range, a Range beats Any, and exact ties go to the earliest
// registration. See the dispatch package for the full ordering contract.
//
// # Thread Safety
//
// Taxonomies and registries are built single-threaded. NewSelector seals
// the registry; a sealed registry and the Selector around it are safe
// for concurrent use.
package goplatsel
