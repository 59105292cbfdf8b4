// Package dispatch implements version-aware handler selection over a
// platform taxonomy.
//
// A Registry holds an ordered list of (Criterion, Handler) entries plus
// an optional default handler. A Criterion constrains three things: the
// platform family (through the taxonomy's "is-a" relation), the platform
// family version, and a component version (each through a platver.Spec).
// Select picks the single best entry for a query and invokes its handler,
// letting provisioning logic vary behavior per platform and version
// without hand-written conditional ladders.
//
// # Selection Algorithm
//
// Select proceeds in three steps:
//
//  1. Filter: keep every entry whose family is an ancestor of (or equal
//     to) the queried family and whose two version specs match the
//     queried versions.
//  2. Pick: order surviving entries by the specificity triple
//     (family, family version, component version), most significant
//     first. Family specificity is taxonomic distance: an entry naming
//     the queried family itself outranks one naming a parent, which
//     outranks a grandparent. The version components use
//     platver.CompareSpecificity (Exact > Range > Any, narrower Range >
//     wider Range). Entries still tied after all three components
//     resolve to the earliest registered, so repeated calls against the
//     same registry always return the same winner.
//  3. Invoke: call the winning handler with the query and any extra
//     arguments. Handler results and errors propagate unmodified; the
//     registry never retries, wraps, or swallows them.
//
// If no entry survives the filter, the default handler is invoked when
// one is registered; otherwise Select fails with *NotFoundError carrying
// the full query.
//
// # Lifecycle
//
// A Registry has two states: building and sealed. Registration is
// single-threaded and only allowed while building; Seal freezes the
// registry, after which Select may run concurrently from any number of
// goroutines. Selection is a pure function of the taxonomy, the registry
// contents, and the query.
//
// # Static Lookup
//
// LookupMap is the registry restricted to (family, family version) keys
// and plain values instead of handlers. A missing match is a normal
// (zero, false) outcome rather than an error, and there is no default
// value concept.
package dispatch
