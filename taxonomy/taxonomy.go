// Package taxonomy implements a directed acyclic graph of named tags with
// a reflexive-transitive "is-a" relation.
//
// The typical use is platform-family inheritance: a specific distribution
// tag inherits from a distribution-family tag, which inherits from a
// kernel-family tag:
//
//	tax := taxonomy.New()
//	tax.AddEdge("ubuntu", "debian")
//	tax.AddEdge("debian", "linux")
//	tax.IsA("ubuntu", "linux") // true
//
// A taxonomy is append-only: AddEdge rejects any edge that would close a
// cycle, so the graph is acyclic at all times. Once setup finishes and
// the taxonomy is handed to lookups, it must no longer be mutated; reads
// are then safe from any number of goroutines.
package taxonomy

import (
	"bytes"
	"fmt"
	"slices"
)

// Tag names a node in the taxonomy, e.g. a platform family.
type Tag = string

// CycleError reports an edge registration that would create a cycle.
type CycleError struct {
	Child  Tag
	Parent Tag
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("edge %s -> %s would create a cycle", e.Child, e.Parent)
}

// Taxonomy is a DAG of tags keyed by their direct parents.
// The zero value is not usable; call New.
type Taxonomy struct {
	// parents maps a tag to its direct parent tags in registration order.
	parents map[Tag][]Tag

	// known holds every tag seen as a child or parent.
	known map[Tag]bool
}

// New returns an empty taxonomy.
func New() *Taxonomy {
	return &Taxonomy{
		parents: make(map[Tag][]Tag),
		known:   make(map[Tag]bool),
	}
}

// AddEdge registers parent as a direct ancestor of child. Registering an
// edge that would create a cycle fails with *CycleError and leaves the
// taxonomy unchanged. Duplicate edges are no-ops.
func (t *Taxonomy) AddEdge(child, parent Tag) error {
	// child -> parent closes a cycle exactly when parent already
	// reaches child. Reflexivity makes self-edges a cycle too.
	if t.IsA(parent, child) {
		return &CycleError{Child: child, Parent: parent}
	}
	if !slices.Contains(t.parents[child], parent) {
		t.parents[child] = append(t.parents[child], parent)
	}
	t.known[child] = true
	t.known[parent] = true
	return nil
}

// IsA reports whether ancestor is reachable from descendant by following
// parent edges. The relation is reflexive: IsA(x, x) is true even for
// tags the taxonomy has never seen.
func (t *Taxonomy) IsA(descendant, ancestor Tag) bool {
	_, ok := t.walkUp(descendant, ancestor)
	return ok
}

// Distance returns the minimum number of parent edges between descendant
// and ancestor, and whether ancestor is reachable at all.
// Distance(x, x) is 0.
func (t *Taxonomy) Distance(descendant, ancestor Tag) (int, bool) {
	return t.walkUp(descendant, ancestor)
}

// walkUp runs a BFS over parent edges from start and returns the number
// of edges to target, if reachable.
func (t *Taxonomy) walkUp(start, target Tag) (int, bool) {
	if start == target {
		return 0, true
	}
	visited := map[Tag]bool{start: true}
	frontier := []Tag{start}
	for depth := 1; len(frontier) > 0; depth++ {
		var next []Tag
		for _, tag := range frontier {
			for _, parent := range t.parents[tag] {
				if parent == target {
					return depth, true
				}
				if !visited[parent] {
					visited[parent] = true
					next = append(next, parent)
				}
			}
		}
		frontier = next
	}
	return 0, false
}

// Depth returns the length of the longest parent chain from tag to a
// root (a tag with no parents). Roots and unknown tags have depth 0.
// Larger depth means a more derived, more specific tag.
func (t *Taxonomy) Depth(tag Tag) int {
	depth := 0
	for _, parent := range t.parents[tag] {
		if d := t.Depth(parent) + 1; d > depth {
			depth = d
		}
	}
	return depth
}

// Tags returns every tag appearing as a child or parent, sorted.
func (t *Taxonomy) Tags() []Tag {
	tags := make([]Tag, 0, len(t.known))
	for tag := range t.known {
		tags = append(tags, tag)
	}
	slices.Sort(tags)
	return tags
}

// Contains reports whether the taxonomy has seen the tag.
func (t *Taxonomy) Contains(tag Tag) bool {
	return t.known[tag]
}

// Roots returns the tags that have no parents, sorted.
func (t *Taxonomy) Roots() []Tag {
	var roots []Tag
	for tag := range t.known {
		if len(t.parents[tag]) == 0 {
			roots = append(roots, tag)
		}
	}
	slices.Sort(roots)
	return roots
}

// Parents returns the direct parents of a tag in registration order.
func (t *Taxonomy) Parents(tag Tag) []Tag {
	return slices.Clone(t.parents[tag])
}

// Ancestors returns every tag reachable from tag via parent edges,
// excluding tag itself, sorted.
func (t *Taxonomy) Ancestors(tag Tag) []Tag {
	visited := map[Tag]bool{tag: true}
	var ancestors []Tag
	frontier := []Tag{tag}
	for len(frontier) > 0 {
		var next []Tag
		for _, cur := range frontier {
			for _, parent := range t.parents[cur] {
				if !visited[parent] {
					visited[parent] = true
					ancestors = append(ancestors, parent)
					next = append(next, parent)
				}
			}
		}
		frontier = next
	}
	slices.Sort(ancestors)
	return ancestors
}

// Path returns one shortest chain of tags from descendant to ancestor,
// both ends included, proving IsA(descendant, ancestor). The second
// return is false when no such chain exists.
func (t *Taxonomy) Path(descendant, ancestor Tag) ([]Tag, bool) {
	if descendant == ancestor {
		return []Tag{descendant}, true
	}
	// BFS with predecessor tracking, then reconstruct backwards.
	prev := map[Tag]Tag{descendant: descendant}
	frontier := []Tag{descendant}
	for len(frontier) > 0 {
		var next []Tag
		for _, tag := range frontier {
			for _, parent := range t.parents[tag] {
				if _, seen := prev[parent]; seen {
					continue
				}
				prev[parent] = tag
				if parent == ancestor {
					path := []Tag{parent}
					for cur := tag; ; cur = prev[cur] {
						path = append(path, cur)
						if cur == descendant {
							break
						}
					}
					slices.Reverse(path)
					return path, true
				}
				next = append(next, parent)
			}
		}
		frontier = next
	}
	return nil, false
}

// ToDOT renders the taxonomy in Graphviz DOT format, child pointing at
// parent, for visualization and debugging.
func (t *Taxonomy) ToDOT() string {
	var buf bytes.Buffer

	buf.WriteString("digraph taxonomy {\n")
	buf.WriteString("  rankdir=BT;\n")
	buf.WriteString("  node [shape=box];\n\n")

	for _, tag := range t.Tags() {
		attrs := ""
		if len(t.parents[tag]) == 0 {
			attrs = " [style=bold]"
		}
		buf.WriteString(fmt.Sprintf("  %q%s;\n", tag, attrs))
	}

	buf.WriteString("\n")

	for _, child := range t.Tags() {
		for _, parent := range t.parents[child] {
			buf.WriteString(fmt.Sprintf("  %q -> %q;\n", child, parent))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}
