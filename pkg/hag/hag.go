package hag

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ID identifies a vertex. Hyper-vertex names live in the same identifier
// space as ordinary vertices, so an ID can refer to either.
type ID string

// Edge is a directed, labeled connection between two vertices.
// The full (From, To, Label) triple is the edge identity: two edges with the
// same endpoints but different labels are distinct edges, while identical
// triples collapse into one under set semantics. An empty label is valid.
type Edge struct {
	From  ID
	To    ID
	Label string
}

// String formats the edge as "from->to" or "from->to (label)".
func (e Edge) String() string {
	if e.Label == "" {
		return fmt.Sprintf("%s->%s", e.From, e.To)
	}
	return fmt.Sprintf("%s->%s (%s)", e.From, e.To, e.Label)
}

// compare orders edges lexicographically on the (From, To, Label) triple.
func (e Edge) compare(o Edge) int {
	if c := strings.Compare(string(e.From), string(o.From)); c != 0 {
		return c
	}
	if c := strings.Compare(string(e.To), string(o.To)); c != 0 {
		return c
	}
	return strings.Compare(e.Label, o.Label)
}

// Graph is a hierarchical abstraction graph. It aggregates a vertex set, an
// edge set, a hyper-vertex mapping, and an ordered constraint sequence.
//
// The zero value is not usable - use [New]. Accessors return copies, so
// callers can never alias the internal collections.
type Graph struct {
	vertices    map[ID]struct{}
	edges       map[Edge]struct{}
	hyper       map[ID]map[ID]struct{}
	constraints []string
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		vertices: make(map[ID]struct{}),
		edges:    make(map[Edge]struct{}),
		hyper:    make(map[ID]map[ID]struct{}),
	}
}

// AddVertex inserts id into the vertex set. Re-adding an existing vertex is
// a no-op.
func (g *Graph) AddVertex(id ID) {
	g.vertices[id] = struct{}{}
}

// AddEdge inserts the (from, to, label) triple into the edge set and
// registers both endpoints as vertices, so no edge ever dangles.
// Self-loops and repeated identical calls are fine: the edge set dedupes.
func (g *Graph) AddEdge(from, to ID, label string) {
	g.edges[Edge{From: from, To: to, Label: label}] = struct{}{}
	g.vertices[from] = struct{}{}
	g.vertices[to] = struct{}{}
}

// AddHyperVertex stores an independent copy of members under name and
// registers name in the vertex set, so the group can itself participate as
// an edge endpoint. A later call with the same name overwrites the previous
// definition entirely; there is no merging.
//
// Members may be ordinary vertices or other hyper-vertex names. Nesting is
// not flattened automatically - resolving nested membership is the caller's
// responsibility before collapsing.
func (g *Graph) AddHyperVertex(name ID, members []ID) {
	set := make(map[ID]struct{}, len(members))
	for _, m := range members {
		set[m] = struct{}{}
	}
	g.hyper[name] = set
	g.vertices[name] = struct{}{}
}

// AddConstraint appends text to the constraint sequence. Order and
// duplicates are preserved. Constraints are opaque to the graph: they are
// stored for callers but never interpreted or validated.
func (g *Graph) AddConstraint(text string) {
	g.constraints = append(g.constraints, text)
}

// HasVertex reports whether id is in the vertex set.
func (g *Graph) HasVertex(id ID) bool {
	_, ok := g.vertices[id]
	return ok
}

// VertexCount returns the number of vertices.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// HyperVertexCount returns the number of defined hyper-vertices.
func (g *Graph) HyperVertexCount() int { return len(g.hyper) }

// Vertices returns all vertex IDs in lexicographic order.
// The returned slice is a copy.
func (g *Graph) Vertices() []ID {
	return slices.Sorted(maps.Keys(g.vertices))
}

// Edges returns all edges sorted lexicographically on the (From, To, Label)
// triple. The returned slice is a copy.
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, len(g.edges))
	for e := range g.edges {
		edges = append(edges, e)
	}
	slices.SortFunc(edges, Edge.compare)
	return edges
}

// HyperVertex returns the member list of the named hyper-vertex in
// lexicographic order, and whether the name is defined. The returned slice
// is a copy.
func (g *Graph) HyperVertex(name ID) ([]ID, bool) {
	set, ok := g.hyper[name]
	if !ok {
		return nil, false
	}
	return slices.Sorted(maps.Keys(set)), true
}

// HyperVertices returns a copy of the hyper-vertex mapping with each member
// list in lexicographic order.
func (g *Graph) HyperVertices() map[ID][]ID {
	out := make(map[ID][]ID, len(g.hyper))
	for name, set := range g.hyper {
		out[name] = slices.Sorted(maps.Keys(set))
	}
	return out
}

// Constraints returns a copy of the constraint sequence in insertion order.
func (g *Graph) Constraints() []string {
	return slices.Clone(g.constraints)
}

// Clone returns a deep copy of the graph. Collapsing is destructive, so
// callers that need the pre-collapse graph should clone first.
func (g *Graph) Clone() *Graph {
	out := New()
	maps.Copy(out.vertices, g.vertices)
	maps.Copy(out.edges, g.edges)
	for name, set := range g.hyper {
		out.hyper[name] = maps.Clone(set)
	}
	out.constraints = slices.Clone(g.constraints)
	return out
}

// String returns a textual rendering of the full graph state for diagnostics.
// Vertices, edges, and hyper-vertex names are sorted so the output is
// reproducible across runs; constraints keep their stored order.
func (g *Graph) String() string {
	var b strings.Builder
	b.WriteString("HAG Model\n")

	fmt.Fprintf(&b, "Vertices: %v\n", g.Vertices())

	b.WriteString("Edges: [")
	for i, e := range g.Edges() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.String())
	}
	b.WriteString("]\n")

	b.WriteString("Hyper-Vertices: {")
	for i, name := range slices.Sorted(maps.Keys(g.hyper)) {
		if i > 0 {
			b.WriteString(", ")
		}
		members, _ := g.HyperVertex(name)
		fmt.Fprintf(&b, "%s: %v", name, members)
	}
	b.WriteString("}\n")

	fmt.Fprintf(&b, "Constraints: %v", g.constraints)
	return b.String()
}
