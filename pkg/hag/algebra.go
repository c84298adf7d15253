package hag

import (
	"maps"
	"slices"
)

// Union returns a new graph combining both operands. Neither operand is
// mutated.
//
//   - Vertices and edges are set unions; identical edge triples from both
//     sides merge into one.
//   - Hyper-vertex definitions from o override same-named definitions in g.
//   - Constraints are deduplicated and sorted: the result is the set union,
//     with no guarantee of matching either input's order.
func (g *Graph) Union(o *Graph) *Graph {
	out := New()
	maps.Copy(out.vertices, g.vertices)
	maps.Copy(out.vertices, o.vertices)
	maps.Copy(out.edges, g.edges)
	maps.Copy(out.edges, o.edges)
	for name, set := range g.hyper {
		out.hyper[name] = maps.Clone(set)
	}
	for name, set := range o.hyper {
		out.hyper[name] = maps.Clone(set)
	}
	out.constraints = constraintUnion(g.constraints, o.constraints)
	return out
}

// Intersection returns a new graph containing only what both operands share.
// Neither operand is mutated.
//
//   - Vertices and edges are set intersections; an edge survives only if the
//     same full triple exists in both graphs.
//   - A hyper-vertex survives only if both graphs define the name with
//     exactly equal member sets. Differing membership drops the name
//     entirely; there is no partial merge.
//   - Constraints are the set intersection, deduplicated and sorted.
func (g *Graph) Intersection(o *Graph) *Graph {
	out := New()
	for v := range g.vertices {
		if _, ok := o.vertices[v]; ok {
			out.vertices[v] = struct{}{}
		}
	}
	for e := range g.edges {
		if _, ok := o.edges[e]; ok {
			out.edges[e] = struct{}{}
		}
	}
	for name, set := range g.hyper {
		if other, ok := o.hyper[name]; ok && maps.Equal(set, other) {
			out.hyper[name] = maps.Clone(set)
		}
	}
	out.constraints = constraintIntersection(g.constraints, o.constraints)
	return out
}

// Subtract returns a new graph containing what g has and o does not.
// Neither operand is mutated.
//
//   - Vertices and edges are set differences. Edge identity includes the
//     label: an edge in o with the same endpoints but a different label does
//     not remove g's edge.
//   - A hyper-vertex survives only if its name is absent from o's mapping
//     altogether; even a differently-defined same-named group in o removes it.
//   - Constraints keep g's original order, minus any constraint present
//     anywhere in o.
func (g *Graph) Subtract(o *Graph) *Graph {
	out := New()
	for v := range g.vertices {
		if _, ok := o.vertices[v]; !ok {
			out.vertices[v] = struct{}{}
		}
	}
	for e := range g.edges {
		if _, ok := o.edges[e]; !ok {
			out.edges[e] = struct{}{}
		}
	}
	for name, set := range g.hyper {
		if _, ok := o.hyper[name]; !ok {
			out.hyper[name] = maps.Clone(set)
		}
	}
	for _, c := range g.constraints {
		if !slices.Contains(o.constraints, c) {
			out.constraints = append(out.constraints, c)
		}
	}
	return out
}

// constraintUnion deduplicates and sorts the combined constraint sequences.
func constraintUnion(a, b []string) []string {
	set := make(map[string]struct{}, len(a)+len(b))
	for _, c := range a {
		set[c] = struct{}{}
	}
	for _, c := range b {
		set[c] = struct{}{}
	}
	if len(set) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(set))
}

// constraintIntersection keeps constraints present in both sequences,
// deduplicated and sorted.
func constraintIntersection(a, b []string) []string {
	inB := make(map[string]struct{}, len(b))
	for _, c := range b {
		inB[c] = struct{}{}
	}
	set := make(map[string]struct{})
	for _, c := range a {
		if _, ok := inB[c]; ok {
			set[c] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	return slices.Sorted(maps.Keys(set))
}
