package hag

// CollapseHyperVertex replaces every edge endpoint that belongs to the named
// hyper-vertex with the hyper-vertex's own name and removes the members from
// the vertex set. Labels are preserved. If the rewrite makes two edges
// identical they merge into one - a deliberate consequence of the edge set's
// triple identity, not a special case.
//
// The name itself stays in the vertex set (it was registered by
// [Graph.AddHyperVertex]), and the definition entry stays in the hyper-vertex
// mapping so callers can inspect what was collapsed, even though its members
// no longer exist as vertices.
//
// Collapsing an undefined name is a silent no-op. The operation is
// destructive and irreversible in place; use [Graph.Clone] first if the
// original graph is still needed.
func (g *Graph) CollapseHyperVertex(name ID) {
	members, ok := g.hyper[name]
	if !ok {
		return
	}

	rewritten := make(map[Edge]struct{}, len(g.edges))
	for e := range g.edges {
		if _, isMember := members[e.From]; isMember {
			e.From = name
		}
		if _, isMember := members[e.To]; isMember {
			e.To = name
		}
		rewritten[e] = struct{}{}
	}
	g.edges = rewritten

	for m := range members {
		delete(g.vertices, m)
	}
	g.vertices[name] = struct{}{}
}
