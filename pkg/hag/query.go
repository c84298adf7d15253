package hag

import "slices"

// Neighbors returns every target reachable from v over a single edge, with
// one entry per matching edge: parallel edges with different labels yield
// duplicate targets. Callers needing a deduplicated set must dedupe
// themselves. The result is sorted for determinism.
//
// The scan is linear in the total edge count; no adjacency index is kept.
// An unknown vertex simply has no neighbors.
func (g *Graph) Neighbors(v ID) []ID {
	var out []ID
	for e := range g.edges {
		if e.From == v {
			out = append(out, e.To)
		}
	}
	slices.Sort(out)
	return out
}

// PathExists reports whether a directed path leads from start to end.
// A vertex trivially reaches itself, even when it is not in the graph.
//
// The search is a depth-first traversal with a single visited set shared
// across the whole search, so every vertex is expanded at most once and
// cyclic graphs terminate. An explicit stack is used instead of recursion
// to keep the depth independent of the call stack.
func (g *Graph) PathExists(start, end ID) bool {
	if start == end {
		return true
	}

	visited := map[ID]struct{}{start: {}}
	stack := []ID{start}

	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, n := range g.Neighbors(v) {
			if n == end {
				return true
			}
			if _, seen := visited[n]; seen {
				continue
			}
			visited[n] = struct{}{}
			stack = append(stack, n)
		}
	}
	return false
}
