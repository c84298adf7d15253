// Package graph defines the canonical serialization format for hierarchical
// abstraction graphs.
//
// The format is human-readable JSON designed for round-trip fidelity:
// export → re-import produces an observably identical graph. The same
// structures carry bson tags so the store can persist them as MongoDB
// documents without a second set of types.
package graph

import (
	"encoding/json"
	"slices"

	"github.com/MasoudKargar/HAG/pkg/hag"
)

// Graph is the serialization format for a HAG.
// Used for CLI output, caching, HTTP responses, and storage.
type Graph struct {
	Vertices      []string            `json:"vertices" bson:"vertices"`
	Edges         []Edge              `json:"edges" bson:"edges"`
	HyperVertices map[string][]string `json:"hyper_vertices,omitempty" bson:"hyper_vertices,omitempty"`
	Constraints   []string            `json:"constraints,omitempty" bson:"constraints,omitempty"`
}

// Edge represents a directed labeled edge in the serialized graph.
type Edge struct {
	From  string `json:"from" bson:"from"`
	To    string `json:"to" bson:"to"`
	Label string `json:"label,omitempty" bson:"label,omitempty"`
}

// FromHAG converts a graph to its serialization format.
// Vertices and edges are sorted for deterministic output; hyper-vertex
// member lists are sorted as well. Constraints keep their stored order.
func FromHAG(g *hag.Graph) Graph {
	vertices := g.Vertices()
	edges := g.Edges()

	out := Graph{
		Vertices:    make([]string, len(vertices)),
		Edges:       make([]Edge, len(edges)),
		Constraints: g.Constraints(),
	}

	for i, v := range vertices {
		out.Vertices[i] = string(v)
	}
	for i, e := range edges {
		out.Edges[i] = Edge{From: string(e.From), To: string(e.To), Label: e.Label}
	}

	hyper := g.HyperVertices()
	if len(hyper) > 0 {
		out.HyperVertices = make(map[string][]string, len(hyper))
		for name, members := range hyper {
			ms := make([]string, len(members))
			for i, m := range members {
				ms[i] = string(m)
			}
			out.HyperVertices[string(name)] = ms
		}
	}

	return out
}

// ToHAG converts a serialized graph back to a HAG.
// Edges auto-register their endpoints, so a vertex appearing only in the
// edge list still ends up in the vertex set.
func ToHAG(gj Graph) *hag.Graph {
	g := hag.New()

	for _, v := range gj.Vertices {
		g.AddVertex(hag.ID(v))
	}
	for _, e := range gj.Edges {
		g.AddEdge(hag.ID(e.From), hag.ID(e.To), e.Label)
	}
	for name, members := range gj.HyperVertices {
		ids := make([]hag.ID, len(members))
		for i, m := range members {
			ids[i] = hag.ID(m)
		}
		g.AddHyperVertex(hag.ID(name), ids)
	}
	for _, c := range gj.Constraints {
		g.AddConstraint(c)
	}

	return g
}

// Equal reports whether two serialized graphs describe the same state.
// Constraint order matters; hyper-vertex map order does not.
func Equal(a, b Graph) bool {
	if !slices.Equal(a.Vertices, b.Vertices) || !slices.Equal(a.Edges, b.Edges) {
		return false
	}
	if !slices.Equal(a.Constraints, b.Constraints) {
		return false
	}
	if len(a.HyperVertices) != len(b.HyperVertices) {
		return false
	}
	for name, members := range a.HyperVertices {
		if !slices.Equal(members, b.HyperVertices[name]) {
			return false
		}
	}
	return true
}

// UnmarshalGraph deserializes JSON bytes to a Graph.
func UnmarshalGraph(data []byte) (Graph, error) {
	var g Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return Graph{}, err
	}
	return g, nil
}
