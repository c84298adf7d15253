package graph

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/MasoudKargar/HAG/pkg/hag"
)

func TestMarshalGraph(t *testing.T) {
	tests := []struct {
		name         string
		build        func() *hag.Graph
		wantVertices int
		wantEdges    int
		check        func(t *testing.T, g Graph)
	}{
		{
			name:         "Empty",
			build:        hag.New,
			wantVertices: 0,
			wantEdges:    0,
		},
		{
			name: "Simple",
			build: func() *hag.Graph {
				g := hag.New()
				g.AddEdge("a", "b", "calls")
				return g
			},
			wantVertices: 2,
			wantEdges:    1,
			check: func(t *testing.T, g Graph) {
				want := Edge{From: "a", To: "b", Label: "calls"}
				if g.Edges[0] != want {
					t.Errorf("edge = %+v, want %+v", g.Edges[0], want)
				}
			},
		},
		{
			name: "HyperVerticesAndConstraints",
			build: func() *hag.Graph {
				g := hag.New()
				g.AddEdge("a", "b", "")
				g.AddHyperVertex("H1", []hag.ID{"b", "a"})
				g.AddConstraint("layered")
				return g
			},
			wantVertices: 3, // a, b, H1
			wantEdges:    1,
			check: func(t *testing.T, g Graph) {
				if want := []string{"a", "b"}; !slices.Equal(g.HyperVertices["H1"], want) {
					t.Errorf("H1 members = %v, want sorted %v", g.HyperVertices["H1"], want)
				}
				if want := []string{"layered"}; !slices.Equal(g.Constraints, want) {
					t.Errorf("constraints = %v, want %v", g.Constraints, want)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.build()

			data, err := MarshalGraph(g)
			if err != nil {
				t.Fatalf("MarshalGraph: %v", err)
			}

			var result Graph
			if err := json.Unmarshal(data, &result); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}

			if got := len(result.Vertices); got != tt.wantVertices {
				t.Errorf("vertices = %d, want %d", got, tt.wantVertices)
			}
			if got := len(result.Edges); got != tt.wantEdges {
				t.Errorf("edges = %d, want %d", got, tt.wantEdges)
			}

			if tt.check != nil {
				tt.check(t, result)
			}
		})
	}
}

func TestMarshalGraphDeterministic(t *testing.T) {
	g := hag.New()
	g.AddEdge("zeta", "alpha", "z")
	g.AddEdge("alpha", "zeta", "a")
	g.AddHyperVertex("H", []hag.ID{"zeta", "alpha"})

	first, err := MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph: %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := MarshalGraph(g)
		if err != nil {
			t.Fatalf("MarshalGraph: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatal("MarshalGraph output differs between runs")
		}
	}
}

func TestReadGraph(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
		check   func(t *testing.T, g *hag.Graph)
	}{
		{
			name:  "RoundTripState",
			input: `{"vertices":["a","b"],"edges":[{"from":"a","to":"b","label":"calls"}],"hyper_vertices":{"H":["a"]},"constraints":["c1"]}`,
			check: func(t *testing.T, g *hag.Graph) {
				if !g.PathExists("a", "b") {
					t.Error("edge lost in decode")
				}
				if members, ok := g.HyperVertex("H"); !ok || !slices.Equal(members, []hag.ID{"a"}) {
					t.Errorf("hyper-vertex H = %v, %v", members, ok)
				}
				if want := []string{"c1"}; !slices.Equal(g.Constraints(), want) {
					t.Errorf("constraints = %v, want %v", g.Constraints(), want)
				}
			},
		},
		{
			name:  "EdgeOnlyVerticesAutoRegistered",
			input: `{"vertices":[],"edges":[{"from":"x","to":"y"}]}`,
			check: func(t *testing.T, g *hag.Graph) {
				if !g.HasVertex("x") || !g.HasVertex("y") {
					t.Error("edge endpoints not registered as vertices")
				}
			},
		},
		{
			name:    "MalformedJSON",
			input:   `{"vertices": [`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := ReadGraph(strings.NewReader(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatal("ReadGraph = nil error, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadGraph: %v", err)
			}
			tt.check(t, g)
		})
	}
}

func TestFileRoundTrip(t *testing.T) {
	g := hag.New()
	g.AddEdge("ui", "api", "calls")
	g.AddEdge("api", "db", "reads")
	g.AddHyperVertex("backend", []hag.ID{"api", "db"})
	g.AddConstraint("ui never touches db")

	path := filepath.Join(t.TempDir(), "graph.json")
	if err := WriteGraphFile(g, path); err != nil {
		t.Fatalf("WriteGraphFile: %v", err)
	}

	loaded, err := ReadGraphFile(path)
	if err != nil {
		t.Fatalf("ReadGraphFile: %v", err)
	}

	if !Equal(FromHAG(g), FromHAG(loaded)) {
		t.Errorf("round trip changed the graph:\nbefore: %s\nafter:  %s", g, loaded)
	}
}

func TestReadGraphFileMissing(t *testing.T) {
	_, err := ReadGraphFile(filepath.Join(t.TempDir(), "absent.json"))
	if err == nil {
		t.Fatal("ReadGraphFile on missing file = nil error, want error")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error does not wrap fs.ErrNotExist: %v", err)
	}
}

func TestEqual(t *testing.T) {
	base := Graph{
		Vertices:      []string{"a", "b"},
		Edges:         []Edge{{From: "a", To: "b", Label: "x"}},
		HyperVertices: map[string][]string{"H": {"a"}},
		Constraints:   []string{"c1", "c2"},
	}

	same := Graph{
		Vertices:      []string{"a", "b"},
		Edges:         []Edge{{From: "a", To: "b", Label: "x"}},
		HyperVertices: map[string][]string{"H": {"a"}},
		Constraints:   []string{"c1", "c2"},
	}
	if !Equal(base, same) {
		t.Error("Equal = false for identical graphs")
	}

	differentLabel := same
	differentLabel.Edges = []Edge{{From: "a", To: "b", Label: "y"}}
	if Equal(base, differentLabel) {
		t.Error("Equal = true despite differing edge labels")
	}

	differentOrder := same
	differentOrder.Constraints = []string{"c2", "c1"}
	if Equal(base, differentOrder) {
		t.Error("Equal = true despite differing constraint order")
	}
}
