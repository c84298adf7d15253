package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MasoudKargar/HAG/pkg/cache"
	"github.com/MasoudKargar/HAG/pkg/graph"
	"github.com/MasoudKargar/HAG/pkg/hag"
)

func writeSnapshot(t *testing.T) string {
	t.Helper()
	g := hag.New()
	g.AddEdge("api", "db", "reads")
	g.AddEdge("api", "cache", "")
	g.AddHyperVertex("backend", []hag.ID{"api", "db"})
	g.AddConstraint("cache is best-effort")

	path := filepath.Join(t.TempDir(), "graph.json")
	if err := graph.WriteGraphFile(g, path); err != nil {
		t.Fatalf("WriteGraphFile: %v", err)
	}
	return path
}

func writeManifest(t *testing.T) string {
	t.Helper()
	const doc = `
vertices = ["standalone"]
constraints = ["ordering matters"]

[[edge]]
from = "api"
to = "db"
label = "reads"

[hyper]
backend = ["api", "db"]
`
	path := filepath.Join(t.TempDir(), "hag.toml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestValidateAndSetDefaults(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{
			name:    "missing input",
			opts:    Options{},
			wantErr: "input is required",
		},
		{
			name:    "invalid format",
			opts:    Options{Input: "g.json", Formats: []string{"gif"}},
			wantErr: "invalid format",
		},
		{
			name: "defaults applied",
			opts: Options{Input: "g.json"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.ValidateAndSetDefaults()
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("got %v, want error containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(tt.opts.Formats) != 1 || tt.opts.Formats[0] != FormatSVG {
				t.Errorf("Formats = %v, want [svg]", tt.opts.Formats)
			}
			if tt.opts.Scale != DefaultScale {
				t.Errorf("Scale = %v, want %v", tt.opts.Scale, DefaultScale)
			}
			if tt.opts.Logger == nil {
				t.Error("Logger not defaulted")
			}
		})
	}
}

func TestValidateAndSetDefaultsIdempotent(t *testing.T) {
	opts := Options{Input: "g.json"}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatal(err)
	}
}

func TestLoadSnapshot(t *testing.T) {
	path := writeSnapshot(t)
	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !g.HasVertex("api") || !g.HasVertex("backend") {
		t.Error("snapshot vertices missing")
	}
}

func TestLoadManifest(t *testing.T) {
	path := writeManifest(t)
	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d, want 1", g.EdgeCount())
	}
	if _, ok := g.HyperVertex("backend"); !ok {
		t.Error("hyper-vertex backend missing")
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	if _, err := Load("graph.yaml"); err == nil {
		t.Fatal("expected error for unsupported extension")
	}
}

func TestExecute(t *testing.T) {
	runner := NewRunner(cache.NewNullCache(), nil)
	result, err := runner.Execute(context.Background(), Options{
		Input:   writeSnapshot(t),
		Formats: []string{FormatDOT, FormatJSON, FormatHTML},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.GraphHash == "" {
		t.Error("GraphHash is empty")
	}
	if result.Stats.VertexCount != result.Graph.VertexCount() {
		t.Error("stats disagree with graph")
	}
	dot := string(result.Artifacts[FormatDOT])
	if !strings.Contains(dot, `"api" -> "db"`) {
		t.Errorf("dot output missing edge:\n%s", dot)
	}
	if !strings.Contains(string(result.Artifacts[FormatHTML]), "vis-network") {
		t.Error("html output missing vis-network scene")
	}
	if len(result.Artifacts[FormatJSON]) == 0 {
		t.Error("json artifact is empty")
	}
}

func TestExecuteCollapse(t *testing.T) {
	runner := NewRunner(nil, nil)
	result, err := runner.Execute(context.Background(), Options{
		Input:    writeSnapshot(t),
		Collapse: []string{"backend", "nonexistent"},
		Formats:  []string{FormatJSON},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	g := result.Graph
	if g.HasVertex("api") || g.HasVertex("db") {
		t.Error("collapsed members still present")
	}
	if !g.HasVertex("backend") {
		t.Error("collapsed hyper-vertex missing")
	}
}

func TestExecuteCacheHit(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	runner := NewRunner(c, nil)
	opts := Options{Input: writeSnapshot(t), Formats: []string{FormatDOT}}

	first, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	if first.CacheHit {
		t.Error("first run should not be a cache hit")
	}

	second, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	if !second.CacheHit {
		t.Error("second run should be a cache hit")
	}
	if string(first.Artifacts[FormatDOT]) != string(second.Artifacts[FormatDOT]) {
		t.Error("cached artifact differs from rendered artifact")
	}
}

func TestExecuteRefreshBypassesCache(t *testing.T) {
	c, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	runner := NewRunner(c, nil)
	opts := Options{Input: writeSnapshot(t), Formats: []string{FormatDOT}}

	if _, err := runner.Execute(context.Background(), opts); err != nil {
		t.Fatalf("first Execute: %v", err)
	}
	opts.Refresh = true
	result, err := runner.Execute(context.Background(), opts)
	if err != nil {
		t.Fatalf("refresh Execute: %v", err)
	}
	if result.CacheHit {
		t.Error("refresh run should not report a cache hit")
	}
}
