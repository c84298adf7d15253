package manifest

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/MasoudKargar/HAG/pkg/errors"
	"github.com/MasoudKargar/HAG/pkg/hag"
)

const sample = `
vertices = ["ui", "api", "db"]
constraints = ["ui never touches db"]

[[edge]]
from = "ui"
to = "api"
label = "calls"

[[edge]]
from = "api"
to = "db"
label = "reads"

[hyper]
backend = ["api", "db"]
`

func TestParse(t *testing.T) {
	g, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	wantVertices := []hag.ID{"api", "backend", "db", "ui"}
	if got := g.Vertices(); !slices.Equal(got, wantVertices) {
		t.Errorf("Vertices = %v, want %v", got, wantVertices)
	}

	wantEdges := []hag.Edge{
		{From: "api", To: "db", Label: "reads"},
		{From: "ui", To: "api", Label: "calls"},
	}
	if got := g.Edges(); !slices.Equal(got, wantEdges) {
		t.Errorf("Edges = %v, want %v", got, wantEdges)
	}

	members, ok := g.HyperVertex("backend")
	if !ok {
		t.Fatal("hyper-vertex backend missing")
	}
	if want := []hag.ID{"api", "db"}; !slices.Equal(members, want) {
		t.Errorf("backend members = %v, want %v", members, want)
	}

	if want := []string{"ui never touches db"}; !slices.Equal(g.Constraints(), want) {
		t.Errorf("Constraints = %v, want %v", g.Constraints(), want)
	}
}

func TestParseEdgeOnlyManifest(t *testing.T) {
	g, err := Parse([]byte("[[edge]]\nfrom = \"a\"\nto = \"b\"\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !g.HasVertex("a") || !g.HasVertex("b") {
		t.Error("edge endpoints not auto-registered")
	}
	if got := g.Edges(); len(got) != 1 || got[0].Label != "" {
		t.Errorf("Edges = %v, want one edge with empty label", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantCode errors.Code
	}{
		{
			name:     "MalformedTOML",
			input:    "[[edge\n",
			wantCode: errors.ErrCodeInvalidManifest,
		},
		{
			name:     "EmptyEdgeEndpoint",
			input:    "[[edge]]\nfrom = \"\"\nto = \"b\"\n",
			wantCode: errors.ErrCodeInvalidManifest,
		},
		{
			name:     "EmptyVertex",
			input:    "vertices = [\"\"]\n",
			wantCode: errors.ErrCodeInvalidVertex,
		},
		{
			name:     "EmptyConstraint",
			input:    "constraints = [\"\"]\n",
			wantCode: errors.ErrCodeInvalidManifest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			if err == nil {
				t.Fatal("Parse = nil error, want error")
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("Parse error = %v, want code %s", err, tt.wantCode)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), Filename)
	if err := os.WriteFile(path, []byte(sample), 0644); err != nil {
		t.Fatal(err)
	}

	g, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := g.EdgeCount(); got != 2 {
		t.Errorf("EdgeCount = %d, want 2", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("Load error = %v, want FILE_NOT_FOUND", err)
	}
}
