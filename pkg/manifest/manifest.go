// Package manifest loads hierarchical abstraction graphs from TOML
// definition files.
//
// A manifest is the human-authored input format of the toolchain. A minimal
// example:
//
//	vertices = ["ui", "api", "db"]
//	constraints = ["ui never touches db"]
//
//	[[edge]]
//	from = "ui"
//	to = "api"
//	label = "calls"
//
//	[[edge]]
//	from = "api"
//	to = "db"
//	label = "reads"
//
//	[hyper]
//	backend = ["api", "db"]
//
// Vertices referenced only by edges or hyper-vertex member lists do not need
// to appear in the vertices array; edge endpoints and hyper-vertex names are
// registered automatically.
package manifest

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/MasoudKargar/HAG/pkg/errors"
	"github.com/MasoudKargar/HAG/pkg/hag"
)

// Filename is the conventional manifest filename.
const Filename = "hag.toml"

// manifest mirrors the TOML structure of a graph definition file.
type manifest struct {
	Vertices    []string            `toml:"vertices"`
	Edges       []edge              `toml:"edge"`
	Hyper       map[string][]string `toml:"hyper"`
	Constraints []string            `toml:"constraints"`
}

type edge struct {
	From  string `toml:"from"`
	To    string `toml:"to"`
	Label string `toml:"label"`
}

// Load reads and parses a TOML manifest file into a graph.
func Load(path string) (*hag.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest %s not found", path)
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses TOML manifest content into a graph.
// All identifiers are validated before the graph is built, so a malformed
// manifest fails as a whole instead of producing a partial graph.
func Parse(data []byte) (*hag.Graph, error) {
	var m manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "parse manifest")
	}
	if err := m.validate(); err != nil {
		return nil, err
	}

	g := hag.New()
	for _, v := range m.Vertices {
		g.AddVertex(hag.ID(v))
	}
	for _, e := range m.Edges {
		g.AddEdge(hag.ID(e.From), hag.ID(e.To), e.Label)
	}
	for name, members := range m.Hyper {
		ids := make([]hag.ID, len(members))
		for i, member := range members {
			ids[i] = hag.ID(member)
		}
		g.AddHyperVertex(hag.ID(name), ids)
	}
	for _, c := range m.Constraints {
		g.AddConstraint(c)
	}

	return g, nil
}

func (m *manifest) validate() error {
	for _, v := range m.Vertices {
		if err := errors.ValidateVertexID(v); err != nil {
			return err
		}
	}
	for i, e := range m.Edges {
		if err := errors.ValidateVertexID(e.From); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidManifest, err, "edge %d: from", i)
		}
		if err := errors.ValidateVertexID(e.To); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidManifest, err, "edge %d: to", i)
		}
	}
	for name, members := range m.Hyper {
		if err := errors.ValidateVertexID(name); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidManifest, err, "hyper-vertex %q", name)
		}
		for _, member := range members {
			if err := errors.ValidateVertexID(member); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidManifest, err, "hyper-vertex %q member", name)
			}
		}
	}
	for _, c := range m.Constraints {
		if err := errors.ValidateConstraint(c); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidManifest, err, "constraint")
		}
	}
	return nil
}
