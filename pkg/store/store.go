// Package store persists named graph documents.
//
// The core graph model defines no persistence format; the store works
// entirely on the serialization documents from pkg/graph. Two backends are
// provided: [MongoStore] for shared deployments and [MemoryStore] for tests
// and ephemeral use.
package store

import (
	"context"
	"time"

	"github.com/MasoudKargar/HAG/pkg/graph"
)

// Record is a stored graph document with its storage metadata.
type Record struct {
	Name      string      `json:"name" bson:"name"`
	Graph     graph.Graph `json:"graph" bson:"graph"`
	UpdatedAt time.Time   `json:"updated_at" bson:"updated_at"`
}

// Info is the listing view of a stored graph: metadata without the document.
type Info struct {
	Name      string    `json:"name" bson:"name"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Store is the interface for graph persistence backends.
type Store interface {
	// Save stores g under name, replacing any existing document.
	Save(ctx context.Context, name string, g graph.Graph) error

	// Load retrieves the graph stored under name.
	// Returns an error with code GRAPH_NOT_FOUND if the name is unknown.
	Load(ctx context.Context, name string) (graph.Graph, error)

	// List returns metadata for all stored graphs, sorted by name.
	List(ctx context.Context) ([]Info, error)

	// Delete removes the graph stored under name.
	// Returns an error with code GRAPH_NOT_FOUND if the name is unknown.
	Delete(ctx context.Context, name string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
