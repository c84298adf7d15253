package store

import (
	"context"
	"maps"
	"slices"
	"time"

	"github.com/MasoudKargar/HAG/pkg/errors"
	"github.com/MasoudKargar/HAG/pkg/graph"
)

// MemoryStore is an in-memory store for tests and ephemeral use.
type MemoryStore struct {
	records map[string]Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

// Save stores g under name, replacing any existing document.
func (s *MemoryStore) Save(ctx context.Context, name string, g graph.Graph) error {
	if err := errors.ValidateGraphName(name); err != nil {
		return err
	}
	s.records[name] = Record{Name: name, Graph: g, UpdatedAt: time.Now().UTC()}
	return nil
}

// Load retrieves the graph stored under name.
func (s *MemoryStore) Load(ctx context.Context, name string) (graph.Graph, error) {
	rec, ok := s.records[name]
	if !ok {
		return graph.Graph{}, errors.New(errors.ErrCodeGraphNotFound, "graph %q not found", name)
	}
	return rec.Graph, nil
}

// List returns metadata for all stored graphs, sorted by name.
func (s *MemoryStore) List(ctx context.Context) ([]Info, error) {
	infos := make([]Info, 0, len(s.records))
	for _, name := range slices.Sorted(maps.Keys(s.records)) {
		rec := s.records[name]
		infos = append(infos, Info{Name: rec.Name, UpdatedAt: rec.UpdatedAt})
	}
	return infos, nil
}

// Delete removes the graph stored under name.
func (s *MemoryStore) Delete(ctx context.Context, name string) error {
	if _, ok := s.records[name]; !ok {
		return errors.New(errors.ErrCodeGraphNotFound, "graph %q not found", name)
	}
	delete(s.records, name)
	return nil
}

// Close does nothing for the memory store.
func (s *MemoryStore) Close(ctx context.Context) error { return nil }

// Ensure MemoryStore implements Store.
var _ Store = (*MemoryStore)(nil)
