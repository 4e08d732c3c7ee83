package memory

import (
	"context"
	"sync"

	"github.com/paulrpotts/thinking-of-an-animal/pkg/tree"
)

// Store implements ports.TreeStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*tree.Question
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*tree.Question),
	}
}

// Save persists a deep copy of the tree, so later mutations by the caller
// do not reach the stored snapshot.
func (s *Store) Save(ctx context.Context, name string, root *tree.Question) error {
	snapshot := root.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name] = snapshot
	return nil
}

// Load retrieves a deep copy of the stored tree.
func (s *Store) Load(ctx context.Context, name string) (*tree.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	root, ok := s.data[name]
	if !ok {
		return nil, tree.ErrNotFound
	}
	return root.Clone(), nil
}

// Delete removes the stored tree.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
	return nil
}

// List returns the names of stored trees.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	return names, nil
}
