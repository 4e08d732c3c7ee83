package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/paulrpotts/thinking-of-an-animal/pkg/tree"
)

const fileExt = ".yaml"

// Store implements ports.TreeStore using the local filesystem.
// It stores each named tree as a YAML file in a configured directory.
type Store struct {
	BasePath string
}

// New creates a Store rooted at basePath.
// If basePath is empty, it defaults to ".animal/trees".
func New(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".animal", "trees")
	}
	return &Store{BasePath: basePath}
}

func (s *Store) path(name string) string {
	return filepath.Join(s.BasePath, name+fileExt)
}

// validName rejects names that would resolve outside BasePath.
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	return !strings.ContainsAny(name, `/\`)
}

// Save persists the tree to a YAML file atomically: write to a temp file in
// the same directory, fsync, then rename over the destination.
func (s *Store) Save(ctx context.Context, name string, root *tree.Question) error {
	if !validName(name) {
		return fmt.Errorf("save: invalid tree name %q", name)
	}
	if err := os.MkdirAll(s.BasePath, 0o755); err != nil {
		return fmt.Errorf("save %q: ensure directory: %w", name, err)
	}

	data, err := tree.Marshal(root)
	if err != nil {
		return fmt.Errorf("save %q: %w", name, err)
	}

	// Same directory as the destination so the rename stays on one
	// filesystem.
	tmp, err := os.CreateTemp(s.BasePath, "tmp-"+name+"-*"+fileExt)
	if err != nil {
		return fmt.Errorf("save %q: create temp file: %w", name, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("save %q: write temp file: %w", name, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("save %q: fsync temp file: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("save %q: close temp file: %w", name, err)
	}

	if err := os.Rename(tmpPath, s.path(name)); err != nil {
		return fmt.Errorf("save %q: rename: %w", name, err)
	}
	return nil
}

// Load reads and validates the tree stored under name.
func (s *Store) Load(ctx context.Context, name string) (*tree.Question, error) {
	if !validName(name) {
		return nil, fmt.Errorf("load: invalid tree name %q", name)
	}
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, tree.ErrNotFound
		}
		return nil, fmt.Errorf("load %q: %w", name, err)
	}
	root, err := tree.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", name, err)
	}
	return root, nil
}

// Delete removes the tree stored under name.
func (s *Store) Delete(ctx context.Context, name string) error {
	if !validName(name) {
		return fmt.Errorf("delete: invalid tree name %q", name)
	}
	if err := os.Remove(s.path(name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete %q: %w", name, err)
	}
	return nil
}

// List returns the names of stored trees.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("list: %w", err)
	}
	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), fileExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), fileExt))
	}
	return names, nil
}
