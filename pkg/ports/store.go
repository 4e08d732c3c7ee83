package ports

import (
	"context"

	"github.com/paulrpotts/thinking-of-an-animal/pkg/tree"
)

// TreeStore defines the interface for persisting decision trees between
// runs. Implementations must preserve node kind, question/animal text, and
// child order (yes before no), so a reloaded tree plays identically.
type TreeStore interface {
	// Save persists the tree under the given name.
	Save(ctx context.Context, name string, root *tree.Question) error

	// Load retrieves the tree stored under name.
	// Returns tree.ErrNotFound if no tree exists under that name.
	Load(ctx context.Context, name string) (*tree.Question, error)

	// Delete removes the tree stored under name.
	Delete(ctx context.Context, name string) error

	// List returns the names of all stored trees.
	List(ctx context.Context) ([]string, error)
}
