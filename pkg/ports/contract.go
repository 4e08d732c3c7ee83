package ports

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulrpotts/thinking-of-an-animal/pkg/tree"
)

// RunTreeStoreContract runs a suite of tests to verify that a TreeStore
// implementation adheres to the interface contract. Every adapter's own
// tests call this with a ready-to-use store.
func RunTreeStoreContract(t *testing.T, store TreeStore) {
	ctx := context.Background()
	name := "contract-" + time.Now().Format("20060102150405")

	grown := func() *tree.Question {
		// Seed tree with one growth event applied, so the round-trip
		// covers a question nested under a question.
		shark, err := tree.NewGuess("a shark")
		require.NoError(t, err)
		fish, err := tree.NewGuess("a fish")
		require.NoError(t, err)
		fins, err := tree.NewQuestion("Does it have fins?", shark, fish)
		require.NoError(t, err)
		root := tree.Seed()
		require.NoError(t, root.Splice(tree.BranchYes, fins))
		return root
	}

	t.Run("SaveAndLoad", func(t *testing.T) {
		saved := grown()
		require.NoError(t, store.Save(ctx, name, saved), "Save should not return error")

		loaded, err := store.Load(ctx, name)
		require.NoError(t, err, "Load should not return error")
		require.NoError(t, tree.Validate(loaded))

		// Kind, text, and child order must survive the trip.
		want, err := tree.Marshal(saved)
		require.NoError(t, err)
		got, err := tree.Marshal(loaded)
		require.NoError(t, err)
		assert.Equal(t, string(want), string(got))
	})

	t.Run("LoadIsolated", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, grown()))

		first, err := store.Load(ctx, name)
		require.NoError(t, err)

		// Mutating a loaded tree must not leak into the store.
		extra, err := tree.NewGuess("a dog")
		require.NoError(t, err)
		bird, err := tree.NewGuess("a bird")
		require.NoError(t, err)
		barks, err := tree.NewQuestion("Does it bark?", extra, bird)
		require.NoError(t, err)
		require.NoError(t, first.Splice(tree.BranchNo, barks))

		second, err := store.Load(ctx, name)
		require.NoError(t, err)
		_, isGuess := second.Child(tree.BranchNo).(*tree.Guess)
		assert.True(t, isGuess, "stored tree should be unaffected by caller mutation")
	})

	t.Run("LoadNonExistent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+name)
		assert.ErrorIs(t, err, tree.ErrNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, name, grown()))

		require.NoError(t, store.Delete(ctx, name), "Delete should not return error")

		_, err := store.Load(ctx, name)
		assert.ErrorIs(t, err, tree.ErrNotFound, "Load after Delete should return tree.ErrNotFound")
	})

	t.Run("List", func(t *testing.T) {
		name1 := name + "-1"
		name2 := name + "-2"
		require.NoError(t, store.Save(ctx, name1, tree.Seed()))
		require.NoError(t, store.Save(ctx, name2, tree.Seed()))

		defer func() {
			_ = store.Delete(ctx, name1)
			_ = store.Delete(ctx, name2)
		}()

		names, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, names, name1)
		assert.Contains(t, names, name2)
	})
}
