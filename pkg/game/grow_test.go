package game_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paulrpotts/thinking-of-an-animal/internal/testutils"
	"github.com/paulrpotts/thinking-of-an-animal/pkg/game"
	"github.com/paulrpotts/thinking-of-an-animal/pkg/tree"
)

// Growth correctness: after a miss on the yes-branch "a fish", teaching
// "a shark" with "Does it have fins?" answered "yes" must put the shark on
// the yes slot of the new question and the fish on the no slot.
func TestGrow_YesBranchAssignment(t *testing.T) {
	session := game.NewSession(nil)
	root := session.Root()
	wrong := root.Child(tree.BranchYes).(*tree.Guess)

	script := testutils.NewScriptIO("a shark", "Does it have fins?", "yes")
	require.NoError(t, session.Grow(context.Background(), script, root, wrong, tree.BranchYes))

	fins, ok := root.Child(tree.BranchYes).(*tree.Question)
	require.True(t, ok)
	assert.Equal(t, "Does it have fins?", fins.Text())
	assert.Equal(t, "a shark", fins.Child(tree.BranchYes).(*tree.Guess).Animal())
	assert.Same(t, wrong, fins.Child(tree.BranchNo))

	assert.Equal(t, []string{
		"What animal were you thinking of? ",
		"Please type a yes-or-no question that would distinguish a shark from a fish:",
		"For a shark, what is the answer?",
	}, script.Prompts)
}

// The branch assignment comes from the live answer: "no" for the new animal
// flips the wiring.
func TestGrow_NoBranchAssignment(t *testing.T) {
	session := game.NewSession(nil)
	root := session.Root()
	wrong := root.Child(tree.BranchYes).(*tree.Guess)

	script := testutils.NewScriptIO("a whale", "Does it breathe water?", "no")
	require.NoError(t, session.Grow(context.Background(), script, root, wrong, tree.BranchYes))

	split := root.Child(tree.BranchYes).(*tree.Question)
	assert.Same(t, wrong, split.Child(tree.BranchYes))
	assert.Equal(t, "a whale", split.Child(tree.BranchNo).(*tree.Guess).Animal())
}

// Typing the same animal again is accepted as-is: two leaves with the same
// name, no deduplication.
func TestGrow_DuplicateAnimalAccepted(t *testing.T) {
	session := game.NewSession(nil)
	root := session.Root()
	wrong := root.Child(tree.BranchNo).(*tree.Guess)

	script := testutils.NewScriptIO("A Bird", "Is it the same bird?", "yes")
	require.NoError(t, session.Grow(context.Background(), script, root, wrong, tree.BranchNo))

	split := root.Child(tree.BranchNo).(*tree.Question)
	assert.Equal(t, "a bird", split.Child(tree.BranchYes).(*tree.Guess).Animal())
	assert.Equal(t, "a bird", split.Child(tree.BranchNo).(*tree.Guess).Animal())
}

// An empty animal name cannot become a guess node; the round aborts and the
// tree is left exactly as it was.
func TestGrow_EmptyAnimalLeavesTreeUntouched(t *testing.T) {
	session := game.NewSession(nil)
	root := session.Root()
	wrong := root.Child(tree.BranchYes).(*tree.Guess)

	script := testutils.NewScriptIO("   ")
	err := session.Grow(context.Background(), script, root, wrong, tree.BranchYes)
	assert.ErrorIs(t, err, tree.ErrEmptyText)
	assert.Same(t, wrong, root.Child(tree.BranchYes))
}

func TestGrow_MissingParentFailsFast(t *testing.T) {
	session := game.NewSession(nil)
	wrong := session.Root().Child(tree.BranchYes).(*tree.Guess)

	err := session.Grow(context.Background(), testutils.NewScriptIO(), nil, wrong, tree.BranchYes)
	assert.ErrorIs(t, err, tree.ErrMalformed)
}
