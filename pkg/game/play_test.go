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

func TestPlayRound_StraightThroughCorrectGuess(t *testing.T) {
	session := game.NewSession(nil)
	script := testutils.NewScriptIO("yes", "yes")

	require.NoError(t, session.PlayRound(context.Background(), script))

	assert.Equal(t, []string{"Does it swim?", "Is it a fish?"}, script.Prompts)
	assert.Equal(t, []string{"Great! Try another animal!"}, script.Lines)
	script.RequireExhausted(t)

	// Tree unchanged: both children are still the seed guesses.
	root := session.Root()
	_, yesIsGuess := root.Child(tree.BranchYes).(*tree.Guess)
	_, noIsGuess := root.Child(tree.BranchNo).(*tree.Guess)
	assert.True(t, yesIsGuess)
	assert.True(t, noIsGuess)
}

func TestPlayRound_MissGrowsNoBranch(t *testing.T) {
	session := game.NewSession(nil)
	script := testutils.NewScriptIO(
		"no",           // Does it swim?
		"no",           // Is it a bird?
		"a dog",        // What animal were you thinking of?
		"does it bark", // distinguishing question
		"yes",          // For a dog, what is the answer?
	)

	require.NoError(t, session.PlayRound(context.Background(), script))
	script.RequireExhausted(t)

	root := session.Root()
	barks, ok := root.Child(tree.BranchNo).(*tree.Question)
	require.True(t, ok, "no-branch should now be a question")
	assert.Equal(t, "Does it bark?", barks.Text())

	dog, ok := barks.Child(tree.BranchYes).(*tree.Guess)
	require.True(t, ok)
	assert.Equal(t, "a dog", dog.Animal())

	bird, ok := barks.Child(tree.BranchNo).(*tree.Guess)
	require.True(t, ok)
	assert.Equal(t, "a bird", bird.Animal(), "wrong guess must be preserved as a leaf")

	assert.NoError(t, tree.Validate(root))
}

func TestPlayRound_RootStableAcrossRounds(t *testing.T) {
	session := game.NewSession(nil)
	root := session.Root()
	ctx := context.Background()

	// Round 1: miss and grow.
	first := testutils.NewScriptIO("yes", "no", "a shark", "Does it have fins?", "yes")
	require.NoError(t, session.PlayRound(ctx, first))

	// Round 2: find the new animal through the grown subtree.
	second := testutils.NewScriptIO("yes", "yes", "yes")
	require.NoError(t, session.PlayRound(ctx, second))
	assert.Equal(t, []string{"Does it swim?", "Does it have fins?", "Is it a shark?"}, second.Prompts)
	assert.Equal(t, []string{"Great! Try another animal!"}, second.Lines)

	assert.Same(t, root, session.Root(), "root instance must never be replaced")
	assert.Equal(t, "Does it swim?", session.Root().Text())
}

func TestPlayRound_DeepDescentAfterTwoGrowths(t *testing.T) {
	session := game.NewSession(nil)
	ctx := context.Background()

	require.NoError(t, session.PlayRound(ctx,
		testutils.NewScriptIO("no", "no", "a dog", "does it bark", "yes")))
	require.NoError(t, session.PlayRound(ctx,
		testutils.NewScriptIO("no", "yes", "no", "a wolf", "does it howl", "yes")))

	// a wolf: no (swim), yes (bark), yes (howl).
	found := testutils.NewScriptIO("no", "yes", "yes", "yes")
	require.NoError(t, session.PlayRound(ctx, found))
	assert.Equal(t,
		[]string{"Does it swim?", "Does it bark?", "Does it howl?", "Is it a wolf?"},
		found.Prompts)

	// All four animals remain reachable leaves.
	assert.NoError(t, tree.Validate(session.Root()))
	assert.ElementsMatch(t,
		[]string{"a fish", "a bird", "a dog", "a wolf"},
		leafAnimals(session.Root()))
}

func TestPlayRound_EmptyAnswerIsNo(t *testing.T) {
	session := game.NewSession(nil)
	script := testutils.NewScriptIO(
		"",  // Does it swim? -> treated as no
		"y", // Is it a bird?
	)

	require.NoError(t, session.PlayRound(context.Background(), script))
	assert.Equal(t, []string{"Does it swim?", "Is it a bird?"}, script.Prompts)
	assert.Equal(t, []string{"Great! Try another animal!"}, script.Lines)
}

func leafAnimals(n tree.Node) []string {
	switch n := n.(type) {
	case *tree.Question:
		return append(leafAnimals(n.Child(tree.BranchYes)), leafAnimals(n.Child(tree.BranchNo))...)
	case *tree.Guess:
		return []string{n.Animal()}
	default:
		return nil
	}
}
