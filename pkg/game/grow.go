package game

import (
	"context"
	"fmt"

	"github.com/paulrpotts/thinking-of-an-animal/pkg/tree"
)

// Grow handles a wrong guess: it collects the animal the player was actually
// thinking of, a question telling the two animals apart, and the answer that
// leads to the new animal, then splices a new question node into parent in
// place of the wrong guess. The wrong guess survives as one of the two
// leaves, so no information is ever lost.
//
// All three inputs are collected before the tree is touched; the splice at
// the end is the single mutation, so a failed round can never leave the
// tree half-grown.
func (s *Session) Grow(ctx context.Context, port IO, parent *tree.Question, wrong *tree.Guess, branch tree.Branch) error {
	if parent == nil || wrong == nil {
		return fmt.Errorf("grow: missing parent or guess: %w", tree.ErrMalformed)
	}

	animal, err := port.AskFreeText(ctx, "What animal were you thinking of? ")
	if err != nil {
		return fmt.Errorf("grow: ask animal: %w", err)
	}
	correct, err := tree.NewGuess(animal)
	if err != nil {
		return fmt.Errorf("grow: %w", err)
	}

	prompt := "Please type a yes-or-no question that would distinguish " +
		correct.Animal() + " from " + wrong.Animal() + ":"
	question, err := port.AskFreeText(ctx, prompt)
	if err != nil {
		return fmt.Errorf("grow: ask question: %w", err)
	}

	// The branch assignment is decided here and only here, from the live
	// answer: "yes" to the new question must reach whichever animal the
	// player says it reaches.
	yesIsCorrect, err := port.AskYesNo(ctx, "For "+correct.Animal()+", what is the answer?")
	if err != nil {
		return fmt.Errorf("grow: ask branch: %w", err)
	}

	yes, no := tree.Node(correct), tree.Node(wrong)
	if !yesIsCorrect {
		yes, no = no, yes
	}
	split, err := tree.NewQuestion(question, yes, no)
	if err != nil {
		return fmt.Errorf("grow: %w", err)
	}

	if err := parent.Splice(branch, split); err != nil {
		return fmt.Errorf("grow: %w", err)
	}
	s.logger.Debug("tree grew",
		"question", split.Text(),
		"new", correct.Animal(),
		"old", wrong.Animal(),
		"branch", branch.String(),
	)
	return nil
}
