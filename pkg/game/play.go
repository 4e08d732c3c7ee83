package game

import (
	"context"
	"fmt"

	"github.com/paulrpotts/thinking-of-an-animal/pkg/tree"
)

// successLine is printed when the tree guessed the player's animal.
const successLine = "Great! Try another animal!"

// PlayRound runs one complete round: descend from the root by live yes/no
// answers until a guess leaf is reached, offer the guess, and on a miss
// grow the tree so the next round can tell the two animals apart.
//
// The walk is a small state machine rather than mutual recursion: each loop
// iteration is either "at a question" (ask, pick a branch, descend) or "at a
// guess" (offer it, finish). The ancestry needed by a growth event — the
// parent question and the branch that led here — travels along with the
// cursor. One call is one round; the caller decides whether to play again.
func (s *Session) PlayRound(ctx context.Context, port IO) error {
	var (
		parent *tree.Question
		branch tree.Branch
	)
	var cursor tree.Node = s.root

	for {
		switch node := cursor.(type) {
		case *tree.Question:
			yes, err := port.AskYesNo(ctx, node.Text())
			if err != nil {
				return fmt.Errorf("ask %q: %w", node.Text(), err)
			}
			parent = node
			branch = tree.BranchNo
			if yes {
				branch = tree.BranchYes
			}
			cursor = node.Child(branch)
			s.logger.Debug("descend", "question", node.Text(), "branch", branch.String())
			if cursor == nil {
				// Construction rules make this unreachable; abort the
				// round rather than guess silently.
				return fmt.Errorf("question %q, branch %s: %w", node.Text(), branch, tree.ErrNilChild)
			}

		case *tree.Guess:
			correct, err := port.AskYesNo(ctx, "Is it "+node.Animal()+"?")
			if err != nil {
				return fmt.Errorf("offer guess %q: %w", node.Animal(), err)
			}
			if correct {
				s.logger.Debug("guessed right", "animal", node.Animal())
				return port.EmitLine(ctx, successLine)
			}
			s.logger.Debug("guessed wrong", "animal", node.Animal())
			return s.Grow(ctx, port, parent, node, branch)

		default:
			return fmt.Errorf("unexpected node %T: %w", cursor, tree.ErrMalformed)
		}
	}
}
