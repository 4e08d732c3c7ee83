package game

import (
	"context"
	"fmt"
	"strings"

	"github.com/paulrpotts/thinking-of-an-animal/pkg/tree"
)

// traceIndent is one level of indentation in the printed trace.
const traceIndent = "   "

// PrintTree renders the whole tree through the port as a pre-order,
// depth-first listing. Question text is re-emitted before each branch, not
// once above both, so every line stays self-describing even when a large
// subtree is printed between the yes and no halves.
//
// The traversal only reads; it is safe to call at any time, including
// between rounds of the same session, and repeated calls on an unmodified
// tree produce identical output.
func (s *Session) PrintTree(ctx context.Context, port IO) error {
	return traceNode(ctx, port, s.root, 1)
}

func traceNode(ctx context.Context, port IO, n tree.Node, depth int) error {
	pad := strings.Repeat(traceIndent, depth)
	switch n := n.(type) {
	case *tree.Question:
		if err := port.EmitLine(ctx, pad+"Question: "+n.Text()+" -> yes:"); err != nil {
			return err
		}
		if err := traceNode(ctx, port, n.Child(tree.BranchYes), depth+1); err != nil {
			return err
		}
		if err := port.EmitLine(ctx, pad+"Question: "+n.Text()+" -> no:"); err != nil {
			return err
		}
		return traceNode(ctx, port, n.Child(tree.BranchNo), depth+1)
	case *tree.Guess:
		return port.EmitLine(ctx, pad+"Guess: "+n.Animal())
	default:
		return fmt.Errorf("trace: unexpected node %T: %w", n, tree.ErrMalformed)
	}
}
