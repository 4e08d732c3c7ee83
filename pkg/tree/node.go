package tree

import "fmt"

// Node is the closed union of tree node variants. The only implementations
// are *Question and *Guess; a type switch over those two is exhaustive.
type Node interface {
	node()
}

// Branch names a child slot of a Question.
type Branch uint8

const (
	// BranchYes is the child reached by answering "yes".
	BranchYes Branch = iota
	// BranchNo is the child reached by answering "no".
	BranchNo
)

func (b Branch) String() string {
	if b == BranchYes {
		return "yes"
	}
	return "no"
}

// Question is an internal node: a yes/no question with exactly two children.
// It is constructed atomically with both children present and is never
// mutated afterwards, except that a child slot may be redirected to a newly
// built Question by Splice.
type Question struct {
	text string
	yes  Node
	no   Node
}

// Guess is a leaf node holding a candidate animal name, stored lowercased.
type Guess struct {
	animal string
}

func (*Question) node() {}
func (*Guess) node()    {}

// NewQuestion builds a question node wired to both children in one step.
// The text is normalized (first rune capitalized, exactly one trailing '?').
func NewQuestion(text string, yes, no Node) (*Question, error) {
	text = NormalizeQuestion(text)
	if text == "" {
		return nil, fmt.Errorf("new question: %w", ErrEmptyText)
	}
	if yes == nil || no == nil {
		return nil, fmt.Errorf("new question %q: %w", text, ErrNilChild)
	}
	return &Question{text: text, yes: yes, no: no}, nil
}

// NewGuess builds a guess leaf. The animal name is trimmed and lowercased.
func NewGuess(animal string) (*Guess, error) {
	animal = NormalizeAnimal(animal)
	if animal == "" {
		return nil, fmt.Errorf("new guess: %w", ErrEmptyText)
	}
	return &Guess{animal: animal}, nil
}

// Text returns the normalized question text.
func (q *Question) Text() string { return q.text }

// Child returns the node hanging on the given branch.
func (q *Question) Child(b Branch) Node {
	if b == BranchYes {
		return q.yes
	}
	return q.no
}

// Splice redirects the given child slot to a freshly built question node.
// This is the single mutation point of the tree: it is how a wrong guess is
// replaced by a new question that keeps the old guess as one of its leaves.
func (q *Question) Splice(b Branch, repl *Question) error {
	if repl == nil {
		return fmt.Errorf("splice %s of %q: %w", b, q.text, ErrNilChild)
	}
	if b == BranchYes {
		q.yes = repl
	} else {
		q.no = repl
	}
	return nil
}

// Animal returns the lowercased animal name.
func (g *Guess) Animal() string { return g.animal }

// Seed returns the fixed two-animal starting tree the game boots with.
func Seed() *Question {
	return &Question{
		text: "Does it swim?",
		yes:  &Guess{animal: "a fish"},
		no:   &Guess{animal: "a bird"},
	}
}

// Validate walks the tree rooted at n and checks the structural invariants:
// every question has both children and non-empty text, every guess has a
// non-empty name. It reports the first violation found.
func Validate(n Node) error {
	switch n := n.(type) {
	case *Question:
		if n.text == "" {
			return fmt.Errorf("validate: question: %w", ErrEmptyText)
		}
		if n.yes == nil || n.no == nil {
			return fmt.Errorf("validate: question %q: %w", n.text, ErrNilChild)
		}
		if err := Validate(n.yes); err != nil {
			return err
		}
		return Validate(n.no)
	case *Guess:
		if n.animal == "" {
			return fmt.Errorf("validate: guess: %w", ErrEmptyText)
		}
		return nil
	default:
		return fmt.Errorf("validate: unknown node %T: %w", n, ErrMalformed)
	}
}

// Clone returns a deep copy of the tree rooted at q. The copy shares no
// nodes with the original, so stores can hand out isolated snapshots.
func (q *Question) Clone() *Question {
	return &Question{
		text: q.text,
		yes:  cloneNode(q.yes),
		no:   cloneNode(q.no),
	}
}

func cloneNode(n Node) Node {
	switch n := n.(type) {
	case *Question:
		return n.Clone()
	case *Guess:
		return &Guess{animal: n.animal}
	default:
		return nil
	}
}
