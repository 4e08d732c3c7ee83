package tree

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Node kinds used by the serialized form.
const (
	KindQuestion = "question"
	KindGuess    = "guess"
)

// document is the flat serializable form of a node. Field order matters:
// yes is declared (and therefore emitted) before no, which is the child
// order the on-disk contract promises.
type document struct {
	Kind     string    `yaml:"kind" json:"kind"`
	Question string    `yaml:"question,omitempty" json:"question,omitempty"`
	Animal   string    `yaml:"animal,omitempty" json:"animal,omitempty"`
	Yes      *document `yaml:"yes,omitempty" json:"yes,omitempty"`
	No       *document `yaml:"no,omitempty" json:"no,omitempty"`
}

// Marshal serializes the tree rooted at root as a YAML document preserving
// node kind, text, and child order.
func Marshal(root *Question) ([]byte, error) {
	if root == nil {
		return nil, fmt.Errorf("marshal: nil root: %w", ErrMalformed)
	}
	return yaml.Marshal(encode(root))
}

// Unmarshal parses a YAML document produced by Marshal and rebuilds the
// tree, validating the structural invariants as it goes. The root of any
// valid tree is a question node.
func Unmarshal(data []byte) (*Question, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unmarshal tree: %w", err)
	}
	n, err := decode(&doc)
	if err != nil {
		return nil, err
	}
	root, ok := n.(*Question)
	if !ok {
		return nil, fmt.Errorf("unmarshal tree: root is not a question: %w", ErrMalformed)
	}
	return root, nil
}

func encode(n Node) *document {
	switch n := n.(type) {
	case *Question:
		return &document{
			Kind:     KindQuestion,
			Question: n.text,
			Yes:      encode(n.yes),
			No:       encode(n.no),
		}
	case *Guess:
		return &document{Kind: KindGuess, Animal: n.animal}
	default:
		return nil
	}
}

func decode(doc *document) (Node, error) {
	if doc == nil {
		return nil, fmt.Errorf("decode: missing node: %w", ErrMalformed)
	}
	switch doc.Kind {
	case KindQuestion:
		// Stored documents may have been edited by hand; re-apply the text
		// contract so the engine never holds un-normalized text.
		text := NormalizeQuestion(doc.Question)
		if text == "" {
			return nil, fmt.Errorf("decode: question without text: %w", ErrMalformed)
		}
		if doc.Yes == nil || doc.No == nil {
			return nil, fmt.Errorf("decode: question %q: %w", text, ErrNilChild)
		}
		yes, err := decode(doc.Yes)
		if err != nil {
			return nil, err
		}
		no, err := decode(doc.No)
		if err != nil {
			return nil, err
		}
		return &Question{text: text, yes: yes, no: no}, nil
	case KindGuess:
		animal := NormalizeAnimal(doc.Animal)
		if animal == "" {
			return nil, fmt.Errorf("decode: guess without animal: %w", ErrMalformed)
		}
		if doc.Yes != nil || doc.No != nil {
			return nil, fmt.Errorf("decode: guess %q has children: %w", animal, ErrMalformed)
		}
		return &Guess{animal: animal}, nil
	default:
		return nil, fmt.Errorf("decode: unknown kind %q: %w", doc.Kind, ErrMalformed)
	}
}
