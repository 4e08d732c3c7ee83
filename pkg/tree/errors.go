package tree

import "errors"

// ErrNotFound is returned when a named tree cannot be found in a store.
var ErrNotFound = errors.New("tree not found")

// ErrNilChild is returned when a question node would end up with a missing child.
var ErrNilChild = errors.New("question node requires both children")

// ErrEmptyText is returned when a node would be created with empty text.
var ErrEmptyText = errors.New("node text is empty")

// ErrMalformed is returned when a serialized tree document violates the
// structural invariants (unknown kind, guess with children, and so on).
var ErrMalformed = errors.New("malformed tree document")
