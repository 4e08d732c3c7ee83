package game

import (
	"io"
	"log/slog"

	"github.com/paulrpotts/thinking-of-an-animal/pkg/tree"
)

// Session owns the decision tree for the lifetime of the process. It is
// constructed once, mutated in place by rounds that end in a wrong guess,
// and read by the trace printer. The root question never changes.
type Session struct {
	root   *tree.Question
	logger *slog.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets a structured logger for gameplay debug events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Session) {
		s.logger = logger
	}
}

// NewSession creates a session over the given tree. A nil root starts from
// the fixed two-animal seed tree.
func NewSession(root *tree.Question, opts ...Option) *Session {
	s := &Session{root: root}
	for _, opt := range opts {
		opt(s)
	}
	if s.root == nil {
		s.root = tree.Seed()
	}
	if s.logger == nil {
		s.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s
}

// Root returns the root question of the tree. The same instance is returned
// for the lifetime of the session.
func (s *Session) Root() *tree.Question {
	return s.root
}
