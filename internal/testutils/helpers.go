package testutils

import (
	"context"
	"fmt"
	"testing"

	"github.com/paulrpotts/thinking-of-an-animal/pkg/game"
)

// ScriptIO implements game.IO from a fixed sequence of answers, recording
// every prompt and emitted line. It lets walker tests run a whole round
// without a live input source.
type ScriptIO struct {
	answers []string
	next    int

	// Prompts holds every question or free-text prompt presented, in order.
	Prompts []string
	// Lines holds every line emitted through EmitLine, in order.
	Lines []string
}

// NewScriptIO creates a scripted port that will serve the given answers to
// AskYesNo and AskFreeText calls, in order.
func NewScriptIO(answers ...string) *ScriptIO {
	return &ScriptIO{answers: answers}
}

func (s *ScriptIO) take(prompt string) (string, error) {
	s.Prompts = append(s.Prompts, prompt)
	if s.next >= len(s.answers) {
		return "", fmt.Errorf("script exhausted at prompt %q", prompt)
	}
	answer := s.answers[s.next]
	s.next++
	return answer, nil
}

func (s *ScriptIO) AskYesNo(ctx context.Context, prompt string) (bool, error) {
	answer, err := s.take(prompt)
	if err != nil {
		return false, err
	}
	return game.Affirmative(answer), nil
}

func (s *ScriptIO) AskFreeText(ctx context.Context, prompt string) (string, error) {
	return s.take(prompt)
}

func (s *ScriptIO) EmitLine(ctx context.Context, line string) error {
	s.Lines = append(s.Lines, line)
	return nil
}

// Exhausted reports whether every scripted answer was consumed. Tests use
// it to catch rounds that asked fewer questions than expected.
func (s *ScriptIO) Exhausted() bool {
	return s.next == len(s.answers)
}

// RequireExhausted fails the test if scripted answers remain unconsumed.
func (s *ScriptIO) RequireExhausted(t *testing.T) {
	t.Helper()
	if !s.Exhausted() {
		t.Fatalf("script not exhausted: %d of %d answers consumed", s.next, len(s.answers))
	}
}
