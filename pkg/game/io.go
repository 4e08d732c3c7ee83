package game

import (
	"context"
	"strings"
)

// IO defines the strategy for interacting with the player. This allows
// switching between a live terminal and a scripted harness in tests.
type IO interface {
	// AskYesNo presents prompt and reads one answer, reporting whether it
	// was affirmative per Affirmative.
	AskYesNo(ctx context.Context, prompt string) (bool, error)

	// AskFreeText presents prompt and reads one line, surrounding
	// whitespace trimmed, case preserved.
	AskFreeText(ctx context.Context, prompt string) (string, error)

	// EmitLine writes one line of output to the player.
	EmitLine(ctx context.Context, line string) error
}

// Affirmative reports whether an answer counts as "yes": the first rune of
// the trimmed, lowercased text is 'y'. An empty answer is "no", never an
// error; the game accepts every input as given and performs no retries.
func Affirmative(answer string) bool {
	answer = strings.ToLower(strings.TrimSpace(answer))
	return strings.HasPrefix(answer, "y")
}
