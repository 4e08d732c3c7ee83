package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	animal "github.com/paulrpotts/thinking-of-an-animal"
	"github.com/paulrpotts/thinking-of-an-animal/pkg/game"
)

// Run drives the read/dispatch loop over the given streams: an affirmative
// answer starts a round, "tree" prints the internal tree, anything else
// says goodbye. Exposed with explicit streams so tests can script it.
func Run(ctx context.Context, opts Options, in io.Reader, out io.Writer) error {
	logger := createLogger(opts.Debug)

	store, err := BuildStore(opts)
	if err != nil {
		return err
	}

	port := game.NewTextIO(in, out)
	gameOpts := []animal.Option{
		animal.WithIO(port),
		animal.WithLogger(logger),
	}
	if store != nil {
		gameOpts = append(gameOpts, animal.WithStore(store, opts.State))
	}
	g := animal.New(gameOpts...)

	// Resume a previously taught tree if one is stored.
	if err := g.Load(ctx); err != nil {
		return err
	}

	for {
		if err := port.EmitLine(ctx, ""); err != nil {
			return err
		}
		answer, err := port.AskFreeText(ctx, "Are you thinking of an animal?")
		if err != nil {
			// End of input is a normal way to leave the game.
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("read answer: %w", err)
		}

		switch {
		case game.Affirmative(answer):
			if err := g.PlayRound(ctx); err != nil {
				// Input drying up mid-round is also a normal exit.
				if errors.Is(err, io.EOF) {
					return nil
				}
				return err
			}
		case strings.HasPrefix(strings.ToLower(answer), "t"):
			if err := port.EmitLine(ctx, "Game tree:"); err != nil {
				return err
			}
			if err := g.PrintTree(ctx); err != nil {
				return err
			}
		default:
			return port.EmitLine(ctx, "Goodbye for now!")
		}
	}
}
