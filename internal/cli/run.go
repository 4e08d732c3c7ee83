package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	backend "github.com/redis/go-redis/v9"
	"golang.org/x/term"

	animal "github.com/paulrpotts/thinking-of-an-animal"
	"github.com/paulrpotts/thinking-of-an-animal/internal/adapters/file"
	"github.com/paulrpotts/thinking-of-an-animal/internal/adapters/memory"
	"github.com/paulrpotts/thinking-of-an-animal/internal/adapters/redis"
	"github.com/paulrpotts/thinking-of-an-animal/internal/logging"
	"github.com/paulrpotts/thinking-of-an-animal/internal/presentation/tui"
	"github.com/paulrpotts/thinking-of-an-animal/pkg/ports"
)

// Options contains all the configuration for the game command.
type Options struct {
	State    string // tree name for persistence; empty plays in-memory only
	Store    string // memory | file | redis
	Dir      string // base path for the file store
	RedisURL string
	Debug    bool
	Quiet    bool
}

// Execute runs the interactive game on the process's terminal.
func Execute(opts Options) error {
	if !opts.Quiet && term.IsTerminal(int(os.Stdout.Fd())) {
		tui.PrintBanner(animal.Version)
	}
	return Run(context.Background(), opts, os.Stdin, os.Stdout)
}

func createLogger(debug bool) *slog.Logger {
	if debug {
		return logging.New(slog.LevelDebug)
	}
	return logging.NewNop()
}

// BuildStore resolves the persistence adapter named by the options.
// It returns nil when no persistence was requested.
func BuildStore(opts Options) (ports.TreeStore, error) {
	if opts.State == "" {
		return nil, nil
	}
	switch opts.Store {
	case "", "file":
		return file.New(opts.Dir), nil
	case "memory":
		return memory.NewStore(), nil
	case "redis":
		ropts, err := backend.ParseURL(opts.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("parse --redis-url: %w", err)
		}
		return redis.NewFromClient(backend.NewClient(ropts)), nil
	default:
		return nil, fmt.Errorf("unknown store %q (want memory, file, or redis)", opts.Store)
	}
}
