package animal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/paulrpotts/thinking-of-an-animal/pkg/game"
	"github.com/paulrpotts/thinking-of-an-animal/pkg/ports"
	"github.com/paulrpotts/thinking-of-an-animal/pkg/tree"
)

// Game is the high-level entry point for the library. It wraps a gameplay
// session and optional persistence behind a simplified API.
type Game struct {
	session *game.Session
	port    game.IO
	store   ports.TreeStore
	name    string
	logger  *slog.Logger
	root    *tree.Question
}

// Option defines a functional option for configuring the Game.
type Option func(*Game)

// WithLogger sets a structured logger for gameplay debug events.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithIO injects a custom IO port, replacing the default Stdin/Stdout text
// port. Tests use this to drive rounds from a script.
func WithIO(port game.IO) Option {
	return func(g *Game) {
		g.port = port
	}
}

// WithRoot starts the game from an existing tree instead of the seed tree.
func WithRoot(root *tree.Question) Option {
	return func(g *Game) {
		g.root = root
	}
}

// WithStore attaches a persistence adapter. The tree is saved under name
// after every round that changes it, and Load restores it.
func WithStore(store ports.TreeStore, name string) Option {
	return func(g *Game) {
		g.store = store
		g.name = name
	}
}

// New creates a Game. Without options it plays on Stdin/Stdout from the
// fixed two-animal seed tree, with no persistence.
func New(opts ...Option) *Game {
	g := &Game{}
	for _, opt := range opts {
		opt(g)
	}
	if g.port == nil {
		g.port = game.NewTextIO(nil, nil)
	}
	if g.logger == nil {
		g.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	g.session = game.NewSession(g.root, game.WithLogger(g.logger))
	return g
}

// PlayRound plays one round and, when a store is attached, saves the tree
// afterwards so growth survives the process.
func (g *Game) PlayRound(ctx context.Context) error {
	if err := g.session.PlayRound(ctx, g.port); err != nil {
		return err
	}
	return g.Save(ctx)
}

// PrintTree renders the full decision tree through the IO port.
func (g *Game) PrintTree(ctx context.Context) error {
	return g.session.PrintTree(ctx, g.port)
}

// Root returns the root question. The same instance is returned for the
// lifetime of the Game.
func (g *Game) Root() *tree.Question {
	return g.session.Root()
}

// Save persists the current tree when a store is attached; otherwise it is
// a no-op.
func (g *Game) Save(ctx context.Context) error {
	if g.store == nil || g.name == "" {
		return nil
	}
	if err := g.store.Save(ctx, g.name, g.session.Root()); err != nil {
		return fmt.Errorf("save tree %q: %w", g.name, err)
	}
	return nil
}

// Load replaces the session with the tree stored under the configured name.
// A missing tree is not an error: the game simply keeps its current tree,
// and the first Save will create it.
func (g *Game) Load(ctx context.Context) error {
	if g.store == nil || g.name == "" {
		return nil
	}
	root, err := g.store.Load(ctx, g.name)
	if err != nil {
		if errors.Is(err, tree.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("load tree %q: %w", g.name, err)
	}
	g.session = game.NewSession(root, game.WithLogger(g.logger))
	return nil
}
