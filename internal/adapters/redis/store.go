package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	backend "github.com/redis/go-redis/v9"

	"github.com/paulrpotts/thinking-of-an-animal/pkg/tree"
)

// Store implements ports.TreeStore using Redis. Each tree is one YAML value
// under a prefixed key, with a set index tracking the stored names.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithTTL sets the expiration for stored trees.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for stored trees.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a Redis store connected to the given address.
func New(address, password string, db int, opts ...Option) *Store {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "animal:tree:",
		ttl:    0, // no expiration by default
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) key(name string) string {
	return s.prefix + name
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Save persists the tree to Redis and records the name in the index set.
func (s *Store) Save(ctx context.Context, name string, root *tree.Question) error {
	data, err := tree.Marshal(root)
	if err != nil {
		return fmt.Errorf("save %q: %w", name, err)
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, s.key(name), data, s.ttl)
	pipe.SAdd(ctx, s.indexKey(), name)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save %q: redis: %w", name, err)
	}
	return nil
}

// Load retrieves and validates the tree stored under name.
func (s *Store) Load(ctx context.Context, name string) (*tree.Question, error) {
	data, err := s.client.Get(ctx, s.key(name)).Bytes()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, tree.ErrNotFound
		}
		return nil, fmt.Errorf("load %q: redis: %w", name, err)
	}
	root, err := tree.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("load %q: %w", name, err)
	}
	return root, nil
}

// Delete removes the tree and its index entry.
func (s *Store) Delete(ctx context.Context, name string) error {
	pipe := s.client.Pipeline()
	pipe.Del(ctx, s.key(name))
	pipe.SRem(ctx, s.indexKey(), name)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete %q: redis: %w", name, err)
	}
	return nil
}

// List returns the names recorded in the index set.
func (s *Store) List(ctx context.Context) ([]string, error) {
	names, err := s.client.SMembers(ctx, s.indexKey()).Result()
	if err != nil {
		return nil, fmt.Errorf("list: redis: %w", err)
	}
	return names, nil
}
