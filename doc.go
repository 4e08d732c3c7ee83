/*
Package animal implements the classic "guess the animal" game over a
self-growing binary decision tree.

The program asks the player to think of an animal and walks a tree of yes/no
questions until it reaches a guess. A wrong guess teaches the tree: the
player supplies the animal they were thinking of and a question that tells
the two animals apart, and the tree grows a new question node in place of
the old guess. The old guess is kept as a sibling leaf, so the game only
ever gets smarter.

The core is split hexagonally: pkg/tree holds the pure node model and its
invariants, pkg/game holds the interactive walker, the growth algorithm, and
the diagnostic trace printer, all behind an abstract IO port, and pkg/ports
defines the persistence interface with adapters for memory, filesystem, and
Redis.

# Usage

	package main

	import (
		"context"
		"log"

		animal "github.com/paulrpotts/thinking-of-an-animal"
	)

	func main() {
		g := animal.New()

		ctx := context.Background()
		for {
			if err := g.PlayRound(ctx); err != nil {
				log.Fatal(err)
			}
		}
	}

The animal binary under cmd/animal wraps this in the interactive shell loop
("Are you thinking of an animal?") with optional tree persistence.
*/
package animal
