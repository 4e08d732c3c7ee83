/*
Package ports defines the driven ports (interfaces) for the game.

These interfaces decouple the core from external implementations, letting
the tree be persisted through different backends (memory, filesystem,
Redis). The package also ships a reusable contract test suite so every
adapter proves the same behavior.
*/
package ports
