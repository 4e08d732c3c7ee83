/*
Package game implements the gameplay over the decision tree: the interactive
round walker, the growth algorithm that teaches the tree a new animal after
a wrong guess, and the read-only trace printer.

All user interaction flows through the IO port, so the walkers can be driven
by a terminal, a test script, or any other frontend. Every port operation is
blocking; there is exactly one logical actor, so the tree needs no locking.
*/
package game
