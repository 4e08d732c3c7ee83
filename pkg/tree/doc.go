/*
Package tree contains the core domain model for the animal guessing game:
a mutable, strictly binary decision tree of question and guess nodes.

It defines the two node variants as a closed tagged union, the normalization
rules for question and animal text, the parent-addressed splice used when the
tree grows after a wrong guess, and a codec that serializes the tree
preserving node kind and child order (yes before no).

This package is kept pure and free of I/O, following Hexagonal Architecture
principles: asking the user anything is the job of the game package and its
ports.

# Key Entities

  - Question: internal node holding a yes/no question and exactly two children.
  - Guess: leaf node holding a lowercased candidate animal name.
  - Branch: discriminator naming the parent slot (yes or no) a child hangs on.
*/
package tree
