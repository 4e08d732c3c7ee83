package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	animal "github.com/paulrpotts/thinking-of-an-animal"
	"github.com/paulrpotts/thinking-of-an-animal/internal/cli"
	"github.com/paulrpotts/thinking-of-an-animal/pkg/tree"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "Print the stored decision tree without playing",
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := optionsFromFlags(cmd)

		root := tree.Seed()
		if opts.State != "" {
			store, err := cli.BuildStore(opts)
			if err != nil {
				return err
			}
			stored, err := store.Load(cmd.Context(), opts.State)
			switch {
			case err == nil:
				root = stored
			case errors.Is(err, tree.ErrNotFound):
				// Nothing taught yet; show the seed tree.
			default:
				return err
			}
		}

		fmt.Println("Game tree:")
		g := animal.New(animal.WithRoot(root))
		return g.PrintTree(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(treeCmd)
}
