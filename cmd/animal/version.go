package main

import (
	"fmt"

	"github.com/spf13/cobra"

	animal "github.com/paulrpotts/thinking-of-an-animal"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of animal",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("animal version %s\n", animal.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
