package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/paulrpotts/thinking-of-an-animal/internal/cli"
)

var rootCmd = &cobra.Command{
	Use:   "animal",
	Short: "Play the classic guess-the-animal game",
	Long: `Think of an animal and the computer will attempt to guess it by asking
yes/no questions. When it guesses wrong you teach it the animal you were
thinking of, and the game gets smarter over time.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.Execute(optionsFromFlags(cmd))
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func optionsFromFlags(cmd *cobra.Command) cli.Options {
	state, _ := cmd.Flags().GetString("state")
	store, _ := cmd.Flags().GetString("store")
	dir, _ := cmd.Flags().GetString("dir")
	redisURL, _ := cmd.Flags().GetString("redis-url")
	debug, _ := cmd.Flags().GetBool("debug")
	quiet, _ := cmd.Flags().GetBool("quiet")
	return cli.Options{
		State:    state,
		Store:    store,
		Dir:      dir,
		RedisURL: redisURL,
		Debug:    debug,
		Quiet:    quiet,
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("state", "", "Name to persist the tree under (empty disables persistence)")
	rootCmd.PersistentFlags().String("store", "file", "Persistence backend: memory, file, or redis")
	rootCmd.PersistentFlags().String("dir", "", "Directory for the file store (default .animal/trees)")
	rootCmd.PersistentFlags().String("redis-url", "redis://localhost:6379/0", "Redis URL for the redis store")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress the banner")
}
