// pethouse is a terminal virtual pet that lives in a three-room house.
//
// Usage:
//
//	pethouse play                - Live with the pet interactively
//	pethouse serve               - Start SSH server for remote visits
//	pethouse status              - Show the saved house state
//	pethouse decorate <room>     - Repaint a room with a generated image
//	pethouse reset               - Discard the saved state
//
// Global flags:
//
//	--config <path>  - Custom config file
//	--db <path>      - Saves database path (default: ~/.pethouse/saves.db)
//	--seed <value>   - Seed for the pet's movement (0 = random)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pet-house/internal/config"
)

var (
	// Global flags
	flagConfig string
	flagDBPath string
	flagSeed   int64
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pethouse",
	Short: "Pet House - A virtual pet that lives in your terminal",
	Long: `Pet House keeps a small pet in a three-room house: a Living Room,
a Kitchen, and a Bedroom. The pet wanders between rooms on its own,
even while you are looking elsewhere.

Walk to the Kitchen together to feed it, play hide and seek with it
in the Living Room, and repaint rooms with generated artwork.

Available commands:
  play      - Interactive terminal session
  serve     - SSH server so friends can visit the pet
  status    - Print the saved house state
  decorate  - One-shot room repaint via the image backend
  reset     - Discard the saved state

Examples:
  pethouse play
  pethouse play --db ./house.db
  pethouse serve --ssh :2222
  pethouse decorate Kitchen --prompt "sunlit farmhouse kitchen"`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to saves database (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Movement seed (0 = random based on time)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(decorateCmd)
	rootCmd.AddCommand(resetCmd)
}

// loadedConfig resolves the effective config for a command run,
// applying global flag overrides on top of the file.
func loadedConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	return cfg, nil
}
