package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pet-house/internal/storage"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the saved state",
	Long: `Delete the saved house state. The next session starts fresh with
the pet in the Living Room. The pet does not hold grudges.

Examples:
  pethouse reset
  pethouse reset --db ./house.db`,
	Run: runReset,
}

func runReset(_ *cobra.Command, _ []string) {
	cfg, err := loadedConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening saves database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	store.ClearState()
	store.ClearLegacy()
	fmt.Println("Saved state cleared.")
}
