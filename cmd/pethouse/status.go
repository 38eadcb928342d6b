package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pet-house/internal/game"
	"github.com/vovakirdan/pet-house/internal/storage"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the saved house state",
	Long: `Print a summary of the saved state: where the pet is, where you
left off, and how each room looks. Shows the defaults when nothing
has been saved yet.

Examples:
  pethouse status
  pethouse status --db ./house.db`,
	Run: runStatus,
}

func runStatus(_ *cobra.Command, _ []string) {
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

	state, ok := store.LoadState()
	if !ok {
		state = game.DefaultState()
		fmt.Println("No saved house yet; showing a fresh one.")
	}

	fmt.Printf("Pet:    %s\n", state.Pet.CurrentRoom)
	fmt.Printf("You:    %s\n", state.Player.CurrentView)

	fmt.Println("Rooms:")
	for _, room := range game.Rooms() {
		look := state.House.Rooms[room].BackgroundImage
		if look == game.DefaultBackground(room) {
			look += " (default)"
		}
		if len(look) > 60 {
			look = look[:57] + "..."
		}
		fmt.Printf("  %-12s %s\n", room, look)
	}

	if state.Minigame != nil {
		fmt.Printf("Hide and seek: %s", state.Minigame.Status)
		if state.Minigame.Message != "" {
			fmt.Printf(" (%q)", state.Minigame.Message)
		}
		fmt.Println()
	}
}
