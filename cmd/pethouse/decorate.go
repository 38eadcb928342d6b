package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pet-house/internal/game"
	"github.com/vovakirdan/pet-house/internal/imagegen"
	"github.com/vovakirdan/pet-house/internal/storage"
)

var (
	flagPrompt  string
	flagGenSeed int
)

var decorateCmd = &cobra.Command{
	Use:   "decorate <room>",
	Short: "Repaint a room with a generated image",
	Long: `Request a new background for the given room from the image backend
and save it into the house state. Runs without the interactive UI,
so it also works from scripts and cron.

Rooms: "Living Room", "Kitchen", "Bedroom".

Examples:
  pethouse decorate Kitchen --prompt "sunlit farmhouse kitchen"
  pethouse decorate "Living Room" --prompt "cozy cabin, fireplace" --image-seed 7`,
	Args: cobra.ExactArgs(1),
	Run:  runDecorate,
}

func init() {
	decorateCmd.Flags().StringVar(&flagPrompt, "prompt", "", "Description of the new room look (required)")
	decorateCmd.Flags().IntVar(&flagGenSeed, "image-seed", 0, "Generation seed (0 = per-room default)")
	//nolint:errcheck // Flag is registered right above
	decorateCmd.MarkFlagRequired("prompt")
}

func runDecorate(cmd *cobra.Command, args []string) {
	room := game.RoomName(args[0])
	if !room.Valid() {
		fmt.Fprintf(os.Stderr, "Error: unknown room %q\n", args[0])
		fmt.Fprintln(os.Stderr, `Rooms are "Living Room", "Kitchen", and "Bedroom".`)
		os.Exit(1)
	}

	cfg, err := loadedConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if cfg.Generator.BaseURL == "" {
		fmt.Fprintln(os.Stderr, "Error: no image backend configured (generator.base_url)")
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
	}

	var opts *imagegen.Options
	if flagGenSeed != 0 {
		opts = &imagegen.Options{Seed: flagGenSeed}
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Generator.Timeout())
	defer cancel()

	fmt.Printf("Painting the %s...\n", room)
	image, err := imagegen.NewClient(cfg.Generator.BaseURL).GenerateRoomImage(ctx, flagPrompt, room, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating image: %v\n", err)
		os.Exit(1)
	}

	state = game.Reduce(state, game.UpdateRoomLookAction{Room: room, BackgroundImage: image})
	store.SaveState(state)

	fmt.Printf("The %s has a new look.\n", room)
}
