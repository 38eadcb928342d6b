package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pet-house/internal/events"
	"github.com/vovakirdan/pet-house/internal/imagegen"
	"github.com/vovakirdan/pet-house/internal/session"
	"github.com/vovakirdan/pet-house/internal/platform/tui"
	"github.com/vovakirdan/pet-house/internal/storage"
	"github.com/vovakirdan/pet-house/internal/wander"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Live with the pet in your terminal",
	Long: `Start an interactive session in the pet's house.

Controls:
  1-3 / arrows  - Walk between rooms
  F             - Feed the pet (both of you in the Kitchen)
  P             - Hide and seek (both of you in the Living Room)
  D             - Repaint the current room
  Q/Ctrl+C      - Quit

The house is saved automatically as things change, so the pet is
where you left it next time.

Examples:
  pethouse play
  pethouse play --seed 42
  pethouse play --db ./house.db`,
	Run: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadedConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open saves database: %v\n", err)
		// Continue without persistence - the house still works
		store = nil
	}

	wanderCfg := wander.Config{
		MinDelay: cfg.Pet.MinMoveDelay(),
		MaxDelay: cfg.Pet.MaxMoveDelay(),
		Seed:     flagSeed,
	}

	var sessStore session.Store
	if store != nil {
		sessStore = store
	}
	sess := session.New(sessStore, events.NewBus(), session.Config{Wander: wanderCfg}, nil)
	sess.Start()

	var gen *imagegen.Client
	if cfg.Generator.BaseURL != "" {
		gen = imagegen.NewClient(cfg.Generator.BaseURL)
	}

	runErr := tui.Run(sess, gen, width, height, cfg.TUI.TickRate)

	sess.Stop()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", runErr)
		os.Exit(1)
	}
}
