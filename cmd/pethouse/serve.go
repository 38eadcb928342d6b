package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pet-house/internal/platform/tui"
	"github.com/vovakirdan/pet-house/internal/wander"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the pet house SSH server",
	Long: `Start an SSH server so people can visit the pet remotely.

Every connection gets its own session in the house. All sessions
share one saves database, so the most recent session to save wins.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.pethouse/host_key

Examples:
  pethouse serve                           # Listen on :23235 with auto-generated key
  pethouse serve --ssh :2222               # Listen on port 2222
  pethouse serve --host-key ./my_host_key  # Use specific host key
  pethouse serve --db ./house.db           # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23235", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	cfg, err := loadedConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	srvCfg := tui.SSHServerConfig{
		Address:      flagSSHAddr,
		HostKeyPath:  flagHostKey,
		DBPath:       cfg.Storage.Path,
		GeneratorURL: cfg.Generator.BaseURL,
		Wander: wander.Config{
			MinDelay: cfg.Pet.MinMoveDelay(),
			MaxDelay: cfg.Pet.MaxMoveDelay(),
			Seed:     flagSeed,
		},
		TickRate:    cfg.TUI.TickRate,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(srvCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting pet house SSH server on %s\n", srvCfg.Address)
	fmt.Println("Connect with: ssh localhost -p 23235")
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
