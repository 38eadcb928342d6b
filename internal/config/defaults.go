package config

import (
	_ "embed"
)

//go:embed defaults/pethouse.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration, used when
// even the embedded YAML cannot be parsed.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Path: "~/.pethouse/saves.db",
		},
		Pet: PetConfig{
			MinMoveDelayMs: 15000,
			MaxMoveDelayMs: 30000,
		},
		Generator: GeneratorConfig{
			BaseURL:        "http://localhost:3000/api",
			TimeoutSeconds: 60,
		},
		TUI: TUIConfig{
			TickRate: 30,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
