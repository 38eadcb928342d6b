// Package config provides YAML-based configuration loading for the pet
// house: save location, wander timing, and the generation backend.
package config

import "time"

// Config is the full pet-house configuration.
type Config struct {
	Storage   StorageConfig   `yaml:"storage"`
	Pet       PetConfig       `yaml:"pet"`
	Generator GeneratorConfig `yaml:"generator"`
	TUI       TUIConfig       `yaml:"tui"`
}

// StorageConfig locates the save database.
type StorageConfig struct {
	// Path to the SQLite database. A leading ~ expands to $HOME.
	Path string `yaml:"path"`
}

// PetConfig tunes autonomous movement.
type PetConfig struct {
	// MinMoveDelayMs and MaxMoveDelayMs bound the randomized hop
	// interval, in whole milliseconds (inclusive).
	MinMoveDelayMs int `yaml:"min_move_delay_ms"`
	MaxMoveDelayMs int `yaml:"max_move_delay_ms"`
}

// MinMoveDelay returns the lower bound as a duration.
func (p PetConfig) MinMoveDelay() time.Duration {
	return time.Duration(p.MinMoveDelayMs) * time.Millisecond
}

// MaxMoveDelay returns the upper bound as a duration.
func (p PetConfig) MaxMoveDelay() time.Duration {
	return time.Duration(p.MaxMoveDelayMs) * time.Millisecond
}

// GeneratorConfig locates the image generation backend.
type GeneratorConfig struct {
	// BaseURL of the backend API, e.g. "http://localhost:3000/api".
	BaseURL string `yaml:"base_url"`
	// TimeoutSeconds bounds one generation request.
	TimeoutSeconds int `yaml:"timeout_seconds"`
}

// Timeout returns the request timeout as a duration.
func (g GeneratorConfig) Timeout() time.Duration {
	return time.Duration(g.TimeoutSeconds) * time.Second
}

// TUIConfig tunes the terminal renderer.
type TUIConfig struct {
	// TickRate is the animation tick rate in frames per second.
	TickRate int `yaml:"tick_rate"`
}
