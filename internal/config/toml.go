// Package config loads and validates application settings.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/verte-zerg/wordle/internal/model"
)

// History backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Environment overrides.
const (
	EnvConfigPath = "WORDLE_CONFIG"
	EnvDataDir    = "WORDLE_DATA_DIR"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Game       GameConfig       `toml:"game"`
	Storage    StorageConfig    `toml:"storage"`
	Navigation NavigationConfig `toml:"navigation"`
}

// GameConfig holds the defaults offered on the settings screen.
type GameConfig struct {
	Level       *int `toml:"level"`
	MaxAttempts *int `toml:"max-attempts"`
}

// StorageConfig selects where and how data is kept.
type StorageConfig struct {
	DataDir        *string `toml:"data-dir"`
	HistoryBackend *string `toml:"history-backend"`
}

// NavigationConfig points at an optional menu override file.
type NavigationConfig struct {
	File *string `toml:"file"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("%w: failed to decode config: %v", model.ErrConfiguration, err)
	}
	return cfg, nil
}

// LoadDotEnv loads variables from .env files without overriding the
// environment. A missing file is ignored.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// ConfigPath returns the config file path, honouring WORDLE_CONFIG.
func ConfigPath() string {
	if v := strings.TrimSpace(os.Getenv(EnvConfigPath)); v != "" {
		return v
	}
	return DefaultConfigPath()
}

// Defaults returns the built-in settings.
func Defaults() model.Config {
	return model.Config{
		Level:          model.DefaultLevel,
		MaxAttempts:    model.DefaultMaxAttempts,
		DataDir:        DefaultDataDir(),
		HistoryBackend: BackendJSON,
		LogPath:        DefaultLogPath(),
	}
}

// Resolve layers the file config and environment over the defaults and validates the result.
func Resolve(file FileConfig) (model.Config, error) {
	cfg := Defaults()
	applyInt(&cfg.Level, file.Game.Level)
	applyInt(&cfg.MaxAttempts, file.Game.MaxAttempts)
	applyString(&cfg.DataDir, file.Storage.DataDir)
	applyString(&cfg.HistoryBackend, file.Storage.HistoryBackend)
	applyString(&cfg.NavigationFile, file.Navigation.File)
	if v := strings.TrimSpace(os.Getenv(EnvDataDir)); v != "" {
		cfg.DataDir = v
	}
	cfg.HistoryBackend = strings.ToLower(strings.TrimSpace(cfg.HistoryBackend))

	if err := Validate(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

// Load is LoadDotEnv, LoadConfig and Resolve in one call.
func Load() (model.Config, error) {
	if err := LoadDotEnv(); err != nil {
		return model.Config{}, err
	}
	file, err := LoadConfig(ConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return Resolve(file)
}

// Validate checks value ranges.
func Validate(cfg model.Config) error {
	if cfg.Level < model.MinLevel || cfg.Level > model.MaxLevel {
		return fmt.Errorf("%w: game.level must be between %d and %d", model.ErrConfiguration, model.MinLevel, model.MaxLevel)
	}
	if cfg.MaxAttempts < model.MinAttempts || cfg.MaxAttempts > model.MaxAttempts {
		return fmt.Errorf("%w: game.max-attempts must be between %d and %d", model.ErrConfiguration, model.MinAttempts, model.MaxAttempts)
	}
	if strings.TrimSpace(cfg.DataDir) == "" {
		return fmt.Errorf("%w: storage.data-dir must not be empty", model.ErrConfiguration)
	}
	switch cfg.HistoryBackend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("%w: storage.history-backend must be %q or %q", model.ErrConfiguration, BackendJSON, BackendSQLite)
	}
	return nil
}

// Template returns the commented config written by `wordle config`.
func Template() string {
	return fmt.Sprintf(`# wordle configuration
# Uncomment a value to enable it.

[game]
# level = %d              # Default word length (%d-%d)
# max-attempts = %d       # Default number of guesses (%d-%d)

[storage]
# data-dir = %q
# history-backend = "json"  # "json" or "sqlite"

[navigation]
# file = ""               # Optional menu definition (JSON)
`,
		model.DefaultLevel, model.MinLevel, model.MaxLevel,
		model.DefaultMaxAttempts, model.MinAttempts, model.MaxAttempts,
		DefaultDataDir(),
	)
}

func applyInt(target, value *int) {
	if value != nil {
		*target = *value
	}
}

func applyString(target, value *string) {
	if value != nil {
		*target = *value
	}
}
