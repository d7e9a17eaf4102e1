package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// maxDrawSize is the largest number of questions one game may draw.
const maxDrawSize = 10

// Config holds all application configuration.
type Config struct {
	CatalogPath string        `env:"SEINFELD_CATALOG"`
	LogLevel    string        `env:"SEINFELD_LOG_LEVEL" envDefault:"info"`
	LogFormat   string        `env:"SEINFELD_LOG_FORMAT" envDefault:"json"`
	LogFile     string        `env:"SEINFELD_LOG_FILE"`
	RevealDelay time.Duration `env:"SEINFELD_REVEAL_DELAY" envDefault:"1s"`
	DrawSize    int           `env:"SEINFELD_DRAW_SIZE" envDefault:"10"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if present.
func Load() (*Config, error) {
	_ = godotenv.Load() // .env is optional

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.RevealDelay < 0 {
		return nil, fmt.Errorf("SEINFELD_REVEAL_DELAY must be >= 0, got %s", cfg.RevealDelay)
	}
	if cfg.DrawSize <= 0 || cfg.DrawSize > maxDrawSize {
		return nil, fmt.Errorf("SEINFELD_DRAW_SIZE must be in [1, %d], got %d", maxDrawSize, cfg.DrawSize)
	}
	return &cfg, nil
}

// DefaultLogPath resolves the log file path in priority order:
// 1. $XDG_STATE_HOME/seinfeld/seinfeld.log
// 2. ~/.local/state/seinfeld/seinfeld.log
func DefaultLogPath() (string, error) {
	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		stateHome = filepath.Join(home, ".local", "state")
	}

	p := filepath.Join(stateHome, "seinfeld", "seinfeld.log")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
