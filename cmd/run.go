package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/seinfeld/internal/app"
	"github.com/abhisek/seinfeld/internal/config"
	"github.com/abhisek/seinfeld/internal/logger"
	"github.com/abhisek/seinfeld/internal/trivia"
)

// runApp loads config and questions, opens the log file, and launches the TUI.
func runApp(cmd *cobra.Command, difficulty trivia.Difficulty, splash bool) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logPath := cfg.LogFile
	if logPath == "" {
		if logPath, err = config.DefaultLogPath(); err != nil {
			return fmt.Errorf("resolve log path: %w", err)
		}
	} else if err := config.EnsureDir(logPath); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}
	logFile, err := logger.OpenFile(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	log := logger.Setup(cfg.LogLevel, cfg.LogFormat, logFile)

	bank, err := loadBank(cfg)
	if err != nil {
		log.Error().Err(err).Str("catalog", cfg.CatalogPath).Msg("loading questions failed")
		return err
	}
	log.Info().
		Str("catalog", cfg.CatalogPath).
		Int("questions", len(bank.All())).
		Dur("reveal_delay", cfg.RevealDelay).
		Msg("starting")

	return app.Run(app.Options{
		Bank:            bank,
		Logger:          log,
		RevealDelay:     cfg.RevealDelay,
		StartDifficulty: difficulty,
		Splash:          splash,
	})
}
