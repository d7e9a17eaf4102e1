package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/seinfeld/internal/config"
	"github.com/abhisek/seinfeld/internal/trivia"
)

var rootCmd = &cobra.Command{
	Use:           "seinfeld",
	Short:         "Seinfeld trivia for the terminal",
	Long:          "Seinfeld: multiple-choice trivia about the show about nothing, in four difficulty modes.",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, "", true)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("catalog", "", "Path to a JSON or YAML question catalog (overrides SEINFELD_CATALOG)")
	pf.String("log-file", "", "Path to the log file (overrides SEINFELD_LOG_FILE)")
	pf.String("log-level", "", "Log level: debug, info, warn, error (overrides SEINFELD_LOG_LEVEL)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(questionsCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the environment and applies flag overrides. Flags take
// precedence over env vars, which take precedence over defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if p, _ := cmd.Flags().GetString("catalog"); p != "" {
		cfg.CatalogPath = p
	}
	if p, _ := cmd.Flags().GetString("log-file"); p != "" {
		cfg.LogFile = p
	}
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		cfg.LogLevel = l
	}
	return cfg, nil
}

// loadQuestions returns the catalog at cfg.CatalogPath, or the built-in
// questions when no catalog is configured.
func loadQuestions(cfg *config.Config) ([]trivia.Question, error) {
	if cfg.CatalogPath == "" {
		return trivia.SeedQuestions(), nil
	}
	qs, err := trivia.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return qs, nil
}

func loadBank(cfg *config.Config) (*trivia.Bank, error) {
	qs, err := loadQuestions(cfg)
	if err != nil {
		return nil, err
	}
	bank, err := trivia.NewBank(qs, trivia.WithDrawSize(cfg.DrawSize))
	if err != nil {
		return nil, fmt.Errorf("build question bank: %w", err)
	}
	return bank, nil
}
