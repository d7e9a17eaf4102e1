package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/seinfeld/internal/trivia"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a game, optionally straight into a difficulty",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, _ := cmd.Flags().GetString("difficulty")
		if raw == "" {
			return runApp(cmd, "", false)
		}
		d, err := parseDifficultyFlag(raw)
		if err != nil {
			return err
		}
		return runApp(cmd, d, false)
	},
}

func init() {
	playCmd.Flags().StringP("difficulty", "d", "", "Difficulty: EASY, MEDIUM, HARD or EXPERT")
}

func parseDifficultyFlag(raw string) (trivia.Difficulty, error) {
	d, ok := trivia.ParseDifficulty(raw)
	if !ok {
		return "", fmt.Errorf("unknown difficulty %q (want EASY, MEDIUM, HARD or EXPERT)", raw)
	}
	return d, nil
}
