package cmd

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/seinfeld/internal/trivia"
)

const promptWidth = 56

// fitColumn truncates s on rune boundaries to at most width terminal cells,
// marking a cut with "...", and pads it with spaces to exactly width.
func fitColumn(s string, width int) string {
	if lipgloss.Width(s) > width {
		runes := []rune(s)
		for len(runes) > 0 && lipgloss.Width(string(runes)) > width-3 {
			runes = runes[:len(runes)-1]
		}
		s = string(runes) + "..."
	}
	return s + strings.Repeat(" ", max(width-lipgloss.Width(s), 0))
}

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "Inspect, validate and export question catalogs",
}

var questionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the active catalog (optionally filtered by difficulty)",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		bank, err := loadBank(cfg)
		if err != nil {
			return err
		}

		questions := bank.All()
		if raw, _ := cmd.Flags().GetString("difficulty"); raw != "" {
			d, err := parseDifficultyFlag(raw)
			if err != nil {
				return err
			}
			questions = bank.ByDifficulty(d)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-4s  %-8s  %s  %s\n", "#", "Mode", fitColumn("Prompt", promptWidth), "Answer")
		fmt.Fprintln(out, strings.Repeat("─", 100))

		for i, q := range questions {
			fmt.Fprintf(out, "%-4d  %-8s  %s  %s\n", i+1, q.Difficulty, fitColumn(q.Prompt, promptWidth), q.CorrectOption())
		}

		fmt.Fprintf(out, "\n%d questions\n", len(questions))
		return nil
	},
}

var questionsValidateCmd = &cobra.Command{
	Use:   "validate FILE",
	Short: "Check a catalog file against the schema and catalog rules",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		qs, err := trivia.LoadCatalog(args[0])
		if err != nil {
			return err
		}
		bank, err := trivia.NewBank(qs)
		if err != nil {
			return err
		}

		parts := make([]string, 0, len(trivia.AllDifficulties()))
		for _, d := range trivia.AllDifficulties() {
			parts = append(parts, fmt.Sprintf("%s %d", d, bank.Count(d)))
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d questions OK (%s)\n", args[0], len(qs), strings.Join(parts, ", "))
		return nil
	},
}

var questionsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the active catalog to stdout",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		f := trivia.Format(strings.ToLower(format))
		if f != trivia.FormatJSON && f != trivia.FormatYAML {
			return fmt.Errorf("unknown format %q (want json or yaml)", format)
		}

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		qs, err := loadQuestions(cfg)
		if err != nil {
			return err
		}
		return trivia.EncodeCatalog(cmd.OutOrStdout(), qs, f)
	},
}

func init() {
	questionsListCmd.Flags().StringP("difficulty", "d", "", "Only list questions of this difficulty")
	questionsExportCmd.Flags().StringP("format", "f", "json", "Output format: json or yaml")

	questionsCmd.AddCommand(questionsListCmd)
	questionsCmd.AddCommand(questionsValidateCmd)
	questionsCmd.AddCommand(questionsExportCmd)
}
