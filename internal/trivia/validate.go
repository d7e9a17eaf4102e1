package trivia

import (
	"fmt"
	"strings"
)

// validateQuestions performs all structural checks on a catalog.
// Returns a combined error describing all problems found, or nil if valid.
func validateQuestions(questions []Question) error {
	var errs []string

	type promptKey struct {
		d      Difficulty
		prompt string
	}
	seen := make(map[promptKey]int, len(questions))

	for i, q := range questions {
		prefix := fmt.Sprintf("question %d", i)
		if strings.TrimSpace(q.Prompt) == "" {
			errs = append(errs, prefix+": empty prompt")
		} else {
			prefix = fmt.Sprintf("question %d (%q)", i, q.Prompt)
		}

		if !q.Difficulty.Valid() {
			errs = append(errs, fmt.Sprintf("%s: unknown difficulty %q", prefix, q.Difficulty))
		}

		if q.CorrectIndex < 0 || q.CorrectIndex >= OptionCount {
			errs = append(errs, fmt.Sprintf("%s: correct index must be in [0, %d), got %d", prefix, OptionCount, q.CorrectIndex))
		}

		options := make(map[string]bool, OptionCount)
		for j, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				errs = append(errs, fmt.Sprintf("%s: option %d is empty", prefix, j))
				continue
			}
			if options[opt] {
				errs = append(errs, fmt.Sprintf("%s: duplicate option %q", prefix, opt))
			}
			options[opt] = true
		}

		key := promptKey{d: q.Difficulty, prompt: q.Prompt}
		if first, dup := seen[key]; dup && q.Prompt != "" {
			errs = append(errs, fmt.Sprintf("%s: duplicates question %d in %s", prefix, first, q.Difficulty))
		} else {
			seen[key] = i
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("question catalog validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
