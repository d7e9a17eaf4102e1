package trivia

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCatalogJSON = `{
  "questions": [
    {
      "prompt": "What is the name of Jerry's neighbor across the hall?",
      "options": ["George", "Elaine", "Kramer", "Newman"],
      "correct_index": 2,
      "difficulty": "EASY"
    }
  ]
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadCatalog_JSON(t *testing.T) {
	qs, err := LoadCatalog(writeFile(t, "catalog.json", validCatalogJSON))
	require.NoError(t, err)
	require.Len(t, qs, 1)

	q := qs[0]
	assert.Equal(t, DifficultyEasy, q.Difficulty)
	assert.Equal(t, 2, q.CorrectIndex)
	assert.Equal(t, "Kramer", q.CorrectOption())
}

func TestLoadCatalog_YAML(t *testing.T) {
	doc := `questions:
  - prompt: What holiday does Frank Costanza create?
    options: [Festivus, Frankmas, Costanza Day, Winter Solstice]
    correct_index: 0
    difficulty: HARD
`
	qs, err := LoadCatalog(writeFile(t, "catalog.yml", doc))
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, "Festivus", qs[0].CorrectOption())
	assert.Equal(t, DifficultyHard, qs[0].Difficulty)
}

func TestLoadCatalog_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing questions", `{}`},
		{"three options", `{"questions":[{"prompt":"p","options":["a","b","c"],"correct_index":0,"difficulty":"EASY"}]}`},
		{"index out of range", `{"questions":[{"prompt":"p","options":["a","b","c","d"],"correct_index":4,"difficulty":"EASY"}]}`},
		{"fractional index", `{"questions":[{"prompt":"p","options":["a","b","c","d"],"correct_index":1.5,"difficulty":"EASY"}]}`},
		{"unknown difficulty", `{"questions":[{"prompt":"p","options":["a","b","c","d"],"correct_index":0,"difficulty":"easy"}]}`},
		{"empty prompt", `{"questions":[{"prompt":"","options":["a","b","c","d"],"correct_index":0,"difficulty":"EASY"}]}`},
		{"extra field", `{"questions":[{"prompt":"p","options":["a","b","c","d"],"correct_index":0,"difficulty":"EASY","hint":"h"}]}`},
		{"not json", `{"questions": [`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "catalog.json", tt.doc)
			_, err := LoadCatalog(path)
			require.Error(t, err)

			var catErr *CatalogError
			require.True(t, errors.As(err, &catErr))
			assert.Equal(t, path, catErr.Path)
		})
	}
}

func TestLoadCatalog_BadExtension(t *testing.T) {
	_, err := LoadCatalog(writeFile(t, "catalog.txt", validCatalogJSON))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported catalog extension")
}

func TestLoadCatalog_MissingFile(t *testing.T) {
	_, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestEncodeCatalog_RoundTrip(t *testing.T) {
	seed := SeedQuestions()
	for _, format := range []Format{FormatJSON, FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, EncodeCatalog(&buf, seed, format))

			got, err := DecodeCatalog(&buf, format)
			require.NoError(t, err)
			assert.Equal(t, seed, got)
		})
	}
}

func TestEncodeCatalog_UnknownFormat(t *testing.T) {
	err := EncodeCatalog(&bytes.Buffer{}, SeedQuestions(), Format("toml"))
	require.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("a/b/CATALOG.YAML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = FormatFromPath("questions.json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	_, err = FormatFromPath("questions")
	require.Error(t, err)
}

func TestDecodeCatalog_YAMLNormalisation(t *testing.T) {
	// Quoted numbers must not sneak past the integer check.
	doc := "questions:\n  - prompt: p\n    options: [a, b, c, d]\n    correct_index: \"1\"\n    difficulty: EASY\n"
	_, err := DecodeCatalog(strings.NewReader(doc), FormatYAML)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema validation failed")
}
