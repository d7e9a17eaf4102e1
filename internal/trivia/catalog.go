package trivia

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

// Format is a catalog file encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath picks the catalog format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported catalog extension %q (want .json, .yaml or .yml)", filepath.Ext(path))
	}
}

// CatalogError reports a catalog file that could not be read or is malformed.
type CatalogError struct {
	Path string
	Err  error
}

func (e *CatalogError) Error() string {
	return fmt.Sprintf("catalog %s: %v", e.Path, e.Err)
}

func (e *CatalogError) Unwrap() error { return e.Err }

// catalogSchema is the JSON schema every catalog document must satisfy.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"questions": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"prompt": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"options": map[string]any{
						"type":     "array",
						"minItems": OptionCount,
						"maxItems": OptionCount,
						"items": map[string]any{
							"type":      "string",
							"minLength": 1,
						},
					},
					"correct_index": map[string]any{
						"type":    "integer",
						"minimum": 0,
						"maximum": OptionCount - 1,
					},
					"difficulty": map[string]any{
						"type": "string",
						"enum": []any{"EASY", "MEDIUM", "HARD", "EXPERT"},
					},
				},
				"required":             []any{"prompt", "options", "correct_index", "difficulty"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"questions"},
	"additionalProperties": false,
}

type catalogFile struct {
	Questions []catalogQuestion `json:"questions" yaml:"questions"`
}

type catalogQuestion struct {
	Prompt       string   `json:"prompt" yaml:"prompt"`
	Options      []string `json:"options" yaml:"options,flow"`
	CorrectIndex int      `json:"correct_index" yaml:"correct_index"`
	Difficulty   string   `json:"difficulty" yaml:"difficulty"`
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// getCompiledSchema compiles catalogSchema once.
func getCompiledSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, not Go-typed
		// literals, so round-trip the definition through encoding/json.
		defBytes, err := json.Marshal(catalogSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://question-catalog.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// LoadCatalog reads a JSON or YAML catalog file and returns its questions.
// The document is checked against the catalog schema; structural checks
// (duplicates and the like) happen in NewBank.
func LoadCatalog(path string) ([]Question, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, &CatalogError{Path: path, Err: err}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &CatalogError{Path: path, Err: err}
	}
	defer f.Close()

	qs, err := DecodeCatalog(f, format)
	if err != nil {
		return nil, &CatalogError{Path: path, Err: err}
	}
	return qs, nil
}

// DecodeCatalog parses and schema-validates a catalog document.
func DecodeCatalog(r io.Reader, format Format) ([]Question, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}

	if format == FormatYAML {
		raw, err = yamlToJSON(raw)
		if err != nil {
			return nil, err
		}
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := getCompiledSchema()
	if err != nil {
		return nil, fmt.Errorf("compile catalog schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("schema validation failed: %w", err)
	}

	var doc catalogFile
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	questions := make([]Question, 0, len(doc.Questions))
	for _, cq := range doc.Questions {
		q := Question{
			Prompt:       cq.Prompt,
			CorrectIndex: cq.CorrectIndex,
			Difficulty:   Difficulty(cq.Difficulty),
		}
		copy(q.Options[:], cq.Options)
		questions = append(questions, q)
	}
	return questions, nil
}

// EncodeCatalog writes questions as a catalog document LoadCatalog can read.
func EncodeCatalog(w io.Writer, questions []Question, format Format) error {
	doc := catalogFile{Questions: make([]catalogQuestion, 0, len(questions))}
	for _, q := range questions {
		doc.Questions = append(doc.Questions, catalogQuestion{
			Prompt:       q.Prompt,
			Options:      q.Options[:],
			CorrectIndex: q.CorrectIndex,
			Difficulty:   string(q.Difficulty),
		})
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported catalog format %q", format)
	}
}

// yamlToJSON converts a YAML document to JSON so both formats share one
// validation path.
func yamlToJSON(raw []byte) ([]byte, error) {
	var doc any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}
	out, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("convert YAML: %w", err)
	}
	return out, nil
}
