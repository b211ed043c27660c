package store

import (
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// documentSchema is the canonical persisted shape of a progress
// document. Every write is checked against it so that legacy shapes can
// only ever exist on the read path.
var documentSchema = map[string]any{
	"type":     "object",
	"required": []any{"completed", "failed", "current", "currentDateISO"},
	"properties": map[string]any{
		"completed": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"lessonNo", "completedAt"},
				"properties": map[string]any{
					"lessonNo":    map[string]any{"type": "integer", "minimum": 1},
					"level":       map[string]any{"type": "string"},
					"completedAt": map[string]any{"type": "string"},
				},
			},
		},
		"failed": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"lessonNo", "attemptedAt"},
				"properties": map[string]any{
					"lessonNo":    map[string]any{"type": "integer", "minimum": 1},
					"level":       map[string]any{"type": "string"},
					"attemptedAt": map[string]any{"type": "string"},
				},
			},
		},
		"current": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":     "object",
				"required": []any{"lessonNo", "LessonDate"},
				"properties": map[string]any{
					"lessonNo":   map[string]any{"type": "integer", "minimum": 1},
					"LessonDate": map[string]any{"type": "string"},
				},
			},
		},
		"currentDateISO": map[string]any{"type": "string"},
	},
}

var compileDocumentSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	c := jsonschema.NewCompiler()
	const url = "schema://progress-document.json"
	if err := c.AddResource(url, documentSchema); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}
	return compiled, nil
})

// validateDocument checks raw against the canonical document schema.
func validateDocument(raw map[string]any) error {
	compiled, err := compileDocumentSchema()
	if err != nil {
		return fmt.Errorf("compile document schema: %w", err)
	}
	if err := compiled.Validate(normalizeForSchema(raw)); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// normalizeForSchema converts Go-native numeric types into the JSON
// value space the validator expects.
func normalizeForSchema(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = normalizeForSchema(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = normalizeForSchema(val)
		}
		return out
	case int:
		return float64(t)
	case int64:
		return float64(t)
	default:
		return v
	}
}
