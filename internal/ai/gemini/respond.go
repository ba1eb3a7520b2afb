package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// contentGenerator is the narrow surface the feature types need from the
// Generator. Tests substitute a stub.
type contentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
	Model() string
}

// extractJSON strips markdown code fences and surrounding prose from a
// model response, leaving the JSON payload.
func extractJSON(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	raw = strings.Trim(raw, "`")
	return strings.TrimSpace(raw)
}

// decodeObject parses a model response into a loose map. Models sometimes
// wrap JSON in fences or prefix it with commentary, so the payload is
// extracted first.
func decodeObject(raw string) (map[string]any, error) {
	cleaned := extractJSON(raw)

	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return nil, fmt.Errorf("parse gemini response: %w", err)
	}
	return data, nil
}

// decodeStringList parses a model response that should be a JSON array of
// strings, tolerating an object with a single list-valued key.
func decodeStringList(raw string) ([]string, error) {
	cleaned := extractJSON(raw)

	var list []string
	if err := json.Unmarshal([]byte(cleaned), &list); err == nil {
		return trimAll(list), nil
	}

	var wrapped map[string][]string
	if err := json.Unmarshal([]byte(cleaned), &wrapped); err == nil {
		for _, values := range wrapped {
			return trimAll(values), nil
		}
	}

	return nil, fmt.Errorf("parse gemini response: expected a JSON string array")
}

func trimAll(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			result = append(result, v)
		}
	}
	return result
}
