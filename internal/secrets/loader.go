// Package secrets resolves secret values from a file or an inline setting.
package secrets

import (
	"fmt"
	"os"
	"strings"
)

// Source describes where a secret may come from. File wins over Value when
// both are set.
type Source struct {
	// Name appears in error messages so the operator knows which secret
	// failed to resolve.
	Name string
	// Value is an inline secret from configuration or flags.
	Value string
	// File points to a file whose contents are the secret.
	File string
}

// Load resolves the secret and trims surrounding whitespace. It fails when
// neither File nor Value yields a non-empty secret.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "secret"
	}

	value := src.Value
	if file := strings.TrimSpace(src.File); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		if value = strings.TrimSpace(string(data)); value == "" {
			return "", fmt.Errorf("%s file %q is empty", name, file)
		}
		return value, nil
	}

	if value = strings.TrimSpace(value); value == "" {
		return "", fmt.Errorf("%s is not configured", name)
	}

	return value, nil
}
