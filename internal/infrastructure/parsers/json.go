// Package parsers provides tolerant loading of the hand-edited JSON
// datasets. The files are maintained by humans, so line comments and
// trailing commas are stripped before decoding.
package parsers

import (
	"fmt"
	"os"
	"regexp"

	"github.com/ersonp/matrix-core/internal/domain/entities"
)

var (
	// reComment matches // and # line comments.
	reComment = regexp.MustCompile(`(?m)(^|\s)//.*$|(^|\s)#.*$`)
	// reTrailingComma matches a comma directly before a closing brace or bracket.
	reTrailingComma = regexp.MustCompile(`,(\s*[}\]])`)
)

// Sanitize strips line comments and trailing commas so hand-edited
// files still parse. It is textual, not syntax-aware: a "//" inside a
// string literal is taken for a comment, same as the historical loader.
func Sanitize(data []byte) []byte {
	data = reComment.ReplaceAll(data, nil)
	data = reTrailingComma.ReplaceAll(data, []byte("$1"))
	return data
}

// LoadFile reads, sanitizes and decodes a dataset file into
// order-preserving values (objects become *entities.Record). A missing
// or unparsable file is an error; callers fail the whole invocation.
func LoadFile(path string) (any, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("dataset not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	v, err := entities.DecodeJSON(Sanitize(raw))
	if err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", path, err)
	}

	return v, nil
}

// SaveFile writes a dataset back out, indented, preserving the key
// order the records carry. Used by the age-update routine only.
func SaveFile(path string, v any) error {
	data, err := marshalIndent(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
