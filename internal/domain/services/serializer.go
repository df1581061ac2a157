package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ersonp/matrix-core/internal/domain/entities"
)

// Boolean rendering tokens. The composed briefs keep the original
// system's Portuguese surface text.
const (
	boolTrue  = "sim"
	boolFalse = "não"
)

// SerializeValue renders any JSON-like value as one human-readable text
// fragment. It is total: it never fails and never emits raw structural
// syntax. Nulls, empty lists and empty objects render as "", which
// callers treat as "omit the fragment". The rendering is lossy and
// one-way; it is not a codec.
func SerializeValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case bool:
		if t {
			return boolTrue
		}
		return boolFalse
	case json.Number:
		return t.String()
	case string:
		return strings.TrimSpace(t)
	case []any:
		flat := make([]string, 0, len(t))
		for _, item := range t {
			if !isScalar(item) {
				continue
			}
			if s := SerializeValue(item); s != "" {
				flat = append(flat, s)
			}
		}
		return strings.Join(flat, ", ")
	case *entities.Record:
		bits := make([]string, 0, t.Len())
		for _, f := range t.Fields() {
			txt := SerializeValue(f.Value)
			if txt != "" {
				bits = append(bits, humanizeKey(f.Key)+": "+txt)
			}
		}
		return strings.Join(bits, " | ")
	}
	return strings.TrimSpace(fmt.Sprint(v))
}

// isScalar reports whether a decoded value is a scalar. List rendering
// drops nested lists and objects instead of flattening them.
func isScalar(v any) bool {
	switch v.(type) {
	case []any, *entities.Record:
		return false
	case nil:
		return false
	}
	return true
}

// humanizeKey turns a field key into its label form: underscores become
// spaces, casing is left alone. Title-casing, where wanted, is the
// caller's job.
func humanizeKey(key string) string {
	return strings.TrimSpace(strings.ReplaceAll(key, "_", " "))
}

// titleCase uppercases the first rune of a trimmed string.
func titleCase(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + string(r[1:])
}
