package parsers

import (
	"bytes"
	"encoding/json"
)

// marshalIndent renders a decoded dataset tree with two-space
// indentation, without HTML-escaping the accented text the datasets
// are full of.
func marshalIndent(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
