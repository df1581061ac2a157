// Package entities defines the normalized read models the composition
// engine works on. All records are request-scoped and rebuilt from JSON
// on every invocation; nothing here persists derived state.
package entities

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Field is one key/value pair of a Record.
type Field struct {
	Key   string
	Value any
}

// Record is a JSON object with its original key order preserved.
// The datasets are elastic, hand-edited schemas: unknown fields are part
// of the data and must render in the order the author wrote them, so a
// plain map is not enough.
type Record struct {
	fields []Field
	index  map[string]int
}

// NewRecord returns an empty Record.
func NewRecord() *Record {
	return &Record{index: make(map[string]int)}
}

// Set adds a field, or replaces the value of an existing key in place.
func (r *Record) Set(key string, value any) {
	if r.index == nil {
		r.index = make(map[string]int)
	}
	if i, ok := r.index[key]; ok {
		r.fields[i].Value = value
		return
	}
	r.index[key] = len(r.fields)
	r.fields = append(r.fields, Field{Key: key, Value: value})
}

// Get returns the value for key and whether the key is present.
func (r *Record) Get(key string) (any, bool) {
	if r == nil || r.index == nil {
		return nil, false
	}
	i, ok := r.index[key]
	if !ok {
		return nil, false
	}
	return r.fields[i].Value, true
}

// Has reports whether key is present.
func (r *Record) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// Len returns the number of fields.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.fields)
}

// Fields returns the fields in insertion order. The slice is shared;
// callers must not modify it.
func (r *Record) Fields() []Field {
	if r == nil {
		return nil
	}
	return r.fields
}

// Text returns the trimmed string form of a scalar field, or "" when the
// field is absent or not a scalar.
func (r *Record) Text(key string) string {
	v, ok := r.Get(key)
	if !ok {
		return ""
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

// Int returns the field as an integer. It reports false for absent
// fields, non-numeric fields and numbers with a fractional part.
func (r *Record) Int(key string) (int, bool) {
	v, ok := r.Get(key)
	if !ok {
		return 0, false
	}
	num, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(num.String())
	if err != nil {
		return 0, false
	}
	return n, true
}

// Num returns the field as a json.Number, preserving the source text of
// the literal.
func (r *Record) Num(key string) (json.Number, bool) {
	v, ok := r.Get(key)
	if !ok {
		return "", false
	}
	num, ok := v.(json.Number)
	return num, ok
}

// Bool returns the field as a boolean, false when absent or not a bool.
func (r *Record) Bool(key string) bool {
	v, ok := r.Get(key)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// Sub returns a nested object field, or nil when absent or not an object.
func (r *Record) Sub(key string) *Record {
	v, ok := r.Get(key)
	if !ok {
		return nil
	}
	rec, _ := v.(*Record)
	return rec
}

// MarshalJSON writes the record back out in insertion order, so a loaded
// dataset round-trips without reshuffling the author's key order.
func (r *Record) MarshalJSON() ([]byte, error) {
	var buf strings.Builder
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return []byte(buf.String()), nil
}

// NormalizeName converts an identifier or display name to its matching
// form: trimmed and lowercased.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
