// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"bytes"
	"encoding/json"
)

// Field is one key/value member of a JSON object. Value holds one of the
// JSON value kinds produced by the decoder: nil, bool, json.Number, string,
// []any, or *Record for nested objects.
type Field struct {
	Key   string
	Value any
}

// Record is a JSON object with its members kept in document order. One
// Record becomes one Markdown file.
type Record struct {
	Fields []Field
}

// Len returns the number of fields in the record.
func (r *Record) Len() int {
	if r == nil {
		return 0
	}
	return len(r.Fields)
}

// Get returns the value stored under key. When a key repeats, the last
// occurrence wins, matching encoding/json.
func (r *Record) Get(key string) (any, bool) {
	if r == nil {
		return nil, false
	}
	for i := len(r.Fields) - 1; i >= 0; i-- {
		if r.Fields[i].Key == key {
			return r.Fields[i].Value, true
		}
	}
	return nil, false
}

// Set replaces the value of an existing key in place or appends a new field.
func (r *Record) Set(key string, value any) {
	for i := range r.Fields {
		if r.Fields[i].Key == key {
			r.Fields[i].Value = value
			return
		}
	}
	r.Fields = append(r.Fields, Field{Key: key, Value: value})
}

// Without returns a copy of the record with every field named key removed.
func (r *Record) Without(key string) *Record {
	out := &Record{Fields: make([]Field, 0, r.Len())}
	if r == nil {
		return out
	}
	for _, f := range r.Fields {
		if f.Key != key {
			out.Fields = append(out.Fields, f)
		}
	}
	return out
}

// Keys returns the field names in document order.
func (r *Record) Keys() []string {
	keys := make([]string, 0, r.Len())
	if r == nil {
		return keys
	}
	for _, f := range r.Fields {
		keys = append(keys, f.Key)
	}
	return keys
}

// MarshalJSON encodes the record as a JSON object with fields in document order.
func (r *Record) MarshalJSON() ([]byte, error) {
	if r == nil {
		return []byte("null"), nil
	}
	var b bytes.Buffer
	b.WriteByte('{')
	for i, f := range r.Fields {
		if i > 0 {
			b.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		b.Write(key)
		b.WriteByte(':')
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		b.Write(val)
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}
