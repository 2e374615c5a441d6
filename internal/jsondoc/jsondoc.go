// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package jsondoc decodes JSON documents into order-preserving values.
// Objects become *types.Record so that frontmatter keys keep the order they
// had in the source file; numbers stay json.Number so their literal text
// survives the trip to Markdown.
package jsondoc

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/pdiddy/json2md/pkg/types"
)

// ErrTrailingData is returned when the document holds more than one value.
var ErrTrailingData = errors.New("unexpected data after top-level value")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode parses a complete JSON document. The result is one of nil, bool,
// json.Number, string, []any, or *types.Record.
func Decode(data []byte) (any, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err == nil {
			return nil, ErrTrailingData
		}
		return nil, err
	}
	return v, nil
}

func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}
	switch delim {
	case '{':
		return decodeObject(dec)
	case '[':
		return decodeArray(dec)
	default:
		return nil, fmt.Errorf("unexpected delimiter %q", rune(delim))
	}
}

func decodeObject(dec *json.Decoder) (*types.Record, error) {
	rec := &types.Record{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key must be a string, got %v", tok)
		}
		val, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		// Repeated keys keep their first position and their last value.
		rec.Set(key, val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return rec, nil
}

func decodeArray(dec *json.Decoder) ([]any, error) {
	items := []any{}
	for dec.More() {
		val, err := decodeValue(dec)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", len(items), err)
		}
		items = append(items, val)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return items, nil
}

// Kind names the JSON type of a decoded value for diagnostics.
func Kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case json.Number:
		return "number"
	case string:
		return "string"
	case []any:
		return "array"
	case *types.Record:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
