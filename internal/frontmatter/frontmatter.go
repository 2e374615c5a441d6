// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package frontmatter renders records as Markdown documents that consist of
// a YAML frontmatter block and an optional body.
package frontmatter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/json2md/pkg/types"
)

// Delimiter opens and closes the frontmatter block.
const Delimiter = "---"

// Encode renders rec as a frontmatter block. Top-level fields are written one
// per line in record order; nested objects and arrays are written inline in
// YAML flow style. A non-empty body follows the closing delimiter after a
// blank line and always ends with a newline.
func Encode(rec *types.Record, body string) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(Delimiter + "\n")

	if rec.Len() > 0 {
		node, err := mappingNode(rec, false)
		if err != nil {
			return nil, err
		}
		enc := yaml.NewEncoder(&b)
		enc.SetIndent(2)
		if err := enc.Encode(node); err != nil {
			return nil, fmt.Errorf("encoding frontmatter: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encoding frontmatter: %w", err)
		}
	}

	b.WriteString(Delimiter + "\n")

	if body != "" {
		b.WriteString("\n")
		b.WriteString(body)
		if !strings.HasSuffix(body, "\n") {
			b.WriteString("\n")
		}
	}
	return b.Bytes(), nil
}

// BodyText returns the body text for a value taken from a record: strings
// verbatim, anything else as compact JSON.
func BodyText(v any) (string, error) {
	switch t := v.(type) {
	case nil:
		return "", nil
	case string:
		return t, nil
	default:
		data, err := json.Marshal(t)
		if err != nil {
			return "", fmt.Errorf("encoding body value: %w", err)
		}
		return string(data), nil
	}
}

func mappingNode(rec *types.Record, flow bool) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if flow {
		node.Style = yaml.FlowStyle
	}
	for _, f := range rec.Fields {
		val, err := valueNode(f.Value)
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", f.Key, err)
		}
		node.Content = append(node.Content, stringNode(f.Key), val)
	}
	return node, nil
}

// valueNode converts a decoded JSON value to a YAML node. Containers below
// the top level are always flow style.
func valueNode(v any) (*yaml.Node, error) {
	switch t := v.(type) {
	case nil:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(t)}, nil
	case json.Number:
		return numberNode(t), nil
	case string:
		return stringNode(t), nil
	case []any:
		seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Style: yaml.FlowStyle}
		for i, item := range t {
			child, err := valueNode(item)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			seq.Content = append(seq.Content, child)
		}
		return seq, nil
	case *types.Record:
		return mappingNode(t, true)
	default:
		return nil, fmt.Errorf("unsupported value type %T", v)
	}
}

// numberNode emits the JSON literal untagged so it reads back exactly as it
// appeared in the source. A literal beyond float64 range has no YAML number
// form, so it is kept as a quoted string.
func numberNode(n json.Number) *yaml.Node {
	if _, err := strconv.ParseFloat(n.String(), 64); errors.Is(err, strconv.ErrRange) {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: n.String(), Style: yaml.DoubleQuotedStyle}
	}
	return &yaml.Node{Kind: yaml.ScalarNode, Value: n.String()}
}

// stringNode returns a string scalar. The encoder quotes it whenever the plain
// form would read back as another type or clash with YAML syntax. YAML 1.1
// boolean words are quoted as well since many frontmatter readers still
// resolve them as booleans, and so are multi-line values holding a delimiter
// line, which would otherwise end the block early.
func stringNode(s string) *yaml.Node {
	node := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
	if isLegacyBool(s) || hasDelimiterLine(s) {
		node.Style = yaml.DoubleQuotedStyle
	}
	return node
}

func hasDelimiterLine(s string) bool {
	if !strings.Contains(s, "\n") {
		return false
	}
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == Delimiter {
			return true
		}
	}
	return false
}

func isLegacyBool(s string) bool {
	switch strings.ToLower(s) {
	case "y", "yes", "n", "no", "on", "off":
		return true
	}
	return false
}
