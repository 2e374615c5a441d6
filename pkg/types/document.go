// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Document describes one Markdown file produced from a record.
type Document struct {
	// Collection is the output directory name, the source base name without
	// its extension.
	Collection string `json:"collection" yaml:"collection"`

	// Source is the JSON file the record came from, as given or discovered.
	Source string `json:"source" yaml:"source"`

	// Path is the written file, relative to the working directory.
	Path string `json:"path" yaml:"path"`

	// Position is the 1-based index of the record in the source array.
	Position int `json:"position" yaml:"position"`

	// Record holds the fields written to the file, body field included.
	Record *Record `json:"-" yaml:"-"`

	// Content is the exact bytes written.
	Content []byte `json:"-" yaml:"-"`
}
