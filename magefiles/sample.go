//go:build mage

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// sampleDir holds the generated sample input and its converted output.
const sampleDir = "sample"

const samplePosts = `[
  {"slug": "hello-world", "title": "Hello, World", "draft": false, "tags": ["intro", "meta"]},
  {"slug": "second-post", "title": "Second: The Sequel", "date": "2026-01-02", "rating": 4.5},
  "not an object",
  {"title": "Untitled", "author": {"name": "Ada", "links": ["https://example.com"]}, "content": "# Body\n\nWritten as Markdown."}
]
`

// Sample builds the CLI, writes sample/posts.json, and converts it twice:
// once by position and once named by slug with a Markdown body.
func Sample() error {
	mg.Deps(Build)

	if err := os.MkdirAll(sampleDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", sampleDir, err)
	}
	src := filepath.Join(sampleDir, "posts.json")
	if err := os.WriteFile(src, []byte(samplePosts), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", src, err)
	}

	bin, err := filepath.Abs(filepath.Join(binDir, binName))
	if err != nil {
		return err
	}
	if err := sh.RunV(bin, "-C", sampleDir, "-v", "posts.json"); err != nil {
		return err
	}
	return sh.RunV(bin, "-C", sampleDir, "-v",
		"--name-field", "slug", "--body-field", "content", "--catalog", "catalog.db", "posts.json")
}
