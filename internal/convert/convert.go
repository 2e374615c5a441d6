// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert splits JSON arrays of objects into one Markdown file per
// object, each carrying the object's fields as YAML frontmatter.
//
// A source file data.json is written to <workdir>/data/, or straight into the
// working directory when that directory is itself named data.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pdiddy/json2md/internal/frontmatter"
	"github.com/pdiddy/json2md/internal/jsondoc"
	"github.com/pdiddy/json2md/internal/output"
	"github.com/pdiddy/json2md/pkg/types"
)

const (
	// DefaultExt is the extension of generated files.
	DefaultExt = ".md"
	// sourceExt selects files in directory scan mode.
	sourceExt = ".json"
)

// Recorder receives every document written. The SQLite catalog implements it.
type Recorder interface {
	Record(ctx context.Context, doc types.Document) error
}

// Options carries everything a conversion run depends on. WorkDir stands in
// for the process working directory: relative sources are resolved against
// it and output directories are created under it.
type Options struct {
	WorkDir   string
	NameField string
	BodyField string
	Unwrap    bool
	Ext       string
	Strict    bool
	Recorder  Recorder
}

// OptionsFromConfig builds Options from a loaded configuration.
func OptionsFromConfig(cfg types.ConvertConfig, workDir string) Options {
	return Options{
		WorkDir:   workDir,
		NameField: cfg.NameField,
		BodyField: cfg.BodyField,
		Unwrap:    cfg.Unwrap,
		Ext:       cfg.Ext,
		Strict:    cfg.Strict,
	}
}

func (o Options) withDefaults() Options {
	if o.WorkDir == "" {
		o.WorkDir = "."
	}
	if abs, err := filepath.Abs(o.WorkDir); err == nil {
		o.WorkDir = abs
	}
	if o.Ext == "" {
		o.Ext = DefaultExt
	}
	return o
}

// FileResult holds the outcome of converting one source file.
type FileResult struct {
	Source    string
	OutputDir string
	Written   []string
	Skipped   int
}

// BatchResult holds the outcome of a directory scan.
type BatchResult struct {
	Converted int
	Failed    int
	Records   int
	Skipped   int
}

// Total returns the number of source files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Failed
}

// HasFailures reports whether any source file failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// Collection returns the output directory name for a source file: its base
// name without extension.
func Collection(source string) string {
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OutputDir returns where records from source are written. When workDir is
// already named after the source, files go directly into workDir. A relative
// workDir is compared by the directory it resolves to.
func OutputDir(workDir, source string) string {
	name := Collection(source)
	resolved := filepath.Clean(workDir)
	if abs, err := filepath.Abs(workDir); err == nil {
		resolved = abs
	}
	if filepath.Base(resolved) == name {
		return workDir
	}
	return filepath.Join(workDir, name)
}

// Run converts the single file at source, or every .json file in
// opts.WorkDir when source is empty. An error on an explicit source is
// returned as is; failures during a scan are reported and only returned
// when opts.Strict is set.
func Run(ctx context.Context, source string, opts Options, p *output.Printer) error {
	if source != "" {
		_, err := ConvertFile(ctx, source, opts, p)
		return err
	}

	result, err := ConvertAll(ctx, opts, p)
	if err != nil {
		return err
	}
	if opts.Strict && result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed)
	}
	return nil
}

// ConvertAll converts every regular, non-hidden .json file in opts.WorkDir in
// lexical order. A file that fails is reported and counted and the scan moves
// on. The returned error is reserved for an unreadable working directory or
// a cancelled context.
func ConvertAll(ctx context.Context, opts Options, p *output.Printer) (BatchResult, error) {
	opts = opts.withDefaults()

	entries, err := os.ReadDir(opts.WorkDir)
	if err != nil {
		return BatchResult{}, &FilesystemError{Op: "read directory", Path: opts.WorkDir, Err: err}
	}

	var result BatchResult
	var found bool
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") || filepath.Ext(name) != sourceExt {
			continue
		}
		found = true

		if err := ctx.Err(); err != nil {
			return result, err
		}

		res, err := ConvertFile(ctx, name, opts, p)
		if err != nil {
			p.Failed(err)
			result.Failed++
			continue
		}
		result.Converted++
		result.Records += len(res.Written)
		result.Skipped += res.Skipped
	}

	if !found {
		p.Info("no %s files found in %s", sourceExt, opts.WorkDir)
		return result, nil
	}

	p.Summary(result.Converted, result.Failed, result.Records, result.Skipped)
	return result, nil
}

// ConvertFile converts one source file. The file is read and validated before
// anything is written, so a missing or malformed file leaves no output behind.
// Elements that are not objects are reported, counted as skipped, and do not
// stop the file.
func ConvertFile(ctx context.Context, source string, opts Options, p *output.Printer) (FileResult, error) {
	opts = opts.withDefaults()
	res := FileResult{Source: source}

	path := source
	if !filepath.IsAbs(path) {
		path = filepath.Join(opts.WorkDir, path)
	}

	items, err := loadRecords(source, path, opts.Unwrap, p)
	if err != nil {
		return res, err
	}

	collection := Collection(path)
	if collection == "" {
		return res, &InvalidFormatError{Path: source, Reason: "cannot derive an output directory from the file name"}
	}

	dir := OutputDir(opts.WorkDir, path)
	res.OutputDir = dir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return res, &FilesystemError{Op: "create directory", Path: dir, Err: err}
	}

	namer := newNamer(opts)
	for i, item := range items {
		pos := i + 1

		rec, ok := item.(*types.Record)
		if !ok {
			p.Skipped(&InvalidFormatError{
				Path:    source,
				Element: pos,
				Reason:  fmt.Sprintf("%s is not an object", jsondoc.Kind(item)),
			})
			res.Skipped++
			continue
		}

		content, err := render(rec, opts.BodyField)
		if err != nil {
			p.Skipped(&InvalidFormatError{Path: source, Element: pos, Reason: "cannot render frontmatter", Err: err})
			res.Skipped++
			continue
		}

		outPath := filepath.Join(dir, namer.name(rec, pos))
		if err := os.WriteFile(outPath, content, 0o644); err != nil {
			return res, &FilesystemError{Op: "write", Path: outPath, Err: err}
		}
		res.Written = append(res.Written, outPath)

		rel := relativeTo(opts.WorkDir, outPath)
		p.Wrote(rel)

		if opts.Recorder != nil {
			doc := types.Document{
				Collection: collection,
				Source:     source,
				Path:       rel,
				Position:   pos,
				Record:     rec,
				Content:    content,
			}
			if err := opts.Recorder.Record(ctx, doc); err != nil {
				p.Warn("recording %s: %v", rel, err)
			}
		}
	}

	p.Converted(source, relativeTo(opts.WorkDir, dir), len(res.Written), res.Skipped)
	return res, nil
}

// loadRecords reads path and returns the elements of its top-level array.
func loadRecords(source, path string, unwrap bool, p *output.Printer) ([]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: source, Err: err}
		}
		return nil, &FilesystemError{Op: "read", Path: source, Err: err}
	}

	doc, err := jsondoc.Decode(data)
	if err != nil {
		return nil, &InvalidFormatError{Path: source, Reason: "not valid JSON", Err: err}
	}

	switch v := doc.(type) {
	case []any:
		return v, nil
	case *types.Record:
		if unwrap {
			if key, items, ok := recordArray(v); ok {
				p.Info("using %q array from %s", key, source)
				return items, nil
			}
			return nil, &InvalidFormatError{Path: source, Reason: "top-level object has no member holding an array of objects"}
		}
	}
	return nil, &InvalidFormatError{Path: source, Reason: "top-level value must be an array"}
}

// recordArray returns the first member of rec whose value is a non-empty
// array made only of objects.
func recordArray(rec *types.Record) (string, []any, bool) {
	for _, f := range rec.Fields {
		items, ok := f.Value.([]any)
		if !ok || len(items) == 0 {
			continue
		}
		allObjects := true
		for _, item := range items {
			if _, ok := item.(*types.Record); !ok {
				allObjects = false
				break
			}
		}
		if allObjects {
			return f.Key, items, true
		}
	}
	return "", nil, false
}

// render produces the file content for rec. When bodyField is set and
// present, its value becomes the document body instead of a frontmatter key.
func render(rec *types.Record, bodyField string) ([]byte, error) {
	if bodyField == "" {
		return frontmatter.Encode(rec, "")
	}
	value, ok := rec.Get(bodyField)
	if !ok {
		return frontmatter.Encode(rec, "")
	}
	body, err := frontmatter.BodyText(value)
	if err != nil {
		return nil, err
	}
	return frontmatter.Encode(rec.Without(bodyField), body)
}

func relativeTo(base, path string) string {
	rel, err := filepath.Rel(base, path)
	if err != nil {
		return path
	}
	return rel
}
