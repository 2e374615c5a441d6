// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"fmt"

	"github.com/pdiddy/json2md/internal/output"
)

// NotFoundError reports that an explicitly named source file does not exist.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: file not found", e.Path)
}

func (e *NotFoundError) Unwrap() error { return e.Err }

// ExitCode implements output.ExitCoder.
func (e *NotFoundError) ExitCode() int { return output.ExitUserError }

// InvalidFormatError reports a source file that is not a JSON array, or an
// array element that is not an object. Element is the 1-based position of the
// offending element, or 0 when the whole file is rejected.
type InvalidFormatError struct {
	Path    string
	Element int
	Reason  string
	Err     error
}

func (e *InvalidFormatError) Error() string {
	msg := e.Path + ": "
	if e.Element > 0 {
		msg += fmt.Sprintf("element %d: ", e.Element)
	}
	msg += e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvalidFormatError) Unwrap() error { return e.Err }

// ExitCode implements output.ExitCoder.
func (e *InvalidFormatError) ExitCode() int { return output.ExitUserError }

// FilesystemError reports a failed read, directory creation, or write.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error { return e.Err }

// ExitCode implements output.ExitCoder.
func (e *FilesystemError) ExitCode() int { return output.ExitSystemError }
