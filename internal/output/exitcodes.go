package output

import "errors"

// Process exit codes.
//
//	0 = success
//	1 = user error (missing file, malformed input, bad flags)
//	2 = system error (directory or file could not be created or written)
const (
	ExitSuccess     = 0
	ExitUserError   = 1
	ExitSystemError = 2
)

// ExitCoder is implemented by errors that choose their own exit code.
type ExitCoder interface {
	ExitCode() int
}

// GetExitCode extracts the exit code from an error. Errors that do not
// implement ExitCoder are treated as user errors.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var coder ExitCoder
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return ExitUserError
}
