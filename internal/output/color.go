package output

import (
	"io"
	"os"
)

// ResolveColorMode returns whether to style output for the given mode:
// "never" disables, "always" enables, anything else follows isTTY.
func ResolveColorMode(mode string, isTTY bool) bool {
	switch mode {
	case "never":
		return false
	case "always":
		return true
	default:
		return isTTY
	}
}

// IsTTY reports whether writer is a terminal.
func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}
