// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrinterRoutesToWriters(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, false).WithStderr(&errOut)

	p.Converted("data.json", "data", 3, 1)
	p.Skipped(errors.New("data.json: element 2: not an object"))
	p.Warn("catalog unavailable: %s", "locked")
	p.Failed(errors.New("broken.json: not valid JSON"))

	assert.Equal(t, "converted: data.json -> data (3 files, 1 skipped)\n", out.String())
	assert.Contains(t, errOut.String(), "skipped: data.json: element 2: not an object\n")
	assert.Contains(t, errOut.String(), "warning: catalog unavailable: locked\n")
	assert.Contains(t, errOut.String(), "failed:  broken.json: not valid JSON\n")
}

func TestPrinterSingularFile(t *testing.T) {
	var out bytes.Buffer
	NewPrinter(&out, false).Converted("one.json", ".", 1, 0)
	assert.Equal(t, "converted: one.json -> . (1 file)\n", out.String())
}

func TestPrinterWroteNeedsVerbose(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, false)
	p.Wrote("data/1.md")
	assert.Empty(t, out.String())

	p.WithVerbose(true).Wrote("data/1.md")
	assert.Equal(t, "  wrote data/1.md\n", out.String())
}

func TestPrinterSummary(t *testing.T) {
	var out bytes.Buffer
	NewPrinter(&out, false).Summary(2, 1, 5, 0)
	assert.Equal(t, "\nSummary: 2 converted, 1 failed, 5 records written, 0 skipped\n", out.String())
}

func TestPrinterWriteJSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewPrinter(&out, false).WriteJSON(map[string]any{"path": "data/1.md"}))

	var got map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "data/1.md", got["path"])
}

func TestPrinterTable(t *testing.T) {
	var out bytes.Buffer
	NewPrinter(&out, false).Table(
		[]string{"Path", "Pos"},
		[][]string{{"data/1.md", "1"}, {"data/10.md", "10"}},
	)
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Path        Pos", lines[0])
	assert.Equal(t, "data/1.md   1  ", lines[1])
	assert.Equal(t, "data/10.md  10 ", lines[2])
}

func TestResolveColorMode(t *testing.T) {
	tests := []struct {
		mode  string
		isTTY bool
		want  bool
	}{
		{"never", true, false},
		{"always", false, true},
		{"auto", true, true},
		{"auto", false, false},
		{"", true, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ResolveColorMode(tt.mode, tt.isTTY), "mode=%q tty=%v", tt.mode, tt.isTTY)
	}
}

func TestIsTTYNonFile(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))
}

type codedErr struct{ code int }

func (e codedErr) Error() string { return "coded" }
func (e codedErr) ExitCode() int { return e.code }

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"plain error", errors.New("boom"), ExitUserError},
		{"coded", codedErr{code: ExitSystemError}, ExitSystemError},
		{"wrapped coded", errors.Join(errors.New("ctx"), codedErr{code: ExitSystemError}), ExitSystemError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetExitCode(tt.err))
		})
	}
}
