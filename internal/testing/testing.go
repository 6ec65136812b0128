// package testing contains shared testing utilities
package testing

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/Br3nOT/coders24-pooii-locadora/internal/ui"
)

// ScriptedReader is a [ui.LineReader] replaying fixed lines, then returning [io.EOF].
type ScriptedReader struct {
	lines   []string
	Prompts []string
}

func NewScriptedReader(lines ...string) *ScriptedReader {
	return &ScriptedReader{lines: lines}
}

func (r *ScriptedReader) ReadLine(prompt string) (string, error) {
	r.Prompts = append(r.Prompts, prompt)
	if len(r.lines) == 0 {
		return "", io.EOF
	}
	line := r.lines[0]
	r.lines = r.lines[1:]
	return line, nil
}

// Remaining reports how many scripted lines were not consumed.
func (r *ScriptedReader) Remaining() int { return len(r.lines) }

func (r *ScriptedReader) Close() error { return nil }

// NewScriptedConsole returns a plain-text console fed by lines, its output buffer and the reader.
func NewScriptedConsole(lines ...string) (*ui.Console, *bytes.Buffer, *ScriptedReader) {
	var buf bytes.Buffer
	r := NewScriptedReader(lines...)
	return ui.NewConsole(&buf, r, ui.Options{}), &buf, r
}

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

func MustGetwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	return wd
}

func MustChdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory to %s: %v", dir, err)
	}
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}
