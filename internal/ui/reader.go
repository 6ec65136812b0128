package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
)

// LineReader reads one line of operator input after showing a prompt.
//
// Implementations return [io.EOF] once no more input can arrive, including when the operator aborts with Ctrl+C.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// NewLineReader picks a [TerminalReader] when in is an interactive terminal and a [BufferedReader] otherwise,
// so piped scripts work without line editing.
func NewLineReader(in *os.File, out io.Writer, historyPath string) LineReader {
	if isatty.IsTerminal(in.Fd()) || isatty.IsCygwinTerminal(in.Fd()) {
		return NewTerminalReader(historyPath)
	}
	return NewBufferedReader(in, out)
}

// TerminalReader wraps [liner.State] for line editing and persistent history.
type TerminalReader struct {
	state   *liner.State
	history string
}

// NewTerminalReader creates a liner session, loading history from historyPath when it exists.
func NewTerminalReader(historyPath string) *TerminalReader {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)

	if historyPath != "" {
		if f, err := os.Open(historyPath); err == nil {
			state.ReadHistory(f)
			f.Close()
		}
	}
	return &TerminalReader{state: state, history: historyPath}
}

func (r *TerminalReader) ReadLine(prompt string) (string, error) {
	line, err := r.state.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", fmt.Errorf("reading input: %w", err)
	}

	if strings.TrimSpace(line) != "" {
		r.state.AppendHistory(line)
	}
	return line, nil
}

// Close saves history and restores the terminal mode.
func (r *TerminalReader) Close() error {
	if r.history != "" {
		if f, err := os.Create(r.history); err == nil {
			r.state.WriteHistory(f)
			f.Close()
		}
	}
	return r.state.Close()
}

// BufferedReader reads newline separated input from any [io.Reader], echoing prompts to out.
type BufferedReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func NewBufferedReader(in io.Reader, out io.Writer) *BufferedReader {
	if out == nil {
		out = io.Discard
	}
	return &BufferedReader{scanner: bufio.NewScanner(in), out: out}
}

func (r *BufferedReader) ReadLine(prompt string) (string, error) {
	fmt.Fprint(r.out, prompt)
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimRight(r.scanner.Text(), "\r"), nil
}

func (r *BufferedReader) Close() error { return nil }
