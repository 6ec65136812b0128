package ui

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestConsole(t *testing.T) {
	t.Run("Clear honors option", func(t *testing.T) {
		var buf bytes.Buffer
		NewConsole(&buf, NewBufferedReader(strings.NewReader(""), nil), Options{}).Clear()
		if buf.Len() != 0 {
			t.Errorf("expected no output with clearing disabled, got %q", buf.String())
		}

		NewConsole(&buf, NewBufferedReader(strings.NewReader(""), nil), Options{ClearScreen: true}).Clear()
		if buf.String() != clearSequence {
			t.Errorf("expected clear sequence, got %q", buf.String())
		}
	})

	t.Run("Header renders breadcrumbs", func(t *testing.T) {
		var buf bytes.Buffer
		c := NewConsole(&buf, NewBufferedReader(strings.NewReader(""), nil), Options{AppName: "Locadora"})
		c.Header("Agencies", "Main", "Agencies")

		out := buf.String()
		if !strings.Contains(out, "Locadora > Main > Agencies") {
			t.Errorf("breadcrumbs missing from %q", out)
		}
		if !strings.Contains(out, "AGENCIES") {
			t.Errorf("title missing from %q", out)
		}
	})

	t.Run("Table renders headers and cells", func(t *testing.T) {
		var buf bytes.Buffer
		c := NewConsole(&buf, NewBufferedReader(strings.NewReader(""), nil), Options{})
		c.Table([]Column{{Title: "#"}, {Title: "Name", Width: 8}}, [][]string{
			{"1", "Centro"},
			{"2", "Aeroporto Internacional"},
		})

		out := buf.String()
		for _, want := range []string{"#", "Name", "Centro", "Aerop..."} {
			if !strings.Contains(out, want) {
				t.Errorf("expected %q in table output:\n%s", want, out)
			}
		}
		if strings.Contains(out, "Internacional") {
			t.Error("expected long cell to be truncated")
		}
	})

	t.Run("Fields marks active row", func(t *testing.T) {
		var buf bytes.Buffer
		c := NewConsole(&buf, NewBufferedReader(strings.NewReader(""), nil), Options{})
		c.Fields([]Field{{"Agency", "Centro"}, {"Vehicle", ""}}, 1)

		out := buf.String()
		if !strings.Contains(out, "Agency:") || !strings.Contains(out, "Centro") {
			t.Errorf("field missing from %q", out)
		}
		if !strings.Contains(out, "> Vehicle:") {
			t.Errorf("active marker missing from %q", out)
		}
	})

	t.Run("Notify skips empty notices", func(t *testing.T) {
		var buf bytes.Buffer
		c := NewConsole(&buf, NewBufferedReader(strings.NewReader(""), nil), Options{})
		c.Notify(Notice{})
		if buf.Len() != 0 {
			t.Errorf("expected no output, got %q", buf.String())
		}

		c.Notify(Error("boom"))
		if !strings.Contains(buf.String(), "boom") {
			t.Errorf("expected notice text, got %q", buf.String())
		}
	})

	t.Run("Help lists enabled bindings only", func(t *testing.T) {
		var buf bytes.Buffer
		c := NewConsole(&buf, NewBufferedReader(strings.NewReader(""), nil), Options{})
		keys := NewListKeys()
		keys.Prev.SetEnabled(false)
		c.Help(keys.ShortHelp()...)

		out := buf.String()
		if strings.Contains(out, "previous page") {
			t.Errorf("disabled binding rendered: %q", out)
		}
		if !strings.Contains(out, "next page") {
			t.Errorf("enabled binding missing: %q", out)
		}
	})
}

func TestBufferedReader(t *testing.T) {
	t.Run("reads lines and echoes prompts", func(t *testing.T) {
		var out bytes.Buffer
		r := NewBufferedReader(strings.NewReader("first\r\nsecond\n"), &out)

		line, err := r.ReadLine("> ")
		if err != nil || line != "first" {
			t.Fatalf("got (%q, %v), want first", line, err)
		}
		line, err = r.ReadLine("> ")
		if err != nil || line != "second" {
			t.Fatalf("got (%q, %v), want second", line, err)
		}
		if out.String() != "> > " {
			t.Errorf("prompts not echoed: %q", out.String())
		}
	})

	t.Run("exhausted input is EOF", func(t *testing.T) {
		r := NewBufferedReader(strings.NewReader(""), nil)
		if _, err := r.ReadLine("> "); !errors.Is(err, io.EOF) {
			t.Errorf("expected io.EOF, got %v", err)
		}
	})
}

func TestMatches(t *testing.T) {
	keys := NewListKeys()
	tests := []struct {
		input string
		want  bool
	}{
		{"a", true},
		{"A", true},
		{" a ", true},
		{"aa", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := Matches(tt.input, keys.Next); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}

	keys.Next.SetEnabled(false)
	if !Matches("a", keys.Next) {
		t.Error("disabled binding should still match")
	}

	wk := NewWizardKeys()
	if !Matches("", wk.Confirm) || !Matches("S", wk.Confirm) {
		t.Error("expected empty and S to confirm")
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly", 7, "exactly"},
		{"truncated text", 8, "trunc..."},
		{"abcdef", 2, "ab"},
	}
	for _, tt := range tests {
		if got := Truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
