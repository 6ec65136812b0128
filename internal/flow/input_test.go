package flow

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	tu "github.com/Br3nOT/coders24-pooii-locadora/internal/testing"
)

func TestParsers(t *testing.T) {
	t.Run("ParseInt", func(t *testing.T) {
		if got := ParseInt(" 12 ").Value(); got != 12 {
			t.Errorf("expected 12, got %d", got)
		}
		for _, bad := range []string{"", "1.5", "x"} {
			if !ParseInt(bad).IsFailure() {
				t.Errorf("ParseInt(%q) should fail", bad)
			}
		}
	})

	t.Run("ParseDecimal", func(t *testing.T) {
		tests := []struct {
			in   string
			want string
		}{
			{"120", "120"},
			{"99,90", "99.9"},
			{"0.5", "0.5"},
		}
		for _, tt := range tests {
			r := ParseDecimal(tt.in)
			if r.IsFailure() {
				t.Errorf("ParseDecimal(%q) failed: %s", tt.in, r.Message())
				continue
			}
			if !r.Value().Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("ParseDecimal(%q) = %s, want %s", tt.in, r.Value(), tt.want)
			}
		}
		for _, bad := range []string{"", "abc", "-3"} {
			if !ParseDecimal(bad).IsFailure() {
				t.Errorf("ParseDecimal(%q) should fail", bad)
			}
		}
	})

	t.Run("ParseDateTime", func(t *testing.T) {
		parse := ParseDateTime("02/01/2006 15:04")
		r := parse("25/12/2024 18:30")
		if r.IsFailure() {
			t.Fatalf("unexpected failure: %s", r.Message())
		}
		want := time.Date(2024, 12, 25, 18, 30, 0, 0, time.Local)
		if !r.Value().Equal(want) {
			t.Errorf("got %v, want %v", r.Value(), want)
		}

		bad := parse("2024-12-25")
		if !bad.IsFailure() {
			t.Fatal("expected failure")
		}
		if bad.Message() != "invalid date, expected format dd/MM/yyyy HH:mm" {
			t.Errorf("unexpected message %q", bad.Message())
		}
	})

	t.Run("ParseText", func(t *testing.T) {
		if !ParseText(true)("   ").IsFailure() {
			t.Error("required text should reject blanks")
		}
		if got := ParseText(false)("  ").Value(); got != "" {
			t.Errorf("optional text should accept blanks, got %q", got)
		}
		if got := ParseText(true)(" Gol ").Value(); got != "Gol" {
			t.Errorf("expected trimmed text, got %q", got)
		}
	})
}

func TestPrompt(t *testing.T) {
	console, _, reader := tu.NewScriptedConsole("  hello  ")

	if got := Prompt(console, "> ").Value(); got != "hello" {
		t.Errorf("expected trimmed line, got %q", got)
	}

	r := Prompt(console, "> ")
	if !r.IsFailure() || !errors.Is(r.Err(), ErrInputInterrupted) {
		t.Errorf("expected interrupted failure, got %v", r.Err())
	}
	if len(reader.Prompts) != 2 {
		t.Errorf("expected 2 prompts, got %d", len(reader.Prompts))
	}
}
