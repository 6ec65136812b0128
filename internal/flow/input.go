package flow

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Br3nOT/coders24-pooii-locadora/internal/ui"
)

// ErrInputInterrupted is returned when the operator closes the input stream (EOF or Ctrl+C).
// Units receiving it finish with [Cancelled] so the whole stack unwinds.
var ErrInputInterrupted = errors.New("input interrupted")

// Prompt reads a trimmed line from c.
func Prompt(c *ui.Console, prompt string) Result[string] {
	line, err := c.ReadLine(prompt)
	if err != nil {
		return Fail[string](fmt.Errorf("%w: %v", ErrInputInterrupted, err))
	}
	return Ok(strings.TrimSpace(line))
}

// ParseInt parses a base 10 integer.
func ParseInt(text string) Result[int] {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return Failf[int]("%q is not a number", text)
	}
	return Ok(n)
}

// ParseDecimal parses a non-negative amount, accepting a comma as the decimal separator.
func ParseDecimal(text string) Result[decimal.Decimal] {
	text = strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	d, err := decimal.NewFromString(text)
	if err != nil {
		return Failf[decimal.Decimal]("%q is not a valid amount", text)
	}
	if d.IsNegative() {
		return Failf[decimal.Decimal]("amount must not be negative")
	}
	return Ok(d)
}

// ParseDateTime returns a parser for layout in the local time zone.
func ParseDateTime(layout string) func(string) Result[time.Time] {
	return func(text string) Result[time.Time] {
		t, err := time.ParseInLocation(layout, strings.TrimSpace(text), time.Local)
		if err != nil {
			return Failf[time.Time]("invalid date, expected format %s", LayoutHint(layout))
		}
		return Ok(t)
	}
}

// ParseText returns a parser that trims text and optionally rejects empty input.
func ParseText(required bool) func(string) Result[string] {
	return func(text string) Result[string] {
		text = strings.TrimSpace(text)
		if required && text == "" {
			return Failf[string]("a value is required")
		}
		return Ok(text)
	}
}

var layoutTokens = strings.NewReplacer("2006", "yyyy", "01", "MM", "02", "dd", "15", "HH", "04", "mm", "05", "ss")

// LayoutHint renders a Go reference layout the way operators read it, e.g. dd/MM/yyyy HH:mm.
func LayoutHint(layout string) string {
	return layoutTokens.Replace(layout)
}
