package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/mattn/go-runewidth"
)

const clearSequence = "\033[H\033[2J"

// Level grades a [Notice].
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarn
	LevelError
)

// Notice is a one-shot message shown on the next redraw.
type Notice struct {
	Level Level
	Text  string
}

func Info(text string) Notice    { return Notice{LevelInfo, text} }
func Success(text string) Notice { return Notice{LevelSuccess, text} }
func Warn(text string) Notice    { return Notice{LevelWarn, text} }
func Error(text string) Notice   { return Notice{LevelError, text} }

// Options configure a [Console].
type Options struct {
	ClearScreen bool   // emit an ANSI clear before every redraw
	AppName     string // first breadcrumb in headers
}

// Console is the text surface every screen draws on and reads from.
type Console struct {
	out    io.Writer
	in     LineReader
	opts   Options
	styles *Palette
	help   help.Model
}

// NewConsole binds output and input. Colors are decided by out: buffers and files get plain text.
func NewConsole(out io.Writer, in LineReader, opts Options) *Console {
	r := lipgloss.NewRenderer(out)
	h := help.New()
	h.ShortSeparator = " | "
	return &Console{out: out, in: in, opts: opts, styles: DefaultPalette(r), help: h}
}

// Clear wipes the terminal when clearing is enabled.
func (c *Console) Clear() {
	if c.opts.ClearScreen {
		fmt.Fprint(c.out, clearSequence)
	}
}

// Header prints the screen title preceded by the breadcrumb path.
func (c *Console) Header(title string, path ...string) {
	crumbs := make([]string, 0, len(path)+1)
	if c.opts.AppName != "" {
		crumbs = append(crumbs, c.opts.AppName)
	}
	crumbs = append(crumbs, path...)
	if len(crumbs) > 0 {
		fmt.Fprintln(c.out, c.styles.crumb.Render(strings.Join(crumbs, " > ")))
	}
	fmt.Fprintln(c.out, c.styles.title.Render(strings.ToUpper(title)))
	fmt.Fprintln(c.out)
}

// Column describes one table column; a positive Width truncates longer cells.
type Column struct {
	Title string
	Width int
}

// Table prints rows under the given columns.
func (c *Console) Table(cols []Column, rows [][]string) {
	headers := make([]string, len(cols))
	for i, col := range cols {
		headers[i] = col.Title
	}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			if j < len(cols) && cols[j].Width > 0 {
				v = Truncate(v, cols[j].Width)
			}
			cells[i][j] = v
		}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(c.styles.help).
		Headers(headers...).
		Rows(cells...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return c.styles.header
			}
			return c.styles.r.NewStyle().Padding(0, 1)
		})
	fmt.Fprintln(c.out, t.String())
}

// Field is a label/value pair shown in a [Console.Fields] box.
type Field struct {
	Label string
	Value string
}

// Fields prints a boxed summary with aligned labels. The active field, when in range, is marked.
func (c *Console) Fields(fields []Field, active int) {
	width := 0
	for _, f := range fields {
		width = max(width, runewidth.StringWidth(f.Label))
	}

	lines := make([]string, len(fields))
	for i, f := range fields {
		marker := "  "
		if i == active {
			marker = "> "
		}
		label := c.styles.label.Render(runewidth.FillRight(f.Label+":", width+1))
		lines[i] = marker + label + " " + f.Value
	}
	c.Box(lines...)
}

// Box prints lines inside a rounded border.
func (c *Console) Box(lines ...string) {
	fmt.Fprintln(c.out, c.styles.box.Render(strings.Join(lines, "\n")))
}

// Menu prints numbered options followed by the 0 entry when zero is set.
func (c *Console) Menu(labels []string, zero string) {
	for i, l := range labels {
		fmt.Fprintf(c.out, "  [%d] %s\n", i+1, l)
	}
	if zero != "" {
		fmt.Fprintf(c.out, "  [0] %s\n", zero)
	}
	fmt.Fprintln(c.out)
}

// Help prints the short help line for the enabled bindings.
func (c *Console) Help(bindings ...key.Binding) {
	fmt.Fprintln(c.out, c.help.ShortHelpView(bindings))
}

// Notify prints n styled by its level. Empty notices print nothing.
func (c *Console) Notify(n Notice) {
	if n.Text == "" {
		return
	}
	var s lipgloss.Style
	switch n.Level {
	case LevelSuccess:
		s = c.styles.ok
	case LevelWarn:
		s = c.styles.warn
	case LevelError:
		s = c.styles.err
	default:
		s = c.styles.info
	}
	fmt.Fprintln(c.out, s.Render(n.Text))
}

func (c *Console) Println(a ...any) { fmt.Fprintln(c.out, a...) }

func (c *Console) Printf(format string, a ...any) { fmt.Fprintf(c.out, format, a...) }

// ReadLine shows prompt and returns the typed line.
func (c *Console) ReadLine(prompt string) (string, error) {
	return c.in.ReadLine(prompt)
}

// Pause waits for Enter.
func (c *Console) Pause() error {
	_, err := c.in.ReadLine(c.styles.help.Render("Press Enter to continue..."))
	return err
}

// Close releases the input side.
func (c *Console) Close() error {
	return c.in.Close()
}

// Truncate shortens s to width display cells, ending in "..." when cut.
func Truncate(s string, width int) string {
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width <= 3 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "...")
}
