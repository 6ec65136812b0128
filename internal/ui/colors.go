package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Palette is a simple stylesheet built with named [lipgloss.Style] fields.
//
// Styles are bound to a [lipgloss.Renderer] so output written to a file or buffer carries no escape codes.
type Palette struct {
	r      *lipgloss.Renderer
	title  lipgloss.Style
	crumb  lipgloss.Style
	ok     lipgloss.Style
	err    lipgloss.Style
	warn   lipgloss.Style
	info   lipgloss.Style
	help   lipgloss.Style
	label  lipgloss.Style
	header lipgloss.Style
	box    lipgloss.Style
}

// NewPalette builds the stylesheet from title, success, error, warning and muted colors.
func NewPalette(r *lipgloss.Renderer, t, s, e, w, h string) *Palette {
	p := &Palette{r: r}
	p.title = p.NewBold(t)
	p.crumb = p.NewEm(h)
	p.ok = p.NewBold(s)
	p.err = p.NewBold(e)
	p.warn = p.NewStyle(w)
	p.info = p.NewStyle(t)
	p.help = p.NewEm(h)
	p.label = p.NewBold(h)
	p.header = p.NewBold(t).Padding(0, 1)
	p.box = r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(h)).
		Padding(0, 1)
	return p
}

// DefaultPalette is the console's color scheme.
func DefaultPalette(r *lipgloss.Renderer) *Palette {
	return NewPalette(r, "#7D56F4", "#04B575", "#FF0000", "#FFA500", "#626262")
}

func (p *Palette) NewStyle(fg string) lipgloss.Style {
	return p.r.NewStyle().Foreground(lipgloss.Color(fg))
}

func (p *Palette) NewBold(fg string) lipgloss.Style {
	return p.NewStyle(fg).Bold(true)
}

func (p *Palette) NewEm(fg string) lipgloss.Style {
	return p.NewStyle(fg).Italic(true)
}
