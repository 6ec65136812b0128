package flow

import (
	"context"
	"fmt"

	"github.com/Br3nOT/coders24-pooii-locadora/internal/ui"
)

// MenuItem opens a fresh unit every time it is chosen.
type MenuItem struct {
	Label string
	Open  func() Unit
}

// Menu is a numbered list of sub-screens. 0 goes back.
type Menu struct {
	view        View
	title       string
	items       []MenuItem
	back        string
	notice      ui.Notice
	interrupted bool // a child ended because input was interrupted
}

// NewMenu creates a menu. back labels the 0 entry, e.g. "Exit" for the root menu.
func NewMenu(v View, title, back string, items ...MenuItem) *Menu {
	if back == "" {
		back = "Back"
	}
	return &Menu{view: v, title: title, items: items, back: back}
}

func (m *Menu) Name() string { return m.title }

func (m *Menu) Step(ctx context.Context) Transition {
	if m.interrupted {
		return Done(Interrupted())
	}

	c := m.view.Console
	m.view.Header(m.title)

	labels := make([]string, len(m.items))
	for i, it := range m.items {
		labels[i] = it.Label
	}
	c.Menu(labels, m.back)
	c.Notify(m.notice)
	m.notice = ui.Notice{}

	in := Prompt(c, "Option: ")
	if in.IsFailure() {
		return Done(Interrupted())
	}

	n := ParseInt(in.Value())
	if n.IsFailure() {
		m.notice = ui.Error(fmt.Sprintf("Invalid input %q.", in.Value()))
		return Stay()
	}

	switch opt := n.Value(); {
	case opt == 0:
		return Done(None())
	case opt < 0 || opt > len(m.items):
		m.notice = ui.Error(fmt.Sprintf("Invalid option %d.", opt))
		return Stay()
	default:
		return Push(m.items[opt-1].Open(), m.resume)
	}
}

// resume acknowledges a committed child on the next redraw. An interrupted child finishes the menu too, while
// a child cancelled by command just returns here.
func (m *Menu) resume(o Outcome) {
	switch {
	case o.IsInterrupted():
		m.interrupted = true
	case o.Kind == OutcomeCommitted:
		m.notice = ui.Success("Saved.")
	}
}
