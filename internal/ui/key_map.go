package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// ListKeys are the commands understood by list screens.
type ListKeys struct {
	Prev   key.Binding
	Next   key.Binding
	Filter key.Binding
	Clear  key.Binding
	Back   key.Binding
}

// NewListKeys returns the list bindings. Paging is toggled per redraw with [key.Binding.SetEnabled].
func NewListKeys() ListKeys {
	return ListKeys{
		Prev:   key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "previous page")),
		Next:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "next page")),
		Filter: key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filter")),
		Clear:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "clear filter")),
		Back:   key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "back")),
	}
}

func (k ListKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Filter, k.Clear, k.Back}
}

func (k ListKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// WizardKeys are the commands understood at wizard prompts.
type WizardKeys struct {
	Back    key.Binding
	Cancel  key.Binding
	Confirm key.Binding
}

func NewWizardKeys() WizardKeys {
	return WizardKeys{
		Back:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "previous field")),
		Cancel:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cancel")),
		Confirm: key.NewBinding(key.WithKeys("s", "", "y"), key.WithHelp("S/enter", "confirm")),
	}
}

func (k WizardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Cancel}
}

func (k WizardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Back, k.Cancel, k.Confirm}}
}

// Matches reports whether the typed line triggers b. Comparison ignores case and surrounding space, and
// disabled bindings still match so that a greyed out command is a quiet no-op rather than invalid input.
func Matches(input string, b key.Binding) bool {
	input = strings.ToLower(strings.TrimSpace(input))
	for _, k := range b.Keys() {
		if input == strings.ToLower(k) {
			return true
		}
	}
	return false
}
