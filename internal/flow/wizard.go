package flow

import (
	"context"
	"fmt"
	"strings"

	"github.com/Br3nOT/coders24-pooii-locadora/internal/ui"
)

// WizardOptions parameterize a [Wizard].
type WizardOptions struct {
	Title string
	Slots []*Slot
	// Submit persists the record built from the slots. receipt is shown to the operator and value becomes the
	// [Committed] outcome. An error restarts the wizard from the first slot.
	Submit  func(ctx context.Context) (receipt string, value any, err error)
	Confirm string
}

type phase int

const (
	phaseFill phase = iota
	phaseRecover
	phaseConfirm
)

var recoveryChoices = []string{"Go back to the previous field", "Try again", "Cancel"}

// Wizard resolves its slots left to right, then asks for confirmation and submits.
//
// At any prompt "v" steps back to the previous field that takes operator input and "c" cancels. A delegated slot
// whose unit returns without a value opens a recovery menu instead of advancing.
type Wizard struct {
	view   View
	opts   WizardOptions
	keys   ui.WizardKeys
	index       int
	phase       phase
	notice      ui.Notice
	interrupted bool // a delegate ended because input was interrupted
}

func NewWizard(v View, opts WizardOptions) *Wizard {
	if opts.Confirm == "" {
		opts.Confirm = "Confirm? (S/n): "
	}
	return &Wizard{view: v, opts: opts, keys: ui.NewWizardKeys()}
}

func (w *Wizard) Name() string { return w.opts.Title }

// Index is the slot being resolved; it equals len(Slots) while confirming.
func (w *Wizard) Index() int { return w.index }

func (w *Wizard) Slots() []*Slot { return w.opts.Slots }

func (w *Wizard) Step(ctx context.Context) Transition {
	if w.interrupted {
		w.interrupted = false
		return w.interrupt()
	}

	switch w.phase {
	case phaseRecover:
		return w.recover()
	case phaseConfirm:
		return w.confirm(ctx)
	}

	if w.index >= len(w.opts.Slots) {
		w.phase = phaseConfirm
		return Stay()
	}

	slot := w.opts.Slots[w.index]
	switch slot.kind {
	case SlotDerived:
		slot.compute()
		slot.resolved()
		w.next()
		return Stay()
	case SlotDelegated:
		if !slot.invoked {
			slot.invoked = true
			return Push(slot.open(), w.receive(slot))
		}
		if !slot.done {
			w.notice = ui.Error(fmt.Sprintf("No %s selected.", strings.ToLower(slot.label)))
			w.phase = phaseRecover
			return Stay()
		}
		w.next()
		return Stay()
	default:
		return w.input(slot)
	}
}

// receive stores a delegate's selection. Anything without a value, a cancelled child included, leaves the slot
// unresolved for the recovery menu. An interrupted child ends the wizard instead.
func (w *Wizard) receive(slot *Slot) func(Outcome) {
	return func(o Outcome) {
		if o.IsInterrupted() {
			w.interrupted = true
			return
		}
		if slot.accept(o) {
			slot.resolved()
		}
	}
}

func (w *Wizard) input(slot *Slot) Transition {
	w.render()

	in := Prompt(w.view.Console, slot.prompt)
	if in.IsFailure() {
		return w.interrupt()
	}

	text := in.Value()
	switch {
	case ui.Matches(text, w.keys.Back):
		w.back()
		return Stay()
	case ui.Matches(text, w.keys.Cancel):
		return w.cancel()
	}

	if err := slot.assign(text); err != nil {
		w.notice = ui.Error(err.Error())
		return Stay()
	}
	slot.resolved()
	w.next()
	return Stay()
}

func (w *Wizard) recover() Transition {
	c := w.view.Console
	w.render()
	c.Menu(recoveryChoices, "")

	in := Prompt(c, "Option: ")
	if in.IsFailure() {
		return w.interrupt()
	}

	switch in.Value() {
	case "1":
		w.back()
	case "2":
		w.opts.Slots[w.index].rearm()
		w.phase = phaseFill
	case "3":
		return w.cancel()
	default:
		w.notice = ui.Error(fmt.Sprintf("Invalid option %q.", in.Value()))
	}
	return Stay()
}

func (w *Wizard) confirm(ctx context.Context) Transition {
	c := w.view.Console
	w.render()

	in := Prompt(c, w.opts.Confirm)
	if in.IsFailure() {
		return w.interrupt()
	}

	text := in.Value()
	switch {
	case ui.Matches(text, w.keys.Back):
		w.back()
		return Stay()
	case ui.Matches(text, w.keys.Cancel), !ui.Matches(text, w.keys.Confirm):
		return w.cancel()
	}

	receipt, value, err := w.opts.Submit(ctx)
	if err != nil {
		w.restart()
		w.view.Header(w.opts.Title)
		c.Notify(ui.Error(err.Error()))
		if err := c.Pause(); err != nil {
			return w.interrupt()
		}
		return Stay()
	}

	w.view.Header(w.opts.Title)
	c.Notify(ui.Success("Done."))
	if receipt != "" {
		c.Box(strings.Split(strings.TrimRight(receipt, "\n"), "\n")...)
	}
	// The record is already saved, so an interrupted pause still commits.
	_ = c.Pause()
	return Done(Committed(value))
}

func (w *Wizard) render() {
	c := w.view.Console
	w.view.Header(w.opts.Title)

	fields := make([]ui.Field, len(w.opts.Slots))
	for i, s := range w.opts.Slots {
		fields[i] = ui.Field{Label: s.label, Value: s.Display()}
	}
	c.Fields(fields, w.index)
	c.Help(w.keys.ShortHelp()...)

	c.Notify(w.notice)
	w.notice = ui.Notice{}
}

// next moves past the current slot. Later slots must be resolved again, but keep showing their old values until
// they are.
func (w *Wizard) next() {
	for _, s := range w.opts.Slots[w.index+1:] {
		s.rearm()
	}
	w.index++
}

// back returns to the closest earlier slot that takes operator input and re-enables it. Derived slots in between
// are recomputed on the way forward.
func (w *Wizard) back() {
	i := w.index - 1
	for i > 0 && w.opts.Slots[i].kind == SlotDerived {
		i--
	}
	w.index = max(i, 0)
	if w.index < len(w.opts.Slots) {
		w.opts.Slots[w.index].rearm()
	}
	w.phase = phaseFill
}

func (w *Wizard) restart() {
	for _, s := range w.opts.Slots {
		s.clear()
	}
	w.index = 0
	w.phase = phaseFill
}

func (w *Wizard) cancel() Transition {
	w.restart()
	return Done(Cancelled())
}

func (w *Wizard) interrupt() Transition {
	w.restart()
	return Done(Interrupted())
}
