package flow

import (
	"context"
	"fmt"
)

// Unit is one interactive screen. The [Controller] calls Step repeatedly while the unit is on top of the
// navigation stack; each call performs at most one redraw/read cycle and returns what should happen next.
type Unit interface {
	Name() string
	Step(ctx context.Context) Transition
}

// OutcomeKind enumerates how a unit finished.
type OutcomeKind int

const (
	OutcomeNone      OutcomeKind = iota // backed out without choosing anything
	OutcomeSelected                     // a modal list produced a value
	OutcomeCancelled                    // aborted by the operator or by a dead input stream
	OutcomeCommitted                    // a wizard submitted its record
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNone:
		return "none"
	case OutcomeSelected:
		return "selected"
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeCommitted:
		return "committed"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is what a finished unit hands back to its invoker.
type Outcome struct {
	Kind        OutcomeKind
	value       any
	interrupted bool
}

func None() Outcome { return Outcome{Kind: OutcomeNone} }

func Cancelled() Outcome { return Outcome{Kind: OutcomeCancelled} }

// Interrupted is a cancellation caused by the input stream rather than by a command. Every unit that receives it
// from a child finishes the same way.
func Interrupted() Outcome { return Outcome{Kind: OutcomeCancelled, interrupted: true} }

func Selected(v any) Outcome { return Outcome{Kind: OutcomeSelected, value: v} }

func Committed(v any) Outcome { return Outcome{Kind: OutcomeCommitted, value: v} }

func (o Outcome) String() string { return o.Kind.String() }

// HasValue reports whether o carries a value, which only selected and committed outcomes do.
func (o Outcome) HasValue() bool { return o.Kind == OutcomeSelected || o.Kind == OutcomeCommitted }

func (o Outcome) IsCancelled() bool { return o.Kind == OutcomeCancelled }

func (o Outcome) IsInterrupted() bool { return o.interrupted }

// ValueOf extracts a typed value from a selected or committed outcome.
func ValueOf[T any](o Outcome) (T, bool) {
	var zero T
	if !o.HasValue() {
		return zero, false
	}
	v, ok := o.value.(T)
	if !ok {
		return zero, false
	}
	return v, true
}

type transitionKind int

const (
	transitionStay transitionKind = iota
	transitionPush
	transitionDone
)

// Transition is returned by [Unit.Step].
type Transition struct {
	kind    transitionKind
	child   Unit
	resume  func(Outcome)
	outcome Outcome
}

// Stay keeps the unit on top of the stack; Step will be called again.
func Stay() Transition { return Transition{kind: transitionStay} }

// Push suspends the current unit and runs child. When child finishes, resume receives its outcome
// before the current unit's next Step. resume may be nil.
func Push(child Unit, resume func(Outcome)) Transition {
	return Transition{kind: transitionPush, child: child, resume: resume}
}

// Done finishes the current unit with o. The controller pops it; nothing else should.
func Done(o Outcome) Transition { return Transition{kind: transitionDone, outcome: o} }
