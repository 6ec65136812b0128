package flow

// SlotKind tells the wizard how a slot gets its value.
type SlotKind int

const (
	SlotDelegated SlotKind = iota // pushes a selection unit
	SlotInput                     // parses a typed line
	SlotDerived                   // computed from earlier slots
)

// Slot is one field of a [Wizard]. Values live in variables owned by the screen that built the wizard; the slot
// only holds closures over them, so the wizard itself stays untyped.
type Slot struct {
	label string
	kind  SlotKind

	open    func() Unit
	accept  func(Outcome) bool
	prompt  string
	assign  func(string) error
	compute func()
	display func() string
	reset   func()

	invoked bool // delegate pushed for the current visit
	done    bool
	set     bool // holds a value, possibly from an earlier visit
}

// Delegate builds a slot filled by the value a modal unit selects.
func Delegate[T any](label string, dst *T, open func() Unit, show func(T) string) *Slot {
	return &Slot{
		label: label,
		kind:  SlotDelegated,
		open:  open,
		accept: func(o Outcome) bool {
			v, ok := ValueOf[T](o)
			if ok {
				*dst = v
			}
			return ok
		},
		display: func() string { return show(*dst) },
		reset:   resetter(dst),
	}
}

// Input builds a slot filled by parsing an operator line.
func Input[T any](label, prompt string, dst *T, parse func(string) Result[T], show func(T) string) *Slot {
	return &Slot{
		label:  label,
		kind:   SlotInput,
		prompt: prompt,
		assign: func(text string) error {
			r := parse(text)
			if r.IsFailure() {
				return r.Err()
			}
			*dst = r.Value()
			return nil
		},
		display: func() string { return show(*dst) },
		reset:   resetter(dst),
	}
}

// Derive builds a slot computed from earlier ones whenever the wizard reaches it.
func Derive[T any](label string, dst *T, compute func() T, show func(T) string) *Slot {
	return &Slot{
		label:   label,
		kind:    SlotDerived,
		compute: func() { *dst = compute() },
		display: func() string { return show(*dst) },
		reset:   resetter(dst),
	}
}

func resetter[T any](dst *T) func() {
	return func() {
		var zero T
		*dst = zero
	}
}

func (s *Slot) Label() string  { return s.label }
func (s *Slot) Kind() SlotKind { return s.kind }
func (s *Slot) Done() bool     { return s.done }

// Invoked reports whether the delegate was pushed during the current visit.
func (s *Slot) Invoked() bool { return s.invoked }

// Display renders the stored value, or "" when the slot has never been filled.
func (s *Slot) Display() string {
	if !s.set {
		return ""
	}
	return s.display()
}

// rearm lets the slot be resolved again while keeping its last value on screen.
func (s *Slot) rearm() {
	s.invoked = false
	s.done = false
}

func (s *Slot) clear() {
	s.rearm()
	s.set = false
	s.reset()
}

func (s *Slot) resolved() {
	s.done = true
	s.set = true
}
