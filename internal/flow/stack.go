package flow

// StackEntry is a single unit on the navigation stack together with the continuation that receives the
// outcome of whatever child it pushed.
type StackEntry struct {
	Unit   Unit
	resume func(Outcome)
}

// Stack holds the active navigation path, root first.
type Stack struct {
	entries []*StackEntry
}

// NewStack creates an empty navigation stack.
func NewStack() *Stack {
	return &Stack{entries: make([]*StackEntry, 0)}
}

// Push adds u on top of the stack and returns its entry.
func (s *Stack) Push(u Unit) *StackEntry {
	e := &StackEntry{Unit: u}
	s.entries = append(s.entries, e)
	return e
}

// Pop removes and returns the top entry.
// Returns nil if the stack is empty.
func (s *Stack) Pop() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	e := s.entries[len(s.entries)-1]
	s.entries[len(s.entries)-1] = nil
	s.entries = s.entries[:len(s.entries)-1]
	return e
}

// Peek returns the top entry without removing it.
// Returns nil if the stack is empty.
func (s *Stack) Peek() *StackEntry {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

func (s *Stack) IsEmpty() bool { return len(s.entries) == 0 }

func (s *Stack) Len() int { return len(s.entries) }

// Names lists the unit names from the root to the top.
func (s *Stack) Names() []string {
	names := make([]string, len(s.entries))
	for i, e := range s.entries {
		names[i] = e.Unit.Name()
	}
	return names
}
