package flow

import (
	"context"
	"testing"
)

type funcUnit struct {
	name string
	step func(ctx context.Context) Transition
}

func (u *funcUnit) Name() string { return u.name }

func (u *funcUnit) Step(ctx context.Context) Transition { return u.step(ctx) }

func doneUnit(name string, o Outcome) *funcUnit {
	return &funcUnit{name: name, step: func(context.Context) Transition { return Done(o) }}
}

func TestController(t *testing.T) {
	t.Run("GoTo returns outcome and pops", func(t *testing.T) {
		c := NewController(nil)
		got := c.GoTo(context.Background(), doneUnit("leaf", Selected("x")))

		if v, ok := ValueOf[string](got); !ok || v != "x" {
			t.Errorf("expected selected x, got %v", got)
		}
		if c.Depth() != 0 {
			t.Errorf("expected empty stack, got depth %d", c.Depth())
		}
	})

	t.Run("child outcome reaches parent before its next step", func(t *testing.T) {
		c := NewController(nil)
		var received Outcome
		steps := 0
		parent := &funcUnit{name: "parent"}
		parent.step = func(context.Context) Transition {
			steps++
			switch steps {
			case 1:
				if c.Depth() != 1 {
					t.Errorf("expected depth 1, got %d", c.Depth())
				}
				return Push(doneUnit("child", Selected(7)), func(o Outcome) { received = o })
			default:
				if v, _ := ValueOf[int](received); v != 7 {
					t.Errorf("resume not delivered before step, got %v", received)
				}
				return Done(Committed("ok"))
			}
		}

		got := c.GoTo(context.Background(), parent)
		if got.Kind != OutcomeCommitted {
			t.Errorf("expected committed, got %v", got)
		}
		if steps != 2 {
			t.Errorf("expected 2 parent steps, got %d", steps)
		}
	})

	t.Run("only the top unit executes", func(t *testing.T) {
		c := NewController(nil)
		var path []string
		child := &funcUnit{name: "child"}
		child.step = func(context.Context) Transition {
			path = c.Path()
			return Done(None())
		}
		pushed := false
		parent := &funcUnit{name: "parent"}
		parent.step = func(context.Context) Transition {
			if !pushed {
				pushed = true
				return Push(child, nil)
			}
			return Done(None())
		}

		c.GoTo(context.Background(), parent)
		if len(path) != 2 || path[0] != "parent" || path[1] != "child" {
			t.Errorf("unexpected path while child ran: %v", path)
		}
	})

	t.Run("deep nesting does not recurse", func(t *testing.T) {
		const depth = 50000
		c := NewController(nil)
		maxDepth := 0

		var nest func(level int) Unit
		nest = func(level int) Unit {
			pushed := false
			var result Outcome
			return &funcUnit{name: "nest", step: func(context.Context) Transition {
				maxDepth = max(maxDepth, c.Depth())
				if level == depth {
					return Done(Selected(level))
				}
				if !pushed {
					pushed = true
					return Push(nest(level+1), func(o Outcome) { result = o })
				}
				return Done(result)
			}}
		}

		got := c.GoTo(context.Background(), nest(1))
		if v, _ := ValueOf[int](got); v != depth {
			t.Errorf("expected innermost outcome %d, got %v", depth, got)
		}
		if maxDepth != depth {
			t.Errorf("expected max depth %d, got %d", depth, maxDepth)
		}
		if c.Depth() != 0 {
			t.Errorf("expected empty stack, got %d", c.Depth())
		}
	})

	t.Run("Back on empty stack is a no-op", func(t *testing.T) {
		c := NewController(nil)
		if c.Back() {
			t.Error("expected nothing popped")
		}
		if c.Back() {
			t.Error("expected nothing popped on repeat")
		}
	})

	t.Run("unit popped early does not pop its parent", func(t *testing.T) {
		c := NewController(nil)
		var received Outcome
		child := &funcUnit{name: "child"}
		child.step = func(context.Context) Transition {
			c.Back()
			return Done(Selected("late"))
		}
		steps := 0
		parent := &funcUnit{name: "parent"}
		parent.step = func(context.Context) Transition {
			steps++
			if steps == 1 {
				return Push(child, func(o Outcome) { received = o })
			}
			if c.Depth() != 1 {
				t.Errorf("parent should still be on the stack, depth %d", c.Depth())
			}
			return Done(None())
		}

		c.GoTo(context.Background(), parent)
		if v, _ := ValueOf[string](received); v != "late" {
			t.Errorf("expected child outcome delivered, got %v", received)
		}
		if steps != 2 {
			t.Errorf("expected parent to resume, got %d steps", steps)
		}
	})

	t.Run("nested GoTo only drives units above its base", func(t *testing.T) {
		c := NewController(nil)
		var inner Outcome
		outer := &funcUnit{name: "outer"}
		outer.step = func(ctx context.Context) Transition {
			inner = c.GoTo(ctx, doneUnit("inner", Selected(1)))
			if c.Depth() != 1 {
				t.Errorf("expected depth 1 after nested GoTo, got %d", c.Depth())
			}
			return Done(Committed(nil))
		}

		got := c.GoTo(context.Background(), outer)
		if v, _ := ValueOf[int](inner); v != 1 {
			t.Errorf("nested GoTo returned %v", inner)
		}
		if got.Kind != OutcomeCommitted || c.Depth() != 0 {
			t.Errorf("unexpected end state %v depth %d", got, c.Depth())
		}
	})

	t.Run("cancelled context unwinds", func(t *testing.T) {
		c := NewController(nil)
		ctx, cancel := context.WithCancel(context.Background())
		pushed := false
		parent := &funcUnit{name: "parent"}
		parent.step = func(context.Context) Transition {
			if !pushed {
				pushed = true
				return Push(&funcUnit{name: "spinner", step: func(context.Context) Transition {
					cancel()
					return Stay()
				}}, nil)
			}
			t.Error("parent should not run after cancellation")
			return Done(None())
		}

		got := c.GoTo(ctx, parent)
		if !got.IsCancelled() {
			t.Errorf("expected cancelled, got %v", got)
		}
		if c.Depth() != 0 {
			t.Errorf("expected empty stack, got %d", c.Depth())
		}
	})

	t.Run("push without child is ignored", func(t *testing.T) {
		c := NewController(nil)
		steps := 0
		u := &funcUnit{name: "u"}
		u.step = func(context.Context) Transition {
			steps++
			if steps == 1 {
				return Push(nil, nil)
			}
			return Done(None())
		}
		c.GoTo(context.Background(), u)
		if steps != 2 {
			t.Errorf("expected 2 steps, got %d", steps)
		}
	})
}
