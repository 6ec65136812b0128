package flow

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// Controller owns the navigation stack and drives the unit on top of it.
//
// Units never call each other directly: a parent returns [Push] and gets its child's [Outcome] through the
// continuation, so stack depth in memory stays constant no matter how many screens are visited.
type Controller struct {
	stack  *Stack
	logger *log.Logger
}

// NewController creates a controller with an empty stack. A nil logger discards output.
func NewController(logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{stack: NewStack(), logger: logger}
}

// GoTo pushes u and runs it, and everything it pushes, until u finishes. It returns u's outcome.
//
// GoTo may be called again from inside a Step; the nested call only drives the units above the depth at which
// it was entered. When ctx is cancelled every unit pushed by this call is popped and [Cancelled] is returned.
func (c *Controller) GoTo(ctx context.Context, u Unit) Outcome {
	base := c.stack.Len()
	c.stack.Push(u)
	c.logger.Debug("navigate", "unit", u.Name(), "depth", c.stack.Len())

	for {
		if c.stack.Len() <= base {
			return None()
		}

		if err := ctx.Err(); err != nil {
			c.unwind(base)
			c.logger.Info("navigation cancelled", "unit", u.Name(), "err", err)
			return Interrupted()
		}

		top := c.stack.Peek()
		t := top.Unit.Step(ctx)

		switch t.kind {
		case transitionStay:
		case transitionPush:
			if t.child == nil {
				c.logger.Warn("push without child ignored", "unit", top.Unit.Name())
				continue
			}
			top.resume = t.resume
			c.stack.Push(t.child)
			c.logger.Debug("navigate", "unit", t.child.Name(), "depth", c.stack.Len())
		case transitionDone:
			// A unit that was already popped through Back must not take its parent with it.
			if c.stack.Peek() == top {
				c.stack.Pop()
			}
			c.logger.Debug("finished", "unit", top.Unit.Name(), "outcome", t.outcome, "depth", c.stack.Len())

			if c.stack.Len() <= base {
				return t.outcome
			}

			parent := c.stack.Peek()
			resume := parent.resume
			parent.resume = nil
			if resume != nil {
				resume(t.outcome)
			}
		}
	}
}

// Back pops the top unit without running its continuation. Popping an empty stack is a no-op; it reports
// whether anything was popped.
func (c *Controller) Back() bool {
	e := c.stack.Pop()
	if e == nil {
		return false
	}
	c.logger.Debug("back", "unit", e.Unit.Name(), "depth", c.stack.Len())
	return true
}

// Depth returns the number of units on the stack.
func (c *Controller) Depth() int { return c.stack.Len() }

// Path returns the unit names from the root to the current unit.
func (c *Controller) Path() []string { return c.stack.Names() }

func (c *Controller) unwind(base int) {
	for c.stack.Len() > base {
		c.stack.Pop()
	}
}
