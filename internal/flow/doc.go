// Package flow is the interaction engine of the console: a navigation [Controller] that drives screens as a stack
// without recursion, the [Pager] and [ListScreen] used by every browse/select screen, the [Wizard] that composes
// sequential data entry with delegated selections, and [Result] for failures that should be shown rather than
// returned.
//
// Every screen implements [Unit]. A Step call performs one redraw and one read and returns a [Transition]:
//
//	Stay()                    keep going
//	Push(child, resume)       run child, then hand its Outcome to resume
//	Done(outcome)             finish and give outcome to the parent
//
// Because continuations replace nested calls, a wizard that delegates to a list that fails and is retried many
// times keeps a constant call depth.
package flow
