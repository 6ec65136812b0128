package flow

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Br3nOT/coders24-pooii-locadora/internal/ui"
)

// View is what a unit draws with: the console plus the controller, whose path becomes the header breadcrumbs.
type View struct {
	Console *ui.Console
	Nav     *Controller
}

// Header clears the screen and prints title under the path of the units below the current one.
func (v View) Header(title string) {
	v.Console.Clear()
	var crumbs []string
	if v.Nav != nil {
		if path := v.Nav.Path(); len(path) > 1 {
			crumbs = path[:len(path)-1]
		}
	}
	v.Console.Header(title, crumbs...)
}

// Column renders one field of T in a list table.
type Column[T any] struct {
	Title string
	Width int
	Value func(T) string
}

// ListOptions parameterize a [ListScreen].
type ListOptions[T any] struct {
	Title    string
	Noun     string // plural, used in messages
	Fetch    func(ctx context.Context) ([]T, error)
	Key      func(T) string // filter key
	Columns  []Column[T]
	Modal    bool // allow selecting a record by its number
	PageSize int
}

// ListScreen is the browse/filter/paginate loop shared by every list. A modal list finishes with [Selected] when
// the operator picks a record; both kinds finish with [None] on back and with [Cancelled] when input ends.
type ListScreen[T any] struct {
	view    View
	opts    ListOptions[T]
	pager   *Pager[T]
	keys    ui.ListKeys
	fetched bool
	notice  ui.Notice
}

func NewListScreen[T any](v View, opts ListOptions[T]) *ListScreen[T] {
	if opts.Noun == "" {
		opts.Noun = "records"
	}
	return &ListScreen[T]{
		view:  v,
		opts:  opts,
		pager: NewPager(opts.PageSize, opts.Key),
		keys:  ui.NewListKeys(),
	}
}

func (s *ListScreen[T]) Name() string { return s.opts.Title }

// Pager exposes the list state.
func (s *ListScreen[T]) Pager() *Pager[T] { return s.pager }

func (s *ListScreen[T]) Step(ctx context.Context) Transition {
	if !s.fetched {
		s.fetched = true
		items, err := s.opts.Fetch(ctx)
		if err != nil {
			s.view.Header(s.opts.Title)
			s.view.Console.Notify(ui.Error(fmt.Sprintf("Could not load %s: %v", s.opts.Noun, err)))
			if err := s.view.Console.Pause(); err != nil {
				return Done(Interrupted())
			}
			return Done(None())
		}
		s.pager.Activate(items)
	}

	s.render()

	in := Prompt(s.view.Console, s.prompt())
	if in.IsFailure() {
		return Done(Interrupted())
	}
	return s.handle(in.Value())
}

func (s *ListScreen[T]) handle(cmd string) Transition {
	switch {
	case cmd == "":
	case ui.Matches(cmd, s.keys.Prev):
		s.pager.Retreat()
	case ui.Matches(cmd, s.keys.Next):
		s.pager.Advance()
	case ui.Matches(cmd, s.keys.Filter):
		q := Prompt(s.view.Console, "Filter: ")
		if q.IsFailure() {
			return Done(Interrupted())
		}
		if q.Value() == "" {
			return Stay()
		}
		if n := s.pager.Filter(q.Value()); n == 0 {
			s.notice = ui.Warn(fmt.Sprintf("No %s match %q. Showing all %s.", s.opts.Noun, q.Value(), s.opts.Noun))
		} else {
			s.notice = ui.Info(fmt.Sprintf("%d %s match %q.", n, s.opts.Noun, q.Value()))
		}
	case ui.Matches(cmd, s.keys.Clear):
		s.pager.Clear()
		s.notice = ui.Info("Filter cleared.")
	case ui.Matches(cmd, s.keys.Back):
		return Done(None())
	case s.opts.Modal:
		n := ParseInt(cmd)
		if n.IsFailure() {
			s.notice = ui.Error(fmt.Sprintf("Invalid input %q.", cmd))
			return Stay()
		}
		item := s.pager.Select(n.Value())
		if item.IsFailure() {
			s.notice = ui.Error(fmt.Sprintf("Invalid option: %s.", item.Message()))
			return Stay()
		}
		return Done(Selected(item.Value()))
	default:
		s.notice = ui.Error(fmt.Sprintf("Unknown command %q.", cmd))
	}
	return Stay()
}

func (s *ListScreen[T]) render() {
	c := s.view.Console
	s.view.Header(s.opts.Title)

	if q := s.pager.Query(); q != "" {
		c.Notify(ui.Info(fmt.Sprintf("Filter: %q (%d of %d)", q, s.pager.Len(), s.pager.SourceLen())))
	}

	items, offset := s.pager.Page()
	if len(items) == 0 {
		c.Notify(ui.Warn(fmt.Sprintf("No %s found.", s.opts.Noun)))
	} else {
		cols := make([]ui.Column, 0, len(s.opts.Columns)+1)
		cols = append(cols, ui.Column{Title: "#"})
		for _, col := range s.opts.Columns {
			cols = append(cols, ui.Column{Title: col.Title, Width: col.Width})
		}

		rows := make([][]string, len(items))
		for i, item := range items {
			row := make([]string, 0, len(cols))
			row = append(row, strconv.Itoa(offset+i+1))
			for _, col := range s.opts.Columns {
				row = append(row, col.Value(item))
			}
			rows[i] = row
		}
		c.Table(cols, rows)
		c.Printf("Page %d of %d\n", s.pager.PageIndex()+1, s.pager.TotalPages())
	}

	s.keys.Prev.SetEnabled(s.pager.CanRetreat())
	s.keys.Next.SetEnabled(s.pager.CanAdvance())
	s.keys.Clear.SetEnabled(s.pager.Query() != "")
	c.Help(s.keys.ShortHelp()...)

	c.Notify(s.notice)
	s.notice = ui.Notice{}
}

func (s *ListScreen[T]) prompt() string {
	if s.opts.Modal && s.pager.Len() > 0 {
		return "Select a number or command: "
	}
	return "Command: "
}
