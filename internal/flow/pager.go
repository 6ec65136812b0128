package flow

import (
	"strings"
)

// Pager holds the records of a list screen, the subset matching the active filter and the current page.
//
// Filtering matches the query as a case-insensitive substring of each record's key. A query that matches nothing
// leaves the previous view in place so the operator never lands on an empty page by typo.
type Pager[T any] struct {
	source   []T
	filtered []T
	query    string
	page     int
	size     int
	key      func(T) string
}

// NewPager creates a pager showing size records per page. Non-positive sizes fall back to one.
func NewPager[T any](size int, key func(T) string) *Pager[T] {
	if size <= 0 {
		size = 1
	}
	return &Pager[T]{size: size, key: key}
}

// Activate replaces the records and resets the filter and page.
func (p *Pager[T]) Activate(items []T) {
	p.source = append([]T(nil), items...)
	p.filtered = p.source
	p.query = ""
	p.page = 0
}

func (p *Pager[T]) Len() int       { return len(p.filtered) }
func (p *Pager[T]) SourceLen() int { return len(p.source) }
func (p *Pager[T]) PageSize() int  { return p.size }
func (p *Pager[T]) PageIndex() int { return p.page }
func (p *Pager[T]) Query() string  { return p.query }

// TotalPages is ceil(Len / PageSize) and zero when nothing is visible.
func (p *Pager[T]) TotalPages() int {
	return (len(p.filtered) + p.size - 1) / p.size
}

// Page returns the visible records and the zero-based position of the first one in the filtered list.
func (p *Pager[T]) Page() ([]T, int) {
	start := p.page * p.size
	if start >= len(p.filtered) {
		return nil, start
	}
	end := min(start+p.size, len(p.filtered))
	return p.filtered[start:end], start
}

func (p *Pager[T]) CanAdvance() bool { return p.page < p.TotalPages()-1 }
func (p *Pager[T]) CanRetreat() bool { return p.page > 0 }

// Advance moves to the next page. It is a no-op on the last page.
func (p *Pager[T]) Advance() bool {
	if !p.CanAdvance() {
		return false
	}
	p.page++
	return true
}

// Retreat moves to the previous page. It is a no-op on the first page.
func (p *Pager[T]) Retreat() bool {
	if !p.CanRetreat() {
		return false
	}
	p.page--
	return true
}

// Filter narrows the visible records to those whose key contains q and returns the match count. Zero matches
// discard the filter, so the view never stays empty.
func (p *Pager[T]) Filter(q string) int {
	q = strings.TrimSpace(q)
	if q == "" {
		p.Clear()
		return len(p.filtered)
	}

	needle := strings.ToLower(q)
	matches := make([]T, 0, len(p.source))
	for _, item := range p.source {
		if strings.Contains(strings.ToLower(p.key(item)), needle) {
			matches = append(matches, item)
		}
	}
	if len(matches) == 0 {
		p.Clear()
		return 0
	}

	p.filtered = matches
	p.query = q
	p.page = 0
	return len(matches)
}

// Clear drops the filter and returns to the first page.
func (p *Pager[T]) Clear() {
	p.filtered = p.source
	p.query = ""
	p.page = 0
}

// Select resolves a one-based ordinal against the whole filtered list.
func (p *Pager[T]) Select(n int) Result[T] {
	if n < 1 || n > len(p.filtered) {
		return Failf[T]("option %d is out of range", n)
	}
	return Ok(p.filtered[n-1])
}
