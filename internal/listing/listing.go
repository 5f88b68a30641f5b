// Package listing holds the client-side search and paging used by every list view.
package listing

import "strings"

// Filter keeps the items for which at least one field returned by fields
// contains term, ignoring case. Only the empty term keeps everything; a blank
// term is matched like any other.
func Filter[T any](items []T, term string, fields func(T) []string) []T {
	term = strings.ToLower(term)
	if term == "" {
		return items
	}

	out := make([]T, 0, len(items))
	for _, it := range items {
		for _, f := range fields(it) {
			if strings.Contains(strings.ToLower(f), term) {
				out = append(out, it)
				break
			}
		}
	}
	return out
}

// Pager is slice windowing with a fixed page size. Pages are 1-based.
type Pager struct {
	Page  int `json:"page"`
	Size  int `json:"size"`
	Total int `json:"total"`
}

func NewPager(size, total int) Pager {
	if size <= 0 {
		size = 1
	}
	return Pager{Page: 1, Size: size, Total: total}
}

func (p Pager) TotalPages() int {
	if p.Size <= 0 {
		return 0
	}
	return (p.Total + p.Size - 1) / p.Size
}

// GoTo moves to page when it is within 1..TotalPages and reports whether it moved.
// Out-of-range requests leave the current page unchanged.
func (p *Pager) GoTo(page int) bool {
	if page < 1 || page > p.TotalPages() {
		return false
	}
	p.Page = page
	return true
}

// Reset goes back to the first page, e.g. after the underlying list changed.
func (p *Pager) Reset(total int) {
	p.Total = total
	p.Page = 1
}

func (p Pager) HasPrev() bool { return p.Page > 1 }
func (p Pager) HasNext() bool { return p.Page < p.TotalPages() }

// Pages lists the page numbers for pagination controls.
func (p Pager) Pages() []int {
	n := p.TotalPages()
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// Window returns the items of the current page.
func Window[T any](items []T, p Pager) []T {
	start := (p.Page - 1) * p.Size
	if start < 0 || start >= len(items) {
		return []T{}
	}
	end := start + p.Size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
