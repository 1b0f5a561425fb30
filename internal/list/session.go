// Package list holds the state machine shared by every paginated listing
// screen: current page, page size, search query, request fencing, and the
// subscription-lapse policy. Screens own fetching; the session owns which
// response is allowed to land.
package list

import (
	"fmt"

	"github.com/KKiumbe/web-taqa-sub000/internal/api"
)

// Session tracks one listing screen's pagination and in-flight request.
// Page changes, size changes and new searches each start a new fetch; the
// fence sequence guarantees that only the latest fetch's response (or
// failure) is applied, however the responses interleave.
type Session[T any] struct {
	query   api.SearchQuery
	page    api.PageRequest
	rows    []T
	total   int
	seq     uint64
	loading bool
	warning string
	err     error
}

// NewSession returns a session on page 0 with the default page size and an
// empty search.
func NewSession[T any]() *Session[T] {
	return &Session[T]{page: api.PageRequest{}.WithDefaults()}
}

// Begin fences a new fetch: it invalidates any in-flight request and
// returns the sequence number the eventual Apply or Fail must present.
func (s *Session[T]) Begin() uint64 {
	s.seq++
	s.loading = true
	return s.seq
}

// Apply lands a successful response. Stale responses (a newer Begin has
// happened since) are discarded and Apply reports false.
func (s *Session[T]) Apply(seq uint64, rows []T, total int) bool {
	if seq != s.seq {
		return false
	}
	s.loading = false
	s.rows = rows
	s.total = total
	s.warning = ""
	s.err = nil
	return true
}

// Fail lands a failed response. Stale failures are discarded. A
// subscription-lapse failure keeps the last good rows and records a
// warning instead of an error; everything else clears the rows.
func (s *Session[T]) Fail(seq uint64, err error) bool {
	if seq != s.seq {
		return false
	}
	s.loading = false
	if api.IsFeatureDisabled(err) {
		s.warning = "Subscription inactive. Showing last loaded data."
		s.err = nil
		return true
	}
	s.rows = nil
	s.total = 0
	s.warning = ""
	s.err = err
	return true
}

// Search installs a new query and resets to page 0. It reports whether the
// screen should fetch now; a phone query below the digit threshold parks
// until more digits arrive.
func (s *Session[T]) Search(term string) bool {
	s.query = api.ParseSearch(term)
	s.page.Page = 0
	return s.query.Ready()
}

// Query returns the active search query.
func (s *Session[T]) Query() api.SearchQuery { return s.query }

// Page returns the active page request.
func (s *Session[T]) Page() api.PageRequest { return s.page }

// SetPage moves to a 0-based page, clamped to the known page range. It
// reports whether the page actually changed.
func (s *Session[T]) SetPage(page int) bool {
	if page < 0 {
		page = 0
	}
	if max := s.TotalPages() - 1; s.total > 0 && page > max {
		page = max
	}
	if page == s.page.Page {
		return false
	}
	s.page.Page = page
	return true
}

// NextPage advances one page when one exists.
func (s *Session[T]) NextPage() bool { return s.SetPage(s.page.Page + 1) }

// PrevPage steps back one page when not already on the first.
func (s *Session[T]) PrevPage() bool { return s.SetPage(s.page.Page - 1) }

// SetPageSize switches to one of the offered page sizes and resets to page
// 0. Unknown sizes are rejected.
func (s *Session[T]) SetPageSize(size int) bool {
	if !api.ValidPageSize(size) || size == s.page.Size {
		return false
	}
	s.page.Size = size
	s.page.Page = 0
	return true
}

// Rows returns the currently displayed rows.
func (s *Session[T]) Rows() []T { return s.rows }

// Total returns the backend's total row count for the active query.
func (s *Session[T]) Total() int { return s.total }

// Loading reports whether a fetch is in flight.
func (s *Session[T]) Loading() bool { return s.loading }

// Warning returns the subscription-lapse notice, "" when none.
func (s *Session[T]) Warning() string { return s.warning }

// Err returns the last fetch error, nil after a success or lapse.
func (s *Session[T]) Err() error { return s.err }

// TotalPages returns how many pages the active query spans, at least 1.
func (s *Session[T]) TotalPages() int {
	size := s.page.WithDefaults().Size
	pages := (s.total + size - 1) / size
	if pages < 1 {
		pages = 1
	}
	return pages
}

// PageLabel renders the footer pagination label.
func (s *Session[T]) PageLabel() string {
	return fmt.Sprintf("Page %d of %d", s.page.Page+1, s.TotalPages())
}
