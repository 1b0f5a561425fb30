package api

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// MinPhoneDigits is the minimum digit count before a phone search may fire.
// Shorter terms would hit the backend on every keystroke of a phone number.
const MinPhoneDigits = 10

// PageSizes are the page sizes the list screens offer.
var PageSizes = []int{10, 20, 50}

// DefaultPageSize is used until the operator picks another size.
const DefaultPageSize = 10

var digitsOnly = regexp.MustCompile(`^\d+$`)

// SearchKind tags the variant of a SearchQuery.
type SearchKind int

const (
	// SearchAll routes to the unfiltered list endpoint.
	SearchAll SearchKind = iota
	// SearchByPhone routes to the search-by-phone endpoint.
	SearchByPhone
	// SearchByName routes to the search-by-name endpoint.
	SearchByName
)

// SearchQuery is the tagged decision of which endpoint family a search term
// routes to. Every list screen shares this one rule instead of sniffing the
// term with inline regexes.
type SearchQuery struct {
	Kind  SearchKind
	Phone string // SearchByPhone: the digits
	First string // SearchByName: first whitespace token
	Last  string // SearchByName: second token, "" when absent
	Term  string // original trimmed term
}

// ParseSearch classifies a free-text search term. A trimmed-empty term is
// SearchAll; an all-digit term is SearchByPhone; anything else is
// SearchByName split into first/last tokens.
func ParseSearch(term string) SearchQuery {
	trimmed := strings.TrimSpace(term)
	if trimmed == "" {
		return SearchQuery{Kind: SearchAll}
	}
	if digitsOnly.MatchString(trimmed) {
		return SearchQuery{Kind: SearchByPhone, Phone: trimmed, Term: trimmed}
	}
	fields := strings.Fields(trimmed)
	q := SearchQuery{Kind: SearchByName, First: fields[0], Term: trimmed}
	if len(fields) > 1 {
		q.Last = fields[1]
	}
	return q
}

// Ready reports whether the query may fire a request. Phone searches hold
// off until the term reaches MinPhoneDigits; everything else is ready.
func (q SearchQuery) Ready() bool {
	if q.Kind == SearchByPhone {
		return len(q.Phone) >= MinPhoneDigits
	}
	return true
}

// params returns the wire query parameters for the search variant.
func (q SearchQuery) params() url.Values {
	v := url.Values{}
	switch q.Kind {
	case SearchByPhone:
		v.Set("phone", q.Phone)
	case SearchByName:
		v.Set("firstName", q.First)
		if q.Last != "" {
			v.Set("lastName", q.Last)
		}
	}
	return v
}

// PageRequest is a 0-based page index plus page size, as the screens track
// them. The wire is 1-based; conversion happens in one place.
type PageRequest struct {
	Page int
	Size int
}

// WithDefaults returns a copy with safe defaults applied.
func (p PageRequest) WithDefaults() PageRequest {
	if p.Page < 0 {
		p.Page = 0
	}
	if p.Size <= 0 {
		p.Size = DefaultPageSize
	}
	return p
}

// apply adds the 1-based page and limit parameters.
func (p PageRequest) apply(v url.Values) url.Values {
	p = p.WithDefaults()
	v.Set("page", strconv.Itoa(p.Page+1))
	v.Set("limit", strconv.Itoa(p.Size))
	return v
}

// ValidPageSize reports whether the screens offer the given page size.
func ValidPageSize(size int) bool {
	for _, s := range PageSizes {
		if s == size {
			return true
		}
	}
	return false
}
