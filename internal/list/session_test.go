package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/KKiumbe/web-taqa-sub000/internal/api"
)

func TestApplyDiscardsStaleResponses(t *testing.T) {
	s := NewSession[string]()

	first := s.Begin()
	second := s.Begin()

	// The older response lands after the newer fetch started.
	assert.False(t, s.Apply(first, []string{"stale"}, 1))
	assert.Empty(t, s.Rows())
	assert.True(t, s.Loading())

	assert.True(t, s.Apply(second, []string{"fresh"}, 1))
	assert.Equal(t, []string{"fresh"}, s.Rows())
	assert.False(t, s.Loading())
}

func TestFailDiscardsStaleFailures(t *testing.T) {
	s := NewSession[string]()

	first := s.Begin()
	second := s.Begin()
	assert.True(t, s.Apply(second, []string{"good"}, 1))

	// The older request's failure must not clobber the fresh rows.
	assert.False(t, s.Fail(first, &api.Error{Status: 500}))
	assert.Equal(t, []string{"good"}, s.Rows())
	assert.NoError(t, s.Err())
}

func TestSubscriptionLapseKeepsLastGoodRows(t *testing.T) {
	s := NewSession[string]()
	assert.True(t, s.Apply(s.Begin(), []string{"a", "b"}, 2))

	seq := s.Begin()
	assert.True(t, s.Fail(seq, &api.Error{Status: 402, Message: "subscription expired"}))

	assert.Equal(t, []string{"a", "b"}, s.Rows(), "rows survive the lapse")
	assert.NotEmpty(t, s.Warning())
	assert.NoError(t, s.Err())
}

func TestOtherFailuresClearRows(t *testing.T) {
	s := NewSession[string]()
	assert.True(t, s.Apply(s.Begin(), []string{"a"}, 1))

	assert.True(t, s.Fail(s.Begin(), &api.Error{Status: 500}))
	assert.Empty(t, s.Rows())
	assert.Error(t, s.Err())
	assert.Empty(t, s.Warning())
}

func TestSearchResetsPageAndGatesShortPhones(t *testing.T) {
	s := NewSession[string]()
	s.Apply(s.Begin(), nil, 100)
	s.SetPage(3)

	assert.True(t, s.Search("Jane"), "name search fires immediately")
	assert.Equal(t, 0, s.Page().Page)

	s.SetPage(2)
	assert.False(t, s.Search("07123"), "short phone prefix parks")
	assert.Equal(t, 0, s.Page().Page, "page resets even when parked")

	assert.True(t, s.Search("0712345678"))
}

func TestPagination(t *testing.T) {
	s := NewSession[string]()
	s.Apply(s.Begin(), nil, 47)

	assert.Equal(t, 5, s.TotalPages())
	assert.Equal(t, "Page 1 of 5", s.PageLabel())

	assert.False(t, s.PrevPage(), "already on the first page")
	assert.True(t, s.NextPage())
	assert.Equal(t, "Page 2 of 5", s.PageLabel())

	assert.True(t, s.SetPage(99), "clamped to the last page")
	assert.Equal(t, 4, s.Page().Page)
	assert.False(t, s.NextPage(), "no page past the last")
}

func TestSetPageSize(t *testing.T) {
	s := NewSession[string]()
	s.Apply(s.Begin(), nil, 100)
	s.SetPage(3)

	assert.False(t, s.SetPageSize(15), "unoffered size rejected")
	assert.Equal(t, 3, s.Page().Page)

	assert.True(t, s.SetPageSize(50))
	assert.Equal(t, 0, s.Page().Page, "size change restarts at page 0")
	assert.Equal(t, 2, s.TotalPages())

	assert.False(t, s.SetPageSize(50), "same size is a no-op")
}

func TestTotalPagesNeverZero(t *testing.T) {
	s := NewSession[string]()
	assert.Equal(t, 1, s.TotalPages())
	assert.Equal(t, "Page 1 of 1", s.PageLabel())
}
