package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSearchClassification(t *testing.T) {
	tests := []struct {
		name string
		term string
		want SearchKind
	}{
		{"empty", "", SearchAll},
		{"whitespace only", "   ", SearchAll},
		{"all digits", "0712345678", SearchByPhone},
		{"short digits still phone", "07", SearchByPhone},
		{"name", "Jane", SearchByName},
		{"name with digits mixed in", "Flat 4B", SearchByName},
		{"phone with spaces is a name", "0712 345678", SearchByName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseSearch(tt.term).Kind)
		})
	}
}

func TestParseSearchNameTokens(t *testing.T) {
	q := ParseSearch("  Jane   Wanjiku  ")
	assert.Equal(t, SearchByName, q.Kind)
	assert.Equal(t, "Jane", q.First)
	assert.Equal(t, "Wanjiku", q.Last)

	single := ParseSearch("Jane")
	assert.Equal(t, "Jane", single.First)
	assert.Empty(t, single.Last)
}

func TestSearchQueryReady(t *testing.T) {
	assert.True(t, ParseSearch("").Ready(), "empty search is always ready")
	assert.True(t, ParseSearch("Jane").Ready(), "name search is always ready")
	assert.False(t, ParseSearch("071234567").Ready(), "9 digits must wait")
	assert.True(t, ParseSearch("0712345678").Ready(), "10 digits may fire")
}

func TestSearchQueryParams(t *testing.T) {
	phone := ParseSearch("0712345678").params()
	assert.Equal(t, "0712345678", phone.Get("phone"))

	both := ParseSearch("Jane Wanjiku").params()
	assert.Equal(t, "Jane", both.Get("firstName"))
	assert.Equal(t, "Wanjiku", both.Get("lastName"))

	first := ParseSearch("Jane").params()
	assert.Equal(t, "Jane", first.Get("firstName"))
	assert.False(t, first.Has("lastName"))

	all := ParseSearch("").params()
	assert.Empty(t, all)
}

func TestPageRequestWire(t *testing.T) {
	// Screens are 0-based, the wire is 1-based.
	v := PageRequest{Page: 0, Size: 10}.apply(nil)
	assert.Equal(t, "1", v.Get("page"))
	assert.Equal(t, "10", v.Get("limit"))

	v = PageRequest{Page: 4, Size: 50}.apply(nil)
	assert.Equal(t, "5", v.Get("page"))
	assert.Equal(t, "50", v.Get("limit"))
}

func TestPageRequestWithDefaults(t *testing.T) {
	p := PageRequest{Page: -3, Size: 0}.WithDefaults()
	assert.Equal(t, 0, p.Page)
	assert.Equal(t, DefaultPageSize, p.Size)
}

func TestValidPageSize(t *testing.T) {
	for _, size := range PageSizes {
		assert.True(t, ValidPageSize(size))
	}
	assert.False(t, ValidPageSize(15))
	assert.False(t, ValidPageSize(0))
}
