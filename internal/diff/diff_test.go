package diff

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangedReturnsOnlyTouchedFields(t *testing.T) {
	snapshot := map[string]any{
		"firstName": "Jane",
		"lastName":  "Wanjiku",
		"town":      "Thika",
	}
	current := map[string]any{
		"firstName": "Jane",
		"lastName":  "Otieno",
		"town":      "Thika",
	}

	changed := Changed(snapshot, current)
	require.Len(t, changed, 1)
	assert.Equal(t, "Otieno", changed["lastName"])
}

func TestChangedEmptyWhenNothingTouched(t *testing.T) {
	snapshot := map[string]any{"firstName": "Jane"}
	assert.Empty(t, Changed(snapshot, map[string]any{"firstName": "Jane"}))
}

func TestChangedTreatsMissingSnapshotKeyAsChanged(t *testing.T) {
	changed := Changed(map[string]any{}, map[string]any{"email": "j@example.com"})
	assert.Equal(t, "j@example.com", changed["email"])
}

func TestDecimalEqualityIsByValue(t *testing.T) {
	// The record holds a decimal, the form re-parses to an int64. "300" vs
	// "300.00" must not be a spurious diff.
	snapshot := map[string]any{"monthlyCharge": decimal.RequireFromString("300.00")}
	current := map[string]any{"monthlyCharge": int64(300)}
	assert.Empty(t, Changed(snapshot, current))

	current["monthlyCharge"] = int64(350)
	assert.Len(t, Changed(snapshot, current), 1)
}

func TestNumber(t *testing.T) {
	n, ok := Number("300")
	require.True(t, ok)
	assert.Equal(t, int64(300), n)

	n, ok = Number(" 300.50 ")
	require.True(t, ok)
	d, isDecimal := n.(decimal.Decimal)
	require.True(t, isDecimal)
	assert.True(t, d.Equal(decimal.RequireFromString("300.50")))

	_, ok = Number("")
	assert.False(t, ok)
	_, ok = Number("threehundred")
	assert.False(t, ok)
}

func TestYesNo(t *testing.T) {
	b, ok := YesNo("yes")
	assert.True(t, ok)
	assert.True(t, b)

	b, ok = YesNo(" No ")
	assert.True(t, ok)
	assert.False(t, b)

	_, ok = YesNo("maybe")
	assert.False(t, ok)
	_, ok = YesNo("")
	assert.False(t, ok)
}
