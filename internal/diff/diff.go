// Package diff implements dirty-field tracking for edit forms. A form
// snapshots the loaded record as a field map, and on submit only the keys
// whose values changed are sent, so a PUT never clobbers fields the
// operator did not touch.
package diff

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Changed returns the key-wise difference between the snapshot taken at
// load time and the current form values. A key missing from the snapshot
// counts as changed; a key missing from current is ignored (forms never
// drop fields).
func Changed(snapshot, current map[string]any) map[string]any {
	out := map[string]any{}
	for key, cur := range current {
		prev, ok := snapshot[key]
		if !ok || !equal(prev, cur) {
			out[key] = cur
		}
	}
	return out
}

// equal compares two field values. Decimals compare by value so that
// "300" and "300.00" are not a spurious diff.
func equal(a, b any) bool {
	da, aok := toDecimal(a)
	db, bok := toDecimal(b)
	if aok && bok {
		return da.Equal(db)
	}
	return a == b
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch x := v.(type) {
	case decimal.Decimal:
		return x, true
	case int:
		return decimal.NewFromInt(int64(x)), true
	case int64:
		return decimal.NewFromInt(x), true
	case float64:
		return decimal.NewFromFloat(x), true
	}
	return decimal.Decimal{}, false
}

// Number coerces a numeric form string back to a number for the wire.
// Integers stay integers; anything with a fraction becomes a decimal.
// Returns false for non-numeric input.
func Number(s string) (any, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil, false
	}
	if i, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return i, true
	}
	if d, err := decimal.NewFromString(trimmed); err == nil {
		return d, true
	}
	return nil, false
}

// YesNo coerces a yes/no select value back to a boolean for the wire.
// Returns false for anything else.
func YesNo(s string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes":
		return true, true
	case "no":
		return false, true
	}
	return false, false
}
