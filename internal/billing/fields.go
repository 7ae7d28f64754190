package billing

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/cashrunway/backend/internal/types"
	"github.com/shopspring/decimal"
)

// fields is a JSON object whose values are decoded on access.
type fields map[string]json.RawMessage

// str returns the string value for key, or "" if it is missing or not a string.
func (f fields) str(key string) string {
	var s string
	if err := json.Unmarshal(f[key], &s); err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

// amount returns the monetary value for key. Numbers and numeric strings are
// accepted and rounded to cents; anything else is zero.
func (f fields) amount(key string) decimal.Decimal {
	raw := f[key]
	if len(raw) == 0 {
		return decimal.Zero
	}

	value := string(raw)
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		value = strings.TrimSpace(s)
	}

	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}

	return d.Round(2)
}

// day returns the day of month from the first of keys that is set.
//
// A set but unparseable value results in 0, later keys are not consulted.
func (f fields) day(keys ...string) int {
	for _, key := range keys {
		raw := f[key]
		if isUnset(raw) {
			continue
		}

		var n int
		if err := json.Unmarshal(raw, &n); err == nil {
			return max(n, 0)
		}

		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
				return max(n, 0)
			}
		}

		return 0
	}

	return 0
}

// date returns the ISO date for key.
func (f fields) date(key string) (types.Date, bool) {
	s := f.str(key)
	if s == "" {
		return types.Date{}, false
	}

	d, err := types.ParseDate(s)
	if err != nil {
		return types.Date{}, false
	}
	return d, true
}

// object returns the nested object for key.
func (f fields) object(key string) (fields, bool) {
	if isUnset(f[key]) {
		return nil, false
	}

	var sub fields
	if err := json.Unmarshal(f[key], &sub); err != nil {
		return nil, false
	}
	return sub, true
}

// list returns the objects of the array for key. Elements that are not
// objects are returned as empty objects so that indices are kept.
func (f fields) list(key string) []fields {
	var raw []json.RawMessage
	if err := json.Unmarshal(f[key], &raw); err != nil {
		return nil
	}

	result := make([]fields, len(raw))
	for i, r := range raw {
		var item fields
		if err := json.Unmarshal(r, &item); err == nil {
			result[i] = item
		}
	}
	return result
}

// isUnset reports whether a value is missing or falsy.
func isUnset(raw json.RawMessage) bool {
	switch strings.TrimSpace(string(raw)) {
	case "", "null", "0", `""`, "false":
		return true
	}
	return false
}
