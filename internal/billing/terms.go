package billing

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Default payment terms in days.
const (
	DefaultRetainerTerms  = 30
	DefaultUsageTerms     = 30
	DefaultMilestoneTerms = 14
	DefaultInvoiceTerms   = 0
)

// ParseTerms returns the payment delay in days for a "net_N" string or an
// integer day count. Anything else results in def.
func ParseTerms(raw json.RawMessage, def int) int {
	if len(raw) == 0 {
		return def
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		days, ok := strings.CutPrefix(strings.ToLower(strings.TrimSpace(s)), "net_")
		if !ok {
			return def
		}

		n, err := strconv.Atoi(days)
		if err != nil || n < 0 {
			return def
		}
		return n
	}

	var n int
	if err := json.Unmarshal(raw, &n); err == nil && n >= 0 {
		return n
	}

	return def
}
