package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseAmount converts a provider-supplied monetary string into a float64.
// Empty, malformed or negative amounts are rejected; callers must not coerce
// a bad amount to zero.
func ParseAmount(raw string) (float64, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, fmt.Errorf("amount is empty")
	}
	amount, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("amount %q is not a number", raw)
	}
	if amount < 0 {
		return 0, fmt.Errorf("amount %q is negative", raw)
	}
	return amount, nil
}
