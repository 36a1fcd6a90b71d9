package utils

import (
	"strconv"
	"strings"
)

// FormatBs renders an amount the way the desk shows prices ("Bs. 50", "Bs. 12.5").
func FormatBs(amount float64) string {
	return "Bs. " + strconv.FormatFloat(amount, 'f', -1, 64)
}

// ParseAmount reads a decimal cell such as "50", "50.5" or "50,5".
// Unparsable input yields 0.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
