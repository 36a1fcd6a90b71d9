package utils

import (
	"sort"
	"strconv"
	"strings"
)

// TrimOrEmpty normalizes user input.
func TrimOrEmpty(s string) string {
	return strings.TrimSpace(s)
}

// OrDefault returns fallback when s is blank.
func OrDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}

// ParseSeat reads a seat cell as a positive integer.
func ParseSeat(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}

// JoinSeats renders seats as "1,2,3".
func JoinSeats(seats []int) string {
	parts := make([]string, len(seats))
	for i, s := range seats {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, ",")
}

// SortedCopy returns seats sorted ascending without touching the input.
func SortedCopy(seats []int) []int {
	out := append([]int(nil), seats...)
	sort.Ints(out)
	return out
}
