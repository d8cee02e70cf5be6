package book

import (
	"math"
	"strconv"
	"strings"
)

// Filter holds the List hints that were supplied. A book matches when it
// satisfies any present hint; with no hints every book matches.
type Filter struct {
	Name     *string
	Reading  *bool
	Finished *bool
}

// ParseFilter turns raw query values into a Filter. Empty values count as absent.
func ParseFilter(name, reading, finished string) Filter {
	var f Filter
	if name != "" {
		f.Name = &name
	}
	if reading != "" {
		v := parseFlag(reading)
		f.Reading = &v
	}
	if finished != "" {
		v := parseFlag(finished)
		f.Finished = &v
	}
	return f
}

// parseFlag reads a numeric flag: nonzero is true, zero or non-numeric is false.
func parseFlag(raw string) bool {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(n) {
		return false
	}
	return n != 0
}

// MatchAll reports whether no hint is present.
func (f Filter) MatchAll() bool {
	return f.Name == nil && f.Reading == nil && f.Finished == nil
}

// Matches applies the OR of the present hints to b.
func (f Filter) Matches(b Book) bool {
	if f.MatchAll() {
		return true
	}
	if f.Name != nil && strings.Contains(b.Name, *f.Name) {
		return true
	}
	if f.Reading != nil && b.Reading == *f.Reading {
		return true
	}
	if f.Finished != nil && b.Finished == *f.Finished {
		return true
	}
	return false
}
