package domain

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf16"
)

// MinPasswordLength is the shortest password accepted at signup.
const MinPasswordLength = 6

// DisplayDateLayout renders dates as dd/mm/yyyy.
const DisplayDateLayout = "02/01/2006"

// ErrNotADate is returned by ParseFlexibleDate for unparseable input.
var ErrNotADate = errors.New("not a date")

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// IsValidEmail checks s against the local@domain.tld shape.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidPassword rejects passwords shorter than MinPasswordLength. Length is
// measured in UTF-16 code units, so characters outside the BMP count twice.
func IsValidPassword(s string) bool {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n >= MinPasswordLength
}

// FilterToEnum returns the values present in allowed, in input order.
// Repeated values are kept once.
func FilterToEnum[T ~string](values []string, allowed map[T]struct{}) []T {
	out := make([]T, 0, len(values))
	seen := make(map[T]struct{}, len(values))
	for _, v := range values {
		candidate := T(v)
		if _, ok := allowed[candidate]; !ok {
			continue
		}
		if _, dup := seen[candidate]; dup {
			continue
		}
		seen[candidate] = struct{}{}
		out = append(out, candidate)
	}
	return out
}

// ParseFlexibleDate accepts "dd/mm/yyyy" or an ISO-8601 date/time. Slash dates
// are positional (day first) and resolve to midnight UTC; ISO values without
// a zone are read as UTC as well.
func ParseFlexibleDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrNotADate
	}
	if strings.Contains(s, "/") {
		return parseSlashDate(s)
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrNotADate, s)
}

func parseSlashDate(s string) (time.Time, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrNotADate, s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrNotADate, s)
		}
		nums[i] = n
	}
	day, month, year := nums[0], nums[1], nums[2]
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalises 31/02 into March; treat that as malformed.
	if t.Day() != day || int(t.Month()) != month || t.Year() != year {
		return time.Time{}, fmt.Errorf("%w: %q", ErrNotADate, s)
	}
	return t, nil
}

// FormatDisplayDate renders t as dd/mm/yyyy in UTC.
func FormatDisplayDate(t time.Time) string {
	return t.UTC().Format(DisplayDateLayout)
}
