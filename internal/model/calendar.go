package model

import (
	"strconv"
	"strings"
	"time"
)

// ReferenceYear is the year used for month names and day counts.
// February therefore always has 29 days.
const ReferenceYear = 2024

// ValidMonth reports whether month is in 1..12.
func ValidMonth(month int) bool {
	return month >= 1 && month <= 12
}

// DaysInMonth returns the number of days in month for ReferenceYear.
func DaysInMonth(month int) int {
	// Day 0 of the following month normalizes to the last day of month.
	return time.Date(ReferenceYear, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ValidDay reports whether day exists in month for ReferenceYear.
func ValidDay(month, day int) bool {
	return ValidMonth(month) && day >= 1 && day <= DaysInMonth(month)
}

// MonthName returns the full English month name, e.g. "January".
func MonthName(month int) string {
	if !ValidMonth(month) {
		return ""
	}
	return time.Month(month).String()
}

// MonthNames returns the 12 month names in calendar order.
func MonthNames() []string {
	names := make([]string, 12)
	for i := range names {
		names[i] = MonthName(i + 1)
	}
	return names
}

// CurrentMonth returns the 1-based month of now.
func CurrentMonth(now time.Time) int {
	return int(now.Month())
}

// ParseMonth accepts a month number ("3") or a case-insensitive name or
// three-letter prefix ("march", "Mar").
func ParseMonth(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		return n, ValidMonth(n)
	}
	if len(s) < 3 {
		return 0, false
	}
	lower := strings.ToLower(s)
	for i, name := range MonthNames() {
		if strings.HasPrefix(strings.ToLower(name), lower) {
			return i + 1, true
		}
	}
	return 0, false
}

// NextMonth returns the month after month, wrapping December to January.
func NextMonth(month int) int {
	return month%12 + 1
}

// PrevMonth returns the month before month, wrapping January to December.
func PrevMonth(month int) int {
	return (month+10)%12 + 1
}
