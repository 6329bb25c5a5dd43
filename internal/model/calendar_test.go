package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysInMonth_ReferenceYear(t *testing.T) {
	tests := []struct {
		month int
		want  int
	}{
		{1, 31},
		{2, 29},
		{4, 30},
		{6, 30},
		{9, 30},
		{11, 30},
		{12, 31},
	}

	for _, tt := range tests {
		t.Run(MonthName(tt.month), func(t *testing.T) {
			assert.Equal(t, tt.want, DaysInMonth(tt.month))
		})
	}
}

func TestDaysInMonth_FebruaryIgnoresCurrentYear(t *testing.T) {
	// 2026 is not a leap year, but the grid still shows 29 days.
	now := time.Date(2026, time.February, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 2, CurrentMonth(now))
	assert.Equal(t, 29, DaysInMonth(CurrentMonth(now)))
}

func TestValidDay(t *testing.T) {
	assert.True(t, ValidDay(2, 29))
	assert.False(t, ValidDay(2, 30))
	assert.False(t, ValidDay(1, 0))
	assert.False(t, ValidDay(13, 1))
}

func TestMonthNames(t *testing.T) {
	names := MonthNames()
	assert.Len(t, names, 12)
	assert.Equal(t, "January", names[0])
	assert.Equal(t, "December", names[11])
	assert.Equal(t, "", MonthName(0))
}

func TestParseMonth(t *testing.T) {
	tests := []struct {
		in    string
		want  int
		valid bool
	}{
		{"1", 1, true},
		{" 12 ", 12, true},
		{"13", 13, false},
		{"march", 3, true},
		{"Sep", 9, true},
		{"ju", 0, false},
		{"nope", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseMonth(tt.in)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNextPrevMonth(t *testing.T) {
	assert.Equal(t, 2, NextMonth(1))
	assert.Equal(t, 1, NextMonth(12))
	assert.Equal(t, 12, PrevMonth(1))
	assert.Equal(t, 5, PrevMonth(6))
}
