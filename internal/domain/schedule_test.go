package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustHours(t *testing.T) BusinessHours {
	t.Helper()
	hours, err := ParseBusinessHours(DefaultOpeningTime, DefaultClosingTime)
	require.NoError(t, err)
	return hours
}

func at(hour, min int) time.Time {
	return time.Date(2025, 10, 15, hour, min, 0, 0, time.UTC)
}

func TestParseBusinessHours(t *testing.T) {
	hours, err := ParseBusinessHours("09:30", "20:00")
	require.NoError(t, err)
	assert.Equal(t, 9*60+30, hours.OpeningMinute)
	assert.Equal(t, 20*60, hours.ClosingMinute)

	_, err = ParseBusinessHours("25:00", "20:00")
	assert.Error(t, err)

	_, err = ParseBusinessHours("20:00", "09:30")
	assert.Error(t, err)
}

func TestIsWithinSchedule(t *testing.T) {
	hours := mustHours(t)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  bool
	}{
		{"inside window", at(10, 0), at(10, 40), true},
		{"starts at opening", at(9, 30), at(10, 10), true},
		{"ends exactly at closing", at(19, 20), at(20, 0), true},
		{"before opening", at(9, 0), at(9, 40), false},
		{"ends after closing", at(19, 50), at(20, 10), false},
		{"starts at closing", at(20, 0), at(20, 15), false},
		{"crosses midnight", at(19, 0), at(19, 30).AddDate(0, 0, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWithinSchedule(hours, tt.start, tt.end))
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd time.Time
		want                           bool
	}{
		{"full overlap", at(10, 0), at(11, 0), at(10, 15), at(10, 45), true},
		{"partial overlap", at(10, 0), at(11, 0), at(10, 30), at(11, 30), true},
		{"touching endpoints do not overlap", at(10, 0), at(11, 0), at(11, 0), at(12, 0), false},
		{"touching the other way", at(11, 0), at(12, 0), at(10, 0), at(11, 0), false},
		{"disjoint", at(9, 30), at(10, 0), at(15, 0), at(16, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
		})
	}
}

func TestAddMinutes(t *testing.T) {
	assert.Equal(t, at(10, 40), AddMinutes(at(10, 0), 40))
	assert.Equal(t, at(9, 45), AddMinutes(at(10, 0), -15))
}

func TestSameDay(t *testing.T) {
	assert.True(t, SameDay(at(9, 30), at(19, 59)))
	assert.False(t, SameDay(at(9, 30), at(9, 30).AddDate(0, 0, 1)))
}
