package domain

import (
	"fmt"
	"time"
)

// BusinessHours ventana de atención diaria, en minutos desde medianoche
type BusinessHours struct {
	OpeningMinute int
	ClosingMinute int
}

// ParseBusinessHours construye el horario a partir de cadenas "HH:MM"
func ParseBusinessHours(opening, closing string) (BusinessHours, error) {
	open, err := parseMinuteOfDay(opening)
	if err != nil {
		return BusinessHours{}, fmt.Errorf("invalid opening time %q: %w", opening, err)
	}
	close, err := parseMinuteOfDay(closing)
	if err != nil {
		return BusinessHours{}, fmt.Errorf("invalid closing time %q: %w", closing, err)
	}
	if close <= open {
		return BusinessHours{}, fmt.Errorf("closing time %q must be after opening time %q", closing, opening)
	}
	return BusinessHours{OpeningMinute: open, ClosingMinute: close}, nil
}

func parseMinuteOfDay(s string) (int, error) {
	t, err := time.Parse(TimeFormat, s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

// IsWithinSchedule reports whether [start, end] fits the business hours:
// start within [opening, closing), end no later than closing, and both on
// the same calendar date (no overnight appointments).
func IsWithinSchedule(hours BusinessHours, start, end time.Time) bool {
	if !SameDay(start, end) {
		return false
	}
	startMin := minuteOfDay(start)
	endMin := minuteOfDay(end)
	return startMin >= hours.OpeningMinute &&
		startMin < hours.ClosingMinute &&
		endMin <= hours.ClosingMinute
}

// Overlaps reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) overlap. Touching endpoints do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// AddMinutes returns t shifted n minutes forward
func AddMinutes(t time.Time, n int) time.Time {
	return t.Add(time.Duration(n) * time.Minute)
}

// SameDay reports whether both instants fall on the same calendar date
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
