// Package dayutil provides calendar arithmetic over study-day strings.
//
// A study-day is a calendar day under a fixed UTC-offset convention: the
// clock is shifted by StudyDayOffset before truncating to a date, so every
// learner rolls over to the next day at the same wall-clock moment
// regardless of device timezone. Day strings use the "2006-01-02" layout
// and sort chronologically as plain strings.
package dayutil

import (
	"errors"
	"fmt"
	"time"
)

// DayFormat is the layout of a study-day string.
const DayFormat = "2006-01-02"

// StudyDayOffset shifts UTC before truncating to a calendar day.
// The product's home market sits at UTC+6, so a study-day starts at
// 18:00 UTC of the previous calendar day.
const StudyDayOffset = 6 * time.Hour

// ErrInvalidDate indicates a day string that does not parse as DayFormat.
var ErrInvalidDate = errors.New("invalid date")

// DayOf truncates a timestamp to its study-day string.
func DayOf(t time.Time) string {
	return t.UTC().Add(StudyDayOffset).Format(DayFormat)
}

// Today resolves the current study-day from the wall clock.
func Today() string {
	return DayOf(time.Now())
}

// Parse validates a day string and returns midnight UTC of that day.
// Record timestamps are always stored at midnight UTC of their day
// string, independent of the study-day offset.
func Parse(day string) (time.Time, error) {
	t, err := time.ParseInLocation(DayFormat, day, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, day)
	}
	return t, nil
}

// MidnightUTC returns midnight UTC of the given day string.
func MidnightUTC(day string) (time.Time, error) {
	return Parse(day)
}

// AddDays returns the day string n calendar days after day. n may be
// negative.
func AddDays(day string, n int) (string, error) {
	t, err := Parse(day)
	if err != nil {
		return "", err
	}
	return t.AddDate(0, 0, n).Format(DayFormat), nil
}

// DaysStrictlyBetween enumerates the day strings after from and before
// to, exclusive of both endpoints. Returns an empty slice when the days
// are adjacent, equal, or reversed.
func DaysStrictlyBetween(from, to string) ([]string, error) {
	start, err := Parse(from)
	if err != nil {
		return nil, err
	}
	end, err := Parse(to)
	if err != nil {
		return nil, err
	}

	var days []string
	for d := start.AddDate(0, 0, 1); d.Before(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(DayFormat))
	}
	return days, nil
}

// Valid reports whether day parses as a study-day string.
func Valid(day string) bool {
	_, err := Parse(day)
	return err == nil
}
