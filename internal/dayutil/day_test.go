package dayutil

import (
	"errors"
	"testing"
	"time"
)

func TestDayOf_TruncatesUnderOffset(t *testing.T) {
	tests := []struct {
		name string
		ts   time.Time
		want string
	}{
		{
			name: "midday UTC stays on same day",
			ts:   time.Date(2025, 10, 17, 12, 0, 0, 0, time.UTC),
			want: "2025-10-17",
		},
		{
			name: "late UTC evening rolls into next study-day",
			ts:   time.Date(2025, 10, 17, 19, 30, 0, 0, time.UTC),
			want: "2025-10-18",
		},
		{
			name: "exactly at rollover boundary",
			ts:   time.Date(2025, 10, 17, 18, 0, 0, 0, time.UTC),
			want: "2025-10-18",
		},
		{
			name: "non-UTC input is normalized first",
			ts:   time.Date(2025, 10, 17, 23, 0, 0, 0, time.FixedZone("X", 5*3600)),
			want: "2025-10-18",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayOf(tt.ts); got != tt.want {
				t.Errorf("DayOf(%v) = %q, want %q", tt.ts, got, tt.want)
			}
		})
	}
}

func TestParse_MidnightUTC(t *testing.T) {
	got, err := Parse("2025-10-17")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := time.Date(2025, 10, 17, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Parse = %v, want %v", got, want)
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, day := range []string{"", "17-10-2025", "2025-13-01", "yesterday"} {
		_, err := Parse(day)
		if !errors.Is(err, ErrInvalidDate) {
			t.Errorf("Parse(%q) err = %v, want ErrInvalidDate", day, err)
		}
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		day  string
		n    int
		want string
	}{
		{"2025-10-17", 1, "2025-10-18"},
		{"2025-10-17", -1, "2025-10-16"},
		{"2025-10-31", 1, "2025-11-01"},
		{"2024-02-28", 1, "2024-02-29"}, // leap year
		{"2025-10-17", 0, "2025-10-17"},
	}
	for _, tt := range tests {
		got, err := AddDays(tt.day, tt.n)
		if err != nil {
			t.Fatalf("AddDays(%q, %d): %v", tt.day, tt.n, err)
		}
		if got != tt.want {
			t.Errorf("AddDays(%q, %d) = %q, want %q", tt.day, tt.n, got, tt.want)
		}
	}
}

func TestDaysStrictlyBetween(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     []string
	}{
		{"adjacent days yield nothing", "2025-10-17", "2025-10-18", nil},
		{"one skipped day", "2025-10-16", "2025-10-18", []string{"2025-10-17"}},
		{
			"multiple skipped days",
			"2025-10-14", "2025-10-18",
			[]string{"2025-10-15", "2025-10-16", "2025-10-17"},
		},
		{"equal days yield nothing", "2025-10-17", "2025-10-17", nil},
		{"reversed days yield nothing", "2025-10-18", "2025-10-17", nil},
		{"month boundary", "2025-10-30", "2025-11-02", []string{"2025-10-31", "2025-11-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DaysStrictlyBetween(tt.from, tt.to)
			if err != nil {
				t.Fatalf("DaysStrictlyBetween: %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("day[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDaysStrictlyBetween_InvalidInput(t *testing.T) {
	if _, err := DaysStrictlyBetween("junk", "2025-10-18"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("err = %v, want ErrInvalidDate", err)
	}
	if _, err := DaysStrictlyBetween("2025-10-18", "junk"); !errors.Is(err, ErrInvalidDate) {
		t.Errorf("err = %v, want ErrInvalidDate", err)
	}
}
