package util

import (
	"testing"
	"time"
)

func TestWeekStart(t *testing.T) {
	t.Parallel()

	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		in   time.Time
	}{
		{name: "monday itself", in: monday},
		{name: "monday afternoon", in: monday.Add(15 * time.Hour)},
		{name: "wednesday", in: time.Date(2024, 3, 6, 9, 30, 0, 0, time.UTC)},
		{name: "sunday", in: time.Date(2024, 3, 10, 23, 59, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := WeekStart(tt.in); !got.Equal(monday) {
				t.Fatalf("WeekStart(%s) = %s, want %s", tt.in, got, monday)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Parallel()

	got, err := ParseDate("2024-03-06")
	if err != nil {
		t.Fatalf("ParseDate returned error: %v", err)
	}
	if want := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC); !got.Equal(want) {
		t.Fatalf("ParseDate = %s, want %s", got, want)
	}

	if _, err := ParseDate("06/03/2024"); err == nil {
		t.Fatal("ParseDate accepted a malformed date")
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "sub-second", duration: 850 * time.Millisecond, expected: "850ms"},
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
