package dateparse

import (
	"testing"
	"time"
)

// Fixed reference time: Monday, 2026-03-02 12:00:00 UTC
var testNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

func wantTime(day, hour, min int) time.Time {
	return time.Date(2026, 3, day, hour, min, 0, 0, time.UTC)
}

func TestParse_ExactTimestamp(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2026-03-05T14:30", wantTime(5, 14, 30)},
		{"2026-03-05 14:30", wantTime(5, 14, 30)},
		{"2026-03-05T14:30:00Z", wantTime(5, 14, 30)},
		{"2026-03-05", wantTime(5, 9, 0)},
	}
	for _, tt := range tests {
		got, err := ParseFrom(tt.input, testNow)
		if err != nil {
			t.Errorf("ParseFrom(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseFrom(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParse_ClockTimes(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"14:30", wantTime(2, 14, 30)},  // later today
		{"09:00", wantTime(3, 9, 0)},    // already passed, rolls to tomorrow
		{"12:00", wantTime(3, 12, 0)},   // exactly now rolls to tomorrow
		{"3pm", wantTime(2, 15, 0)},     // later today
		{"9am", wantTime(3, 9, 0)},      // already passed
		{"9:15pm", wantTime(2, 21, 15)}, // later today
		{"12am", wantTime(3, 0, 0)},     // midnight is tomorrow
	}
	for _, tt := range tests {
		got, err := ParseFrom(tt.input, testNow)
		if err != nil {
			t.Errorf("ParseFrom(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseFrom(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParse_RelativeOffsets(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"+30m", testNow.Add(30 * time.Minute)},
		{"+2h", testNow.Add(2 * time.Hour)},
		{"+0h", testNow},
		{"+3d", testNow.AddDate(0, 0, 3)},
		{"+1w", testNow.AddDate(0, 0, 7)},
	}
	for _, tt := range tests {
		got, err := ParseFrom(tt.input, testNow)
		if err != nil {
			t.Errorf("ParseFrom(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseFrom(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParse_Keywords(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"now", testNow},
		{"today 18:00", wantTime(2, 18, 0)},
		{"tomorrow", wantTime(3, 9, 0)},
		{"tomorrow 14:30", wantTime(3, 14, 30)},
		{"Tomorrow 9am", wantTime(3, 9, 0)},
		{"friday", wantTime(6, 9, 0)},
		{"friday 16:00", wantTime(6, 16, 0)},
		{"monday", wantTime(9, 9, 0)}, // same weekday advances a full week
		{"next-week", wantTime(9, 9, 0)},
		{"next-week 8:30", wantTime(9, 8, 30)},
	}
	for _, tt := range tests {
		got, err := ParseFrom(tt.input, testNow)
		if err != nil {
			t.Errorf("ParseFrom(%q): unexpected error: %v", tt.input, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseFrom(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"   ",
		"garbage",
		"+5x",
		"25:00",
		"14:75",
		"13pm",
		"tomorrow 99:00",
		"tomorrow afternoon sometime",
	}
	for _, input := range inputs {
		if got, err := ParseFrom(input, testNow); err == nil {
			t.Errorf("ParseFrom(%q) = %v, want error", input, got)
		}
	}
}
