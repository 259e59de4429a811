// Package dateparse provides utilities for parsing relative and absolute
// date/time strings into concrete due times.
package dateparse

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// defaultHour is the time of day used when the input names a date but no
// clock time ("tomorrow", "friday", "2026-03-01").
const defaultHour = 9

// Parse parses a due-time input string using the current time as the
// reference point.
//
// Supported formats:
//   - Exact timestamps: "2026-03-01T14:30", "2026-03-01 14:30", RFC 3339
//   - Bare dates: "2026-03-01" (due at 09:00 that day)
//   - Clock times: "14:30", "9am", "9:15pm" (today, or tomorrow if already past)
//   - Relative offsets: "+30m", "+2h", "+3d", "+1w"
//   - Keywords: "today", "tomorrow", "next-week", day names — each with an
//     optional clock time ("tomorrow 14:30", "friday 9am")
func Parse(input string) (time.Time, error) {
	return ParseFrom(input, time.Now())
}

// ParseFrom parses a due-time input string relative to the given reference
// time. This variant enables deterministic testing with a fixed "now".
func ParseFrom(input string, now time.Time) (time.Time, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return time.Time{}, fmt.Errorf("empty due time")
	}

	// Exact timestamp layouts first. These are case-sensitive, so parse the
	// raw input before lowercasing for the keyword paths.
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04",
		"2006-01-02 15:04",
	}
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, raw, now.Location()); err == nil {
			return t, nil
		}
	}

	// Bare date: due at the default hour that day.
	if t, err := time.ParseInLocation("2006-01-02", raw, now.Location()); err == nil {
		return t.Add(defaultHour * time.Hour), nil
	}

	in := strings.ToLower(raw)

	// Relative offsets: +Nm, +Nh, +Nd, +Nw
	if strings.HasPrefix(in, "+") && len(in) >= 3 {
		suffix := in[len(in)-1]
		numStr := in[1 : len(in)-1]
		n, err := strconv.Atoi(numStr)
		if err == nil && n >= 0 {
			switch suffix {
			case 'm':
				return now.Add(time.Duration(n) * time.Minute), nil
			case 'h':
				return now.Add(time.Duration(n) * time.Hour), nil
			case 'd':
				return now.AddDate(0, 0, n), nil
			case 'w':
				return now.AddDate(0, 0, n*7), nil
			default:
				return time.Time{}, fmt.Errorf("unknown relative unit %q in %q (use m, h, d, or w)", string(suffix), raw)
			}
		}
	}

	// Bare clock time: today at that time, or tomorrow if it already passed.
	if h, m, ok := parseClock(in); ok {
		t := at(now, 0, h, m)
		if !t.After(now) {
			t = t.AddDate(0, 0, 1)
		}
		return t, nil
	}

	// Keyword or day name, optionally followed by a clock time.
	fields := strings.Fields(in)
	if len(fields) > 2 {
		return time.Time{}, fmt.Errorf("unrecognized due time: %q", raw)
	}

	hour, min := defaultHour, 0
	if len(fields) == 2 {
		h, m, ok := parseClock(fields[1])
		if !ok {
			return time.Time{}, fmt.Errorf("unrecognized time of day: %q", fields[1])
		}
		hour, min = h, m
	}

	if in == "now" {
		return now, nil
	}

	switch fields[0] {
	case "today":
		return at(now, 0, hour, min), nil
	case "tomorrow":
		return at(now, 1, hour, min), nil
	case "next-week":
		// Next Monday
		daysUntilMonday := (int(time.Monday) - int(now.Weekday()) + 7) % 7
		if daysUntilMonday == 0 {
			daysUntilMonday = 7
		}
		return at(now, daysUntilMonday, hour, min), nil
	}

	// Day names: next occurrence of that weekday
	dayMap := map[string]time.Weekday{
		"sunday":    time.Sunday,
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
	}
	if target, ok := dayMap[fields[0]]; ok {
		daysAhead := (int(target) - int(now.Weekday()) + 7) % 7
		if daysAhead == 0 {
			daysAhead = 7 // always advance to next occurrence
		}
		return at(now, daysAhead, hour, min), nil
	}

	return time.Time{}, fmt.Errorf("unrecognized due time: %q", raw)
}

// at returns now shifted by days, at the given wall-clock time.
func at(now time.Time, days, hour, min int) time.Time {
	year, month, day := now.AddDate(0, 0, days).Date()
	return time.Date(year, month, day, hour, min, 0, 0, now.Location())
}

// parseClock parses "15:04", "9am", "9:15pm" style clock times.
func parseClock(s string) (hour, min int, ok bool) {
	meridiem := ""
	if strings.HasSuffix(s, "am") || strings.HasSuffix(s, "pm") {
		meridiem = s[len(s)-2:]
		s = s[:len(s)-2]
	}
	if s == "" {
		return 0, 0, false
	}

	hourStr, minStr := s, "0"
	if idx := strings.Index(s, ":"); idx >= 0 {
		hourStr, minStr = s[:idx], s[idx+1:]
	} else if meridiem == "" {
		// A bare number without am/pm is ambiguous; require a colon.
		return 0, 0, false
	}

	h, err := strconv.Atoi(hourStr)
	if err != nil {
		return 0, 0, false
	}
	m, err := strconv.Atoi(minStr)
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}

	switch meridiem {
	case "am":
		if h < 1 || h > 12 {
			return 0, 0, false
		}
		if h == 12 {
			h = 0
		}
	case "pm":
		if h < 1 || h > 12 {
			return 0, 0, false
		}
		if h != 12 {
			h += 12
		}
	default:
		if h < 0 || h > 23 {
			return 0, 0, false
		}
	}

	return h, m, true
}
