// Package onset normalizes the free-form date and time strings found in line
// lists into canonical ISO dates, HH:MM clock times and wall-clock instants.
package onset

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout is the canonical date representation.
	DateLayout = "2006-01-02"
	// TimeLayout is the canonical clock time representation.
	TimeLayout = "15:04"
	// DefaultTime is used when a case has a date but no usable time.
	// Noon keeps the case centred in its day for day-or-larger bins.
	DefaultTime = "12:00"
)

var (
	isoDate   = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
	usDate    = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})$`)
	clockTime = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2}))?$`)
	amPmTime  = regexp.MustCompile(`(?i)^(\d{1,2}):?(\d{2})?\s*(am|pm)$`)
)

// fallbackLayouts are tried in order once the ISO and US patterns fail.
// Numeric slash dates are month first; dotted dates are day first.
var fallbackLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006/01/02",
	"2006/1/2",
	"2.1.2006",
	"1/2/06",
	"1/2/2006 15:04",
	"1/2/2006 15:04:05",
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"January 2, 2006",
	"Mon Jan 2 2006",
	"Mon, 02 Jan 2006",
	"2 Jan 2006",
	"2 January 2006",
	"02-Jan-2006",
	"02-Jan-06",
	"01-02-06",
}

// NormalizeDate converts text to a YYYY-MM-DD date. Ambiguous numeric dates
// such as 03/04/2024 are always read month first.
func NormalizeDate(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}

	if m := isoDate.FindStringSubmatch(text); m != nil {
		return civilDate(m[1], m[2], m[3])
	}
	if m := usDate.FindStringSubmatch(text); m != nil {
		return civilDate(m[3], m[1], m[2])
	}

	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t.Format(DateLayout), true
		}
	}
	return "", false
}

// civilDate validates the parts against the calendar and formats them.
func civilDate(year, month, day string) (string, bool) {
	y, _ := strconv.Atoi(year)
	m, _ := strconv.Atoi(month)
	d, _ := strconv.Atoi(day)
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return "", false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		// Rolled over, e.g. Feb 30.
		return "", false
	}
	return t.Format(DateLayout), true
}

// NormalizeTime converts text to a 24-hour HH:MM clock time. It accepts
// H:MM, HH:MM:SS and 12-hour forms like "2pm" or "11:45 AM".
func NormalizeTime(text string) (string, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", false
	}

	if m := clockTime.FindStringSubmatch(text); m != nil {
		h, _ := strconv.Atoi(m[1])
		mm, _ := strconv.Atoi(m[2])
		if h > 23 || mm > 59 {
			return "", false
		}
		if m[3] != "" {
			if s, _ := strconv.Atoi(m[3]); s > 59 {
				return "", false
			}
		}
		return clock(h, mm), true
	}

	if m := amPmTime.FindStringSubmatch(text); m != nil {
		h, _ := strconv.Atoi(m[1])
		mm := 0
		if m[2] != "" {
			mm, _ = strconv.Atoi(m[2])
		}
		if h < 1 || h > 12 || mm > 59 {
			return "", false
		}
		pm := strings.EqualFold(m[3], "pm")
		switch {
		case pm && h != 12:
			h += 12
		case !pm && h == 12:
			h = 0
		}
		return clock(h, mm), true
	}

	return "", false
}

func clock(h, m int) string {
	return fmt.Sprintf("%02d:%02d", h, m)
}

// Combine joins a date and an optional time into a single wall-clock instant.
// The instant carries the UTC location but is never converted: 08:00 in the
// data is 08:00 in the result. An empty or unparseable time falls back to
// DefaultTime. The boolean is false when the date does not normalize.
func Combine(date, clockText string) (time.Time, bool) {
	d, ok := NormalizeDate(date)
	if !ok {
		return time.Time{}, false
	}
	c, ok := NormalizeTime(clockText)
	if !ok {
		c = DefaultTime
	}
	t, err := time.Parse(DateLayout+" "+TimeLayout, d+" "+c)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// MustParse is Combine for trusted literals such as examples and tests.
func MustParse(date, clockText string) time.Time {
	t, ok := Combine(date, clockText)
	if !ok {
		panic(fmt.Sprintf("onset: cannot parse %q %q", date, clockText))
	}
	return t
}
