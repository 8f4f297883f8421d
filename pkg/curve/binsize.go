package curve

import (
	"fmt"
	"strings"
	"time"
)

// BinSize is the width of one curve interval.
type BinSize string

const (
	Hour       BinSize = "hour"
	SixHour    BinSize = "6hour"
	TwelveHour BinSize = "12hour"
	Day        BinSize = "day"
	WeekCDC    BinSize = "week-cdc" // weeks start Sunday
	WeekISO    BinSize = "week-iso" // weeks start Monday
)

// BinSizes lists every supported width, narrowest first.
var BinSizes = []BinSize{Hour, SixHour, TwelveHour, Day, WeekCDC, WeekISO}

var binSizeNames = map[BinSize]string{
	Hour:       "Hourly",
	SixHour:    "6-hour",
	TwelveHour: "12-hour",
	Day:        "Daily",
	WeekCDC:    "Weekly (CDC)",
	WeekISO:    "Weekly (ISO)",
}

// ParseBinSize reads a bin size case-insensitively. Unknown text returns Day
// and false.
func ParseBinSize(s string) (BinSize, bool) {
	b := BinSize(strings.ToLower(strings.TrimSpace(s)))
	if b.Valid() {
		return b, true
	}
	return Day, false
}

// Valid reports whether b is one of BinSizes.
func (b BinSize) Valid() bool {
	_, ok := binSizeNames[b]
	return ok
}

// Name is the human-readable name of b.
func (b BinSize) Name() string {
	if n, ok := binSizeNames[b]; ok {
		return n
	}
	return string(b)
}

func (b BinSize) hours() int {
	switch b {
	case Hour:
		return 1
	case SixHour:
		return 6
	case TwelveHour:
		return 12
	}
	return 0
}

// Floor returns the start of the interval containing t. Hour widths align to
// multiples of the width within the day, days to midnight and weeks to
// midnight of their first day.
func (b BinSize) Floor(t time.Time) time.Time {
	y, m, d := t.Date()
	if h := b.hours(); h > 0 {
		return time.Date(y, m, d, t.Hour()-t.Hour()%h, 0, 0, 0, t.Location())
	}
	midnight := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	switch b {
	case WeekCDC:
		return midnight.AddDate(0, 0, -int(t.Weekday()))
	case WeekISO:
		return midnight.AddDate(0, 0, -(int(t.Weekday())+6)%7)
	}
	return midnight
}

// Add moves t forward by n intervals.
func (b BinSize) Add(t time.Time, n int) time.Time {
	if h := b.hours(); h > 0 {
		return t.Add(time.Duration(n*h) * time.Hour)
	}
	switch b {
	case WeekCDC, WeekISO:
		return t.AddDate(0, 0, 7*n)
	}
	return t.AddDate(0, 0, n)
}

// Label is the axis label of the interval starting at t.
func Label(b BinSize, t time.Time) string {
	switch b {
	case Hour, SixHour, TwelveHour:
		return t.Format("Jan 02 15:04")
	case WeekCDC, WeekISO:
		return fmt.Sprintf("Wk %02d", mondayWeek(t))
	}
	return t.Format("Jan 02")
}

// mondayWeek is the week of the year counting Monday as the first day of the
// week; days before the year's first Monday are in week 0.
func mondayWeek(t time.Time) int {
	yday := t.YearDay() - 1
	wday := (int(t.Weekday()) + 6) % 7
	return (yday + 7 - wday) / 7
}

// SuggestBinSize picks a width of roughly a quarter of the shortest
// incubation period.
func SuggestBinSize(minIncubationHours float64) BinSize {
	quarter := minIncubationHours / 4
	switch {
	case quarter <= 1:
		return Hour
	case quarter <= 6:
		return SixHour
	case quarter <= 12:
		return TwelveHour
	case quarter <= 24:
		return Day
	}
	return WeekCDC
}
