package planner

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time local to a place. It carries no date and no
// timezone.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// Minutes returns the time as minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// String renders the time in 24-hour "HH:MM" form.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// HoursKind tags the outcome of parsing a single opening-hours entry.
type HoursKind int

const (
	// HoursUnrecognized indicates the entry text did not match any known shape.
	HoursUnrecognized HoursKind = iota
	// HoursClosed indicates the place is closed for the whole day.
	HoursClosed
	// HoursOpen24 indicates the place never closes that day.
	HoursOpen24
	// HoursRange indicates a single open-close range within one day.
	HoursRange
)

// HoursEntry is the parsed form of one weekly opening-hours line. Open and
// Close are meaningful only when Kind is HoursRange.
type HoursEntry struct {
	Kind  HoursKind
	Open  TimeOfDay
	Close TimeOfDay
}

// rangePattern matches "H:MM AM – H:MM PM" with an en-dash or hyphen separator
// and case-insensitive meridiems.
var rangePattern = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*([AP]M)\s*[–—-]\s*(\d{1,2}):(\d{2})\s*([AP]M)`)

// ParseEntry classifies one opening-hours line. The weekday prefix, when
// present, is ignored; only the body of the entry determines the result.
// Anything that cannot be classified comes back as HoursUnrecognized, which
// evaluation treats as open.
func ParseEntry(text string) HoursEntry {
	if strings.Contains(text, "Closed") {
		return HoursEntry{Kind: HoursClosed}
	}
	if strings.Contains(text, "Open 24 hours") {
		return HoursEntry{Kind: HoursOpen24}
	}

	match := rangePattern.FindStringSubmatch(text)
	if match == nil {
		return HoursEntry{Kind: HoursUnrecognized}
	}

	open, ok := toTimeOfDay(match[1], match[2], match[3])
	if !ok {
		return HoursEntry{Kind: HoursUnrecognized}
	}
	close, ok := toTimeOfDay(match[4], match[5], match[6])
	if !ok {
		return HoursEntry{Kind: HoursUnrecognized}
	}

	// Ranges crossing midnight are not representable; the close must not
	// precede the open within the same day.
	if close.Minutes() < open.Minutes() {
		return HoursEntry{Kind: HoursUnrecognized}
	}

	return HoursEntry{Kind: HoursRange, Open: open, Close: close}
}

// IsOpenAt reports whether a place is open on the given weekday, optionally at
// a specific wall-clock time. Missing or malformed data never yields a closed
// verdict: an empty entry list, an absent weekday line, or unparseable text all
// evaluate as open.
func IsOpenAt(entries []string, weekday time.Weekday, at *TimeOfDay) bool {
	entry, ok := entryForWeekday(entries, weekday)
	if !ok {
		return true
	}

	parsed := ParseEntry(entry)
	switch parsed.Kind {
	case HoursClosed:
		return false
	case HoursOpen24:
		return true
	case HoursRange:
		if at == nil {
			return true
		}
		proposed := at.Minutes()
		return parsed.Open.Minutes() <= proposed && proposed <= parsed.Close.Minutes()
	default:
		return true
	}
}

// DescribeConflict evaluates a proposed visit time against a place's hours and
// produces a warning message when the place appears to be closed. The second
// return value reports whether a warning was produced.
func DescribeConflict(placeName string, entries []string, weekday time.Weekday, at TimeOfDay) (string, bool) {
	if IsOpenAt(entries, weekday, &at) {
		return "", false
	}
	return fmt.Sprintf("%s appears to be closed at %s on %s", placeName, at, weekday), true
}

// ParseClock reads a 24-hour "HH:MM" string into a TimeOfDay.
func ParseClock(text string) (TimeOfDay, bool) {
	parts := strings.SplitN(text, ":", 2)
	if len(parts) != 2 {
		return TimeOfDay{}, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return TimeOfDay{}, false
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return TimeOfDay{}, false
	}
	return TimeOfDay{Hour: hour, Minute: minute}, true
}

// entryForWeekday finds the entry whose text starts with the weekday's full
// English name followed by a colon. Entry order is irrelevant.
func entryForWeekday(entries []string, weekday time.Weekday) (string, bool) {
	prefix := weekday.String() + ":"
	for _, entry := range entries {
		if strings.HasPrefix(entry, prefix) {
			return entry, true
		}
	}
	return "", false
}

// toTimeOfDay converts a 12-hour clock reading to a TimeOfDay. Hour 12 AM maps
// to 0, hour 12 PM stays 12, other PM hours gain 12.
func toTimeOfDay(hourText, minuteText, meridiem string) (TimeOfDay, bool) {
	hour, err := strconv.Atoi(hourText)
	if err != nil || hour < 1 || hour > 12 {
		return TimeOfDay{}, false
	}
	minute, err := strconv.Atoi(minuteText)
	if err != nil || minute < 0 || minute > 59 {
		return TimeOfDay{}, false
	}

	if strings.EqualFold(meridiem, "AM") {
		if hour == 12 {
			hour = 0
		}
	} else if hour != 12 {
		hour += 12
	}

	return TimeOfDay{Hour: hour, Minute: minute}, true
}
