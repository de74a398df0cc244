package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

// ClockTime is a wall-clock time with minute resolution, stored as minutes after midnight
type ClockTime int

var (
	DefaultOfficeStart = NewClockTime(9, 0)
	DefaultOfficeEnd   = NewClockTime(11, 0)
)

// Layouts accepted for office-hours boundaries, tried in order
var clockLayouts = []string{"15:04", "1504", "15", "3:04PM", "3PM"}

var legacyHoursPattern = regexp.MustCompile(`\d{1,2}(?::\d{2})?`)

// Compact times with a one-digit hour, such as "930"
var shortCompactPattern = regexp.MustCompile(`^\d{3}$`)

func NewClockTime(hour, minute int) ClockTime {
	return ClockTime(hour*minutesPerHour + minute)
}

func (clock ClockTime) Hour() int {
	return int(clock) / minutesPerHour
}

func (clock ClockTime) Minute() int {
	return int(clock) % minutesPerHour
}

// String formats the time as "HH:MM"
func (clock ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", clock.Hour(), clock.Minute())
}

// ParseClockTime parses 24-hour ("09:30", "0930", "930", "9") and 12-hour ("9:30am", "9PM") times.
// A dot is accepted as hour-minute separator.
func ParseClockTime(value string) (ClockTime, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty time of day")
	}
	if shortCompactPattern.MatchString(value) {
		value = "0" + value
	}

	candidates := lo.Uniq(lo.Compact([]string{
		value,
		strings.ReplaceAll(value, " ", ""),
		strings.ReplaceAll(value, ".", ":"),
	}))
	for _, candidate := range candidates {
		for _, layout := range clockLayouts {
			parsed, err := time.Parse(layout, strings.ToUpper(candidate))
			if err == nil {
				return NewClockTime(parsed.Hour(), parsed.Minute()), nil
			}
		}
	}
	return 0, fmt.Errorf("invalid time of day %q", value)
}

// parseClockTimeOr returns fallback when value is empty or cannot be parsed
func parseClockTimeOr(value string, fallback ClockTime) ClockTime {
	clock, err := ParseClockTime(value)
	if err != nil {
		return fallback
	}
	return clock
}

// SplitOfficeHours extracts both boundaries from a free-text range such as "9-11" or
// "09:00 - 11:30", returning them as "HH:MM". Empty strings are returned when the text
// does not hold two times.
func SplitOfficeHours(text string) (start string, end string) {
	parts := legacyHoursPattern.FindAllString(text, -1)
	if len(parts) < 2 {
		return "", ""
	}

	normalize := func(value string) string {
		hourText, minuteText, found := strings.Cut(value, ":")
		if !found {
			minuteText = "00"
		}
		hour, err := strconv.Atoi(hourText)
		if err != nil {
			return ""
		}
		minute, err := strconv.Atoi(minuteText)
		if err != nil {
			return ""
		}
		return NewClockTime(min(max(hour, 0), 23), min(max(minute, 0), 59)).String()
	}

	return normalize(parts[0]), normalize(parts[1])
}

// NormalizeOfficeHours turns an empty window into a one-hour window and swaps reversed boundaries
func NormalizeOfficeHours(start, end ClockTime) (ClockTime, ClockTime) {
	if start == end {
		return start, (start + minutesPerHour) % minutesPerDay
	} else if start > end {
		return end, start
	}
	return start, end
}
