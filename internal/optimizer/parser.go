// Package optimizer implements the schedule-optimization engine: parsing of
// catalog day/time text, per-section preference scoring, conflict detection
// and pruned combination search across courses.
package optimizer

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// weekOrder is the canonical ordering for day symbols in derived output.
var weekOrder = []string{"M", "T", "W", "R", "F"}

// specialDayRules are evaluated first, in order, against the cleaned text.
// "TR" must win before the generic scan because "T" and "R" also occur inside
// other tokens; first match takes the whole rule's day set.
var specialDayRules = []struct {
	pattern string
	days    []string
}{
	{"TR", []string{"T", "R"}},
	{"MWF", []string{"M", "W", "F"}},
}

// dayAbbreviations is the generic scan table: every pattern found in the
// cleaned text contributes its symbol.
var dayAbbreviations = []struct {
	pattern string
	day     string
}{
	{"M", "M"}, {"T", "T"}, {"W", "W"}, {"R", "R"}, {"F", "F"},
	{"MO", "M"}, {"TU", "T"}, {"WE", "W"}, {"TH", "R"}, {"FR", "F"},
	{"MON", "M"}, {"TUE", "T"}, {"WED", "W"}, {"THU", "R"}, {"FRI", "F"},
	{"MONDAY", "M"}, {"TUESDAY", "T"}, {"WEDNESDAY", "W"}, {"THURSDAY", "R"}, {"FRIDAY", "F"},
}

// ParseDays converts free-text day codes ("MWF", "TR", "Tu Th", "Monday")
// into day symbols in week order. "TBA" and unrecognised text yield an empty
// set; malformed input never errors.
func ParseDays(text string) []string {
	cleaned := strings.ToUpper(strings.TrimSpace(text))
	if cleaned == "" || cleaned == "TBA" {
		return nil
	}
	cleaned = strings.NewReplacer(" ", "", ",", "").Replace(cleaned)

	for _, rule := range specialDayRules {
		if strings.Contains(cleaned, rule.pattern) {
			return append([]string(nil), rule.days...)
		}
	}

	found := make(map[string]bool)
	for _, abbr := range dayAbbreviations {
		if strings.Contains(cleaned, abbr.pattern) {
			found[abbr.day] = true
		}
	}

	var days []string
	for _, day := range weekOrder {
		if found[day] {
			days = append(days, day)
		}
	}
	return days
}

// ParsedTimeRange is a normalized clock interval in 24-hour "HH:MM" notation.
type ParsedTimeRange struct {
	Start           string
	End             string
	DurationMinutes int
}

var timeRangePattern = regexp.MustCompile(`(?i)(\d{1,2}):(\d{2})\s*(AM|PM)?\s*(?:-|–|to)\s*(\d{1,2}):(\d{2})\s*(AM|PM)?`)

// ParseTimeRange normalizes a time-range string ("10:30-11:20",
// "2:00PM-3:50PM") to 24-hour times plus a duration. "TBA" or unparsable text
// yields a zero-duration slot at midnight rather than an error. An end time
// earlier than the start is treated as crossing midnight.
func ParseTimeRange(text string) ParsedTimeRange {
	zero := ParsedTimeRange{Start: "00:00", End: "00:00"}
	trimmed := strings.TrimSpace(text)
	if trimmed == "" || strings.EqualFold(trimmed, "TBA") {
		return zero
	}

	match := timeRangePattern.FindStringSubmatch(trimmed)
	if match == nil {
		return zero
	}

	startHour, _ := strconv.Atoi(match[1])
	startMin, _ := strconv.Atoi(match[2])
	endHour, _ := strconv.Atoi(match[4])
	endMin, _ := strconv.Atoi(match[5])

	startHour = to24Hour(startHour, match[3])
	endHour = to24Hour(endHour, match[6])

	start := startHour*60 + startMin
	end := endHour*60 + endMin
	duration := end - start
	if duration < 0 {
		duration += minutesPerDay
	}

	return ParsedTimeRange{
		Start:           formatMinutes(start),
		End:             formatMinutes(end),
		DurationMinutes: duration,
	}
}

// to24Hour applies an optional AM/PM marker: PM adds 12 hours except for
// 12 PM, AM maps 12 AM to hour 0.
func to24Hour(hour int, meridiem string) int {
	switch strings.ToUpper(meridiem) {
	case "PM":
		if hour != 12 {
			hour += 12
		}
	case "AM":
		if hour == 12 {
			hour = 0
		}
	}
	return hour
}

func formatMinutes(total int) string {
	total = ((total % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// minutesOfDay converts a normalized "HH:MM" string to minutes since
// midnight. Malformed values map to 0.
func minutesOfDay(clock string) int {
	parts := strings.SplitN(clock, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}
	return hours*60 + minutes
}
