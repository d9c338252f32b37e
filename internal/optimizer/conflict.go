package optimizer

import (
	"github.com/coursepilot/schedule-optimizer-api/internal/models"
)

// meetingInterval is a flattened (day, minutes) occurrence used for overlap
// checks.
type meetingInterval struct {
	day   string
	start int
	end   int
}

// flattenSections expands every meeting of every section into per-day minute
// intervals, skipping meetings whose time is still "TBA".
func flattenSections(sections []models.Section) []meetingInterval {
	var intervals []meetingInterval
	for _, section := range sections {
		for _, meeting := range section.Schedule {
			if !hasMeetingTime(meeting) {
				continue
			}
			parsed := ParseTimeRange(meeting.Time)
			if parsed.DurationMinutes == 0 {
				continue
			}
			start := minutesOfDay(parsed.Start)
			end := start + parsed.DurationMinutes
			for _, day := range ParseDays(meeting.Days) {
				intervals = append(intervals, meetingInterval{day: day, start: start, end: end})
			}
		}
	}
	return intervals
}

// intervalsOverlap applies the half-open overlap test: back-to-back meetings
// (one ending exactly when the other starts) do not conflict.
func intervalsOverlap(a, b meetingInterval) bool {
	return a.day == b.day && a.start < b.end && a.end > b.start
}

// HasConflict reports whether any two meetings across the given sections
// overlap on the same day. O(k^2) in the total meeting count, which stays
// small for realistic combinations.
func HasConflict(sections []models.Section) bool {
	intervals := flattenSections(sections)
	for i := 0; i < len(intervals); i++ {
		for j := i + 1; j < len(intervals); j++ {
			if intervalsOverlap(intervals[i], intervals[j]) {
				return true
			}
		}
	}
	return false
}

// SectionsConflict reports whether two individual sections collide. It is
// symmetric in its arguments.
func SectionsConflict(a, b models.Section) bool {
	return HasConflict([]models.Section{a, b})
}
