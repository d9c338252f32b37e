package optimizer

import (
	"strings"

	"github.com/coursepilot/schedule-optimizer-api/internal/models"
)

// AnalyzeDays derives the day/time profile for a section: which days it
// meets, how many of those are preferred, and one TimeSlot per (day, meeting)
// pair. Meetings with a "TBA" time contribute their days but no usable slot
// interval.
func AnalyzeDays(section models.Section, prefs models.SchedulePreferences) models.DayAnalysis {
	seen := make(map[string]bool)
	var slots []models.TimeSlot

	for _, meeting := range section.Schedule {
		days := ParseDays(meeting.Days)
		timed := hasMeetingTime(meeting)
		parsed := ParseTimeRange(meeting.Time)

		for _, day := range days {
			seen[day] = true
			if !timed {
				continue
			}
			slots = append(slots, models.TimeSlot{
				Day:             day,
				StartTime:       parsed.Start,
				EndTime:         parsed.End,
				DurationMinutes: parsed.DurationMinutes,
			})
		}
	}

	analysis := models.DayAnalysis{TimeSlots: slots}
	for _, day := range weekOrder {
		if !seen[day] {
			continue
		}
		analysis.DaysOfWeek = append(analysis.DaysOfWeek, day)
		if prefs.IsPreferredDay(day) {
			analysis.PreferredDayCount++
		} else {
			analysis.NonPreferredDayCount++
		}
	}
	analysis.MatchesPreferredDays = analysis.NonPreferredDayCount == 0 && analysis.PreferredDayCount > 0

	return analysis
}

func hasMeetingTime(meeting models.Meeting) bool {
	trimmed := strings.TrimSpace(meeting.Time)
	return trimmed != "" && !strings.EqualFold(trimmed, "TBA")
}
