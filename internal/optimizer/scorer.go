package optimizer

import (
	"fmt"
	"sort"

	"github.com/coursepilot/schedule-optimizer-api/internal/models"
)

const (
	dayMatchMax       = 40
	timeFitRawMax     = 30
	timeFitMax        = 20
	compactnessMax    = 20
	defaultCompactGap = 60
)

// ScoreSection computes the 0-100 preference match score for one section.
// The four stages always run in the same order and append their reasons and
// warnings as they fire, so output ordering is reproducible.
func ScoreSection(section models.Section, analysis models.DayAnalysis, prefs models.SchedulePreferences) models.ScheduleScore {
	score := models.ScheduleScore{}

	score.Score += scoreDayMatch(analysis, &score)
	if prefs.HasTimePreferences() {
		score.Score += scoreTimeFit(analysis.TimeSlots, prefs, &score)
	}
	score.Score += scoreCompactness(analysis, prefs)
	score.Score += scoreAvailability(section, &score)

	if score.Score > 100 {
		score.Score = 100
	}
	if score.Score < 0 {
		score.Score = 0
	}
	return score
}

func scoreDayMatch(analysis models.DayAnalysis, score *models.ScheduleScore) int {
	switch {
	case analysis.MatchesPreferredDays:
		score.Reasons = append(score.Reasons, "Perfect match: meets only on preferred days")
		return dayMatchMax
	case analysis.PreferredDayCount >= 2:
		score.Reasons = append(score.Reasons, "Meets mostly on preferred days")
		score.Warnings = append(score.Warnings, fmt.Sprintf("Meets on %d non-preferred day(s)", analysis.NonPreferredDayCount))
		return 25
	case analysis.PreferredDayCount == 1:
		score.Warnings = append(score.Warnings, "Only one meeting day is preferred")
		return 10
	default:
		score.Warnings = append(score.Warnings, "No meeting days match the preferred days")
		return 0
	}
}

// scoreTimeFit accumulates up to 5 points per slot per check into a raw
// total capped at 30, then scales the result down to the 20-point stage
// maximum.
func scoreTimeFit(slots []models.TimeSlot, prefs models.SchedulePreferences, score *models.ScheduleScore) int {
	raw := 0
	for _, slot := range slots {
		start := minutesOfDay(slot.StartTime)
		end := minutesOfDay(slot.EndTime)

		if prefs.EarliestStart != "" {
			if start >= minutesOfDay(prefs.EarliestStart) {
				raw += 5
			} else {
				score.Warnings = append(score.Warnings, fmt.Sprintf("Starts before %s on %s", prefs.EarliestStart, slot.Day))
			}
		}
		if prefs.LatestEnd != "" {
			if end <= minutesOfDay(prefs.LatestEnd) {
				raw += 5
			} else {
				score.Warnings = append(score.Warnings, fmt.Sprintf("Ends after %s on %s", prefs.LatestEnd, slot.Day))
			}
		}
		if len(prefs.AvoidRanges) > 0 {
			if overlapped, avoided := overlapsAvoidRange(start, end, prefs.AvoidRanges); overlapped {
				score.Warnings = append(score.Warnings, fmt.Sprintf("Overlaps avoided time %s-%s on %s", avoided.Start, avoided.End, slot.Day))
			} else {
				raw += 5
			}
		}
	}

	if raw > timeFitRawMax {
		raw = timeFitRawMax
	}
	points := raw * timeFitMax / timeFitRawMax
	if points > timeFitMax {
		points = timeFitMax
	}
	return points
}

func overlapsAvoidRange(start, end int, avoid []models.TimeRange) (bool, models.TimeRange) {
	for _, r := range avoid {
		if start < minutesOfDay(r.End) && end > minutesOfDay(r.Start) {
			return true, r
		}
	}
	return false, models.TimeRange{}
}

func scoreCompactness(analysis models.DayAnalysis, prefs models.SchedulePreferences) int {
	bonus := 0
	switch days := len(analysis.DaysOfWeek); {
	case days <= 3:
		bonus = 15
	case days == 4:
		bonus = 8
	}

	maxGap := prefs.MaxGapMinutes
	if maxGap <= 0 {
		maxGap = defaultCompactGap
	}
	if gapsWithin(analysis.TimeSlots, maxGap) {
		bonus += 5
	}
	if bonus > compactnessMax {
		bonus = compactnessMax
	}
	return bonus
}

// gapsWithin reports whether no day with two or more meetings has a gap
// between consecutive meetings exceeding maxGap minutes.
func gapsWithin(slots []models.TimeSlot, maxGap int) bool {
	byDay := make(map[string][]models.TimeSlot)
	for _, slot := range slots {
		byDay[slot.Day] = append(byDay[slot.Day], slot)
	}
	for _, daySlots := range byDay {
		if len(daySlots) < 2 {
			continue
		}
		sort.Slice(daySlots, func(i, j int) bool {
			return minutesOfDay(daySlots[i].StartTime) < minutesOfDay(daySlots[j].StartTime)
		})
		for i := 1; i < len(daySlots); i++ {
			gap := minutesOfDay(daySlots[i].StartTime) - minutesOfDay(daySlots[i-1].EndTime)
			if gap > maxGap {
				return false
			}
		}
	}
	return true
}

func scoreAvailability(section models.Section, score *models.ScheduleScore) int {
	switch {
	case section.Seats > 0:
		score.Reasons = append(score.Reasons, "Open seats available")
		return 10
	case section.Waitlist > 0:
		score.Warnings = append(score.Warnings, "Section is waitlisted")
		return 5
	default:
		score.Warnings = append(score.Warnings, "No open seats or waitlist spots")
		return 0
	}
}
