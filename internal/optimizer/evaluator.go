package optimizer

import (
	"sort"

	"github.com/coursepilot/schedule-optimizer-api/internal/models"
)

const (
	preferredDayBonus  = 5
	compactWeekBonus   = 15
	conflictFreeBonus  = 10
	longDayHours       = 8.0
	wideGapMinutes     = 90.0
	compactWeekMaxDays = 3
)

// EvaluateCombination analyzes and scores every member section, derives
// whole-week metrics and produces improvement recommendations for one
// conflict-free tuple. The conflict detector runs once more as an invariant
// check even though the generator already pruned conflicting tuples.
func EvaluateCombination(sections []models.Section, prefs models.SchedulePreferences) models.ScheduleCombination {
	combo := models.ScheduleCombination{
		Sections:    make([]models.OptimizedSection, 0, len(sections)),
		HasConflict: HasConflict(sections),
	}

	var slots []models.TimeSlot
	daysUsed := make(map[string]bool)
	scoreSum := 0
	for _, section := range sections {
		analysis := AnalyzeDays(section, prefs)
		score := ScoreSection(section, analysis, prefs)
		combo.Sections = append(combo.Sections, models.OptimizedSection{
			Section:       section,
			DayAnalysis:   analysis,
			ScheduleScore: score,
		})
		scoreSum += score.Score
		slots = append(slots, analysis.TimeSlots...)
		for _, day := range analysis.DaysOfWeek {
			daysUsed[day] = true
		}
	}

	for _, day := range weekOrder {
		if daysUsed[day] {
			combo.DaysUsed = append(combo.DaysUsed, day)
		}
	}

	minutesByDay := make(map[string]int)
	totalMinutes := 0
	for _, slot := range slots {
		minutesByDay[slot.Day] += slot.DurationMinutes
		totalMinutes += slot.DurationMinutes
	}
	combo.TotalWeeklyHours = float64(totalMinutes) / 60
	combo.LongestDayHours, combo.ShortestDayHours = dayLoadExtremes(minutesByDay)
	combo.AverageGapMins = averageGap(slots)

	combo.Score = combinationScore(scoreSum, len(sections), combo, prefs)
	combo.Recommendations = buildRecommendations(combo, prefs)

	return combo
}

func combinationScore(memberSum, memberCount int, combo models.ScheduleCombination, prefs models.SchedulePreferences) float64 {
	var score float64
	if memberCount > 0 {
		score = float64(memberSum) / float64(memberCount)
	}
	for _, day := range combo.DaysUsed {
		if prefs.IsPreferredDay(day) {
			score += preferredDayBonus
		}
	}
	if len(combo.DaysUsed) <= compactWeekMaxDays {
		score += compactWeekBonus
	}
	if !combo.HasConflict {
		score += conflictFreeBonus
	}
	if score > 100 {
		score = 100
	}
	return score
}

// dayLoadExtremes returns the longest and shortest single-day load in hours,
// both 0 when no day carries any meeting time.
func dayLoadExtremes(minutesByDay map[string]int) (longest, shortest float64) {
	first := true
	for _, minutes := range minutesByDay {
		hours := float64(minutes) / 60
		if first {
			longest, shortest = hours, hours
			first = false
			continue
		}
		if hours > longest {
			longest = hours
		}
		if hours < shortest {
			shortest = hours
		}
	}
	return longest, shortest
}

// averageGap computes the mean positive gap in minutes between consecutive
// same-day meetings across the whole combination, 0 when no such gap exists.
func averageGap(slots []models.TimeSlot) float64 {
	byDay := make(map[string][]models.TimeSlot)
	for _, slot := range slots {
		byDay[slot.Day] = append(byDay[slot.Day], slot)
	}

	gapTotal := 0
	gapCount := 0
	for _, daySlots := range byDay {
		if len(daySlots) < 2 {
			continue
		}
		sort.Slice(daySlots, func(i, j int) bool {
			return minutesOfDay(daySlots[i].StartTime) < minutesOfDay(daySlots[j].StartTime)
		})
		for i := 1; i < len(daySlots); i++ {
			gap := minutesOfDay(daySlots[i].StartTime) - minutesOfDay(daySlots[i-1].EndTime)
			if gap > 0 {
				gapTotal += gap
				gapCount++
			}
		}
	}
	if gapCount == 0 {
		return 0
	}
	return float64(gapTotal) / float64(gapCount)
}

// buildRecommendations runs the independent improvement rules in a fixed
// order so consumers see a stable list.
func buildRecommendations(combo models.ScheduleCombination, prefs models.SchedulePreferences) []models.Recommendation {
	var recs []models.Recommendation

	for _, day := range combo.DaysUsed {
		if !prefs.IsPreferredDay(day) {
			recs = append(recs, models.Recommendation{
				Type:    models.DayRecommendation,
				Message: "Some classes meet on non-preferred days; look for alternative sections on your preferred days",
			})
			break
		}
	}
	if len(combo.DaysUsed) > compactWeekMaxDays {
		recs = append(recs, models.Recommendation{
			Type:    models.DayRecommendation,
			Message: "This schedule spreads over more than three days; fewer-day sections would compact your week",
		})
	}
	if combo.AverageGapMins > wideGapMinutes {
		recs = append(recs, models.Recommendation{
			Type:    models.GapRecommendation,
			Message: "Long waits between classes; sections meeting closer together would shorten your day",
		})
	}
	if combo.LongestDayHours > longDayHours {
		recs = append(recs, models.Recommendation{
			Type:    models.LoadRecommendation,
			Message: "One day carries a heavy class load; redistributing sections would balance the week",
		})
	}
	for _, section := range combo.Sections {
		if section.Seats == 0 && section.Waitlist > 0 {
			recs = append(recs, models.Recommendation{
				Type:    models.WaitlistRecommendation,
				Message: "At least one section is waitlisted; keep a backup section in mind",
			})
			break
		}
	}

	return recs
}
