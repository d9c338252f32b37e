package optimizer

import (
	"sort"

	"github.com/coursepilot/schedule-optimizer-api/internal/models"
)

// DefaultMaxCombinations bounds the result list when the caller does not ask
// for a specific size.
const DefaultMaxCombinations = 10

// Scheduler is the engine facade. It holds one immutable preference set for
// its lifetime; construct a fresh Scheduler to change preferences. All
// operations are pure computations over their inputs, safe for concurrent use
// across independent queries.
type Scheduler struct {
	prefs models.SchedulePreferences
}

// NewScheduler builds a facade around the given preferences.
func NewScheduler(prefs models.SchedulePreferences) *Scheduler {
	return &Scheduler{prefs: prefs}
}

// Preferences returns the active preference set.
func (s *Scheduler) Preferences() models.SchedulePreferences {
	return s.prefs
}

// AnalyzeSections scores every section against the preferences and returns
// them ordered by descending score. The sort is stable: ties preserve input
// order.
func (s *Scheduler) AnalyzeSections(sections []models.Section) []models.OptimizedSection {
	optimized := make([]models.OptimizedSection, 0, len(sections))
	for _, section := range sections {
		analysis := AnalyzeDays(section, s.prefs)
		optimized = append(optimized, models.OptimizedSection{
			Section:       section,
			DayAnalysis:   analysis,
			ScheduleScore: ScoreSection(section, analysis, s.prefs),
		})
	}
	sort.SliceStable(optimized, func(i, j int) bool {
		return optimized[i].ScheduleScore.Score > optimized[j].ScheduleScore.Score
	})
	return optimized
}

// FilterPreferredDaySections keeps sections whose meeting days line up with
// the preferred set. The predicate is deliberately permissive: a section
// passes on a perfect day match, on having no non-preferred days at all, or
// on meeting at least two preferred days with at most one off-pattern day.
func (s *Scheduler) FilterPreferredDaySections(sections []models.Section) []models.OptimizedSection {
	var kept []models.OptimizedSection
	for _, optimized := range s.AnalyzeSections(sections) {
		analysis := optimized.DayAnalysis
		if analysis.MatchesPreferredDays ||
			analysis.NonPreferredDayCount == 0 ||
			(analysis.PreferredDayCount >= 2 && analysis.NonPreferredDayCount <= 1) {
			kept = append(kept, optimized)
		}
	}
	return kept
}

// FindOptimalCombinations enumerates conflict-free section tuples (one
// section per course), evaluates each and returns the top maxCombinations by
// combination score. A non-positive maxCombinations falls back to
// DefaultMaxCombinations.
func (s *Scheduler) FindOptimalCombinations(coursesSections [][]models.Section, maxCombinations int) []models.ScheduleCombination {
	if maxCombinations <= 0 {
		maxCombinations = DefaultMaxCombinations
	}

	tuples := GenerateCombinations(coursesSections)
	combos := make([]models.ScheduleCombination, 0, len(tuples))
	for _, tuple := range tuples {
		combos = append(combos, EvaluateCombination(tuple, s.prefs))
	}

	sort.SliceStable(combos, func(i, j int) bool {
		return combos[i].Score > combos[j].Score
	})
	if len(combos) > maxCombinations {
		combos = combos[:maxCombinations]
	}
	return combos
}
