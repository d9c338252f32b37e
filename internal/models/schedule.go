package models

// TimeSlot is one parsed meeting occurrence: a day symbol plus a normalized
// 24-hour interval. Derived per query and never cached across preference
// changes.
type TimeSlot struct {
	Day             string `json:"day"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// DayAnalysis is the per-section day/time profile derived from its meetings.
// PreferredDayCount + NonPreferredDayCount always equals len(DaysOfWeek).
type DayAnalysis struct {
	DaysOfWeek           []string   `json:"daysOfWeek"`
	MatchesPreferredDays bool       `json:"matchesPreferredDays"`
	PreferredDayCount    int        `json:"preferredDayCount"`
	NonPreferredDayCount int        `json:"nonPreferredDayCount"`
	TimeSlots            []TimeSlot `json:"timeSlots"`
}

// ScheduleScore is a 0-100 match score with the reasons and warnings in the
// order the scoring rules fired.
type ScheduleScore struct {
	Score    int      `json:"score"`
	Reasons  []string `json:"reasons"`
	Warnings []string `json:"warnings"`
}

// OptimizedSection augments a catalog section with its derived analysis and
// score. Recomputed whenever the section or the preferences change.
type OptimizedSection struct {
	Section
	DayAnalysis   DayAnalysis   `json:"dayAnalysis"`
	ScheduleScore ScheduleScore `json:"scheduleScore"`
}

// RecommendationType tags a combination improvement suggestion so consumers
// can branch on the kind rather than the prose.
type RecommendationType string

const (
	DayRecommendation      RecommendationType = "DAY"
	GapRecommendation      RecommendationType = "GAP"
	LoadRecommendation     RecommendationType = "LOAD"
	WaitlistRecommendation RecommendationType = "WAITLIST"
)

// Recommendation is one improvement suggestion for a combination.
type Recommendation struct {
	Type    RecommendationType `json:"type"`
	Message string             `json:"message"`
}

// ScheduleCombination is one candidate full-week schedule: exactly one
// optimized section per requested course plus whole-week metrics. HasConflict
// must be false for any combination that reaches a caller.
type ScheduleCombination struct {
	ID               string             `json:"id"`
	Sections         []OptimizedSection `json:"sections"`
	Score            float64            `json:"score"`
	DaysUsed         []string           `json:"daysUsed"`
	TotalWeeklyHours float64            `json:"totalWeeklyHours"`
	LongestDayHours  float64            `json:"longestDayHours"`
	ShortestDayHours float64            `json:"shortestDayHours"`
	AverageGapMins   float64            `json:"averageGapMinutes"`
	HasConflict      bool               `json:"hasConflict"`
	Recommendations  []Recommendation   `json:"recommendations"`
}
