package dto

import (
	"github.com/coursepilot/schedule-optimizer-api/internal/models"
)

// TimeRangePayload is a closed clock range in "HH:MM" notation.
type TimeRangePayload struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

// PreferencesPayload carries the caller's scheduling preferences. Every field
// is optional; omitted fields fall back to the service defaults.
type PreferencesPayload struct {
	PreferredDays []string           `json:"preferred_days" validate:"omitempty,dive,oneof=M T W R F"`
	EarliestStart string             `json:"earliest_start" validate:"omitempty"`
	LatestEnd     string             `json:"latest_end" validate:"omitempty"`
	AvoidRanges   []TimeRangePayload `json:"avoid_ranges" validate:"omitempty,dive"`
	MaxGapMinutes *int               `json:"max_gap_minutes" validate:"omitempty,min=0,max=720"`
	PreferCompact *bool              `json:"prefer_compact"`
}

// AnalyzeSectionsRequest scores a flat list of candidate sections.
type AnalyzeSectionsRequest struct {
	Sections    []models.Section    `json:"sections" validate:"required,min=1,dive"`
	Preferences *PreferencesPayload `json:"preferences"`
}

// AnalyzeSectionsResponse returns scored sections, best first.
type AnalyzeSectionsResponse struct {
	Sections []models.OptimizedSection `json:"sections"`
}

// FilterSectionsRequest keeps only sections acceptable on day-preference
// grounds.
type FilterSectionsRequest struct {
	Sections    []models.Section    `json:"sections" validate:"required,min=1,dive"`
	Preferences *PreferencesPayload `json:"preferences"`
}

// FilterSectionsResponse returns the surviving sections with their analysis.
type FilterSectionsResponse struct {
	Sections []models.OptimizedSection `json:"sections"`
}

// CourseSections groups the candidate sections of one course.
type CourseSections struct {
	CourseCode string           `json:"course_code" validate:"required"`
	Sections   []models.Section `json:"sections" validate:"required,min=1,dive"`
}

// CombinationsRequest asks for conflict-free schedule combinations across
// courses. MaxCombinations caps the ranked result list, not the search.
type CombinationsRequest struct {
	Courses         []CourseSections    `json:"courses" validate:"required,min=1,dive"`
	Preferences     *PreferencesPayload `json:"preferences"`
	MaxCombinations int                 `json:"max_combinations" validate:"omitempty,min=1,max=50"`
}

// CombinationsResponse returns ranked combinations, best first.
type CombinationsResponse struct {
	Combinations []models.ScheduleCombination `json:"combinations"`
	Evaluated    int                          `json:"evaluated"`
}

// ExportScheduleRequest renders one chosen combination as a downloadable
// timetable.
type ExportScheduleRequest struct {
	Format      string              `json:"format" validate:"required,oneof=csv pdf"`
	Title       string              `json:"title" validate:"omitempty,max=120"`
	Sections    []models.Section    `json:"sections" validate:"required,min=1,dive"`
	Preferences *PreferencesPayload `json:"preferences"`
}
