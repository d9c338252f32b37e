package models

// TimeRange is a clock interval in 24-hour "HH:MM" notation.
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// SchedulePreferences captures what the student wants a weekly timetable to
// look like. A value is immutable for the lifetime of one query; callers build
// a fresh instance to change anything. Optional fields disable their scoring
// stage when left empty/zero.
type SchedulePreferences struct {
	PreferredDays []string    `json:"preferredDays"`
	EarliestStart string      `json:"earliestStart,omitempty"`
	LatestEnd     string      `json:"latestEnd,omitempty"`
	AvoidRanges   []TimeRange `json:"avoidRanges,omitempty"`
	MaxGapMinutes int         `json:"maxGapMinutes,omitempty"`
	PreferCompact bool        `json:"preferCompact"`
}

// DefaultSchedulePreferences biases toward a Monday/Tuesday/Thursday week with
// business-hours classes and a protected lunch break.
func DefaultSchedulePreferences() SchedulePreferences {
	return SchedulePreferences{
		PreferredDays: []string{"M", "T", "R"},
		EarliestStart: "08:00",
		LatestEnd:     "18:00",
		AvoidRanges:   []TimeRange{{Start: "12:00", End: "13:00"}},
		MaxGapMinutes: 90,
		PreferCompact: true,
	}
}

// IsPreferredDay reports whether day is in the preferred set.
func (p SchedulePreferences) IsPreferredDay(day string) bool {
	for _, d := range p.PreferredDays {
		if d == day {
			return true
		}
	}
	return false
}

// HasTimePreferences reports whether any time-based scoring input is set.
func (p SchedulePreferences) HasTimePreferences() bool {
	return p.EarliestStart != "" || p.LatestEnd != "" || len(p.AvoidRanges) > 0
}
