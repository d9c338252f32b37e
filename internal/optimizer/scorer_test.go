package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursepilot/schedule-optimizer-api/internal/models"
)

func scoreFixture(t *testing.T, section models.Section, prefs models.SchedulePreferences) models.ScheduleScore {
	t.Helper()
	return ScoreSection(section, AnalyzeDays(section, prefs), prefs)
}

func TestScoreSectionAlwaysWithinBounds(t *testing.T) {
	prefs := models.DefaultSchedulePreferences()
	sections := []models.Section{
		sectionFixture("A", "01", 10, 0, models.Meeting{Days: "TR", Time: "10:00-11:20"}),
		sectionFixture("B", "01", 0, 0, models.Meeting{Days: "MTWRF", Time: "07:00-07:50"}),
		sectionFixture("C", "01", 0, 3, models.Meeting{Days: "TBA", Time: "TBA"}),
	}
	for _, section := range sections {
		score := scoreFixture(t, section, prefs)
		assert.GreaterOrEqual(t, score.Score, 0)
		assert.LessOrEqual(t, score.Score, 100)
	}
}

func TestScoreSectionPerfectDayMatch(t *testing.T) {
	prefs := models.DefaultSchedulePreferences()
	section := sectionFixture("A", "01", 5, 0, models.Meeting{Days: "TR", Time: "10:00-11:20"})

	score := scoreFixture(t, section, prefs)

	// 40 day match + 20 time fit + 20 compactness + 10 availability.
	assert.Equal(t, 90, score.Score)
	require.NotEmpty(t, score.Reasons)
	assert.Equal(t, "Perfect match: meets only on preferred days", score.Reasons[0])
	assert.Empty(t, score.Warnings)
}

func TestScoreSectionSinglePreferredDay(t *testing.T) {
	prefs := models.DefaultSchedulePreferences()
	section := sectionFixture("A", "01", 5, 0, models.Meeting{Days: "MWF", Time: "09:00-09:50"})

	score := scoreFixture(t, section, prefs)

	// 10 day match + 20 time fit + 20 compactness + 10 availability.
	assert.Equal(t, 60, score.Score)
	assert.Contains(t, score.Warnings, "Only one meeting day is preferred")
}

func TestScoreSectionRanksPreferredPatternFirst(t *testing.T) {
	prefs := models.DefaultSchedulePreferences()
	mwf := scoreFixture(t, sectionFixture("A", "01", 5, 0, models.Meeting{Days: "MWF", Time: "09:00-09:50"}), prefs)
	tr := scoreFixture(t, sectionFixture("B", "01", 5, 0, models.Meeting{Days: "TR", Time: "10:00-11:20"}), prefs)

	assert.Greater(t, tr.Score, mwf.Score)
}

func TestScoreSectionTimeFitWarnings(t *testing.T) {
	prefs := models.DefaultSchedulePreferences()
	early := sectionFixture("A", "01", 5, 0, models.Meeting{Days: "T", Time: "07:00-07:50"})
	late := sectionFixture("B", "01", 5, 0, models.Meeting{Days: "T", Time: "17:30-19:00"})
	lunch := sectionFixture("C", "01", 5, 0, models.Meeting{Days: "T", Time: "12:30-13:20"})

	assert.Contains(t, scoreFixture(t, early, prefs).Warnings, "Starts before 08:00 on T")
	assert.Contains(t, scoreFixture(t, late, prefs).Warnings, "Ends after 18:00 on T")
	assert.Contains(t, scoreFixture(t, lunch, prefs).Warnings, "Overlaps avoided time 12:00-13:00 on T")
}

func TestScoreSectionTimeFitSkippedWithoutTimePreferences(t *testing.T) {
	prefs := models.SchedulePreferences{PreferredDays: []string{"M", "T", "R"}}
	section := sectionFixture("A", "01", 5, 0, models.Meeting{Days: "T", Time: "07:00-07:50"})

	score := scoreFixture(t, section, prefs)

	// 40 day match + 20 compactness + 10 availability; no time stage, no
	// time warnings.
	assert.Equal(t, 70, score.Score)
	for _, warning := range score.Warnings {
		assert.NotContains(t, warning, "Starts before")
	}
}

func TestScoreSectionCompactnessDayBuckets(t *testing.T) {
	prefs := models.SchedulePreferences{PreferredDays: []string{"M", "T", "W", "R", "F"}}

	fourDays := sectionFixture("A", "01", 5, 0, models.Meeting{Days: "M T W R", Time: "09:00-09:50"})
	fiveDays := sectionFixture("B", "01", 5, 0, models.Meeting{Days: "MTWRF", Time: "09:00-09:50"})

	// Both get 40 day match + 10 availability + 5 gap bonus; the four-day
	// pattern adds 8 where the five-day pattern adds 0.
	assert.Equal(t, 63, scoreFixture(t, fourDays, prefs).Score)
	assert.Equal(t, 55, scoreFixture(t, fiveDays, prefs).Score)
}

func TestScoreSectionGapBonusRespectsMaxGap(t *testing.T) {
	prefs := models.SchedulePreferences{PreferredDays: []string{"M"}, MaxGapMinutes: 30}
	tight := sectionFixture("A", "01", 5, 0,
		models.Meeting{Days: "M", Time: "09:00-09:50"},
		models.Meeting{Days: "M", Time: "10:00-10:50"})
	loose := sectionFixture("B", "01", 5, 0,
		models.Meeting{Days: "M", Time: "09:00-09:50"},
		models.Meeting{Days: "M", Time: "13:00-13:50"})

	// 40 + 15 + gap bonus + 10.
	assert.Equal(t, 70, scoreFixture(t, tight, prefs).Score)
	assert.Equal(t, 65, scoreFixture(t, loose, prefs).Score)
}

func TestScoreSectionAvailability(t *testing.T) {
	prefs := models.SchedulePreferences{PreferredDays: []string{"T", "R"}}
	open := sectionFixture("A", "01", 3, 0, models.Meeting{Days: "TR", Time: "10:00-11:20"})
	waitlisted := sectionFixture("B", "01", 0, 4, models.Meeting{Days: "TR", Time: "10:00-11:20"})
	full := sectionFixture("C", "01", 0, 0, models.Meeting{Days: "TR", Time: "10:00-11:20"})

	openScore := scoreFixture(t, open, prefs)
	waitScore := scoreFixture(t, waitlisted, prefs)
	fullScore := scoreFixture(t, full, prefs)

	assert.Equal(t, openScore.Score-5, waitScore.Score)
	assert.Equal(t, openScore.Score-10, fullScore.Score)
	assert.Contains(t, waitScore.Warnings, "Section is waitlisted")
	assert.Contains(t, fullScore.Warnings, "No open seats or waitlist spots")
}

func TestScoreSectionWarningOrderIsStable(t *testing.T) {
	prefs := models.DefaultSchedulePreferences()
	section := sectionFixture("A", "01", 0, 2, models.Meeting{Days: "WF", Time: "07:00-07:50"})

	score := scoreFixture(t, section, prefs)

	require.Len(t, score.Warnings, 4)
	assert.Equal(t, "No meeting days match the preferred days", score.Warnings[0])
	assert.Equal(t, "Starts before 08:00 on W", score.Warnings[1])
	assert.Equal(t, "Starts before 08:00 on F", score.Warnings[2])
	assert.Equal(t, "Section is waitlisted", score.Warnings[3])
}
