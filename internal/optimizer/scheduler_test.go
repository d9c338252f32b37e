package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coursepilot/schedule-optimizer-api/internal/models"
)

func TestSchedulerAnalyzeSectionsRanksDescending(t *testing.T) {
	sched := NewScheduler(models.DefaultSchedulePreferences())
	sections := []models.Section{
		sectionFixture("A", "01", 5, 0, models.Meeting{Days: "MWF", Time: "09:00-09:50"}),
		sectionFixture("B", "01", 5, 0, models.Meeting{Days: "TR", Time: "10:00-11:20"}),
	}

	ranked := sched.AnalyzeSections(sections)

	require.Len(t, ranked, 2)
	assert.Equal(t, "B-01", ranked[0].ID)
	assert.Equal(t, "A-01", ranked[1].ID)
	assert.GreaterOrEqual(t, ranked[0].ScheduleScore.Score, ranked[1].ScheduleScore.Score)
}

func TestSchedulerAnalyzeSectionsStableOnTies(t *testing.T) {
	sched := NewScheduler(models.DefaultSchedulePreferences())
	// Identical meeting patterns score identically; input order must hold.
	sections := []models.Section{
		sectionFixture("A", "01", 5, 0, models.Meeting{Days: "TR", Time: "10:00-11:20"}),
		sectionFixture("A", "02", 5, 0, models.Meeting{Days: "TR", Time: "10:00-11:20"}),
		sectionFixture("A", "03", 5, 0, models.Meeting{Days: "TR", Time: "10:00-11:20"}),
	}

	ranked := sched.AnalyzeSections(sections)

	require.Len(t, ranked, 3)
	assert.Equal(t, "A-01", ranked[0].ID)
	assert.Equal(t, "A-02", ranked[1].ID)
	assert.Equal(t, "A-03", ranked[2].ID)
}

func TestSchedulerFilterPreferredDaySections(t *testing.T) {
	sched := NewScheduler(models.DefaultSchedulePreferences()) // preferred M, T, R

	onPattern := sectionFixture("A", "01", 5, 0,
		models.Meeting{Days: "M", Time: "09:00-09:50"},
		models.Meeting{Days: "TR", Time: "10:00-11:20"})
	oneOff := sectionFixture("B", "01", 5, 0,
		models.Meeting{Days: "M", Time: "09:00-09:50"},
		models.Meeting{Days: "TR", Time: "10:00-11:20"},
		models.Meeting{Days: "F", Time: "13:00-13:50"})
	offPattern := sectionFixture("C", "01", 5, 0, models.Meeting{Days: "WF", Time: "09:00-09:50"})

	kept := sched.FilterPreferredDaySections([]models.Section{onPattern, oneOff, offPattern})

	ids := make([]string, 0, len(kept))
	for _, section := range kept {
		ids = append(ids, section.ID)
	}
	// M/T/R matches perfectly; M/T/R/F passes the two-preferred-one-off
	// clause; W/F fails every clause.
	assert.ElementsMatch(t, []string{"A-01", "B-01"}, ids)
}

func TestSchedulerFindOptimalCombinationsConflictFree(t *testing.T) {
	sched := NewScheduler(models.DefaultSchedulePreferences())
	courses := [][]models.Section{
		{
			sectionFixture("A", "01", 5, 0, models.Meeting{Days: "MWF", Time: "09:00-09:50"}),
			sectionFixture("A", "02", 5, 0, models.Meeting{Days: "TR", Time: "09:00-10:20"}),
		},
		{
			sectionFixture("B", "01", 5, 0, models.Meeting{Days: "MWF", Time: "09:30-10:20"}),
			sectionFixture("B", "02", 5, 0, models.Meeting{Days: "TR", Time: "10:30-11:50"}),
		},
	}

	combos := sched.FindOptimalCombinations(courses, 0)

	require.NotEmpty(t, combos)
	for _, combo := range combos {
		assert.False(t, combo.HasConflict)
		sections := make([]models.Section, 0, len(combo.Sections))
		for _, member := range combo.Sections {
			sections = append(sections, member.Section)
		}
		assert.False(t, HasConflict(sections))
	}
}

func TestSchedulerFindOptimalCombinationsSingleCourse(t *testing.T) {
	sched := NewScheduler(models.DefaultSchedulePreferences())
	candidates := []models.Section{
		sectionFixture("A", "01", 5, 0, models.Meeting{Days: "MWF", Time: "09:00-09:50"}),
		sectionFixture("A", "02", 5, 0, models.Meeting{Days: "TR", Time: "10:00-11:20"}),
		sectionFixture("A", "03", 5, 0, models.Meeting{Days: "WF", Time: "14:00-15:15"}),
	}

	combos := sched.FindOptimalCombinations([][]models.Section{candidates}, 10)

	require.Len(t, combos, 3)
	// Ordered by combination score: the TR singleton dominates.
	assert.Equal(t, "A-02", combos[0].Sections[0].ID)
	for _, combo := range combos {
		require.Len(t, combo.Sections, 1)
	}
}

func TestSchedulerFindOptimalCombinationsHonorsLimit(t *testing.T) {
	sched := NewScheduler(models.DefaultSchedulePreferences())
	var candidates []models.Section
	times := []string{"08:00-08:50", "09:00-09:50", "10:00-10:50", "11:00-11:50"}
	for i, tm := range times {
		candidates = append(candidates, sectionFixture("A", string(rune('1'+i)), 5, 0, models.Meeting{Days: "T", Time: tm}))
	}

	combos := sched.FindOptimalCombinations([][]models.Section{candidates}, 2)

	assert.Len(t, combos, 2)
}

func TestSchedulerFindOptimalCombinationsEmptyInput(t *testing.T) {
	sched := NewScheduler(models.DefaultSchedulePreferences())

	assert.Empty(t, sched.FindOptimalCombinations(nil, 5))
}
