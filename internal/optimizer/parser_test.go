package optimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDaysKnownPatterns(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"tuesday thursday code", "TR", []string{"T", "R"}},
		{"monday wednesday friday code", "MWF", []string{"M", "W", "F"}},
		{"spaced letters", "M W F", []string{"M", "W", "F"}},
		{"full day name", "Monday", []string{"M"}},
		{"two letter tokens", "Tu Th", []string{"T", "R"}},
		{"comma separated", "M,W", []string{"M", "W"}},
		{"all weekdays", "MTWRF", []string{"M", "T", "W", "R", "F"}},
		{"tba", "TBA", nil},
		{"empty", "", nil},
		{"garbage", "zzz", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ParseDays(tc.input))
		})
	}
}

func TestParseDaysSpecialRulesWinBeforeGenericScan(t *testing.T) {
	// "TR" inside a longer string still resolves as the two-day code.
	assert.Equal(t, []string{"T", "R"}, ParseDays("TR lecture"))
}

func TestParseTimeRange24Hour(t *testing.T) {
	parsed := ParseTimeRange("10:30-11:20")
	assert.Equal(t, "10:30", parsed.Start)
	assert.Equal(t, "11:20", parsed.End)
	assert.Equal(t, 50, parsed.DurationMinutes)
}

func TestParseTimeRange12Hour(t *testing.T) {
	parsed := ParseTimeRange("2:00PM-3:50PM")
	assert.Equal(t, "14:00", parsed.Start)
	assert.Equal(t, "15:50", parsed.End)
	assert.Equal(t, 110, parsed.DurationMinutes)
}

func TestParseTimeRangeNoonAndMidnight(t *testing.T) {
	noon := ParseTimeRange("12:00PM-1:00PM")
	assert.Equal(t, "12:00", noon.Start)
	assert.Equal(t, "13:00", noon.End)

	midnight := ParseTimeRange("12:00AM-1:00AM")
	assert.Equal(t, "00:00", midnight.Start)
	assert.Equal(t, "01:00", midnight.End)
}

func TestParseTimeRangeOvernightWrap(t *testing.T) {
	parsed := ParseTimeRange("11:00PM-12:30AM")
	require.Equal(t, "23:00", parsed.Start)
	require.Equal(t, "00:30", parsed.End)
	assert.Equal(t, 90, parsed.DurationMinutes)
}

func TestParseTimeRangeUnparsableNeverErrors(t *testing.T) {
	for _, input := range []string{"TBA", "", "sometime", "10-11"} {
		parsed := ParseTimeRange(input)
		assert.Equal(t, "00:00", parsed.Start, "input %q", input)
		assert.Equal(t, "00:00", parsed.End, "input %q", input)
		assert.Zero(t, parsed.DurationMinutes, "input %q", input)
	}
}

func TestMinutesOfDay(t *testing.T) {
	assert.Equal(t, 0, minutesOfDay("00:00"))
	assert.Equal(t, 630, minutesOfDay("10:30"))
	assert.Equal(t, 0, minutesOfDay("bogus"))
}
