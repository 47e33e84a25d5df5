package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 19, 30, 0, 0, time.UTC)
}

func TestGenerateOccurrencesDaily(t *testing.T) {
	start := date(2026, time.March, 2)
	got, err := GenerateOccurrences(start, RecurrenceConfig{
		Frequency:      FrequencyDaily,
		MaxOccurrences: 5,
	})
	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.Equal(t, start, got[0])
	assert.Equal(t, start.AddDate(0, 0, 4), got[4])
}

func TestGenerateOccurrencesWeeklyInterval(t *testing.T) {
	start := date(2026, time.March, 2) // a Monday
	got, err := GenerateOccurrences(start, RecurrenceConfig{
		Frequency:      FrequencyWeekly,
		Interval:       2,
		MaxOccurrences: 3,
	})
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, start.AddDate(0, 0, 14), got[1])
	assert.Equal(t, start.AddDate(0, 0, 28), got[2])
}

func TestGenerateOccurrencesMonthlyEndDate(t *testing.T) {
	start := date(2026, time.January, 15)
	end := date(2026, time.April, 15)
	got, err := GenerateOccurrences(start, RecurrenceConfig{
		Frequency: FrequencyMonthly,
		EndDate:   &end,
	})
	require.NoError(t, err)
	// Jan, Feb, Mar, Apr 15th — May is past the end date.
	require.Len(t, got, 4)
	assert.Equal(t, end, got[3])
}

func TestGenerateOccurrencesCustomWeekdays(t *testing.T) {
	start := date(2026, time.March, 2) // Monday
	got, err := GenerateOccurrences(start, RecurrenceConfig{
		Frequency:      FrequencyCustom,
		DaysOfWeek:     []int{3, 6}, // Wednesday and Saturday
		MaxOccurrences: 4,
	})
	require.NoError(t, err)
	require.Len(t, got, 4)
	for _, occ := range got {
		assert.Contains(t, []time.Weekday{time.Wednesday, time.Saturday}, occ.Weekday())
	}
	// Monday start is not in the weekday set, so it is skipped.
	assert.Equal(t, date(2026, time.March, 4), got[0])
}

func TestGenerateOccurrencesCustomRequiresWeekdays(t *testing.T) {
	_, err := GenerateOccurrences(date(2026, time.March, 2), RecurrenceConfig{
		Frequency: FrequencyCustom,
	})
	assert.Error(t, err)
}

func TestGenerateOccurrencesCapped(t *testing.T) {
	got, err := GenerateOccurrences(date(2026, time.January, 1), RecurrenceConfig{
		Frequency:      FrequencyDaily,
		MaxOccurrences: 500,
	})
	require.NoError(t, err)
	assert.Len(t, got, MaxOccurrences)
}

func TestGenerateOccurrencesUnknownFrequency(t *testing.T) {
	_, err := GenerateOccurrences(date(2026, time.January, 1), RecurrenceConfig{Frequency: "YEARLY"})
	assert.Error(t, err)
}
