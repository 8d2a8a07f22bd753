package workdays

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProvider serves a fixed holiday set and can be told to fail.
type fakeProvider struct {
	holidays map[int][]Holiday
	err      error
	calls    int
}

func (f *fakeProvider) HolidaysForYear(_ context.Context, year int) ([]Holiday, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.holidays[year], nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateEndDate_SkipsWeekend(t *testing.T) {
	// 2025-06-06 is a Friday; one working day later is Monday 2025-06-09.
	calc := NewCalculator(&fakeProvider{})

	result, err := calc.CalculateEndDate(context.Background(), date(2025, time.June, 6), 1)
	require.NoError(t, err)

	assert.Equal(t, date(2025, time.June, 9), result.EndDate)
	assert.Equal(t, 2, result.WeekendsSkipped)
	assert.Empty(t, result.HolidaysSkipped)
	assert.Equal(t, 4, result.TotalCalendarDays) // Fri..Mon inclusive
}

func TestCalculateEndDate_StartDateNeverCounts(t *testing.T) {
	// Start on a Monday with 1 working day: the Monday itself must not count,
	// so the end date is Tuesday.
	calc := NewCalculator(&fakeProvider{})

	result, err := calc.CalculateEndDate(context.Background(), date(2025, time.June, 9), 1)
	require.NoError(t, err)

	assert.Equal(t, date(2025, time.June, 10), result.EndDate)
}

func TestCalculateEndDate_SkipsHolidayAndAdjoiningWeekend(t *testing.T) {
	// 2025-04-18 is Good Friday in Germany; starting Thursday 2025-04-17 with
	// one working day must skip the holiday Friday, the weekend, and Easter
	// Monday 2025-04-21, landing on Tuesday 2025-04-22.
	provider := &fakeProvider{holidays: map[int][]Holiday{
		2025: {
			{Date: "2025-04-18", LocalName: "Karfreitag", Name: "Good Friday"},
			{Date: "2025-04-21", LocalName: "Ostermontag", Name: "Easter Monday"},
		},
	}}
	calc := NewCalculator(provider)

	result, err := calc.CalculateEndDate(context.Background(), date(2025, time.April, 17), 1)
	require.NoError(t, err)

	assert.Equal(t, date(2025, time.April, 22), result.EndDate)
	assert.Equal(t, 2, result.WeekendsSkipped)
	require.Len(t, result.HolidaysSkipped, 2)
	assert.Equal(t, "Good Friday", result.HolidaysSkipped[0].Name)
	assert.Equal(t, "Easter Monday", result.HolidaysSkipped[1].Name)
}

func TestCalculateEndDate_NeverLandsOnWeekendOrHoliday(t *testing.T) {
	provider := &fakeProvider{holidays: map[int][]Holiday{
		2025: {
			{Date: "2025-12-25", Name: "Christmas Day"},
			{Date: "2025-12-26", Name: "Boxing Day"},
		},
		2026: {
			{Date: "2026-01-01", Name: "New Year's Day"},
		},
	}}
	calc := NewCalculator(provider)

	holidaySet := map[string]bool{
		"2025-12-25": true,
		"2025-12-26": true,
		"2026-01-01": true,
	}

	start := date(2025, time.December, 19)
	for workingDays := 1; workingDays <= 15; workingDays++ {
		result, err := calc.CalculateEndDate(context.Background(), start, workingDays)
		require.NoError(t, err)

		wd := result.EndDate.Weekday()
		assert.NotEqual(t, time.Saturday, wd, "workingDays=%d", workingDays)
		assert.NotEqual(t, time.Sunday, wd, "workingDays=%d", workingDays)
		assert.False(t, holidaySet[result.EndDate.Format("2006-01-02")], "workingDays=%d landed on holiday", workingDays)
	}
}

func TestCalculateEndDate_RoundTrip(t *testing.T) {
	// Counting the working days between start and the computed end date must
	// reproduce the requested count exactly.
	provider := &fakeProvider{holidays: map[int][]Holiday{
		2025: {
			{Date: "2025-05-01", Name: "Labour Day"},
			{Date: "2025-05-29", Name: "Ascension Day"},
		},
	}}
	calc := NewCalculator(provider)

	start := date(2025, time.April, 28)
	for _, workingDays := range []int{1, 3, 5, 10, 22, 60} {
		result, err := calc.CalculateEndDate(context.Background(), start, workingDays)
		require.NoError(t, err)

		counted, err := calc.CountWorkingDays(context.Background(), start, result.EndDate)
		require.NoError(t, err)
		assert.Equal(t, workingDays, counted, "workingDays=%d", workingDays)
	}
}

func TestCalculateEndDate_CrossesYearBoundary(t *testing.T) {
	provider := &fakeProvider{holidays: map[int][]Holiday{
		2025: {{Date: "2025-12-25", Name: "Christmas Day"}},
		2026: {{Date: "2026-01-01", Name: "New Year's Day"}},
	}}
	calc := NewCalculator(provider)

	// Wednesday 2025-12-31 + 1 working day: Thursday 2026-01-01 is a holiday,
	// so the end date is Friday 2026-01-02.
	result, err := calc.CalculateEndDate(context.Background(), date(2025, time.December, 31), 1)
	require.NoError(t, err)

	assert.Equal(t, date(2026, time.January, 2), result.EndDate)
	require.Len(t, result.HolidaysSkipped, 1)
	assert.Equal(t, "New Year's Day", result.HolidaysSkipped[0].Name)
}

func TestCalculateEndDate_ProviderFailureFallsBackToWeekendsOnly(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection refused")}
	calc := NewCalculator(provider)

	result, err := calc.CalculateEndDate(context.Background(), date(2025, time.June, 6), 1)
	require.NoError(t, err, "holiday fetch failure must not abort the calculation")

	assert.True(t, result.HolidayDataMissing)
	assert.Equal(t, date(2025, time.June, 9), result.EndDate)
	assert.Empty(t, result.HolidaysSkipped)
}

func TestCalculateEndDate_RejectsNonPositiveWorkingDays(t *testing.T) {
	calc := NewCalculator(&fakeProvider{})

	_, err := calc.CalculateEndDate(context.Background(), date(2025, time.June, 6), 0)
	assert.Error(t, err)

	_, err = calc.CalculateEndDate(context.Background(), date(2025, time.June, 6), -3)
	assert.Error(t, err)
}

func TestCachedProvider_FetchesEachYearOnce(t *testing.T) {
	inner := &fakeProvider{holidays: map[int][]Holiday{
		2025: {{Date: "2025-01-01", Name: "New Year's Day"}},
	}}
	cached := NewCachedProvider(inner)

	for i := 0; i < 3; i++ {
		holidays, err := cached.HolidaysForYear(context.Background(), 2025)
		require.NoError(t, err)
		assert.Len(t, holidays, 1)
	}

	assert.Equal(t, 1, inner.calls)
}

func TestCachedProvider_DoesNotCacheFailures(t *testing.T) {
	inner := &fakeProvider{err: errors.New("boom")}
	cached := NewCachedProvider(inner)

	_, err := cached.HolidaysForYear(context.Background(), 2025)
	require.Error(t, err)

	// Recover the backing provider and retry: the failure must not be cached.
	inner.err = nil
	inner.holidays = map[int][]Holiday{2025: {{Date: "2025-01-01", Name: "New Year's Day"}}}

	holidays, err := cached.HolidaysForYear(context.Background(), 2025)
	require.NoError(t, err)
	assert.Len(t, holidays, 1)
	assert.Equal(t, 2, inner.calls)
}
