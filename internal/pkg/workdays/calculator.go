package workdays

import (
	"context"
	"fmt"
	"time"

	"github.com/emre/trainhub/internal/pkg/logger"
)

// Result describes a computed schedule end date.
type Result struct {
	EndDate            time.Time `json:"endDate"`
	TotalCalendarDays  int       `json:"totalCalendarDays"` // inclusive span between start and end
	WorkingDays        int       `json:"workingDays"`
	WeekendsSkipped    int       `json:"weekendsSkipped"`
	HolidaysSkipped    []Holiday `json:"holidaysSkipped"`
	HolidayDataMissing bool      `json:"holidayDataMissing"` // true when the holiday fetch failed and only weekends were skipped
}

// Calculator computes course end dates by walking forward over working days,
// skipping weekends and public holidays.
type Calculator struct {
	provider HolidayProvider
}

// NewCalculator creates a calculator backed by the given holiday provider.
func NewCalculator(provider HolidayProvider) *Calculator {
	return &Calculator{provider: provider}
}

// CalculateEndDate walks workingDays working days forward from start.
// The start date itself never counts as a working day, even on a weekday.
// A holiday fetch failure degrades to a weekend-only calculation and is
// reported through Result.HolidayDataMissing rather than as an error.
func (c *Calculator) CalculateEndDate(ctx context.Context, start time.Time, workingDays int) (*Result, error) {
	if workingDays < 1 {
		return nil, fmt.Errorf("working days must be at least 1, got %d", workingDays)
	}

	start = truncateToDay(start)

	// Fetch the start year and the following year so spans crossing a year
	// boundary still see January holidays.
	holidaySet := make(map[string]Holiday)
	dataMissing := false
	for _, year := range []int{start.Year(), start.Year() + 1} {
		holidays, err := c.provider.HolidaysForYear(ctx, year)
		if err != nil {
			logger.Warn().Err(err).Int("year", year).Msg("Holiday lookup failed, falling back to weekend-only calculation")
			dataMissing = true
			continue
		}
		for _, h := range holidays {
			holidaySet[h.Date] = h
		}
	}

	result := &Result{
		WorkingDays:        workingDays,
		HolidaysSkipped:    []Holiday{},
		HolidayDataMissing: dataMissing,
	}

	day := start
	counted := 0
	for counted < workingDays {
		day = day.AddDate(0, 0, 1)

		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			result.WeekendsSkipped++
			continue
		}
		if holiday, ok := holidaySet[day.Format("2006-01-02")]; ok {
			result.HolidaysSkipped = append(result.HolidaysSkipped, holiday)
			continue
		}
		counted++
	}

	result.EndDate = day
	result.TotalCalendarDays = int(day.Sub(start).Hours()/24) + 1

	return result, nil
}

// CountWorkingDays counts the working days strictly after start up to and
// including end, using the same weekend and holiday rules as CalculateEndDate.
func (c *Calculator) CountWorkingDays(ctx context.Context, start, end time.Time) (int, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if end.Before(start) {
		return 0, fmt.Errorf("end date %s is before start date %s", end.Format("2006-01-02"), start.Format("2006-01-02"))
	}

	holidaySet := make(map[string]Holiday)
	for _, year := range []int{start.Year(), end.Year()} {
		holidays, err := c.provider.HolidaysForYear(ctx, year)
		if err != nil {
			continue
		}
		for _, h := range holidays {
			holidaySet[h.Date] = h
		}
	}

	count := 0
	for day := start.AddDate(0, 0, 1); !day.After(end); day = day.AddDate(0, 0, 1) {
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		if _, ok := holidaySet[day.Format("2006-01-02")]; ok {
			continue
		}
		count++
	}
	return count, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
