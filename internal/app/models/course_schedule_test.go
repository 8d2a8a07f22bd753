package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestDeriveScheduleStatus(t *testing.T) {
	start := day(2025, time.March, 10)
	end := day(2025, time.March, 21)

	testCases := []struct {
		name     string
		now      time.Time
		expected ScheduleStatus
	}{
		{"well before start", day(2025, time.February, 1), ScheduleUpcoming},
		{"day before start", day(2025, time.March, 9), ScheduleUpcoming},
		{"on start day", start, ScheduleOngoing},
		{"between start and end", day(2025, time.March, 15), ScheduleOngoing},
		{"on end day", end, ScheduleOngoing},
		{"day after end", day(2025, time.March, 22), ScheduleCompleted},
		{"well after end", day(2025, time.June, 1), ScheduleCompleted},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DeriveScheduleStatus(start, end, tc.now))
		})
	}
}

func TestDeriveScheduleStatus_TimeOfDayIgnored(t *testing.T) {
	start := day(2025, time.March, 10)
	end := day(2025, time.March, 21)

	// Late evening on the end day is still ongoing; early morning the day
	// after is completed. No boundary flapping within a day.
	lateOnEndDay := time.Date(2025, time.March, 21, 23, 59, 0, 0, time.UTC)
	earlyAfterEnd := time.Date(2025, time.March, 22, 0, 1, 0, 0, time.UTC)

	assert.Equal(t, ScheduleOngoing, DeriveScheduleStatus(start, end, lateOnEndDay))
	assert.Equal(t, ScheduleCompleted, DeriveScheduleStatus(start, end, earlyAfterEnd))
}

func TestDeriveScheduleStatus_TotalAndExclusive(t *testing.T) {
	start := day(2025, time.March, 10)
	end := day(2025, time.March, 21)

	// Every day in a window spanning the schedule maps to exactly one status.
	for d := day(2025, time.March, 1); !d.After(day(2025, time.March, 31)); d = d.AddDate(0, 0, 1) {
		status := DeriveScheduleStatus(start, end, d)
		assert.Contains(t, []ScheduleStatus{ScheduleUpcoming, ScheduleOngoing, ScheduleCompleted}, status)

		// Idempotent: deriving again yields the same classification.
		assert.Equal(t, status, DeriveScheduleStatus(start, end, d))
	}
}
