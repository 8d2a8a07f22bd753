package models

import "time"

// ScheduleStatus classifies a schedule relative to the current date
type ScheduleStatus string

const (
	ScheduleUpcoming  ScheduleStatus = "upcoming"
	ScheduleOngoing   ScheduleStatus = "ongoing"
	ScheduleCompleted ScheduleStatus = "completed"
)

// CourseSchedule represents one concrete scheduled batch of a course offering.
// EndDate and Status are derived, never user-supplied: EndDate is the result
// of walking the offering's duration in working days forward from StartDate.
type CourseSchedule struct {
	ID               int64          `json:"id" db:"id"`
	CourseID         int64          `json:"courseId" db:"course_id"`
	CourseOfferingID int64          `json:"courseOfferingId" db:"course_offering_id"`
	StartDate        time.Time      `json:"startDate" db:"start_date"`
	EndDate          time.Time      `json:"endDate" db:"end_date"`
	Status           ScheduleStatus `json:"status" db:"status"`
	Capacity         int            `json:"capacity" db:"capacity"`
	Location         *string        `json:"location,omitempty" db:"location"` // Nullable, empty for online batches
	CreatedAt        time.Time      `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time      `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Course   *Course         `json:"course,omitempty"`
	Offering *CourseOffering `json:"offering,omitempty"`
}

// DeriveScheduleStatus classifies a schedule as upcoming, ongoing or completed
// relative to now. Dates are compared at day granularity so a schedule is
// ongoing on both its start and end day regardless of time of day.
func DeriveScheduleStatus(startDate, endDate, now time.Time) ScheduleStatus {
	today := truncateToDay(now)
	start := truncateToDay(startDate)
	end := truncateToDay(endDate)

	switch {
	case today.Before(start):
		return ScheduleUpcoming
	case today.After(end):
		return ScheduleCompleted
	default:
		return ScheduleOngoing
	}
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
