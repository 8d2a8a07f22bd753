package dto

import (
	"github.com/emre/trainhub/internal/app/models"
	"github.com/emre/trainhub/internal/pkg/workdays"
)

// CreateScheduleRequest schedules a new batch of an offering. The end date and
// status are computed server-side from the offering's working-day duration.
type CreateScheduleRequest struct {
	CourseOfferingID int64   `json:"courseOfferingId" binding:"required,min=1"`
	StartDate        string  `json:"startDate" binding:"required" example:"2025-09-01"` // YYYY-MM-DD
	Capacity         int     `json:"capacity" binding:"required,min=1"`
	Location         *string `json:"location,omitempty"`
}

// UpdateScheduleRequest moves or resizes a batch. A changed start date
// recomputes the end date and status.
type UpdateScheduleRequest struct {
	StartDate string  `json:"startDate" binding:"required" example:"2025-09-01"`
	Capacity  int     `json:"capacity" binding:"required,min=1"`
	Location  *string `json:"location,omitempty"`
}

// ScheduleResponse is a schedule together with the calculation that produced
// its end date
type ScheduleResponse struct {
	Schedule    *models.CourseSchedule `json:"schedule"`
	Calculation *workdays.Result       `json:"calculation,omitempty"`
}

// RefreshStatusesResponse reports a bulk status refresh
type RefreshStatusesResponse struct {
	Examined int `json:"examined"`
	Updated  int `json:"updated"`
}

// PreviewEndDateResponse is the calculator output for an ad-hoc preview
type PreviewEndDateResponse struct {
	StartDate   string           `json:"startDate"`
	WorkingDays int              `json:"workingDays"`
	Calculation *workdays.Result `json:"calculation"`
}
