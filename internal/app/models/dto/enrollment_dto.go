package dto

// CreateEnrollmentRequest enrolls a student into a scheduled batch
type CreateEnrollmentRequest struct {
	StudentID  int64 `json:"studentId" binding:"required,min=1"`
	ScheduleID int64 `json:"scheduleId" binding:"required,min=1"`
}
