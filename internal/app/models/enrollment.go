package models

import "time"

// EnrollmentStatus is the lifecycle state of an enrollment
type EnrollmentStatus string

const (
	EnrollmentActive    EnrollmentStatus = "active"
	EnrollmentCancelled EnrollmentStatus = "cancelled"
	EnrollmentCompleted EnrollmentStatus = "completed"
)

// Enrollment links a student to a scheduled course batch
type Enrollment struct {
	ID         int64            `json:"id" db:"id"`
	StudentID  int64            `json:"studentId" db:"student_id"`
	ScheduleID int64            `json:"scheduleId" db:"schedule_id"`
	Status     EnrollmentStatus `json:"status" db:"status"`
	EnrolledAt time.Time        `json:"enrolledAt" db:"enrolled_at"`

	// Relations (populated when needed)
	Student  *Student        `json:"student,omitempty"`
	Schedule *CourseSchedule `json:"schedule,omitempty"`
}
