package models

// CourseOffering represents a delivery-mode-specific variant of a course.
// Each offering carries its own working-day duration and fee.
type CourseOffering struct {
	ID           int64        `json:"id" db:"id"`
	CourseID     int64        `json:"courseId" db:"course_id"`
	DeliveryMode DeliveryMode `json:"deliveryMode" db:"delivery_mode"`
	Pace         CoursePace   `json:"pace" db:"pace"`
	DurationDays int          `json:"durationDays" db:"duration_days"` // working days
	Fee          float64      `json:"fee" db:"fee"`

	// Relations (populated when needed)
	Course *Course `json:"course,omitempty"`
}
