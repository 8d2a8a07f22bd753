package models

// UserRole defines the console account role
type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleStaff UserRole = "STAFF"
)

// DeliveryMode is how an offering is delivered
type DeliveryMode string

const (
	DeliveryOnline   DeliveryMode = "online"
	DeliveryInPerson DeliveryMode = "in_person"
)

// CoursePace is the intensity of an offering
type CoursePace string

const (
	PaceFullTime CoursePace = "full_time"
	PacePartTime CoursePace = "part_time"
)

// ValidDeliveryMode reports whether the given value is a known delivery mode
func ValidDeliveryMode(m DeliveryMode) bool {
	return m == DeliveryOnline || m == DeliveryInPerson
}

// ValidCoursePace reports whether the given value is a known pace
func ValidCoursePace(p CoursePace) bool {
	return p == PaceFullTime || p == PacePartTime
}
