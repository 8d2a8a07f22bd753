package models

import "time"

// Student defines a student record based on the 'students' table
type Student struct {
	ID           int64     `json:"id" db:"id"`
	EnrollmentNo string    `json:"enrollmentNo" db:"enrollment_no"` // unique institution-wide number
	FirstName    string    `json:"firstName" db:"first_name"`
	LastName     string    `json:"lastName" db:"last_name"`
	Email        string    `json:"email" db:"email"`
	Phone        *string   `json:"phone,omitempty" db:"phone"`
	DateOfBirth  *time.Time `json:"dateOfBirth,omitempty" db:"date_of_birth"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`

	// Relations (populated when needed)
	Address     *StudentAddress `json:"address,omitempty"`
	Enrollments []*Enrollment   `json:"enrollments,omitempty"`
}

// StudentAddress is the postal address stored alongside a student record
type StudentAddress struct {
	ID         int64   `json:"id" db:"id"`
	StudentID  int64   `json:"studentId" db:"student_id"`
	Line1      string  `json:"line1" db:"line1"`
	Line2      *string `json:"line2,omitempty" db:"line2"`
	City       string  `json:"city" db:"city"`
	PostalCode string  `json:"postalCode" db:"postal_code"`
	Country    string  `json:"country" db:"country"`
}
