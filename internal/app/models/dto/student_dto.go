package dto

// AddressRequest is the postal address submitted with a student
type AddressRequest struct {
	Line1      string  `json:"line1" binding:"required"`
	Line2      *string `json:"line2,omitempty"`
	City       string  `json:"city" binding:"required"`
	PostalCode string  `json:"postalCode" binding:"required"`
	Country    string  `json:"country" binding:"required"`
}

// CreateStudentRequest creates a student record, its address and an optional
// initial enrollment in a single transaction
type CreateStudentRequest struct {
	EnrollmentNo string          `json:"enrollmentNo" binding:"required"`
	FirstName    string          `json:"firstName" binding:"required"`
	LastName     string          `json:"lastName" binding:"required"`
	Email        string          `json:"email" binding:"required,email"`
	Phone        *string         `json:"phone,omitempty"`
	DateOfBirth  *string         `json:"dateOfBirth,omitempty" example:"2001-05-14"` // YYYY-MM-DD
	Address      *AddressRequest `json:"address" binding:"required"`
	ScheduleID   *int64          `json:"scheduleId,omitempty"` // optional initial enrollment
}

// UpdateStudentRequest updates a student header and address
type UpdateStudentRequest struct {
	FirstName   string          `json:"firstName" binding:"required"`
	LastName    string          `json:"lastName" binding:"required"`
	Email       string          `json:"email" binding:"required,email"`
	Phone       *string         `json:"phone,omitempty"`
	DateOfBirth *string         `json:"dateOfBirth,omitempty"`
	Address     *AddressRequest `json:"address,omitempty"`
}
