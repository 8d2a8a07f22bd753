package dto

// CreateTrainerRequest creates a trainer record
type CreateTrainerRequest struct {
	FirstName      string  `json:"firstName" binding:"required"`
	LastName       string  `json:"lastName" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Phone          *string `json:"phone,omitempty"`
	Specialization *string `json:"specialization,omitempty"`
	Bio            *string `json:"bio,omitempty"`
}

// UpdateTrainerRequest updates a trainer record
type UpdateTrainerRequest struct {
	FirstName      string  `json:"firstName" binding:"required"`
	LastName       string  `json:"lastName" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Phone          *string `json:"phone,omitempty"`
	Specialization *string `json:"specialization,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	IsActive       *bool   `json:"isActive,omitempty"`
}
