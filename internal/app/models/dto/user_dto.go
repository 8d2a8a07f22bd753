package dto

import "github.com/emre/trainhub/internal/app/models"

// CreateUserRequest creates a console account with an explicit password
type CreateUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Role      string `json:"role" binding:"required,oneof=ADMIN STAFF"`
}

// InviteUserRequest creates a console account with a generated temporary
// password that is emailed to the new user
type InviteUserRequest struct {
	Email     string `json:"email" binding:"required,email"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Role      string `json:"role" binding:"required,oneof=ADMIN STAFF"`
}

// UpdateUserRequest updates mutable account fields
type UpdateUserRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Role      *string `json:"role,omitempty" binding:"omitempty,oneof=ADMIN STAFF"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

// InviteUserResponse reports the outcome of an invitation, including whether
// the welcome email could be delivered
type InviteUserResponse struct {
	User      *models.User `json:"user"`
	EmailSent bool         `json:"emailSent"`
}
