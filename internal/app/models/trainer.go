package models

import "time"

// Trainer defines a trainer record based on the 'trainers' table
type Trainer struct {
	ID             int64     `json:"id" db:"id"`
	FirstName      string    `json:"firstName" db:"first_name"`
	LastName       string    `json:"lastName" db:"last_name"`
	Email          string    `json:"email" db:"email"`
	Phone          *string   `json:"phone,omitempty" db:"phone"`
	Specialization *string   `json:"specialization,omitempty" db:"specialization"`
	Bio            *string   `json:"bio,omitempty" db:"bio"`
	DocumentURL    *string   `json:"documentUrl,omitempty" db:"document_url"` // uploaded certification/contract
	IsActive       bool      `json:"isActive" db:"is_active"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time `json:"updatedAt" db:"updated_at"`
}
