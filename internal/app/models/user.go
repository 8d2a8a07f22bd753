package models

import "time"

// User defines a console account based on the 'users' table
type User struct {
	ID           int64      `json:"id" db:"id" example:"1"`
	Email        string     `json:"email" db:"email" example:"admin@trainhub.example"`
	Password     string     `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	FirstName    string     `json:"firstName" db:"first_name" example:"Ayse"`
	LastName     string     `json:"lastName" db:"last_name" example:"Demir"`
	Role         UserRole   `json:"role" db:"role" example:"ADMIN"`
	IsActive     bool       `json:"isActive" db:"is_active" example:"true"`
	MustChangePW bool       `json:"mustChangePassword" db:"must_change_password"` // set for invited accounts until first password change
	CreatedAt    time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time  `json:"updatedAt" db:"updated_at"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
}

// RefreshToken is a persisted opaque refresh token
type RefreshToken struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Token     string    `json:"token" db:"token"`
	ExpiresAt time.Time `json:"expiresAt" db:"expires_at"`
	Revoked   bool      `json:"revoked" db:"revoked"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
