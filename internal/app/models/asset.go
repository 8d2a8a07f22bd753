package models

import "time"

// AssetStatus is the rental lifecycle state of a physical asset
type AssetStatus string

const (
	AssetAvailable        AssetStatus = "available"
	AssetRentalInProgress AssetStatus = "rental_in_progress" // displayed as "assigned"
	AssetReadyToReturn    AssetStatus = "ready_to_return"
	AssetReturned         AssetStatus = "returned"
	AssetMaintenance      AssetStatus = "maintenance"
	AssetLost             AssetStatus = "lost"
)

// ValidAssetStatus reports whether the given value is a known asset status
func ValidAssetStatus(s AssetStatus) bool {
	switch s {
	case AssetAvailable, AssetRentalInProgress, AssetReadyToReturn, AssetReturned, AssetMaintenance, AssetLost:
		return true
	}
	return false
}

// AssigneeType identifies who an asset is rented to
type AssigneeType string

const (
	AssigneeStudent AssigneeType = "student"
	AssigneeTrainer AssigneeType = "trainer"
)

// ValidAssigneeType reports whether the given value is a known assignee type
func ValidAssigneeType(t AssigneeType) bool {
	return t == AssigneeStudent || t == AssigneeTrainer
}

// Asset represents a rentable equipment unit.
// AssignedToID, AssignedToType and RentalStartDate are non-null exactly while
// a rental is active; they are cleared when the asset is reactivated.
type Asset struct {
	ID              int64         `json:"id" db:"id"`
	Name            string        `json:"name" db:"name"`
	SerialNumber    *string       `json:"serialNumber,omitempty" db:"serial_number"` // unique when present
	Category        *string       `json:"category,omitempty" db:"category"`
	Status          AssetStatus   `json:"status" db:"status"`
	AssignedToID    *int64        `json:"assignedToId,omitempty" db:"assigned_to_id"`
	AssignedToType  *AssigneeType `json:"assignedToType,omitempty" db:"assigned_to_type"`
	RentalStartDate *time.Time    `json:"rentalStartDate,omitempty" db:"rental_start_date"`
	RentalEndDate   *time.Time    `json:"rentalEndDate,omitempty" db:"rental_end_date"`
	CreatedAt       time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time     `json:"updatedAt" db:"updated_at"`
}
