package models

import "time"

// AssetAssignment is a history record pairing an asset with an assignee over a
// time span. ReturnDate is null while the assignment is open; at most one
// assignment per asset is open at any time. Records are closed on return and
// never deleted.
type AssetAssignment struct {
	ID             int64        `json:"id" db:"id"`
	AssetID        int64        `json:"assetId" db:"asset_id"`
	AssignedToID   int64        `json:"assignedToId" db:"assigned_to_id"`
	AssignedToType AssigneeType `json:"assignedToType" db:"assigned_to_type"`
	AssignmentDate time.Time    `json:"assignmentDate" db:"assignment_date"`
	ReturnDate     *time.Time   `json:"returnDate,omitempty" db:"return_date"`
	ScheduleID     *int64       `json:"scheduleId,omitempty" db:"schedule_id"` // optional link to a course batch
	Notes          *string      `json:"notes,omitempty" db:"notes"`
	AssignedBy     *string      `json:"assignedBy,omitempty" db:"assigned_by"`

	// Relations (populated when needed)
	Asset *Asset `json:"asset,omitempty"`
}

// IsOpen reports whether the assignment is still active
func (a *AssetAssignment) IsOpen() bool {
	return a.ReturnDate == nil
}
