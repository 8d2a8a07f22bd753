package dto

// CreateAssetRequest registers a new equipment unit
type CreateAssetRequest struct {
	Name         string  `json:"name" binding:"required"`
	SerialNumber *string `json:"serialNumber,omitempty"`
	Category     *string `json:"category,omitempty"`
}

// UpdateAssetRequest updates an asset's descriptive fields
type UpdateAssetRequest struct {
	Name         string  `json:"name" binding:"required"`
	SerialNumber *string `json:"serialNumber,omitempty"`
	Category     *string `json:"category,omitempty"`
}

// AssignAssetRequest rents an asset out to a student or trainer
type AssignAssetRequest struct {
	AssigneeID   int64   `json:"assigneeId" binding:"required,min=1"`
	AssigneeType string  `json:"assigneeType" binding:"required,oneof=student trainer"`
	ScheduleID   *int64  `json:"scheduleId,omitempty"` // optional link to a course batch
	Notes        *string `json:"notes,omitempty"`
	AssignedBy   *string `json:"assignedBy,omitempty"`
}

// BulkStatusRequest sets the status of several assets at once
// (admin action, e.g. flagging a shelf of devices for maintenance)
type BulkStatusRequest struct {
	AssetIDs []int64 `json:"assetIds" binding:"required,min=1"`
	Status   string  `json:"status" binding:"required,oneof=available rental_in_progress ready_to_return returned maintenance lost"`
}
