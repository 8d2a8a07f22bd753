package dto

// CreateCourseRequest creates a catalog course
type CreateCourseRequest struct {
	Code        string  `json:"code" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
}

// UpdateCourseRequest updates a catalog course
type UpdateCourseRequest struct {
	Code        string  `json:"code" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// CreateOfferingRequest creates a delivery-mode variant of a course
type CreateOfferingRequest struct {
	DeliveryMode string  `json:"deliveryMode" binding:"required,oneof=online in_person"`
	Pace         string  `json:"pace" binding:"required,oneof=full_time part_time"`
	DurationDays int     `json:"durationDays" binding:"required,min=1"`
	Fee          float64 `json:"fee" binding:"min=0"`
}

// UpdateOfferingRequest updates an offering. Duration changes ripple into the
// end dates of every schedule of the offering.
type UpdateOfferingRequest struct {
	DurationDays int     `json:"durationDays" binding:"required,min=1"`
	Fee          float64 `json:"fee" binding:"min=0"`
}
