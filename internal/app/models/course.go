package models

// Course represents a catalog course.
type Course struct {
	ID            int64   `json:"id" db:"id"`
	Code          string  `json:"code" db:"code"`
	Name          string  `json:"name" db:"name"`
	Description   *string `json:"description,omitempty" db:"description"` // Nullable
	Category      *string `json:"category,omitempty" db:"category"`       // Nullable
	CurriculumURL *string `json:"curriculumUrl,omitempty" db:"curriculum_url"`
	IsActive      bool    `json:"isActive" db:"is_active"`

	// Relations (populated when needed)
	Offerings []*CourseOffering `json:"offerings,omitempty"`
}
