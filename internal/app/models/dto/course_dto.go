package dto

// CreateCourseRequest represents course creation data
type CreateCourseRequest struct {
	Subject     string   `json:"subject" binding:"required"`
	Description string   `json:"description" binding:"required"`
	HourlyRate  float64  `json:"hourlyRate" binding:"required,gt=0"`
	Locations   []string `json:"locations" binding:"required,min=1"`
}

// UpdateCourseRequest represents course update data
type UpdateCourseRequest struct {
	Subject     string   `json:"subject" binding:"required"`
	Description string   `json:"description" binding:"required"`
	HourlyRate  float64  `json:"hourlyRate" binding:"required,gt=0"`
	Locations   []string `json:"locations" binding:"required,min=1"`
}
