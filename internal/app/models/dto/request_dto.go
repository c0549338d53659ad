package dto

import "github.com/tuteuradom/backend/internal/app/models"

// CreateRequestRequest represents a parent's course request submission.
// The parent id comes from the authenticated session, not the body.
type CreateRequestRequest struct {
	TeacherID string `json:"teacherId" binding:"required"`
	CourseID  string `json:"courseId" binding:"required"`
	Message   string `json:"message" binding:"required"`
}

// RequestDetails is a request enriched with its resolved references for
// display. Any of the references may be null when the id no longer resolves.
type RequestDetails struct {
	*models.Request
	Parent  *models.Parent  `json:"parent,omitempty"`
	Teacher *models.Teacher `json:"teacher,omitempty"`
	Course  *models.Course  `json:"course,omitempty"`
}
