package dto

import (
	"github.com/tuteuradom/backend/internal/app/models"
)

// ScheduleRequest carries the scheduling details supplied when approving a
// course request
type ScheduleRequest struct {
	Date      string `json:"date" binding:"required" example:"2026-09-15"`
	StartTime string `json:"startTime" binding:"required" example:"14:00"`
	EndTime   string `json:"endTime" binding:"required" example:"15:00"`
	Location  string `json:"location" binding:"required" example:"ONLINE"`
}

// AppointmentResponse represents an appointment with its date in wire form
type AppointmentResponse struct {
	ID        string                   `json:"id"`
	RequestID string                   `json:"requestId"`
	ParentID  string                   `json:"parentId"`
	TeacherID string                   `json:"teacherId"`
	Date      string                   `json:"date" example:"2026-09-15"`
	StartTime string                   `json:"startTime" example:"14:00"`
	EndTime   string                   `json:"endTime" example:"15:00"`
	Location  models.TeachingLocation  `json:"location"`
	Status    models.AppointmentStatus `json:"status"`
}

// AppointmentDetails is an appointment enriched with its resolved references
type AppointmentDetails struct {
	AppointmentResponse
	Parent  *models.Parent  `json:"parent,omitempty"`
	Teacher *models.Teacher `json:"teacher,omitempty"`
}

// NewAppointmentResponse maps an appointment model onto the wire shape
func NewAppointmentResponse(appt *models.Appointment) AppointmentResponse {
	return AppointmentResponse{
		ID:        appt.ID,
		RequestID: appt.RequestID,
		ParentID:  appt.ParentID,
		TeacherID: appt.TeacherID,
		Date:      appt.Date.Format("2006-01-02"),
		StartTime: appt.StartTime,
		EndTime:   appt.EndTime,
		Location:  appt.Location,
		Status:    appt.Status,
	}
}

// NewAppointmentResponseList maps a slice of appointments onto the wire shape
func NewAppointmentResponseList(appts []*models.Appointment) []AppointmentResponse {
	out := make([]AppointmentResponse, 0, len(appts))
	for _, a := range appts {
		out = append(out, NewAppointmentResponse(a))
	}
	return out
}
