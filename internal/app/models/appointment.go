package models

import "time"

// AppointmentStatus defines the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "SCHEDULED"
	AppointmentStatusCompleted AppointmentStatus = "COMPLETED"
	AppointmentStatusCancelled AppointmentStatus = "CANCELLED"
)

// appointmentTransitions is the appointment state machine. COMPLETED and
// CANCELLED are terminal.
var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusScheduled: {AppointmentStatusCompleted, AppointmentStatusCancelled},
}

// CanTransitionTo reports whether the appointment status may move to the target state
func (s AppointmentStatus) CanTransitionTo(target AppointmentStatus) bool {
	for _, next := range appointmentTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Terminal reports whether the status has no outgoing transitions
func (s AppointmentStatus) Terminal() bool {
	return len(appointmentTransitions[s]) == 0
}

// Appointment defines a scheduled session created when a request is approved,
// based on the 'appointments' table. ParentID and TeacherID are copied from
// the originating request at approval time.
type Appointment struct {
	ID        string            `json:"id" db:"id"`
	RequestID string            `json:"requestId" db:"request_id"`
	ParentID  string            `json:"parentId" db:"parent_id"`
	TeacherID string            `json:"teacherId" db:"teacher_id"`
	Date      time.Time         `json:"date" db:"date"`
	StartTime string            `json:"startTime" db:"start_time"` // HH:MM
	EndTime   string            `json:"endTime" db:"end_time"`     // HH:MM
	Location  TeachingLocation  `json:"location" db:"location"`
	Status    AppointmentStatus `json:"status" db:"status"`
	CreatedAt time.Time         `json:"createdAt" db:"created_at"`
}
