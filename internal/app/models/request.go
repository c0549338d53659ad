package models

import "time"

// RequestStatus defines the lifecycle state of a course request
type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "PENDING"
	RequestStatusApproved RequestStatus = "APPROVED"
	RequestStatusRejected RequestStatus = "REJECTED"
)

// requestTransitions is the request state machine. APPROVED and REJECTED
// are terminal: they have no outgoing edges.
var requestTransitions = map[RequestStatus][]RequestStatus{
	RequestStatusPending: {RequestStatusApproved, RequestStatusRejected},
}

// CanTransitionTo reports whether the request status may move to the target state
func (s RequestStatus) CanTransitionTo(target RequestStatus) bool {
	for _, next := range requestTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Terminal reports whether the status has no outgoing transitions
func (s RequestStatus) Terminal() bool {
	return len(requestTransitions[s]) == 0
}

// Request defines a parent's ask for a course from a teacher, based on the 'requests' table.
// References are soft: parent, teacher and course ids are not checked at creation
// time and are resolved lazily for display.
type Request struct {
	ID        string        `json:"id" db:"id"`
	ParentID  string        `json:"parentId" db:"parent_id"`
	TeacherID string        `json:"teacherId" db:"teacher_id"`
	CourseID  string        `json:"courseId" db:"course_id"`
	Message   string        `json:"message" db:"message"`
	Status    RequestStatus `json:"status" db:"status"`
	CreatedAt time.Time     `json:"createdAt" db:"created_at"`
}
