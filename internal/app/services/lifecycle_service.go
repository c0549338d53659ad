package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/tuteuradom/backend/internal/app/models"
	"github.com/tuteuradom/backend/internal/app/models/dto"
	"github.com/tuteuradom/backend/internal/app/repositories"
	"github.com/tuteuradom/backend/internal/pkg/apperrors"
	"github.com/tuteuradom/backend/internal/pkg/logger"
	"github.com/tuteuradom/backend/internal/pkg/validation"
)

// LifecycleService drives the request and appointment state machines. A
// request moves PENDING -> APPROVED or PENDING -> REJECTED; approval creates
// a SCHEDULED appointment which later moves to COMPLETED or CANCELLED.
// Terminal states are never left.
type LifecycleService struct {
	requests     repositories.RequestStore
	appointments repositories.AppointmentStore

	// overridable in tests
	now   func() time.Time
	newID func() string
}

// NewLifecycleService creates a new lifecycle service instance
func NewLifecycleService(requests repositories.RequestStore, appointments repositories.AppointmentStore) *LifecycleService {
	return &LifecycleService{
		requests:     requests,
		appointments: appointments,
		now:          time.Now,
		newID:        func() string { return uuid.New().String() },
	}
}

// CreateRequest records a parent's course request in PENDING status.
// The teacher and course references are stored as given without an
// existence check; they are resolved lazily for display.
func (s *LifecycleService) CreateRequest(ctx context.Context, parentID string, req *dto.CreateRequestRequest) (*models.Request, error) {
	request := &models.Request{
		ID:        s.newID(),
		ParentID:  parentID,
		TeacherID: req.TeacherID,
		CourseID:  req.CourseID,
		Message:   req.Message,
		Status:    models.RequestStatusPending,
		CreatedAt: s.now(),
	}

	if err := s.requests.Create(ctx, request); err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	logger.Info().
		Str("requestId", request.ID).
		Str("parentId", parentID).
		Str("teacherId", req.TeacherID).
		Msg("Course request created")

	return request, nil
}

// GetRequest retrieves a request by ID
func (s *LifecycleService) GetRequest(ctx context.Context, id string) (*models.Request, error) {
	return s.requests.GetByID(ctx, id)
}

// ListPendingRequests returns all requests still awaiting a decision,
// oldest first
func (s *LifecycleService) ListPendingRequests(ctx context.Context) ([]*models.Request, error) {
	return s.requests.ListByStatus(ctx, models.RequestStatusPending)
}

// ListRequestsByParent returns a parent's requests, oldest first
func (s *LifecycleService) ListRequestsByParent(ctx context.Context, parentID string) ([]*models.Request, error) {
	return s.requests.ListByParent(ctx, parentID)
}

// ListAllRequests returns every request regardless of status, oldest first
func (s *LifecycleService) ListAllRequests(ctx context.Context) ([]*models.Request, error) {
	return s.requests.ListAll(ctx)
}

// ListRequestsByTeacher returns a teacher's incoming requests, oldest first
func (s *LifecycleService) ListRequestsByTeacher(ctx context.Context, teacherID string) ([]*models.Request, error) {
	return s.requests.ListByTeacher(ctx, teacherID)
}

// ApproveRequest accepts a pending request and schedules the appointment in
// one step. The schedule is validated before the request leaves PENDING, so
// a bad schedule leaves the request untouched and still approvable.
func (s *LifecycleService) ApproveRequest(ctx context.Context, requestID string, schedule *dto.ScheduleRequest) (*models.Appointment, error) {
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != models.RequestStatusPending {
		return nil, apperrors.ErrRequestNotPending
	}

	location, ok := models.ParseTeachingLocation(schedule.Location)
	if !ok {
		return nil, apperrors.ErrScheduleInvalidLocation
	}

	date, err := validation.ValidateSchedule(s.now(), schedule.Date, schedule.StartTime, schedule.EndTime)
	if err != nil {
		return nil, err
	}

	if err := s.requests.UpdateStatus(ctx, requestID, models.RequestStatusPending, models.RequestStatusApproved); err != nil {
		return nil, err
	}

	appointment := &models.Appointment{
		ID:        s.newID(),
		RequestID: request.ID,
		ParentID:  request.ParentID,
		TeacherID: request.TeacherID,
		Date:      date,
		StartTime: schedule.StartTime,
		EndTime:   schedule.EndTime,
		Location:  location,
		Status:    models.AppointmentStatusScheduled,
		CreatedAt: s.now(),
	}

	if err := s.appointments.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("error creating appointment: %w", err)
	}

	logger.Info().
		Str("requestId", request.ID).
		Str("appointmentId", appointment.ID).
		Msg("Request approved, appointment scheduled")

	return appointment, nil
}

// RejectRequest declines a pending request. Rejection is terminal and
// creates no appointment.
func (s *LifecycleService) RejectRequest(ctx context.Context, requestID string) (*models.Request, error) {
	if err := s.requests.UpdateStatus(ctx, requestID, models.RequestStatusPending, models.RequestStatusRejected); err != nil {
		return nil, err
	}

	logger.Info().Str("requestId", requestID).Msg("Request rejected")

	return s.requests.GetByID(ctx, requestID)
}

// GetAppointment retrieves an appointment by ID
func (s *LifecycleService) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

// ListAppointmentsByParent returns a parent's appointments, oldest first
func (s *LifecycleService) ListAppointmentsByParent(ctx context.Context, parentID string) ([]*models.Appointment, error) {
	return s.appointments.ListByParent(ctx, parentID)
}

// ListAppointmentsByTeacher returns a teacher's appointments, oldest first
func (s *LifecycleService) ListAppointmentsByTeacher(ctx context.Context, teacherID string) ([]*models.Appointment, error) {
	return s.appointments.ListByTeacher(ctx, teacherID)
}

// ListAllAppointments returns every appointment regardless of status,
// oldest first
func (s *LifecycleService) ListAllAppointments(ctx context.Context) ([]*models.Appointment, error) {
	return s.appointments.ListAll(ctx)
}

// CompleteAppointment marks a scheduled appointment as held. The schedule
// itself is not re-validated; completion is allowed regardless of the
// appointment date.
func (s *LifecycleService) CompleteAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	return s.finishAppointment(ctx, appointmentID, models.AppointmentStatusCompleted)
}

// CancelAppointment marks a scheduled appointment as called off. The
// originating request stays APPROVED.
func (s *LifecycleService) CancelAppointment(ctx context.Context, appointmentID string) (*models.Appointment, error) {
	return s.finishAppointment(ctx, appointmentID, models.AppointmentStatusCancelled)
}

func (s *LifecycleService) finishAppointment(ctx context.Context, appointmentID string, to models.AppointmentStatus) (*models.Appointment, error) {
	if err := s.appointments.UpdateStatus(ctx, appointmentID, models.AppointmentStatusScheduled, to); err != nil {
		return nil, err
	}

	logger.Info().
		Str("appointmentId", appointmentID).
		Str("status", string(to)).
		Msg("Appointment closed")

	return s.appointments.GetByID(ctx, appointmentID)
}
