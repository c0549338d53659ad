package services

import (
	"context"

	"github.com/tuteuradom/backend/internal/app/models"
	"github.com/tuteuradom/backend/internal/app/models/dto"
	"github.com/tuteuradom/backend/internal/app/repositories"
)

// ResolverService resolves the soft references carried by requests and
// appointments. Each lookup is independent and best effort: a reference
// that no longer resolves yields a null field, never an error for the
// whole view.
type ResolverService struct {
	parents  repositories.ParentStore
	teachers repositories.TeacherStore
	courses  repositories.CourseStore
}

// NewResolverService creates a new resolver service instance
func NewResolverService(parents repositories.ParentStore, teachers repositories.TeacherStore, courses repositories.CourseStore) *ResolverService {
	return &ResolverService{
		parents:  parents,
		teachers: teachers,
		courses:  courses,
	}
}

// ResolveRequest enriches a request with its parent, teacher and course
func (s *ResolverService) ResolveRequest(ctx context.Context, request *models.Request) *dto.RequestDetails {
	details := &dto.RequestDetails{Request: request}

	if parent, err := s.parents.GetByID(ctx, request.ParentID); err == nil {
		details.Parent = parent
	}
	if teacher, err := s.teachers.GetByID(ctx, request.TeacherID); err == nil {
		details.Teacher = teacher
	}
	if course, err := s.courses.GetByID(ctx, request.CourseID); err == nil {
		details.Course = course
	}

	return details
}

// ResolveRequests enriches a request listing, preserving order
func (s *ResolverService) ResolveRequests(ctx context.Context, requests []*models.Request) []*dto.RequestDetails {
	out := make([]*dto.RequestDetails, 0, len(requests))
	for _, request := range requests {
		out = append(out, s.ResolveRequest(ctx, request))
	}
	return out
}

// ResolveAppointment enriches an appointment with its parent and teacher
func (s *ResolverService) ResolveAppointment(ctx context.Context, appointment *models.Appointment) *dto.AppointmentDetails {
	details := &dto.AppointmentDetails{
		AppointmentResponse: dto.NewAppointmentResponse(appointment),
	}

	if parent, err := s.parents.GetByID(ctx, appointment.ParentID); err == nil {
		details.Parent = parent
	}
	if teacher, err := s.teachers.GetByID(ctx, appointment.TeacherID); err == nil {
		details.Teacher = teacher
	}

	return details
}

// ResolveAppointments enriches an appointment listing, preserving order
func (s *ResolverService) ResolveAppointments(ctx context.Context, appointments []*models.Appointment) []*dto.AppointmentDetails {
	out := make([]*dto.AppointmentDetails, 0, len(appointments))
	for _, appointment := range appointments {
		out = append(out, s.ResolveAppointment(ctx, appointment))
	}
	return out
}
