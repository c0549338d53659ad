package services

import (
	"context"

	"github.com/tuteuradom/backend/internal/app/models"
	"github.com/tuteuradom/backend/internal/app/models/dto"
	"github.com/tuteuradom/backend/internal/app/repositories"
	"github.com/tuteuradom/backend/internal/pkg/apperrors"
	"github.com/tuteuradom/backend/internal/pkg/logger"
)

// TeacherService handles teacher profile and moderation operations
type TeacherService struct {
	teachers repositories.TeacherStore
	courses  repositories.CourseStore
}

// NewTeacherService creates a new teacher service instance
func NewTeacherService(teachers repositories.TeacherStore, courses repositories.CourseStore) *TeacherService {
	return &TeacherService{
		teachers: teachers,
		courses:  courses,
	}
}

// GetTeacher retrieves a teacher profile with its courses
func (s *TeacherService) GetTeacher(ctx context.Context, id string) (*models.Teacher, error) {
	teacher, err := s.teachers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	courses, err := s.courses.ListByTeacher(ctx, id)
	if err != nil {
		return nil, err
	}
	teacher.Courses = courses

	return teacher, nil
}

// ListTeachers returns the public teacher listing: ACTIVE profiles matching
// the optional filters, best rated first
func (s *TeacherService) ListTeachers(ctx context.Context, filter dto.TeacherFilter) ([]*models.Teacher, error) {
	if filter.Location != "" {
		if _, ok := models.ParseTeachingLocation(filter.Location); !ok {
			return nil, apperrors.ErrScheduleInvalidLocation
		}
	}

	var subject, location *string
	if filter.Subject != "" {
		subject = &filter.Subject
	}
	if filter.Location != "" {
		location = &filter.Location
	}

	return s.teachers.List(ctx, subject, location, filter.MaxRate, true)
}

// UpdateProfile updates a teacher's own profile fields
func (s *TeacherService) UpdateProfile(ctx context.Context, id string, req *dto.UpdateTeacherProfileRequest) (*models.Teacher, error) {
	teacher, err := s.teachers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	locations, err := parseLocations(req.TeachingLocations)
	if err != nil {
		return nil, err
	}

	teacher.FirstName = req.FirstName
	teacher.LastName = req.LastName
	teacher.Subject = req.Subject
	teacher.HourlyRate = req.HourlyRate
	teacher.TeachingLocations = locations
	teacher.Skills = req.Skills
	teacher.Bio = req.Bio
	teacher.CVUrl = req.CVUrl

	if err := s.teachers.Update(ctx, teacher); err != nil {
		return nil, err
	}

	return s.GetTeacher(ctx, id)
}

// UpdateStatus applies an admin moderation decision to a teacher profile
func (s *TeacherService) UpdateStatus(ctx context.Context, id string, status models.TeacherStatus) (*models.Teacher, error) {
	if err := s.teachers.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	logger.Info().Str("teacherId", id).Str("status", string(status)).Msg("Teacher status updated")

	return s.GetTeacher(ctx, id)
}
