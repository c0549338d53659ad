package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/tuteuradom/backend/internal/app/models"
	"github.com/tuteuradom/backend/internal/app/models/dto"
	"github.com/tuteuradom/backend/internal/app/repositories"
	"github.com/tuteuradom/backend/internal/pkg/apperrors"
)

// CourseService handles course catalogue operations. Mutations are only
// allowed for the owning teacher.
type CourseService struct {
	courses  repositories.CourseStore
	teachers repositories.TeacherStore

	now   func() time.Time
	newID func() string
}

// NewCourseService creates a new course service instance
func NewCourseService(courses repositories.CourseStore, teachers repositories.TeacherStore) *CourseService {
	return &CourseService{
		courses:  courses,
		teachers: teachers,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
}

// CreateCourse adds a course to the owning teacher's catalogue
func (s *CourseService) CreateCourse(ctx context.Context, teacherID string, req *dto.CreateCourseRequest) (*models.Course, error) {
	if _, err := s.teachers.GetByID(ctx, teacherID); err != nil {
		return nil, err
	}

	locations, err := parseLocations(req.Locations)
	if err != nil {
		return nil, err
	}

	course := &models.Course{
		ID:          s.newID(),
		TeacherID:   teacherID,
		Subject:     req.Subject,
		Description: req.Description,
		HourlyRate:  req.HourlyRate,
		Locations:   locations,
		CreatedAt:   s.now(),
	}

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// GetCourse retrieves a course by ID
func (s *CourseService) GetCourse(ctx context.Context, id string) (*models.Course, error) {
	return s.courses.GetByID(ctx, id)
}

// ListCourses returns the full course catalogue, newest first
func (s *CourseService) ListCourses(ctx context.Context) ([]*models.Course, error) {
	return s.courses.ListAll(ctx)
}

// ListCoursesByTeacher returns one teacher's catalogue, newest first
func (s *CourseService) ListCoursesByTeacher(ctx context.Context, teacherID string) ([]*models.Course, error) {
	return s.courses.ListByTeacher(ctx, teacherID)
}

// UpdateCourse updates a course owned by the given teacher
func (s *CourseService) UpdateCourse(ctx context.Context, teacherID, courseID string, req *dto.UpdateCourseRequest) (*models.Course, error) {
	course, err := s.ownedCourse(ctx, teacherID, courseID)
	if err != nil {
		return nil, err
	}

	locations, err := parseLocations(req.Locations)
	if err != nil {
		return nil, err
	}

	course.Subject = req.Subject
	course.Description = req.Description
	course.HourlyRate = req.HourlyRate
	course.Locations = locations

	if err := s.courses.Update(ctx, course); err != nil {
		return nil, err
	}

	return course, nil
}

// DeleteCourse removes a course owned by the given teacher. Requests that
// reference the course keep their id and resolve to null afterwards.
func (s *CourseService) DeleteCourse(ctx context.Context, teacherID, courseID string) error {
	if _, err := s.ownedCourse(ctx, teacherID, courseID); err != nil {
		return err
	}
	return s.courses.Delete(ctx, courseID)
}

// ownedCourse loads a course and checks ownership
func (s *CourseService) ownedCourse(ctx context.Context, teacherID, courseID string) (*models.Course, error) {
	course, err := s.courses.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if course.TeacherID != teacherID {
		return nil, apperrors.NewForbiddenError("course belongs to another teacher")
	}
	return course, nil
}

func parseLocations(raw []string) ([]models.TeachingLocation, error) {
	locations := make([]models.TeachingLocation, 0, len(raw))
	for _, value := range raw {
		location, ok := models.ParseTeachingLocation(value)
		if !ok {
			return nil, apperrors.ErrScheduleInvalidLocation
		}
		locations = append(locations, location)
	}
	return locations, nil
}
