package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tuteuradom/backend/internal/app/models"
	"github.com/tuteuradom/backend/internal/pkg/apperrors"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create inserts a new course
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (id, teacher_id, subject, description, hourly_rate, locations, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		course.ID, course.TeacherID, course.Subject, course.Description,
		course.HourlyRate, locationsToStrings(course.Locations), course.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id string) (*models.Course, error) {
	query := `
		SELECT id, teacher_id, subject, description, hourly_rate, locations, created_at
		FROM courses
		WHERE id = $1
	`

	course, err := scanCourseRow(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return course, nil
}

// ListAll retrieves all courses, newest first
func (r *CourseRepository) ListAll(ctx context.Context) ([]*models.Course, error) {
	return r.list(ctx, `
		SELECT id, teacher_id, subject, description, hourly_rate, locations, created_at
		FROM courses
		ORDER BY created_at DESC`)
}

// ListByTeacher retrieves all courses owned by a teacher, newest first
func (r *CourseRepository) ListByTeacher(ctx context.Context, teacherID string) ([]*models.Course, error) {
	return r.list(ctx, `
		SELECT id, teacher_id, subject, description, hourly_rate, locations, created_at
		FROM courses
		WHERE teacher_id = $1
		ORDER BY created_at DESC`, teacherID)
}

// Update updates an existing course
func (r *CourseRepository) Update(ctx context.Context, course *models.Course) error {
	query := `
		UPDATE courses
		SET subject = $1, description = $2, hourly_rate = $3, locations = $4
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		course.Subject, course.Description, course.HourlyRate,
		locationsToStrings(course.Locations), course.ID)
	if err != nil {
		return fmt.Errorf("error updating course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

// Delete deletes a course by ID
func (r *CourseRepository) Delete(ctx context.Context, id string) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCourseNotFound
	}

	return nil
}

func (r *CourseRepository) list(ctx context.Context, query string, args ...interface{}) ([]*models.Course, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing courses: %w", err)
	}
	defer rows.Close()

	var courses []*models.Course
	for rows.Next() {
		course, err := scanCourseRow(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	return courses, rows.Err()
}

// scanCourseRow scans one courses row
func scanCourseRow(row pgx.Row) (*models.Course, error) {
	var course models.Course
	var locations []string

	err := row.Scan(
		&course.ID,
		&course.TeacherID,
		&course.Subject,
		&course.Description,
		&course.HourlyRate,
		&locations,
		&course.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	course.Locations = stringsToLocations(locations)
	return &course, nil
}
