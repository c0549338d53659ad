package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tuteuradom/backend/internal/app/models"
	"github.com/tuteuradom/backend/internal/pkg/apperrors"
)

// teacherColumns is the joined users+teachers column list used by all selects
const teacherColumns = `
	u.id, u.email, u.password, u.first_name, u.last_name, u.role, u.created_at,
	t.subject, t.hourly_rate, t.teaching_locations, t.skills, t.bio, t.cv_url, t.rating, t.status
`

// TeacherRepository handles database operations for teacher profiles
type TeacherRepository struct {
	db *pgxpool.Pool
}

// NewTeacherRepository creates a new teacher repository
func NewTeacherRepository(db *pgxpool.Pool) *TeacherRepository {
	return &TeacherRepository{
		db: db,
	}
}

// Create inserts the teacher profile row. The base user row must already exist.
func (r *TeacherRepository) Create(ctx context.Context, teacher *models.Teacher) error {
	query := `
		INSERT INTO teachers (user_id, subject, hourly_rate, teaching_locations, skills, bio, cv_url, rating, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		teacher.ID, teacher.Subject, teacher.HourlyRate, locationsToStrings(teacher.TeachingLocations),
		teacher.Skills, teacher.Bio, teacher.CVUrl, teacher.Rating, teacher.Status)
	if err != nil {
		return fmt.Errorf("error creating teacher profile: %w", err)
	}

	return nil
}

// GetByID retrieves a teacher with its base user fields
func (r *TeacherRepository) GetByID(ctx context.Context, id string) (*models.Teacher, error) {
	query := `
		SELECT ` + teacherColumns + `
		FROM teachers t
		JOIN users u ON u.id = t.user_id
		WHERE t.user_id = $1
	`

	teacher, err := scanTeacherRow(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		return nil, fmt.Errorf("error retrieving teacher: %w", err)
	}

	return teacher, nil
}

// List retrieves teachers matching the optional filters. When onlyActive is
// set, suspended and pending profiles are excluded (the public listing).
func (r *TeacherRepository) List(ctx context.Context, subject, location *string, maxRate *float64, onlyActive bool) ([]*models.Teacher, error) {
	builder := squirrel.Select(
		"u.id", "u.email", "u.password", "u.first_name", "u.last_name", "u.role", "u.created_at",
		"t.subject", "t.hourly_rate", "t.teaching_locations", "t.skills", "t.bio", "t.cv_url", "t.rating", "t.status",
	).
		From("teachers t").
		Join("users u ON u.id = t.user_id").
		OrderBy("t.rating DESC", "u.created_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	if onlyActive {
		builder = builder.Where(squirrel.Eq{"t.status": models.TeacherStatusActive})
	}
	if subject != nil && *subject != "" {
		builder = builder.Where(squirrel.ILike{"t.subject": "%" + *subject + "%"})
	}
	if location != nil && *location != "" {
		builder = builder.Where("? = ANY(t.teaching_locations)", *location)
	}
	if maxRate != nil {
		builder = builder.Where(squirrel.LtOrEq{"t.hourly_rate": *maxRate})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building teacher list query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing teachers: %w", err)
	}
	defer rows.Close()

	var teachers []*models.Teacher
	for rows.Next() {
		teacher, err := scanTeacherRow(rows)
		if err != nil {
			return nil, err
		}
		teachers = append(teachers, teacher)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return teachers, nil
}

// Update updates teacher profile fields and the base user name fields
func (r *TeacherRepository) Update(ctx context.Context, teacher *models.Teacher) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE teachers
		SET subject = $1, hourly_rate = $2, teaching_locations = $3, skills = $4, bio = $5, cv_url = $6
		WHERE user_id = $7`,
		teacher.Subject, teacher.HourlyRate, locationsToStrings(teacher.TeachingLocations),
		teacher.Skills, teacher.Bio, teacher.CVUrl, teacher.ID)
	if err != nil {
		return fmt.Errorf("error updating teacher profile: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}

	_, err = r.db.Exec(ctx, `
		UPDATE users SET first_name = $1, last_name = $2 WHERE id = $3`,
		teacher.FirstName, teacher.LastName, teacher.ID)
	if err != nil {
		return fmt.Errorf("error updating teacher user row: %w", err)
	}

	return nil
}

// UpdateStatus sets the moderation status of a teacher
func (r *TeacherRepository) UpdateStatus(ctx context.Context, id string, status models.TeacherStatus) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE teachers SET status = $1 WHERE user_id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating teacher status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}
	return nil
}

// UpdateRating stores the recomputed average rating
func (r *TeacherRepository) UpdateRating(ctx context.Context, id string, rating float64) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE teachers SET rating = $1 WHERE user_id = $2`, rating, id)
	if err != nil {
		return fmt.Errorf("error updating teacher rating: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTeacherNotFound
	}
	return nil
}

// CountByStatus returns the number of teachers per moderation status
func (r *TeacherRepository) CountByStatus(ctx context.Context) (map[models.TeacherStatus]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM teachers GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("error counting teachers: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.TeacherStatus]int64)
	for rows.Next() {
		var status models.TeacherStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

// scanTeacherRow scans one joined users+teachers row
func scanTeacherRow(row pgx.Row) (*models.Teacher, error) {
	var teacher models.Teacher
	var locations []string

	err := row.Scan(
		&teacher.ID,
		&teacher.Email,
		&teacher.Password,
		&teacher.FirstName,
		&teacher.LastName,
		&teacher.Role,
		&teacher.CreatedAt,
		&teacher.Subject,
		&teacher.HourlyRate,
		&locations,
		&teacher.Skills,
		&teacher.Bio,
		&teacher.CVUrl,
		&teacher.Rating,
		&teacher.Status,
	)
	if err != nil {
		return nil, err
	}

	teacher.TeachingLocations = stringsToLocations(locations)
	return &teacher, nil
}

func locationsToStrings(locations []models.TeachingLocation) []string {
	out := make([]string, 0, len(locations))
	for _, l := range locations {
		out = append(out, string(l))
	}
	return out
}

func stringsToLocations(raw []string) []models.TeachingLocation {
	out := make([]models.TeachingLocation, 0, len(raw))
	for _, s := range raw {
		out = append(out, models.TeachingLocation(s))
	}
	return out
}
