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

// RequestRepository handles database operations for course requests
type RequestRepository struct {
	db *pgxpool.Pool
}

// NewRequestRepository creates a new request repository
func NewRequestRepository(db *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{
		db: db,
	}
}

// Create inserts a new request. Parent, teacher and course references are
// soft and intentionally not checked here.
func (r *RequestRepository) Create(ctx context.Context, request *models.Request) error {
	query := `
		INSERT INTO requests (id, parent_id, teacher_id, course_id, message, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		request.ID, request.ParentID, request.TeacherID, request.CourseID,
		request.Message, request.Status, request.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}

	return nil
}

// GetByID retrieves a request by ID
func (r *RequestRepository) GetByID(ctx context.Context, id string) (*models.Request, error) {
	query := `
		SELECT id, parent_id, teacher_id, course_id, message, status, created_at
		FROM requests
		WHERE id = $1
	`

	request, err := scanRequestRow(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, fmt.Errorf("error retrieving request: %w", err)
	}

	return request, nil
}

// ListByStatus retrieves all requests in the given status, oldest first
func (r *RequestRepository) ListByStatus(ctx context.Context, status models.RequestStatus) ([]*models.Request, error) {
	return r.list(ctx, `
		SELECT id, parent_id, teacher_id, course_id, message, status, created_at
		FROM requests
		WHERE status = $1
		ORDER BY created_at ASC`, status)
}

// ListByParent retrieves all requests submitted by a parent, oldest first
func (r *RequestRepository) ListByParent(ctx context.Context, parentID string) ([]*models.Request, error) {
	return r.list(ctx, `
		SELECT id, parent_id, teacher_id, course_id, message, status, created_at
		FROM requests
		WHERE parent_id = $1
		ORDER BY created_at ASC`, parentID)
}

// ListByTeacher retrieves all requests addressed to a teacher, oldest first
func (r *RequestRepository) ListByTeacher(ctx context.Context, teacherID string) ([]*models.Request, error) {
	return r.list(ctx, `
		SELECT id, parent_id, teacher_id, course_id, message, status, created_at
		FROM requests
		WHERE teacher_id = $1
		ORDER BY created_at ASC`, teacherID)
}

// ListAll retrieves all requests, oldest first
func (r *RequestRepository) ListAll(ctx context.Context) ([]*models.Request, error) {
	return r.list(ctx, `
		SELECT id, parent_id, teacher_id, course_id, message, status, created_at
		FROM requests
		ORDER BY created_at ASC`)
}

// UpdateStatus moves a request from one status to another. The source status
// is part of the WHERE clause so a concurrent transition loses cleanly.
func (r *RequestRepository) UpdateStatus(ctx context.Context, id string, from, to models.RequestStatus) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE requests SET status = $1 WHERE id = $2 AND status = $3`,
		to, id, from)
	if err != nil {
		return fmt.Errorf("error updating request status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		// Distinguish a missing request from a request in the wrong state
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM requests WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("error checking request existence: %w", err)
		}
		if !exists {
			return apperrors.ErrRequestNotFound
		}
		return apperrors.ErrRequestNotPending
	}

	return nil
}

// CountByStatus returns the number of requests per status
func (r *RequestRepository) CountByStatus(ctx context.Context) (map[models.RequestStatus]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM requests GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("error counting requests: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.RequestStatus]int64)
	for rows.Next() {
		var status models.RequestStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

func (r *RequestRepository) list(ctx context.Context, query string, args ...interface{}) ([]*models.Request, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing requests: %w", err)
	}
	defer rows.Close()

	var requests []*models.Request
	for rows.Next() {
		request, err := scanRequestRow(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, request)
	}

	return requests, rows.Err()
}

// scanRequestRow scans one requests row
func scanRequestRow(row pgx.Row) (*models.Request, error) {
	var request models.Request
	err := row.Scan(
		&request.ID,
		&request.ParentID,
		&request.TeacherID,
		&request.CourseID,
		&request.Message,
		&request.Status,
		&request.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &request, nil
}
