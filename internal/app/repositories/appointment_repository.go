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

// AppointmentRepository handles database operations for appointments
type AppointmentRepository struct {
	db *pgxpool.Pool
}

// NewAppointmentRepository creates a new appointment repository
func NewAppointmentRepository(db *pgxpool.Pool) *AppointmentRepository {
	return &AppointmentRepository{
		db: db,
	}
}

// Create inserts a new appointment
func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	query := `
		INSERT INTO appointments (id, request_id, parent_id, teacher_id, date, start_time, end_time, location, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		appointment.ID, appointment.RequestID, appointment.ParentID, appointment.TeacherID,
		appointment.Date, appointment.StartTime, appointment.EndTime,
		appointment.Location, appointment.Status, appointment.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating appointment: %w", err)
	}

	return nil
}

// GetByID retrieves an appointment by ID
func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	query := `
		SELECT id, request_id, parent_id, teacher_id, date, start_time, end_time, location, status, created_at
		FROM appointments
		WHERE id = $1
	`

	appointment, err := scanAppointmentRow(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("error retrieving appointment: %w", err)
	}

	return appointment, nil
}

// ListByParent retrieves all appointments for a parent, oldest first
func (r *AppointmentRepository) ListByParent(ctx context.Context, parentID string) ([]*models.Appointment, error) {
	return r.list(ctx, `
		SELECT id, request_id, parent_id, teacher_id, date, start_time, end_time, location, status, created_at
		FROM appointments
		WHERE parent_id = $1
		ORDER BY created_at ASC`, parentID)
}

// ListByTeacher retrieves all appointments for a teacher, oldest first
func (r *AppointmentRepository) ListByTeacher(ctx context.Context, teacherID string) ([]*models.Appointment, error) {
	return r.list(ctx, `
		SELECT id, request_id, parent_id, teacher_id, date, start_time, end_time, location, status, created_at
		FROM appointments
		WHERE teacher_id = $1
		ORDER BY created_at ASC`, teacherID)
}

// ListAll retrieves all appointments, oldest first
func (r *AppointmentRepository) ListAll(ctx context.Context) ([]*models.Appointment, error) {
	return r.list(ctx, `
		SELECT id, request_id, parent_id, teacher_id, date, start_time, end_time, location, status, created_at
		FROM appointments
		ORDER BY created_at ASC`)
}

// UpdateStatus moves an appointment from one status to another. The source
// status is part of the WHERE clause so a concurrent transition loses cleanly.
func (r *AppointmentRepository) UpdateStatus(ctx context.Context, id string, from, to models.AppointmentStatus) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE appointments SET status = $1 WHERE id = $2 AND status = $3`,
		to, id, from)
	if err != nil {
		return fmt.Errorf("error updating appointment status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM appointments WHERE id = $1)`, id).Scan(&exists); err != nil {
			return fmt.Errorf("error checking appointment existence: %w", err)
		}
		if !exists {
			return apperrors.ErrAppointmentNotFound
		}
		return apperrors.ErrAppointmentNotScheduled
	}

	return nil
}

// CountByStatus returns the number of appointments per status
func (r *AppointmentRepository) CountByStatus(ctx context.Context) (map[models.AppointmentStatus]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM appointments GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("error counting appointments: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.AppointmentStatus]int64)
	for rows.Next() {
		var status models.AppointmentStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

func (r *AppointmentRepository) list(ctx context.Context, query string, args ...interface{}) ([]*models.Appointment, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error listing appointments: %w", err)
	}
	defer rows.Close()

	var appointments []*models.Appointment
	for rows.Next() {
		appointment, err := scanAppointmentRow(rows)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, appointment)
	}

	return appointments, rows.Err()
}

// scanAppointmentRow scans one appointments row
func scanAppointmentRow(row pgx.Row) (*models.Appointment, error) {
	var appointment models.Appointment
	err := row.Scan(
		&appointment.ID,
		&appointment.RequestID,
		&appointment.ParentID,
		&appointment.TeacherID,
		&appointment.Date,
		&appointment.StartTime,
		&appointment.EndTime,
		&appointment.Location,
		&appointment.Status,
		&appointment.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &appointment, nil
}
