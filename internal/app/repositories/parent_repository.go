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

// ParentRepository handles database operations for parent accounts
type ParentRepository struct {
	db *pgxpool.Pool
}

// NewParentRepository creates a new parent repository
func NewParentRepository(db *pgxpool.Pool) *ParentRepository {
	return &ParentRepository{
		db: db,
	}
}

// Create inserts the parent row and its children. The base user row must
// already exist.
func (r *ParentRepository) Create(ctx context.Context, parent *models.Parent) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO parents (user_id, status) VALUES ($1, $2)`,
		parent.ID, parent.Status)
	if err != nil {
		return fmt.Errorf("error creating parent profile: %w", err)
	}

	if len(parent.Children) > 0 {
		if err := r.ReplaceChildren(ctx, parent.ID, parent.Children); err != nil {
			return err
		}
	}

	return nil
}

// GetByID retrieves a parent with its base user fields and children
func (r *ParentRepository) GetByID(ctx context.Context, id string) (*models.Parent, error) {
	query := `
		SELECT u.id, u.email, u.password, u.first_name, u.last_name, u.role, u.created_at, p.status
		FROM parents p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1
	`

	var parent models.Parent
	err := r.db.QueryRow(ctx, query, id).Scan(
		&parent.ID,
		&parent.Email,
		&parent.Password,
		&parent.FirstName,
		&parent.LastName,
		&parent.Role,
		&parent.CreatedAt,
		&parent.Status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrParentNotFound
		}
		return nil, fmt.Errorf("error retrieving parent: %w", err)
	}

	children, err := r.listChildren(ctx, id)
	if err != nil {
		return nil, err
	}
	parent.Children = children

	return &parent, nil
}

// Update updates the base user name fields of a parent
func (r *ParentRepository) Update(ctx context.Context, parent *models.Parent) error {
	cmdTag, err := r.db.Exec(ctx, `
		UPDATE users SET first_name = $1, last_name = $2
		WHERE id = $3 AND role = $4`,
		parent.FirstName, parent.LastName, parent.ID, models.RoleParent)
	if err != nil {
		return fmt.Errorf("error updating parent: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrParentNotFound
	}
	return nil
}

// ReplaceChildren replaces the parent's children list, keeping the given order
func (r *ParentRepository) ReplaceChildren(ctx context.Context, parentID string, children []models.Child) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("error starting children update: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM children WHERE parent_id = $1`, parentID); err != nil {
		return fmt.Errorf("error clearing children: %w", err)
	}

	for position, child := range children {
		_, err := tx.Exec(ctx, `
			INSERT INTO children (id, parent_id, name, age, grade, position)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			child.ID, parentID, child.Name, child.Age, child.Grade, position)
		if err != nil {
			return fmt.Errorf("error inserting child: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error committing children update: %w", err)
	}

	return nil
}

// UpdateStatus sets the moderation status of a parent
func (r *ParentRepository) UpdateStatus(ctx context.Context, id string, status models.ParentStatus) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE parents SET status = $1 WHERE user_id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("error updating parent status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrParentNotFound
	}
	return nil
}

// CountByStatus returns the number of parent accounts per moderation status
func (r *ParentRepository) CountByStatus(ctx context.Context) (map[models.ParentStatus]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM parents GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("error counting parents: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.ParentStatus]int64)
	for rows.Next() {
		var status models.ParentStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		counts[status] = count
	}

	return counts, rows.Err()
}

// listChildren returns the parent's children in stored order
func (r *ParentRepository) listChildren(ctx context.Context, parentID string) ([]models.Child, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, parent_id, name, age, grade
		FROM children
		WHERE parent_id = $1
		ORDER BY position`, parentID)
	if err != nil {
		return nil, fmt.Errorf("error listing children: %w", err)
	}
	defer rows.Close()

	children := []models.Child{}
	for rows.Next() {
		var child models.Child
		if err := rows.Scan(&child.ID, &child.ParentID, &child.Name, &child.Age, &child.Grade); err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	return children, rows.Err()
}
