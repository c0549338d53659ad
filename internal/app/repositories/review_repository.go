package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tuteuradom/backend/internal/app/models"
)

// ReviewRepository handles database operations for teacher reviews
type ReviewRepository struct {
	db *pgxpool.Pool
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{
		db: db,
	}
}

// Create inserts a new review
func (r *ReviewRepository) Create(ctx context.Context, review *models.Review) error {
	query := `
		INSERT INTO reviews (id, teacher_id, parent_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID, review.TeacherID, review.ParentID, review.Rating, review.Comment, review.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating review: %w", err)
	}

	return nil
}

// ListByTeacher retrieves all reviews of a teacher, newest first
func (r *ReviewRepository) ListByTeacher(ctx context.Context, teacherID string) ([]*models.Review, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, teacher_id, parent_id, rating, comment, created_at
		FROM reviews
		WHERE teacher_id = $1
		ORDER BY created_at DESC`, teacherID)
	if err != nil {
		return nil, fmt.Errorf("error listing reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*models.Review
	for rows.Next() {
		var review models.Review
		err := rows.Scan(
			&review.ID,
			&review.TeacherID,
			&review.ParentID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, &review)
	}

	return reviews, rows.Err()
}
