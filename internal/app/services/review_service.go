package services

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/tuteuradom/backend/internal/app/models"
	"github.com/tuteuradom/backend/internal/app/models/dto"
	"github.com/tuteuradom/backend/internal/app/repositories"
	"github.com/tuteuradom/backend/internal/pkg/validation"
)

// ReviewService handles parent reviews of teachers and keeps the teacher's
// average rating in sync
type ReviewService struct {
	reviews  repositories.ReviewStore
	teachers repositories.TeacherStore

	now   func() time.Time
	newID func() string
}

// NewReviewService creates a new review service instance
func NewReviewService(reviews repositories.ReviewStore, teachers repositories.TeacherStore) *ReviewService {
	return &ReviewService{
		reviews:  reviews,
		teachers: teachers,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
}

// CreateReview records a parent's rating of a teacher and recomputes the
// teacher's average rating
func (s *ReviewService) CreateReview(ctx context.Context, parentID, teacherID string, req *dto.CreateReviewRequest) (*models.Review, error) {
	if err := validation.ValidateRating(req.Rating); err != nil {
		return nil, err
	}
	if _, err := s.teachers.GetByID(ctx, teacherID); err != nil {
		return nil, err
	}

	review := &models.Review{
		ID:        s.newID(),
		TeacherID: teacherID,
		ParentID:  parentID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: s.now(),
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}

	if err := s.refreshRating(ctx, teacherID); err != nil {
		return nil, err
	}

	return review, nil
}

// ListReviews returns all reviews of a teacher, newest first
func (s *ReviewService) ListReviews(ctx context.Context, teacherID string) ([]*models.Review, error) {
	if _, err := s.teachers.GetByID(ctx, teacherID); err != nil {
		return nil, err
	}
	return s.reviews.ListByTeacher(ctx, teacherID)
}

// refreshRating stores the average of all ratings, rounded to one decimal
func (s *ReviewService) refreshRating(ctx context.Context, teacherID string) error {
	reviews, err := s.reviews.ListByTeacher(ctx, teacherID)
	if err != nil {
		return err
	}
	if len(reviews) == 0 {
		return s.teachers.UpdateRating(ctx, teacherID, 0)
	}

	var sum int
	for _, review := range reviews {
		sum += review.Rating
	}
	average := math.Round(float64(sum)/float64(len(reviews))*10) / 10

	return s.teachers.UpdateRating(ctx, teacherID, average)
}
