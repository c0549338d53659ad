package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuteuradom/backend/internal/app/models"
	"github.com/tuteuradom/backend/internal/app/models/dto"
	"github.com/tuteuradom/backend/internal/app/repositories/memory"
	"github.com/tuteuradom/backend/internal/pkg/apperrors"
)

func newTestReviewService(t *testing.T) (*ReviewService, memory.Teachers) {
	t.Helper()
	store := memory.NewStore()
	teachers := memory.Teachers{Store: store}

	teacher := &models.Teacher{
		User:    models.User{ID: "teacher-1", Email: "teacher@test.test", Role: models.RoleTeacher},
		Subject: "Mathematics",
		Status:  models.TeacherStatusActive,
	}
	require.NoError(t, teachers.Create(context.Background(), teacher))

	svc := NewReviewService(memory.Reviews{Store: store}, teachers)
	svc.now = func() time.Time { return time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC) }

	seq := 0
	svc.newID = func() string {
		seq++
		return fmt.Sprintf("review-%d", seq)
	}
	return svc, teachers
}

func TestCreateReview(t *testing.T) {
	svc, teachers := newTestReviewService(t)
	ctx := context.Background()

	review, err := svc.CreateReview(ctx, "parent-1", "teacher-1", &dto.CreateReviewRequest{
		Rating:  4,
		Comment: "Very patient with my son",
	})
	require.NoError(t, err)
	assert.Equal(t, "teacher-1", review.TeacherID)
	assert.Equal(t, "parent-1", review.ParentID)
	assert.Equal(t, 4, review.Rating)

	teacher, err := teachers.GetByID(ctx, "teacher-1")
	require.NoError(t, err)
	assert.Equal(t, 4.0, teacher.Rating)
}

func TestCreateReviewAveragesRatings(t *testing.T) {
	svc, teachers := newTestReviewService(t)
	ctx := context.Background()

	for _, rating := range []int{5, 4, 4} {
		_, err := svc.CreateReview(ctx, "parent-1", "teacher-1", &dto.CreateReviewRequest{Rating: rating})
		require.NoError(t, err)
	}

	// (5+4+4)/3 = 4.333..., rounded to one decimal
	teacher, err := teachers.GetByID(ctx, "teacher-1")
	require.NoError(t, err)
	assert.Equal(t, 4.3, teacher.Rating)
}

func TestCreateReviewInvalidRating(t *testing.T) {
	svc, _ := newTestReviewService(t)

	for _, rating := range []int{0, 6, -3} {
		_, err := svc.CreateReview(context.Background(), "parent-1", "teacher-1", &dto.CreateReviewRequest{Rating: rating})
		assert.ErrorIs(t, err, apperrors.ErrReviewInvalidRating, "rating=%d", rating)
	}

	reviews, err := svc.ListReviews(context.Background(), "teacher-1")
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestCreateReviewTeacherNotFound(t *testing.T) {
	svc, _ := newTestReviewService(t)

	_, err := svc.CreateReview(context.Background(), "parent-1", "missing", &dto.CreateReviewRequest{Rating: 5})
	assert.ErrorIs(t, err, apperrors.ErrTeacherNotFound)
}

func TestListReviewsNewestFirst(t *testing.T) {
	svc, _ := newTestReviewService(t)
	ctx := context.Background()

	first, err := svc.CreateReview(ctx, "parent-1", "teacher-1", &dto.CreateReviewRequest{Rating: 5, Comment: "first"})
	require.NoError(t, err)
	second, err := svc.CreateReview(ctx, "parent-2", "teacher-1", &dto.CreateReviewRequest{Rating: 3, Comment: "second"})
	require.NoError(t, err)

	reviews, err := svc.ListReviews(ctx, "teacher-1")
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, second.ID, reviews[0].ID)
	assert.Equal(t, first.ID, reviews[1].ID)
}
