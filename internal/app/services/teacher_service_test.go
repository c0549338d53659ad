package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuteuradom/backend/internal/app/models"
	"github.com/tuteuradom/backend/internal/app/models/dto"
	"github.com/tuteuradom/backend/internal/app/repositories/memory"
	"github.com/tuteuradom/backend/internal/pkg/apperrors"
)

func newTestTeacherService(t *testing.T) (*TeacherService, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	svc := NewTeacherService(memory.Teachers{Store: store}, memory.Courses{Store: store})

	teachers := []*models.Teacher{
		{
			User:              models.User{ID: "t-math", FirstName: "Paul"},
			Subject:           "Mathematics",
			HourlyRate:        35,
			TeachingLocations: []models.TeachingLocation{models.LocationOnline},
			Status:            models.TeacherStatusActive,
		},
		{
			User:              models.User{ID: "t-physics", FirstName: "Anna"},
			Subject:           "Physics",
			HourlyRate:        50,
			TeachingLocations: []models.TeachingLocation{models.LocationHome},
			Status:            models.TeacherStatusActive,
		},
		{
			User:              models.User{ID: "t-pending", FirstName: "Jean"},
			Subject:           "Mathematics",
			HourlyRate:        20,
			TeachingLocations: []models.TeachingLocation{models.LocationOnline},
			Status:            models.TeacherStatusPending,
		},
	}
	for _, teacher := range teachers {
		require.NoError(t, memory.Teachers{Store: store}.Create(context.Background(), teacher))
	}
	return svc, store
}

func teacherIDs(teachers []*models.Teacher) []string {
	ids := make([]string, 0, len(teachers))
	for _, teacher := range teachers {
		ids = append(ids, teacher.ID)
	}
	return ids
}

func TestListTeachersOnlyActive(t *testing.T) {
	svc, _ := newTestTeacherService(t)

	out, err := svc.ListTeachers(context.Background(), dto.TeacherFilter{})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"t-math", "t-physics"}, teacherIDs(out))
}

func TestListTeachersFilters(t *testing.T) {
	svc, _ := newTestTeacherService(t)
	ctx := context.Background()

	maxRate := 40.0
	tests := []struct {
		name   string
		filter dto.TeacherFilter
		want   []string
	}{
		{name: "subject substring", filter: dto.TeacherFilter{Subject: "math"}, want: []string{"t-math"}},
		{name: "subject no match", filter: dto.TeacherFilter{Subject: "chemistry"}, want: nil},
		{name: "location", filter: dto.TeacherFilter{Location: "HOME"}, want: []string{"t-physics"}},
		{name: "max rate", filter: dto.TeacherFilter{MaxRate: &maxRate}, want: []string{"t-math"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := svc.ListTeachers(ctx, tt.filter)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, teacherIDs(out))
		})
	}
}

func TestListTeachersInvalidLocation(t *testing.T) {
	svc, _ := newTestTeacherService(t)

	_, err := svc.ListTeachers(context.Background(), dto.TeacherFilter{Location: "SPACE"})
	assert.ErrorIs(t, err, apperrors.ErrScheduleInvalidLocation)
}

func TestListTeachersBestRatedFirst(t *testing.T) {
	svc, store := newTestTeacherService(t)
	ctx := context.Background()

	require.NoError(t, memory.Teachers{Store: store}.UpdateRating(ctx, "t-physics", 4.5))
	require.NoError(t, memory.Teachers{Store: store}.UpdateRating(ctx, "t-math", 3.0))

	out, err := svc.ListTeachers(ctx, dto.TeacherFilter{})
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "t-physics", out[0].ID)
	assert.Equal(t, "t-math", out[1].ID)
}

func TestGetTeacherIncludesCourses(t *testing.T) {
	svc, store := newTestTeacherService(t)
	ctx := context.Background()

	require.NoError(t, memory.Courses{Store: store}.Create(ctx, &models.Course{
		ID: "course-1", TeacherID: "t-math", Subject: "Mathematics",
	}))

	teacher, err := svc.GetTeacher(ctx, "t-math")
	require.NoError(t, err)
	require.Len(t, teacher.Courses, 1)
	assert.Equal(t, "course-1", teacher.Courses[0].ID)

	_, err = svc.GetTeacher(ctx, "missing")
	assert.ErrorIs(t, err, apperrors.ErrTeacherNotFound)
}

func TestUpdateProfileKeepsModerationFields(t *testing.T) {
	svc, store := newTestTeacherService(t)
	ctx := context.Background()

	require.NoError(t, memory.Teachers{Store: store}.UpdateRating(ctx, "t-math", 4.2))

	updated, err := svc.UpdateProfile(ctx, "t-math", &dto.UpdateTeacherProfileRequest{
		FirstName:         "Paul",
		LastName:          "Martin",
		Subject:           "Applied mathematics",
		HourlyRate:        45,
		TeachingLocations: []string{"ONLINE", "TEACHER_PLACE"},
		Bio:               "15 years of experience",
	})
	require.NoError(t, err)

	assert.Equal(t, "Applied mathematics", updated.Subject)
	assert.Equal(t, 45.0, updated.HourlyRate)
	// rating and status are moderation-owned, not profile fields
	assert.Equal(t, 4.2, updated.Rating)
	assert.Equal(t, models.TeacherStatusActive, updated.Status)
}

func TestUpdateStatus(t *testing.T) {
	svc, _ := newTestTeacherService(t)
	ctx := context.Background()

	activated, err := svc.UpdateStatus(ctx, "t-pending", models.TeacherStatusActive)
	require.NoError(t, err)
	assert.Equal(t, models.TeacherStatusActive, activated.Status)

	// the activated profile now shows up publicly
	out, err := svc.ListTeachers(ctx, dto.TeacherFilter{})
	require.NoError(t, err)
	assert.Len(t, out, 3)

	_, err = svc.UpdateStatus(ctx, "missing", models.TeacherStatusActive)
	assert.ErrorIs(t, err, apperrors.ErrTeacherNotFound)
}
