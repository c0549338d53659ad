package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuteuradom/backend/internal/app/models"
	"github.com/tuteuradom/backend/internal/app/repositories/memory"
)

func seedParty(t *testing.T, store *memory.Store) (*models.Parent, *models.Teacher, *models.Course) {
	t.Helper()
	ctx := context.Background()

	parent := &models.Parent{
		User:   models.User{ID: "parent-1", Email: "parent@test.test", FirstName: "Marie", LastName: "Dupont", Role: models.RoleParent},
		Status: models.ParentStatusActive,
	}
	require.NoError(t, memory.Parents{Store: store}.Create(ctx, parent))

	teacher := &models.Teacher{
		User:              models.User{ID: "teacher-1", Email: "teacher@test.test", FirstName: "Paul", LastName: "Martin", Role: models.RoleTeacher},
		Subject:           "Mathematics",
		HourlyRate:        35,
		TeachingLocations: []models.TeachingLocation{models.LocationOnline},
		Status:            models.TeacherStatusActive,
	}
	require.NoError(t, memory.Teachers{Store: store}.Create(ctx, teacher))

	course := &models.Course{
		ID:          "course-1",
		TeacherID:   "teacher-1",
		Subject:     "Mathematics",
		Description: "Algebra basics",
	}
	require.NoError(t, memory.Courses{Store: store}.Create(ctx, course))

	return parent, teacher, course
}

func TestResolveRequest(t *testing.T) {
	store := memory.NewStore()
	seedParty(t, store)
	svc := NewResolverService(memory.Parents{Store: store}, memory.Teachers{Store: store}, memory.Courses{Store: store})

	request := &models.Request{
		ID:        "req-1",
		ParentID:  "parent-1",
		TeacherID: "teacher-1",
		CourseID:  "course-1",
		Status:    models.RequestStatusPending,
	}

	details := svc.ResolveRequest(context.Background(), request)
	require.NotNil(t, details.Parent)
	require.NotNil(t, details.Teacher)
	require.NotNil(t, details.Course)
	assert.Equal(t, "Marie", details.Parent.FirstName)
	assert.Equal(t, "Mathematics", details.Teacher.Subject)
	assert.Equal(t, "Algebra basics", details.Course.Description)
}

func TestResolveRequestMissingReferences(t *testing.T) {
	store := memory.NewStore()
	seedParty(t, store)
	svc := NewResolverService(memory.Parents{Store: store}, memory.Teachers{Store: store}, memory.Courses{Store: store})

	// only the parent still resolves; the others yield null fields
	request := &models.Request{
		ID:        "req-1",
		ParentID:  "parent-1",
		TeacherID: "deleted-teacher",
		CourseID:  "deleted-course",
		Status:    models.RequestStatusPending,
	}

	details := svc.ResolveRequest(context.Background(), request)
	assert.NotNil(t, details.Parent)
	assert.Nil(t, details.Teacher)
	assert.Nil(t, details.Course)
	assert.Equal(t, request.ID, details.Request.ID)
}

func TestResolveAppointment(t *testing.T) {
	store := memory.NewStore()
	seedParty(t, store)
	svc := NewResolverService(memory.Parents{Store: store}, memory.Teachers{Store: store}, memory.Courses{Store: store})

	appointment := &models.Appointment{
		ID:        "appt-1",
		RequestID: "req-1",
		ParentID:  "parent-1",
		TeacherID: "teacher-1",
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime: "14:00",
		EndTime:   "15:00",
		Location:  models.LocationOnline,
		Status:    models.AppointmentStatusScheduled,
	}

	details := svc.ResolveAppointment(context.Background(), appointment)
	require.NotNil(t, details.Parent)
	require.NotNil(t, details.Teacher)
	assert.Equal(t, "2026-09-15", details.Date)
	assert.Equal(t, models.AppointmentStatusScheduled, details.Status)
}

func TestResolveAppointmentMissingReferences(t *testing.T) {
	store := memory.NewStore()
	svc := NewResolverService(memory.Parents{Store: store}, memory.Teachers{Store: store}, memory.Courses{Store: store})

	appointment := &models.Appointment{
		ID:        "appt-1",
		ParentID:  "gone",
		TeacherID: "gone-too",
		Date:      time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Status:    models.AppointmentStatusScheduled,
	}

	details := svc.ResolveAppointment(context.Background(), appointment)
	assert.Nil(t, details.Parent)
	assert.Nil(t, details.Teacher)
	assert.Equal(t, "appt-1", details.ID)
}

func TestResolveRequestsPreservesOrder(t *testing.T) {
	store := memory.NewStore()
	seedParty(t, store)
	svc := NewResolverService(memory.Parents{Store: store}, memory.Teachers{Store: store}, memory.Courses{Store: store})

	requests := []*models.Request{
		{ID: "req-1", ParentID: "parent-1", TeacherID: "teacher-1", CourseID: "course-1"},
		{ID: "req-2", ParentID: "parent-1", TeacherID: "gone", CourseID: "course-1"},
	}

	details := svc.ResolveRequests(context.Background(), requests)
	require.Len(t, details, 2)
	assert.Equal(t, "req-1", details[0].Request.ID)
	assert.Equal(t, "req-2", details[1].Request.ID)
	assert.NotNil(t, details[0].Teacher)
	assert.Nil(t, details[1].Teacher)
}
