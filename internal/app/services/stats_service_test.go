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

func TestGetStatsEmpty(t *testing.T) {
	store := memory.NewStore()
	svc := NewStatsService(memory.Teachers{Store: store}, memory.Parents{Store: store},
		memory.Requests{Store: store}, memory.Appointments{Store: store})

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	// every status is present even with no entities
	assert.Equal(t, map[string]int64{"PENDING": 0, "ACTIVE": 0, "SUSPENDED": 0}, stats.Teachers.Counts)
	assert.Equal(t, map[string]int64{"ACTIVE": 0, "BLOCKED": 0}, stats.Parents.Counts)
	assert.Equal(t, map[string]int64{"PENDING": 0, "APPROVED": 0, "REJECTED": 0}, stats.Requests.Counts)
	assert.Equal(t, map[string]int64{"SCHEDULED": 0, "COMPLETED": 0, "CANCELLED": 0}, stats.Appointments.Counts)
	assert.Zero(t, stats.Requests.Total)
}

func TestGetStats(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	require.NoError(t, memory.Teachers{Store: store}.Create(ctx, &models.Teacher{
		User: models.User{ID: "t-1"}, Status: models.TeacherStatusActive,
	}))
	require.NoError(t, memory.Teachers{Store: store}.Create(ctx, &models.Teacher{
		User: models.User{ID: "t-2"}, Status: models.TeacherStatusPending,
	}))
	require.NoError(t, memory.Parents{Store: store}.Create(ctx, &models.Parent{
		User: models.User{ID: "p-1"}, Status: models.ParentStatusBlocked,
	}))

	now := time.Now()
	statuses := []models.RequestStatus{
		models.RequestStatusPending,
		models.RequestStatusPending,
		models.RequestStatusApproved,
		models.RequestStatusRejected,
	}
	for i, status := range statuses {
		require.NoError(t, memory.Requests{Store: store}.Create(ctx, &models.Request{
			ID: string(rune('a' + i)), ParentID: "p-1", TeacherID: "t-1", Status: status, CreatedAt: now,
		}))
	}
	require.NoError(t, memory.Appointments{Store: store}.Create(ctx, &models.Appointment{
		ID: "appt-1", Status: models.AppointmentStatusScheduled, CreatedAt: now,
	}))

	svc := NewStatsService(memory.Teachers{Store: store}, memory.Parents{Store: store},
		memory.Requests{Store: store}, memory.Appointments{Store: store})

	stats, err := svc.GetStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.Teachers.Counts["ACTIVE"])
	assert.Equal(t, int64(1), stats.Teachers.Counts["PENDING"])
	assert.Equal(t, int64(2), stats.Teachers.Total)

	assert.Equal(t, int64(1), stats.Parents.Counts["BLOCKED"])
	assert.Equal(t, int64(0), stats.Parents.Counts["ACTIVE"])

	assert.Equal(t, int64(2), stats.Requests.Counts["PENDING"])
	assert.Equal(t, int64(1), stats.Requests.Counts["APPROVED"])
	assert.Equal(t, int64(1), stats.Requests.Counts["REJECTED"])
	assert.Equal(t, int64(4), stats.Requests.Total)

	assert.Equal(t, int64(1), stats.Appointments.Counts["SCHEDULED"])
	assert.Equal(t, int64(1), stats.Appointments.Total)
}
