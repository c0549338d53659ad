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

var testClock = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

// newTestLifecycleService returns a service backed by the in-memory store,
// with a fixed clock and sequential ids so assertions are deterministic.
func newTestLifecycleService() *LifecycleService {
	store := memory.NewStore()
	svc := NewLifecycleService(memory.Requests{Store: store}, memory.Appointments{Store: store})
	svc.now = func() time.Time { return testClock }

	seq := 0
	svc.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return svc
}

func validSchedule() *dto.ScheduleRequest {
	return &dto.ScheduleRequest{
		Date:      "2026-09-15",
		StartTime: "14:00",
		EndTime:   "15:00",
		Location:  "ONLINE",
	}
}

func TestCreateRequest(t *testing.T) {
	svc := newTestLifecycleService()
	ctx := context.Background()

	request, err := svc.CreateRequest(ctx, "parent-1", &dto.CreateRequestRequest{
		TeacherID: "teacher-1",
		CourseID:  "course-1",
		Message:   "My daughter needs help with algebra",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, request.ID)
	assert.Equal(t, "parent-1", request.ParentID)
	assert.Equal(t, "teacher-1", request.TeacherID)
	assert.Equal(t, "course-1", request.CourseID)
	assert.Equal(t, models.RequestStatusPending, request.Status)
	assert.Equal(t, testClock, request.CreatedAt)

	stored, err := svc.GetRequest(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, request, stored)
}

func TestCreateRequestDoesNotCheckReferences(t *testing.T) {
	svc := newTestLifecycleService()

	// teacher and course ids are stored as given; resolution happens later
	request, err := svc.CreateRequest(context.Background(), "parent-1", &dto.CreateRequestRequest{
		TeacherID: "no-such-teacher",
		CourseID:  "no-such-course",
		Message:   "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, request.Status)
}

func TestApproveRequest(t *testing.T) {
	svc := newTestLifecycleService()
	ctx := context.Background()

	request, err := svc.CreateRequest(ctx, "parent-1", &dto.CreateRequestRequest{
		TeacherID: "teacher-1", CourseID: "course-1", Message: "hi",
	})
	require.NoError(t, err)

	appointment, err := svc.ApproveRequest(ctx, request.ID, validSchedule())
	require.NoError(t, err)

	assert.NotEmpty(t, appointment.ID)
	assert.NotEqual(t, request.ID, appointment.ID)
	assert.Equal(t, request.ID, appointment.RequestID)
	assert.Equal(t, "parent-1", appointment.ParentID)
	assert.Equal(t, "teacher-1", appointment.TeacherID)
	assert.Equal(t, models.AppointmentStatusScheduled, appointment.Status)
	assert.Equal(t, "14:00", appointment.StartTime)
	assert.Equal(t, "15:00", appointment.EndTime)
	assert.Equal(t, models.LocationOnline, appointment.Location)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), appointment.Date)

	updated, err := svc.GetRequest(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusApproved, updated.Status)
}

func TestApproveRequestNotFound(t *testing.T) {
	svc := newTestLifecycleService()

	_, err := svc.ApproveRequest(context.Background(), "missing", validSchedule())
	assert.ErrorIs(t, err, apperrors.ErrRequestNotFound)
}

func TestApproveRequestNotPending(t *testing.T) {
	svc := newTestLifecycleService()
	ctx := context.Background()

	request, err := svc.CreateRequest(ctx, "parent-1", &dto.CreateRequestRequest{
		TeacherID: "teacher-1", CourseID: "course-1", Message: "hi",
	})
	require.NoError(t, err)

	_, err = svc.RejectRequest(ctx, request.ID)
	require.NoError(t, err)

	_, err = svc.ApproveRequest(ctx, request.ID, validSchedule())
	assert.ErrorIs(t, err, apperrors.ErrRequestNotPending)
}

func TestApproveRequestBadSchedule(t *testing.T) {
	tests := []struct {
		name     string
		schedule dto.ScheduleRequest
		wantErr  error
	}{
		{
			name:     "date in the past",
			schedule: dto.ScheduleRequest{Date: "2026-08-31", StartTime: "14:00", EndTime: "15:00", Location: "ONLINE"},
			wantErr:  apperrors.ErrScheduleDateInPast,
		},
		{
			name:     "malformed date",
			schedule: dto.ScheduleRequest{Date: "15/09/2026", StartTime: "14:00", EndTime: "15:00", Location: "ONLINE"},
			wantErr:  apperrors.ErrValidationFailed,
		},
		{
			name:     "malformed start time",
			schedule: dto.ScheduleRequest{Date: "2026-09-15", StartTime: "2pm", EndTime: "15:00", Location: "ONLINE"},
			wantErr:  apperrors.ErrScheduleInvalidTime,
		},
		{
			name:     "start equals end",
			schedule: dto.ScheduleRequest{Date: "2026-09-15", StartTime: "14:00", EndTime: "14:00", Location: "ONLINE"},
			wantErr:  apperrors.ErrScheduleTimesOutOfOrder,
		},
		{
			name:     "start after end",
			schedule: dto.ScheduleRequest{Date: "2026-09-15", StartTime: "16:00", EndTime: "15:00", Location: "ONLINE"},
			wantErr:  apperrors.ErrScheduleTimesOutOfOrder,
		},
		{
			name:     "unknown location",
			schedule: dto.ScheduleRequest{Date: "2026-09-15", StartTime: "14:00", EndTime: "15:00", Location: "MOON"},
			wantErr:  apperrors.ErrScheduleInvalidLocation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestLifecycleService()
			ctx := context.Background()

			request, err := svc.CreateRequest(ctx, "parent-1", &dto.CreateRequestRequest{
				TeacherID: "teacher-1", CourseID: "course-1", Message: "hi",
			})
			require.NoError(t, err)

			_, err = svc.ApproveRequest(ctx, request.ID, &tt.schedule)
			assert.ErrorIs(t, err, tt.wantErr)

			// a rejected schedule must leave the request approvable
			stored, err := svc.GetRequest(ctx, request.ID)
			require.NoError(t, err)
			assert.Equal(t, models.RequestStatusPending, stored.Status)

			appointments, err := svc.ListAppointmentsByParent(ctx, "parent-1")
			require.NoError(t, err)
			assert.Empty(t, appointments)
		})
	}
}

func TestApproveRequestTodayIsAllowed(t *testing.T) {
	svc := newTestLifecycleService()
	ctx := context.Background()

	request, err := svc.CreateRequest(ctx, "parent-1", &dto.CreateRequestRequest{
		TeacherID: "teacher-1", CourseID: "course-1", Message: "hi",
	})
	require.NoError(t, err)

	// the clock is 2026-09-01 10:00; same-day scheduling is fine even if
	// the time of day already passed
	appointment, err := svc.ApproveRequest(ctx, request.ID, &dto.ScheduleRequest{
		Date: "2026-09-01", StartTime: "08:00", EndTime: "09:00", Location: "HOME",
	})
	require.NoError(t, err)
	assert.Equal(t, models.LocationHome, appointment.Location)
}

func TestRejectRequest(t *testing.T) {
	svc := newTestLifecycleService()
	ctx := context.Background()

	request, err := svc.CreateRequest(ctx, "parent-1", &dto.CreateRequestRequest{
		TeacherID: "teacher-1", CourseID: "course-1", Message: "hi",
	})
	require.NoError(t, err)

	rejected, err := svc.RejectRequest(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusRejected, rejected.Status)

	// rejection is terminal
	_, err = svc.RejectRequest(ctx, request.ID)
	assert.ErrorIs(t, err, apperrors.ErrRequestNotPending)

	appointments, err := svc.ListAppointmentsByParent(ctx, "parent-1")
	require.NoError(t, err)
	assert.Empty(t, appointments)
}

func TestRejectRequestNotFound(t *testing.T) {
	svc := newTestLifecycleService()

	_, err := svc.RejectRequest(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrRequestNotFound)
}

func TestListPendingRequests(t *testing.T) {
	svc := newTestLifecycleService()
	ctx := context.Background()

	times := []time.Time{
		testClock.Add(2 * time.Hour),
		testClock,
		testClock.Add(time.Hour),
	}
	var ids []string
	for i, created := range times {
		svc.now = func() time.Time { return created }
		request, err := svc.CreateRequest(ctx, "parent-1", &dto.CreateRequestRequest{
			TeacherID: "teacher-1", CourseID: "course-1", Message: fmt.Sprintf("request %d", i),
		})
		require.NoError(t, err)
		ids = append(ids, request.ID)
	}
	svc.now = func() time.Time { return testClock }

	// decided requests drop out of the pending listing
	_, err := svc.RejectRequest(ctx, ids[2])
	require.NoError(t, err)

	pending, err := svc.ListPendingRequests(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)

	// oldest first
	assert.Equal(t, ids[1], pending[0].ID)
	assert.Equal(t, ids[0], pending[1].ID)
}

func TestListRequestsByParty(t *testing.T) {
	svc := newTestLifecycleService()
	ctx := context.Background()

	r1, err := svc.CreateRequest(ctx, "parent-1", &dto.CreateRequestRequest{
		TeacherID: "teacher-1", CourseID: "course-1", Message: "a",
	})
	require.NoError(t, err)
	_, err = svc.CreateRequest(ctx, "parent-2", &dto.CreateRequestRequest{
		TeacherID: "teacher-2", CourseID: "course-2", Message: "b",
	})
	require.NoError(t, err)

	byParent, err := svc.ListRequestsByParent(ctx, "parent-1")
	require.NoError(t, err)
	require.Len(t, byParent, 1)
	assert.Equal(t, r1.ID, byParent[0].ID)

	byTeacher, err := svc.ListRequestsByTeacher(ctx, "teacher-2")
	require.NoError(t, err)
	require.Len(t, byTeacher, 1)
	assert.Equal(t, "parent-2", byTeacher[0].ParentID)

	byOther, err := svc.ListRequestsByTeacher(ctx, "teacher-3")
	require.NoError(t, err)
	assert.Empty(t, byOther)
}

func approvedAppointment(t *testing.T, svc *LifecycleService) *models.Appointment {
	t.Helper()
	ctx := context.Background()

	request, err := svc.CreateRequest(ctx, "parent-1", &dto.CreateRequestRequest{
		TeacherID: "teacher-1", CourseID: "course-1", Message: "hi",
	})
	require.NoError(t, err)

	appointment, err := svc.ApproveRequest(ctx, request.ID, validSchedule())
	require.NoError(t, err)
	return appointment
}

func TestCompleteAppointment(t *testing.T) {
	svc := newTestLifecycleService()
	ctx := context.Background()
	appointment := approvedAppointment(t, svc)

	completed, err := svc.CompleteAppointment(ctx, appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentStatusCompleted, completed.Status)

	// completion is terminal
	_, err = svc.CompleteAppointment(ctx, appointment.ID)
	assert.ErrorIs(t, err, apperrors.ErrAppointmentNotScheduled)
	_, err = svc.CancelAppointment(ctx, appointment.ID)
	assert.ErrorIs(t, err, apperrors.ErrAppointmentNotScheduled)
}

func TestCancelAppointment(t *testing.T) {
	svc := newTestLifecycleService()
	ctx := context.Background()
	appointment := approvedAppointment(t, svc)

	cancelled, err := svc.CancelAppointment(ctx, appointment.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentStatusCancelled, cancelled.Status)

	// cancelling the appointment does not reopen the request
	request, err := svc.GetRequest(ctx, appointment.RequestID)
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusApproved, request.Status)
}

func TestFinishAppointmentNotFound(t *testing.T) {
	svc := newTestLifecycleService()

	_, err := svc.CompleteAppointment(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrAppointmentNotFound)

	_, err = svc.CancelAppointment(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrAppointmentNotFound)
}

func TestListAppointmentsByParty(t *testing.T) {
	svc := newTestLifecycleService()
	ctx := context.Background()
	appointment := approvedAppointment(t, svc)

	byParent, err := svc.ListAppointmentsByParent(ctx, "parent-1")
	require.NoError(t, err)
	require.Len(t, byParent, 1)
	assert.Equal(t, appointment.ID, byParent[0].ID)

	byTeacher, err := svc.ListAppointmentsByTeacher(ctx, "teacher-1")
	require.NoError(t, err)
	require.Len(t, byTeacher, 1)

	none, err := svc.ListAppointmentsByTeacher(ctx, "teacher-9")
	require.NoError(t, err)
	assert.Empty(t, none)
}
