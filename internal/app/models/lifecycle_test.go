package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestStatusTransitions(t *testing.T) {
	assert.True(t, RequestStatusPending.CanTransitionTo(RequestStatusApproved))
	assert.True(t, RequestStatusPending.CanTransitionTo(RequestStatusRejected))
	assert.False(t, RequestStatusPending.CanTransitionTo(RequestStatusPending))

	for _, terminal := range []RequestStatus{RequestStatusApproved, RequestStatusRejected} {
		assert.True(t, terminal.Terminal())
		assert.False(t, terminal.CanTransitionTo(RequestStatusPending))
		assert.False(t, terminal.CanTransitionTo(RequestStatusApproved))
	}
	assert.False(t, RequestStatusPending.Terminal())
}

func TestAppointmentStatusTransitions(t *testing.T) {
	assert.True(t, AppointmentStatusScheduled.CanTransitionTo(AppointmentStatusCompleted))
	assert.True(t, AppointmentStatusScheduled.CanTransitionTo(AppointmentStatusCancelled))

	for _, terminal := range []AppointmentStatus{AppointmentStatusCompleted, AppointmentStatusCancelled} {
		assert.True(t, terminal.Terminal())
		assert.False(t, terminal.CanTransitionTo(AppointmentStatusScheduled))
	}
	assert.False(t, AppointmentStatusScheduled.Terminal())
}

func TestParseTeachingLocation(t *testing.T) {
	for _, raw := range []string{"ONLINE", "HOME", "TEACHER_PLACE"} {
		location, ok := ParseTeachingLocation(raw)
		assert.True(t, ok)
		assert.Equal(t, TeachingLocation(raw), location)
	}

	for _, raw := range []string{"", "online", "SCHOOL"} {
		_, ok := ParseTeachingLocation(raw)
		assert.False(t, ok, "raw=%q", raw)
	}
}
