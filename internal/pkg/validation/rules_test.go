package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuteuradom/backend/internal/pkg/apperrors"
)

func TestParseDate(t *testing.T) {
	date, err := ParseDate("2026-09-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), date)

	for _, raw := range []string{"", "15/09/2026", "2026-9-15", "2026-09-15T10:00", "tomorrow"} {
		_, err := ParseDate(raw)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed, "raw=%q", raw)
	}
}

func TestParseClock(t *testing.T) {
	for _, raw := range []string{"00:00", "09:30", "23:59"} {
		_, err := ParseClock(raw)
		assert.NoError(t, err, "raw=%q", raw)
	}

	for _, raw := range []string{"", "24:00", "14:60", "2pm", "14:00:00"} {
		_, err := ParseClock(raw)
		assert.ErrorIs(t, err, apperrors.ErrScheduleInvalidTime, "raw=%q", raw)
	}
}

func TestValidateSchedule(t *testing.T) {
	now := time.Date(2026, 9, 1, 18, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		date    string
		start   string
		end     string
		wantErr error
	}{
		{name: "future date", date: "2026-09-15", start: "14:00", end: "15:00"},
		{name: "today", date: "2026-09-01", start: "08:00", end: "09:00"},
		{name: "yesterday", date: "2026-08-31", start: "14:00", end: "15:00", wantErr: apperrors.ErrScheduleDateInPast},
		{name: "bad date", date: "not-a-date", start: "14:00", end: "15:00", wantErr: apperrors.ErrValidationFailed},
		{name: "bad start", date: "2026-09-15", start: "xx", end: "15:00", wantErr: apperrors.ErrScheduleInvalidTime},
		{name: "bad end", date: "2026-09-15", start: "14:00", end: "xx", wantErr: apperrors.ErrScheduleInvalidTime},
		{name: "start equals end", date: "2026-09-15", start: "14:00", end: "14:00", wantErr: apperrors.ErrScheduleTimesOutOfOrder},
		{name: "start after end", date: "2026-09-15", start: "16:00", end: "15:00", wantErr: apperrors.ErrScheduleTimesOutOfOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := ValidateSchedule(now, tt.date, tt.start, tt.end)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.date, date.Format(DateLayout))
		})
	}
}

func TestValidateRating(t *testing.T) {
	for rating := 1; rating <= 5; rating++ {
		assert.NoError(t, ValidateRating(rating))
	}
	assert.ErrorIs(t, ValidateRating(0), apperrors.ErrReviewInvalidRating)
	assert.ErrorIs(t, ValidateRating(6), apperrors.ErrReviewInvalidRating)
	assert.ErrorIs(t, ValidateRating(-1), apperrors.ErrReviewInvalidRating)
}
