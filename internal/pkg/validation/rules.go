package validation

import (
	"time"

	"github.com/tuteuradom/backend/internal/pkg/apperrors"
)

// Wire formats for scheduling values
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// Password and name constraints shared with the DTO binding tags
const (
	PasswordMinLength = 8
	NameMinLength     = 2
	NameMaxLength     = 100
)

// ParseDate validates a calendar date in YYYY-MM-DD form
func ParseDate(raw string) (time.Time, error) {
	date, err := time.Parse(DateLayout, raw)
	if err != nil {
		return time.Time{}, apperrors.NewValidationError("date must be in YYYY-MM-DD format")
	}
	return date, nil
}

// ParseClock validates a clock value in HH:MM form
func ParseClock(raw string) (time.Time, error) {
	t, err := time.Parse(ClockLayout, raw)
	if err != nil {
		return time.Time{}, apperrors.ErrScheduleInvalidTime
	}
	return t, nil
}

// ValidateSchedule checks the scheduling constraints enforced at appointment
// creation: the date must not be before the current day and the start time
// must be strictly before the end time. Returns the parsed date on success.
// The constraints are not re-checked after creation.
func ValidateSchedule(now time.Time, dateRaw, startRaw, endRaw string) (time.Time, error) {
	date, err := ParseDate(dateRaw)
	if err != nil {
		return time.Time{}, err
	}

	start, err := ParseClock(startRaw)
	if err != nil {
		return time.Time{}, err
	}
	end, err := ParseClock(endRaw)
	if err != nil {
		return time.Time{}, err
	}

	if !start.Before(end) {
		return time.Time{}, apperrors.ErrScheduleTimesOutOfOrder
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.Before(today) {
		return time.Time{}, apperrors.ErrScheduleDateInPast
	}

	return date, nil
}

// ValidateRating checks a review rating is within the 1..5 scale
func ValidateRating(rating int) error {
	if rating < 1 || rating > 5 {
		return apperrors.ErrReviewInvalidRating
	}
	return nil
}
