package services

import (
	"context"

	"github.com/tuteuradom/backend/internal/app/models"
	"github.com/tuteuradom/backend/internal/app/models/dto"
	"github.com/tuteuradom/backend/internal/app/repositories"
)

// StatsService aggregates entity counts for the admin dashboard
type StatsService struct {
	teachers     repositories.TeacherStore
	parents      repositories.ParentStore
	requests     repositories.RequestStore
	appointments repositories.AppointmentStore
}

// NewStatsService creates a new stats service instance
func NewStatsService(teachers repositories.TeacherStore, parents repositories.ParentStore, requests repositories.RequestStore, appointments repositories.AppointmentStore) *StatsService {
	return &StatsService{
		teachers:     teachers,
		parents:      parents,
		requests:     requests,
		appointments: appointments,
	}
}

// GetStats returns per-status counts for teachers, parents, requests and
// appointments. Statuses with no entities are reported as zero so the
// dashboard always sees the full breakdown.
func (s *StatsService) GetStats(ctx context.Context) (*dto.StatsResponse, error) {
	teacherCounts, err := s.teachers.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	parentCounts, err := s.parents.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	requestCounts, err := s.requests.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	appointmentCounts, err := s.appointments.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	stats := &dto.StatsResponse{
		Teachers: statusCounts(map[string]int64{
			string(models.TeacherStatusPending):   teacherCounts[models.TeacherStatusPending],
			string(models.TeacherStatusActive):    teacherCounts[models.TeacherStatusActive],
			string(models.TeacherStatusSuspended): teacherCounts[models.TeacherStatusSuspended],
		}),
		Parents: statusCounts(map[string]int64{
			string(models.ParentStatusActive):  parentCounts[models.ParentStatusActive],
			string(models.ParentStatusBlocked): parentCounts[models.ParentStatusBlocked],
		}),
		Requests: statusCounts(map[string]int64{
			string(models.RequestStatusPending):  requestCounts[models.RequestStatusPending],
			string(models.RequestStatusApproved): requestCounts[models.RequestStatusApproved],
			string(models.RequestStatusRejected): requestCounts[models.RequestStatusRejected],
		}),
		Appointments: statusCounts(map[string]int64{
			string(models.AppointmentStatusScheduled): appointmentCounts[models.AppointmentStatusScheduled],
			string(models.AppointmentStatusCompleted): appointmentCounts[models.AppointmentStatusCompleted],
			string(models.AppointmentStatusCancelled): appointmentCounts[models.AppointmentStatusCancelled],
		}),
	}

	return stats, nil
}

func statusCounts(counts map[string]int64) dto.StatusCounts {
	var total int64
	for _, count := range counts {
		total += count
	}
	return dto.StatusCounts{Counts: counts, Total: total}
}
