// Package services holds the business logic layer.
//
// Services defined in this package:
// - AuthService: registration and login for all roles
// - LifecycleService: the request and appointment state machines
// - ResolverService: soft reference resolution for display
// - TeacherService: teacher profiles, listing and moderation
// - ParentService: parent profiles, children and moderation
// - CourseService: the course catalogue
// - ReviewService: teacher reviews and average ratings
// - StatsService: the admin dashboard aggregates
package services

import (
	"github.com/tuteuradom/backend/internal/app/repositories"
	"github.com/tuteuradom/backend/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	Auth      *AuthService
	Lifecycle *LifecycleService
	Resolver  *ResolverService
	Teacher   *TeacherService
	Parent    *ParentService
	Course    *CourseService
	Review    *ReviewService
	Stats     *StatsService
}

// NewServices wires all services onto the repository layer
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		Auth:      NewAuthService(repos.UserRepository, repos.TeacherRepository, repos.ParentRepository, jwtService),
		Lifecycle: NewLifecycleService(repos.RequestRepository, repos.AppointmentRepository),
		Resolver:  NewResolverService(repos.ParentRepository, repos.TeacherRepository, repos.CourseRepository),
		Teacher:   NewTeacherService(repos.TeacherRepository, repos.CourseRepository),
		Parent:    NewParentService(repos.ParentRepository),
		Course:    NewCourseService(repos.CourseRepository, repos.TeacherRepository),
		Review:    NewReviewService(repos.ReviewRepository, repos.TeacherRepository),
		Stats:     NewStatsService(repos.TeacherRepository, repos.ParentRepository, repos.RequestRepository, repos.AppointmentRepository),
	}
}
