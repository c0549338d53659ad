package repositories

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tuteuradom/backend/internal/app/models"
)

// UserStore handles persistence for base user accounts
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

// TeacherStore handles persistence for teacher profiles
type TeacherStore interface {
	Create(ctx context.Context, teacher *models.Teacher) error
	GetByID(ctx context.Context, id string) (*models.Teacher, error)
	List(ctx context.Context, subject, location *string, maxRate *float64, onlyActive bool) ([]*models.Teacher, error)
	Update(ctx context.Context, teacher *models.Teacher) error
	UpdateStatus(ctx context.Context, id string, status models.TeacherStatus) error
	UpdateRating(ctx context.Context, id string, rating float64) error
	CountByStatus(ctx context.Context) (map[models.TeacherStatus]int64, error)
}

// ParentStore handles persistence for parent accounts and their children
type ParentStore interface {
	Create(ctx context.Context, parent *models.Parent) error
	GetByID(ctx context.Context, id string) (*models.Parent, error)
	Update(ctx context.Context, parent *models.Parent) error
	ReplaceChildren(ctx context.Context, parentID string, children []models.Child) error
	UpdateStatus(ctx context.Context, id string, status models.ParentStatus) error
	CountByStatus(ctx context.Context) (map[models.ParentStatus]int64, error)
}

// CourseStore handles persistence for courses
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id string) (*models.Course, error)
	ListAll(ctx context.Context) ([]*models.Course, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]*models.Course, error)
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id string) error
}

// RequestStore handles persistence for course requests.
// Listings are ordered by creation time ascending.
type RequestStore interface {
	Create(ctx context.Context, request *models.Request) error
	GetByID(ctx context.Context, id string) (*models.Request, error)
	ListByStatus(ctx context.Context, status models.RequestStatus) ([]*models.Request, error)
	ListByParent(ctx context.Context, parentID string) ([]*models.Request, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]*models.Request, error)
	ListAll(ctx context.Context) ([]*models.Request, error)
	// UpdateStatus performs a compare-and-set transition. It fails with
	// apperrors.ErrRequestNotFound when the id does not resolve and with
	// apperrors.ErrRequestNotPending when the request is not in the
	// expected source state.
	UpdateStatus(ctx context.Context, id string, from, to models.RequestStatus) error
	CountByStatus(ctx context.Context) (map[models.RequestStatus]int64, error)
}

// AppointmentStore handles persistence for appointments
type AppointmentStore interface {
	Create(ctx context.Context, appointment *models.Appointment) error
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	ListByParent(ctx context.Context, parentID string) ([]*models.Appointment, error)
	ListByTeacher(ctx context.Context, teacherID string) ([]*models.Appointment, error)
	ListAll(ctx context.Context) ([]*models.Appointment, error)
	// UpdateStatus performs a compare-and-set transition, mirroring
	// RequestStore.UpdateStatus.
	UpdateStatus(ctx context.Context, id string, from, to models.AppointmentStatus) error
	CountByStatus(ctx context.Context) (map[models.AppointmentStatus]int64, error)
}

// ReviewStore handles persistence for teacher reviews
type ReviewStore interface {
	Create(ctx context.Context, review *models.Review) error
	ListByTeacher(ctx context.Context, teacherID string) ([]*models.Review, error)
}

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository        *UserRepository
	TeacherRepository     *TeacherRepository
	ParentRepository      *ParentRepository
	CourseRepository      *CourseRepository
	RequestRepository     *RequestRepository
	AppointmentRepository *AppointmentRepository
	ReviewRepository      *ReviewRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:        NewUserRepository(db),
		TeacherRepository:     NewTeacherRepository(db),
		ParentRepository:      NewParentRepository(db),
		CourseRepository:      NewCourseRepository(db),
		RequestRepository:     NewRequestRepository(db),
		AppointmentRepository: NewAppointmentRepository(db),
		ReviewRepository:      NewReviewRepository(db),
	}
}
