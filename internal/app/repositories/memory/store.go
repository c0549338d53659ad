// Package memory provides an in-memory implementation of the repository
// store interfaces. It backs the service tests and small deployments that
// do not need PostgreSQL; every operation is atomic under a single mutex.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/tuteuradom/backend/internal/app/models"
	"github.com/tuteuradom/backend/internal/pkg/apperrors"
)

// Store keeps all entities in maps keyed by id. Listing order follows
// creation time, with insertion order breaking ties.
type Store struct {
	mu sync.Mutex

	users        map[string]*models.User
	teachers     map[string]*models.Teacher
	parents      map[string]*models.Parent
	courses      map[string]*models.Course
	requests     map[string]*models.Request
	appointments map[string]*models.Appointment
	reviews      map[string]*models.Review

	seq     uint64
	inserts map[string]uint64
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		users:        make(map[string]*models.User),
		teachers:     make(map[string]*models.Teacher),
		parents:      make(map[string]*models.Parent),
		courses:      make(map[string]*models.Course),
		requests:     make(map[string]*models.Request),
		appointments: make(map[string]*models.Appointment),
		reviews:      make(map[string]*models.Review),
		inserts:      make(map[string]uint64),
	}
}

func (s *Store) track(id string) {
	s.seq++
	s.inserts[id] = s.seq
}

// ---- UserStore ----

func (s *Store) CreateUser(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := *user
	s.users[u.ID] = &u
	s.track(u.ID)
	return nil
}

func (s *Store) GetUserByID(_ context.Context, id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	u := *user
	return &u, nil
}

func (s *Store) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if strings.EqualFold(user.Email, email) {
			u := *user
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (s *Store) EmailExists(_ context.Context, email string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if strings.EqualFold(user.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

// Users adapts the store to the user interface
type Users struct{ *Store }

func (u Users) Create(ctx context.Context, user *models.User) error {
	return u.CreateUser(ctx, user)
}

func (u Users) GetByID(ctx context.Context, id string) (*models.User, error) {
	return u.GetUserByID(ctx, id)
}

func (u Users) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return u.GetUserByEmail(ctx, email)
}

// ---- TeacherStore ----

// Teachers adapts the store to the teacher interface
type Teachers struct{ *Store }

func (t Teachers) Create(_ context.Context, teacher *models.Teacher) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	clone := cloneTeacher(teacher)
	t.teachers[clone.ID] = clone
	t.track(clone.ID)
	return nil
}

func (t Teachers) GetByID(_ context.Context, id string) (*models.Teacher, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	teacher, ok := t.teachers[id]
	if !ok {
		return nil, apperrors.ErrTeacherNotFound
	}
	return cloneTeacher(teacher), nil
}

func (t Teachers) List(_ context.Context, subject, location *string, maxRate *float64, onlyActive bool) ([]*models.Teacher, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out []*models.Teacher
	for _, teacher := range t.teachers {
		if onlyActive && teacher.Status != models.TeacherStatusActive {
			continue
		}
		if subject != nil && *subject != "" &&
			!strings.Contains(strings.ToLower(teacher.Subject), strings.ToLower(*subject)) {
			continue
		}
		if location != nil && *location != "" && !hasLocation(teacher.TeachingLocations, *location) {
			continue
		}
		if maxRate != nil && teacher.HourlyRate > *maxRate {
			continue
		}
		out = append(out, cloneTeacher(teacher))
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return t.inserts[out[i].ID] < t.inserts[out[j].ID]
	})
	return out, nil
}

func (t Teachers) Update(_ context.Context, teacher *models.Teacher) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	existing, ok := t.teachers[teacher.ID]
	if !ok {
		return apperrors.ErrTeacherNotFound
	}
	clone := cloneTeacher(teacher)
	clone.Rating = existing.Rating
	clone.Status = existing.Status
	t.teachers[clone.ID] = clone
	return nil
}

func (t Teachers) UpdateStatus(_ context.Context, id string, status models.TeacherStatus) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	teacher, ok := t.teachers[id]
	if !ok {
		return apperrors.ErrTeacherNotFound
	}
	teacher.Status = status
	return nil
}

func (t Teachers) UpdateRating(_ context.Context, id string, rating float64) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	teacher, ok := t.teachers[id]
	if !ok {
		return apperrors.ErrTeacherNotFound
	}
	teacher.Rating = rating
	return nil
}

func (t Teachers) CountByStatus(_ context.Context) (map[models.TeacherStatus]int64, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	counts := make(map[models.TeacherStatus]int64)
	for _, teacher := range t.teachers {
		counts[teacher.Status]++
	}
	return counts, nil
}

// ---- ParentStore ----

// Parents adapts the store to the parent interface
type Parents struct{ *Store }

func (p Parents) Create(_ context.Context, parent *models.Parent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	clone := cloneParent(parent)
	p.parents[clone.ID] = clone
	p.track(clone.ID)
	return nil
}

func (p Parents) GetByID(_ context.Context, id string) (*models.Parent, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	parent, ok := p.parents[id]
	if !ok {
		return nil, apperrors.ErrParentNotFound
	}
	return cloneParent(parent), nil
}

func (p Parents) Update(_ context.Context, parent *models.Parent) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	existing, ok := p.parents[parent.ID]
	if !ok {
		return apperrors.ErrParentNotFound
	}
	existing.FirstName = parent.FirstName
	existing.LastName = parent.LastName
	return nil
}

func (p Parents) ReplaceChildren(_ context.Context, parentID string, children []models.Child) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	parent, ok := p.parents[parentID]
	if !ok {
		return apperrors.ErrParentNotFound
	}
	parent.Children = append([]models.Child(nil), children...)
	return nil
}

func (p Parents) UpdateStatus(_ context.Context, id string, status models.ParentStatus) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	parent, ok := p.parents[id]
	if !ok {
		return apperrors.ErrParentNotFound
	}
	parent.Status = status
	return nil
}

func (p Parents) CountByStatus(_ context.Context) (map[models.ParentStatus]int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	counts := make(map[models.ParentStatus]int64)
	for _, parent := range p.parents {
		counts[parent.Status]++
	}
	return counts, nil
}

// ---- CourseStore ----

// Courses adapts the store to the course interface
type Courses struct{ *Store }

func (c Courses) Create(_ context.Context, course *models.Course) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	clone := cloneCourse(course)
	c.courses[clone.ID] = clone
	c.track(clone.ID)
	return nil
}

func (c Courses) GetByID(_ context.Context, id string) (*models.Course, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	course, ok := c.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return cloneCourse(course), nil
}

func (c Courses) ListAll(_ context.Context) ([]*models.Course, error) {
	return c.listCourses(func(*models.Course) bool { return true }, false)
}

func (c Courses) ListByTeacher(_ context.Context, teacherID string) ([]*models.Course, error) {
	return c.listCourses(func(course *models.Course) bool {
		return course.TeacherID == teacherID
	}, false)
}

func (c Courses) listCourses(keep func(*models.Course) bool, oldestFirst bool) ([]*models.Course, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var out []*models.Course
	for _, course := range c.courses {
		if keep(course) {
			out = append(out, cloneCourse(course))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if oldestFirst {
			return c.inserts[out[i].ID] < c.inserts[out[j].ID]
		}
		return c.inserts[out[i].ID] > c.inserts[out[j].ID]
	})
	return out, nil
}

func (c Courses) Update(_ context.Context, course *models.Course) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	existing, ok := c.courses[course.ID]
	if !ok {
		return apperrors.ErrCourseNotFound
	}
	clone := cloneCourse(course)
	clone.TeacherID = existing.TeacherID
	clone.CreatedAt = existing.CreatedAt
	c.courses[clone.ID] = clone
	return nil
}

func (c Courses) Delete(_ context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(c.courses, id)
	return nil
}

// ---- RequestStore ----

// Requests adapts the store to the request interface
type Requests struct{ *Store }

func (r Requests) Create(_ context.Context, request *models.Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *request
	r.requests[clone.ID] = &clone
	r.track(clone.ID)
	return nil
}

func (r Requests) GetByID(_ context.Context, id string) (*models.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	request, ok := r.requests[id]
	if !ok {
		return nil, apperrors.ErrRequestNotFound
	}
	clone := *request
	return &clone, nil
}

func (r Requests) ListByStatus(_ context.Context, status models.RequestStatus) ([]*models.Request, error) {
	return r.listRequests(func(request *models.Request) bool {
		return request.Status == status
	})
}

func (r Requests) ListByParent(_ context.Context, parentID string) ([]*models.Request, error) {
	return r.listRequests(func(request *models.Request) bool {
		return request.ParentID == parentID
	})
}

func (r Requests) ListByTeacher(_ context.Context, teacherID string) ([]*models.Request, error) {
	return r.listRequests(func(request *models.Request) bool {
		return request.TeacherID == teacherID
	})
}

func (r Requests) ListAll(_ context.Context) ([]*models.Request, error) {
	return r.listRequests(func(*models.Request) bool { return true })
}

func (r Requests) listRequests(keep func(*models.Request) bool) ([]*models.Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*models.Request
	for _, request := range r.requests {
		if keep(request) {
			clone := *request
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return r.inserts[out[i].ID] < r.inserts[out[j].ID]
	})
	return out, nil
}

func (r Requests) UpdateStatus(_ context.Context, id string, from, to models.RequestStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	request, ok := r.requests[id]
	if !ok {
		return apperrors.ErrRequestNotFound
	}
	if request.Status != from {
		return apperrors.ErrRequestNotPending
	}
	request.Status = to
	return nil
}

func (r Requests) CountByStatus(_ context.Context) (map[models.RequestStatus]int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	counts := make(map[models.RequestStatus]int64)
	for _, request := range r.requests {
		counts[request.Status]++
	}
	return counts, nil
}

// ---- AppointmentStore ----

// Appointments adapts the store to the appointment interface
type Appointments struct{ *Store }

func (a Appointments) Create(_ context.Context, appointment *models.Appointment) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	clone := *appointment
	a.appointments[clone.ID] = &clone
	a.track(clone.ID)
	return nil
}

func (a Appointments) GetByID(_ context.Context, id string) (*models.Appointment, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	appointment, ok := a.appointments[id]
	if !ok {
		return nil, apperrors.ErrAppointmentNotFound
	}
	clone := *appointment
	return &clone, nil
}

func (a Appointments) ListByParent(_ context.Context, parentID string) ([]*models.Appointment, error) {
	return a.listAppointments(func(appointment *models.Appointment) bool {
		return appointment.ParentID == parentID
	})
}

func (a Appointments) ListByTeacher(_ context.Context, teacherID string) ([]*models.Appointment, error) {
	return a.listAppointments(func(appointment *models.Appointment) bool {
		return appointment.TeacherID == teacherID
	})
}

func (a Appointments) ListAll(_ context.Context) ([]*models.Appointment, error) {
	return a.listAppointments(func(*models.Appointment) bool { return true })
}

func (a Appointments) listAppointments(keep func(*models.Appointment) bool) ([]*models.Appointment, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	var out []*models.Appointment
	for _, appointment := range a.appointments {
		if keep(appointment) {
			clone := *appointment
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return a.inserts[out[i].ID] < a.inserts[out[j].ID]
	})
	return out, nil
}

func (a Appointments) UpdateStatus(_ context.Context, id string, from, to models.AppointmentStatus) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	appointment, ok := a.appointments[id]
	if !ok {
		return apperrors.ErrAppointmentNotFound
	}
	if appointment.Status != from {
		return apperrors.ErrAppointmentNotScheduled
	}
	appointment.Status = to
	return nil
}

func (a Appointments) CountByStatus(_ context.Context) (map[models.AppointmentStatus]int64, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	counts := make(map[models.AppointmentStatus]int64)
	for _, appointment := range a.appointments {
		counts[appointment.Status]++
	}
	return counts, nil
}

// ---- ReviewStore ----

// Reviews adapts the store to the review interface
type Reviews struct{ *Store }

func (r Reviews) Create(_ context.Context, review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *review
	r.reviews[clone.ID] = &clone
	r.track(clone.ID)
	return nil
}

func (r Reviews) ListByTeacher(_ context.Context, teacherID string) ([]*models.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*models.Review
	for _, review := range r.reviews {
		if review.TeacherID == teacherID {
			clone := *review
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return r.inserts[out[i].ID] > r.inserts[out[j].ID]
	})
	return out, nil
}

// ---- clone helpers ----

func cloneTeacher(teacher *models.Teacher) *models.Teacher {
	clone := *teacher
	clone.TeachingLocations = append([]models.TeachingLocation(nil), teacher.TeachingLocations...)
	clone.Courses = append([]*models.Course(nil), teacher.Courses...)
	return &clone
}

func cloneParent(parent *models.Parent) *models.Parent {
	clone := *parent
	clone.Children = append([]models.Child(nil), parent.Children...)
	return &clone
}

func cloneCourse(course *models.Course) *models.Course {
	clone := *course
	clone.Locations = append([]models.TeachingLocation(nil), course.Locations...)
	return &clone
}

func hasLocation(locations []models.TeachingLocation, raw string) bool {
	for _, l := range locations {
		if string(l) == raw {
			return true
		}
	}
	return false
}
