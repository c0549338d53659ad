package models

import (
	"time"
)

// User defines the base account model shared by all roles, based on the 'users' table
type User struct {
	ID        string    `json:"id" db:"id" example:"5f3c1b2a-9d4e-4c6f-8a1b-2c3d4e5f6a7b"` // Unique identifier for the user
	Email     string    `json:"email" db:"email" example:"parent@example.com"`             // User's email address
	Password  string    `json:"-" db:"password"`                                           // User's hashed password (excluded from JSON)
	FirstName string    `json:"firstName" db:"first_name" example:"Marie"`                 // User's first name
	LastName  string    `json:"lastName" db:"last_name" example:"Dupont"`                  // User's last name
	Role      RoleType  `json:"role" db:"role" example:"PARENT"`                           // User's role (ADMIN, TEACHER or PARENT)
	CreatedAt time.Time `json:"createdAt" db:"created_at"`                                 // Timestamp when the account was created
}

// TeacherStatus defines the moderation state of a teacher profile
type TeacherStatus string

const (
	TeacherStatusPending   TeacherStatus = "PENDING"
	TeacherStatusActive    TeacherStatus = "ACTIVE"
	TeacherStatusSuspended TeacherStatus = "SUSPENDED"
)

// Teacher defines the teacher profile model based on the 'teachers' table.
// Profile fields are flattened onto the base user row.
type Teacher struct {
	User
	Subject           string             `json:"subject" db:"subject"`
	HourlyRate        float64            `json:"hourlyRate" db:"hourly_rate"`
	TeachingLocations []TeachingLocation `json:"teachingLocations" db:"teaching_locations"`
	Skills            string             `json:"skills" db:"skills"`
	Bio               string             `json:"bio" db:"bio"`
	CVUrl             string             `json:"cvUrl,omitempty" db:"cv_url"`
	Rating            float64            `json:"rating" db:"rating"`
	Status            TeacherStatus      `json:"status" db:"status"`
	Courses           []*Course          `json:"courses,omitempty"` // Relation, no db tag
}

// ParentStatus defines the moderation state of a parent account
type ParentStatus string

const (
	ParentStatusActive  ParentStatus = "ACTIVE"
	ParentStatusBlocked ParentStatus = "BLOCKED"
)

// Parent defines the parent account model based on the 'parents' table
type Parent struct {
	User
	Children []Child      `json:"children"` // Relation, ordered by position
	Status   ParentStatus `json:"status" db:"status"`
}

// Child defines a child entry on a parent profile, based on the 'children' table
type Child struct {
	ID       string `json:"id" db:"id"`
	ParentID string `json:"parentId" db:"parent_id"`
	Name     string `json:"name" db:"name"`
	Age      int    `json:"age" db:"age"`
	Grade    string `json:"grade" db:"grade"`
}
