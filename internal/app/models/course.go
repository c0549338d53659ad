package models

import "time"

// Course defines a course offered by a teacher, based on the 'courses' table
type Course struct {
	ID          string             `json:"id" db:"id"`
	TeacherID   string             `json:"teacherId" db:"teacher_id"`
	Subject     string             `json:"subject" db:"subject"`
	Description string             `json:"description" db:"description"`
	HourlyRate  float64            `json:"hourlyRate" db:"hourly_rate"`
	Locations   []TeachingLocation `json:"locations" db:"locations"`
	CreatedAt   time.Time          `json:"createdAt" db:"created_at"`
}
