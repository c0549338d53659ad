package models

import "time"

// Review defines a parent's rating of a teacher, based on the 'reviews' table
type Review struct {
	ID        string    `json:"id" db:"id"`
	TeacherID string    `json:"teacherId" db:"teacher_id"`
	ParentID  string    `json:"parentId" db:"parent_id"`
	Rating    int       `json:"rating" db:"rating"` // 1..5
	Comment   string    `json:"comment" db:"comment"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
