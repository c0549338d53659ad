package models

// RoleType defines the user role type
type RoleType string

const (
	RoleAdmin   RoleType = "ADMIN"
	RoleTeacher RoleType = "TEACHER"
	RoleParent  RoleType = "PARENT"
)

// TeachingLocation defines where a lesson can take place
type TeachingLocation string

const (
	LocationOnline       TeachingLocation = "ONLINE"
	LocationHome         TeachingLocation = "HOME"
	LocationTeacherPlace TeachingLocation = "TEACHER_PLACE"
)

// ParseTeachingLocation converts a raw string into a TeachingLocation.
// The second return value reports whether the value is a known location.
func ParseTeachingLocation(raw string) (TeachingLocation, bool) {
	switch TeachingLocation(raw) {
	case LocationOnline, LocationHome, LocationTeacherPlace:
		return TeachingLocation(raw), true
	}
	return "", false
}
