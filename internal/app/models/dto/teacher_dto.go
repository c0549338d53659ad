package dto

// TeacherFilter carries the optional query filters for the public teacher listing
type TeacherFilter struct {
	Subject  string   // substring match on subject
	Location string   // one of the teaching location values
	MaxRate  *float64 // inclusive upper bound on hourly rate
}

// UpdateTeacherProfileRequest represents teacher profile update data
type UpdateTeacherProfileRequest struct {
	FirstName         string   `json:"firstName" binding:"required,min=2,max=100"`
	LastName          string   `json:"lastName" binding:"required,min=2,max=100"`
	Subject           string   `json:"subject" binding:"required"`
	HourlyRate        float64  `json:"hourlyRate" binding:"required,gt=0"`
	TeachingLocations []string `json:"teachingLocations" binding:"required,min=1"`
	Skills            string   `json:"skills"`
	Bio               string   `json:"bio"`
	CVUrl             string   `json:"cvUrl"`
}

// UpdateTeacherStatusRequest represents an admin moderation action on a teacher
type UpdateTeacherStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING ACTIVE SUSPENDED"`
}

// CreateReviewRequest represents a parent's review of a teacher
type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment"`
}
