package dto

import "github.com/tuteuradom/backend/internal/app/models"

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	TokenType             string `json:"tokenType" example:"Bearer"`
	ExpiresIn             int    `json:"expiresIn"`
	RefreshToken          string `json:"refreshToken,omitempty"`
	RefreshTokenExpiresIn int    `json:"refreshTokenExpiresIn,omitempty"`
}

// RegisterParentRequest represents a parent registration request
type RegisterParentRequest struct {
	Email     string         `json:"email" binding:"required,email"`
	Password  string         `json:"password" binding:"required,min=8"`
	FirstName string         `json:"firstName" binding:"required,min=2,max=100"`
	LastName  string         `json:"lastName" binding:"required,min=2,max=100"`
	Children  []ChildRequest `json:"children" binding:"omitempty,dive"`
}

// RegisterTeacherRequest represents a teacher registration request.
// The created profile starts in PENDING status until an admin approves it.
type RegisterTeacherRequest struct {
	Email             string   `json:"email" binding:"required,email"`
	Password          string   `json:"password" binding:"required,min=8"`
	FirstName         string   `json:"firstName" binding:"required,min=2,max=100"`
	LastName          string   `json:"lastName" binding:"required,min=2,max=100"`
	Subject           string   `json:"subject" binding:"required"`
	HourlyRate        float64  `json:"hourlyRate" binding:"required,gt=0"`
	TeachingLocations []string `json:"teachingLocations" binding:"required,min=1"`
	Skills            string   `json:"skills"`
	Bio               string   `json:"bio"`
	CVUrl             string   `json:"cvUrl"`
}

// UserResponse represents basic user information
type UserResponse struct {
	ID        string          `json:"id"`
	Email     string          `json:"email"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	Role      models.RoleType `json:"role"`
}

// AuthResponse represents successful authentication response
type AuthResponse struct {
	Token TokenResponse `json:"token"`
	User  interface{}   `json:"user"`
}

// NewUserResponse maps a user model onto the response shape
func NewUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
	}
}
