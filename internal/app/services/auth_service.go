package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tuteuradom/backend/internal/app/models"
	"github.com/tuteuradom/backend/internal/app/models/dto"
	"github.com/tuteuradom/backend/internal/app/repositories"
	"github.com/tuteuradom/backend/internal/pkg/apperrors"
	"github.com/tuteuradom/backend/internal/pkg/auth"
	"github.com/tuteuradom/backend/internal/pkg/logger"
)

// AuthService handles registration and login for all roles
type AuthService struct {
	users    repositories.UserStore
	teachers repositories.TeacherStore
	parents  repositories.ParentStore

	jwtService *auth.JWTService

	now   func() time.Time
	newID func() string
}

// NewAuthService creates a new authentication service instance
func NewAuthService(users repositories.UserStore, teachers repositories.TeacherStore, parents repositories.ParentStore, jwtService *auth.JWTService) *AuthService {
	return &AuthService{
		users:      users,
		teachers:   teachers,
		parents:    parents,
		jwtService: jwtService,
		now:        time.Now,
		newID:      func() string { return uuid.New().String() },
	}
}

// RegisterParent creates a parent account in ACTIVE status together with its
// children entries
func (s *AuthService) RegisterParent(ctx context.Context, req *dto.RegisterParentRequest) (*models.Parent, error) {
	user, err := s.newUser(ctx, req.Email, req.Password, req.FirstName, req.LastName, models.RoleParent)
	if err != nil {
		return nil, err
	}

	parent := &models.Parent{
		User:   *user,
		Status: models.ParentStatusActive,
	}
	for _, child := range req.Children {
		parent.Children = append(parent.Children, models.Child{
			ID:       s.newID(),
			ParentID: user.ID,
			Name:     child.Name,
			Age:      child.Age,
			Grade:    child.Grade,
		})
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("error creating parent user: %w", err)
	}
	if err := s.parents.Create(ctx, parent); err != nil {
		return nil, fmt.Errorf("error creating parent profile: %w", err)
	}

	logger.Info().Str("parentId", parent.ID).Str("email", parent.Email).Msg("Parent registered")

	return parent, nil
}

// RegisterTeacher creates a teacher account. The profile starts in PENDING
// status and is excluded from the public listing until an admin activates it.
func (s *AuthService) RegisterTeacher(ctx context.Context, req *dto.RegisterTeacherRequest) (*models.Teacher, error) {
	locations, err := parseLocations(req.TeachingLocations)
	if err != nil {
		return nil, err
	}

	user, err := s.newUser(ctx, req.Email, req.Password, req.FirstName, req.LastName, models.RoleTeacher)
	if err != nil {
		return nil, err
	}

	teacher := &models.Teacher{
		User:              *user,
		Subject:           req.Subject,
		HourlyRate:        req.HourlyRate,
		TeachingLocations: locations,
		Skills:            req.Skills,
		Bio:               req.Bio,
		CVUrl:             req.CVUrl,
		Status:            models.TeacherStatusPending,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("error creating teacher user: %w", err)
	}
	if err := s.teachers.Create(ctx, teacher); err != nil {
		return nil, fmt.Errorf("error creating teacher profile: %w", err)
	}

	logger.Info().Str("teacherId", teacher.ID).Str("email", teacher.Email).Msg("Teacher registered")

	return teacher, nil
}

// Login authenticates a user and issues a token pair. Suspended teachers and
// blocked parents are refused even with valid credentials.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.checkAccountEnabled(ctx, user); err != nil {
		return nil, err
	}

	accessToken, refreshToken, expiresIn, refreshExpiresIn, err := s.jwtService.GenerateTokenPair(user)
	if err != nil {
		return nil, fmt.Errorf("error generating tokens: %w", err)
	}

	logger.Info().Str("userId", user.ID).Str("role", string(user.Role)).Msg("User logged in")

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken:           accessToken,
			TokenType:             "Bearer",
			ExpiresIn:             expiresIn,
			RefreshToken:          refreshToken,
			RefreshTokenExpiresIn: refreshExpiresIn,
		},
		User: dto.NewUserResponse(user),
	}, nil
}

// checkAccountEnabled refuses login for moderated-out accounts
func (s *AuthService) checkAccountEnabled(ctx context.Context, user *models.User) error {
	switch user.Role {
	case models.RoleTeacher:
		teacher, err := s.teachers.GetByID(ctx, user.ID)
		if err != nil {
			return err
		}
		if teacher.Status == models.TeacherStatusSuspended {
			return apperrors.ErrTeacherSuspended
		}
	case models.RoleParent:
		parent, err := s.parents.GetByID(ctx, user.ID)
		if err != nil {
			return err
		}
		if parent.Status == models.ParentStatusBlocked {
			return apperrors.ErrParentBlocked
		}
	}
	return nil
}

// newUser builds the base user row with a hashed password after checking
// email uniqueness
func (s *AuthService) newUser(ctx context.Context, email, password, firstName, lastName string, role models.RoleType) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error checking email: %w", err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	return &models.User{
		ID:        s.newID(),
		Email:     email,
		Password:  string(hashed),
		FirstName: firstName,
		LastName:  lastName,
		Role:      role,
		CreatedAt: s.now(),
	}, nil
}
