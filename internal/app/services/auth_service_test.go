package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuteuradom/backend/internal/app/models"
	"github.com/tuteuradom/backend/internal/app/models/dto"
	"github.com/tuteuradom/backend/internal/app/repositories/memory"
	"github.com/tuteuradom/backend/internal/pkg/apperrors"
	"github.com/tuteuradom/backend/internal/pkg/auth"
)

func newTestAuthService() (*AuthService, *memory.Store) {
	store := memory.NewStore()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "test",
	})

	svc := NewAuthService(memory.Users{Store: store}, memory.Teachers{Store: store}, memory.Parents{Store: store}, jwtService)
	svc.now = func() time.Time { return time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC) }

	seq := 0
	svc.newID = func() string {
		seq++
		return fmt.Sprintf("id-%d", seq)
	}
	return svc, store
}

func TestRegisterParent(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	parent, err := svc.RegisterParent(ctx, &dto.RegisterParentRequest{
		Email:     "Marie.Dupont@Example.com",
		Password:  "supersecret",
		FirstName: "Marie",
		LastName:  "Dupont",
		Children: []dto.ChildRequest{
			{Name: "Lucas", Age: 10, Grade: "CM2"},
		},
	})
	require.NoError(t, err)

	// email is normalized at registration
	assert.Equal(t, "marie.dupont@example.com", parent.Email)
	assert.Equal(t, models.RoleParent, parent.Role)
	assert.Equal(t, models.ParentStatusActive, parent.Status)
	require.Len(t, parent.Children, 1)
	assert.NotEmpty(t, parent.Children[0].ID)
	assert.Equal(t, parent.ID, parent.Children[0].ParentID)
	assert.NotEqual(t, "supersecret", parent.Password)
}

func TestRegisterTeacherStartsPending(t *testing.T) {
	svc, _ := newTestAuthService()

	teacher, err := svc.RegisterTeacher(context.Background(), &dto.RegisterTeacherRequest{
		Email:             "paul@example.com",
		Password:          "supersecret",
		FirstName:         "Paul",
		LastName:          "Martin",
		Subject:           "Mathematics",
		HourlyRate:        35,
		TeachingLocations: []string{"ONLINE", "HOME"},
	})
	require.NoError(t, err)

	assert.Equal(t, models.RoleTeacher, teacher.Role)
	assert.Equal(t, models.TeacherStatusPending, teacher.Status)
	assert.Equal(t, []models.TeachingLocation{models.LocationOnline, models.LocationHome}, teacher.TeachingLocations)
}

func TestRegisterTeacherUnknownLocation(t *testing.T) {
	svc, _ := newTestAuthService()

	_, err := svc.RegisterTeacher(context.Background(), &dto.RegisterTeacherRequest{
		Email:             "paul@example.com",
		Password:          "supersecret",
		FirstName:         "Paul",
		LastName:          "Martin",
		Subject:           "Mathematics",
		HourlyRate:        35,
		TeachingLocations: []string{"SPACE"},
	})
	assert.ErrorIs(t, err, apperrors.ErrScheduleInvalidLocation)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	req := &dto.RegisterParentRequest{
		Email: "marie@example.com", Password: "supersecret", FirstName: "Marie", LastName: "Dupont",
	}
	_, err := svc.RegisterParent(ctx, req)
	require.NoError(t, err)

	// uniqueness is case-insensitive
	_, err = svc.RegisterParent(ctx, &dto.RegisterParentRequest{
		Email: "MARIE@example.com", Password: "supersecret", FirstName: "Other", LastName: "Person",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestLogin(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	parent, err := svc.RegisterParent(ctx, &dto.RegisterParentRequest{
		Email: "marie@example.com", Password: "supersecret", FirstName: "Marie", LastName: "Dupont",
	})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "Marie@Example.com", Password: "supersecret"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token.AccessToken)
	assert.Equal(t, "Bearer", resp.Token.TokenType)
	assert.NotEmpty(t, resp.Token.RefreshToken)

	user, ok := resp.User.(dto.UserResponse)
	require.True(t, ok)
	assert.Equal(t, parent.ID, user.ID)
	assert.Equal(t, models.RoleParent, user.Role)
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _ := newTestAuthService()
	ctx := context.Background()

	_, err := svc.RegisterParent(ctx, &dto.RegisterParentRequest{
		Email: "marie@example.com", Password: "supersecret", FirstName: "Marie", LastName: "Dupont",
	})
	require.NoError(t, err)

	// unknown email and wrong password look the same to the caller
	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "supersecret"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "marie@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginModeratedAccountsRefused(t *testing.T) {
	svc, store := newTestAuthService()
	ctx := context.Background()

	parent, err := svc.RegisterParent(ctx, &dto.RegisterParentRequest{
		Email: "marie@example.com", Password: "supersecret", FirstName: "Marie", LastName: "Dupont",
	})
	require.NoError(t, err)
	teacher, err := svc.RegisterTeacher(ctx, &dto.RegisterTeacherRequest{
		Email: "paul@example.com", Password: "supersecret", FirstName: "Paul", LastName: "Martin",
		Subject: "Mathematics", HourlyRate: 35, TeachingLocations: []string{"ONLINE"},
	})
	require.NoError(t, err)

	require.NoError(t, memory.Parents{Store: store}.UpdateStatus(ctx, parent.ID, models.ParentStatusBlocked))
	require.NoError(t, memory.Teachers{Store: store}.UpdateStatus(ctx, teacher.ID, models.TeacherStatusSuspended))

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "marie@example.com", Password: "supersecret"})
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "paul@example.com", Password: "supersecret"})
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)

	// pending teachers can still log in
	teacher2, err := svc.RegisterTeacher(ctx, &dto.RegisterTeacherRequest{
		Email: "anna@example.com", Password: "supersecret", FirstName: "Anna", LastName: "Morel",
		Subject: "Physics", HourlyRate: 40, TeachingLocations: []string{"ONLINE"},
	})
	require.NoError(t, err)
	resp, err := svc.Login(ctx, &dto.LoginRequest{Email: teacher2.Email, Password: "supersecret"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token.AccessToken)
}
