package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/tuteuradom/backend/internal/app/models"
	"github.com/tuteuradom/backend/internal/app/repositories"
	"github.com/tuteuradom/backend/internal/config"
)

// CreateDefaultAdmin creates the platform admin account when it does not
// exist yet. The password comes from configuration and is never logged.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Admin.Password == "" {
		lgr.Warn().Msg("No admin password configured, skipping admin seeding")
		return nil
	}

	userRepo := repositories.NewUserRepository(dbPool)

	exists, err := userRepo.EmailExists(ctx, cfg.Admin.Email)
	if err != nil {
		return fmt.Errorf("error checking admin account: %w", err)
	}
	if exists {
		lgr.Debug().Str("email", cfg.Admin.Email).Msg("Admin account already present")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Admin.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("error hashing admin password: %w", err)
	}

	admin := &models.User{
		ID:        uuid.New().String(),
		Email:     cfg.Admin.Email,
		Password:  string(hashed),
		FirstName: "Platform",
		LastName:  "Admin",
		Role:      models.RoleAdmin,
		CreatedAt: time.Now(),
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("error creating admin account: %w", err)
	}

	lgr.Info().Str("email", admin.Email).Msg("Default admin account created")
	return nil
}
