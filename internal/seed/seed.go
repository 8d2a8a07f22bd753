package seed

import (
	"context"
	"errors"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/emre/trainhub/internal/app/models"
	"github.com/emre/trainhub/internal/app/repositories"
	"github.com/emre/trainhub/internal/pkg/apperrors"
	"github.com/emre/trainhub/internal/pkg/auth"
)

const defaultAdminEmail = "admin@trainhub.local"

// CreateDefaultData creates the initial administrator account when it does
// not exist yet. The password comes from SEED_ADMIN_PASSWORD, falling back
// to a development default, and must be changed on first login.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "ChangeMe123!"
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:        defaultAdminEmail,
		Password:     hashed,
		FirstName:    "Console",
		LastName:     "Administrator",
		Role:         models.RoleAdmin,
		IsActive:     true,
		MustChangePW: true,
	}

	if _, err := userRepo.CreateUser(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			lgr.Debug().Str("email", defaultAdminEmail).Msg("Default admin account already present")
			return nil
		}
		lgr.Error().Err(err).Msg("Failed to create default admin account")
		return err
	}

	lgr.Info().Str("email", defaultAdminEmail).Msg("Default admin account created; password must be changed on first login")
	return nil
}
