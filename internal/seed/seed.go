package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/halitb/certman/internal/app/models"
	appRepos "github.com/halitb/certman/internal/app/repositories"
	"github.com/halitb/certman/internal/pkg/apperrors"
	"github.com/halitb/certman/internal/pkg/auth"
)

// Default admin credentials used on first startup. The password must be
// changed after deployment.
const (
	defaultAdminName     = "admin"
	defaultAdminPassword = "admin123"
)

// CreateDefaultAdmin creates the default admin account if it does not exist,
// so a fresh installation has a way to create further accounts.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)

	_, err := userRepo.GetAdminByName(ctx, defaultAdminName)
	if err == nil {
		return nil // already present
	}
	if !errors.Is(err, apperrors.ErrAdminNotFound) {
		return err
	}

	hash, err := auth.HashPassword(defaultAdminPassword)
	if err != nil {
		return err
	}

	admin := &appModels.Admin{Name: defaultAdminName, Password: hash}
	if _, err := userRepo.CreateAdmin(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrUserAlreadyExists) {
			return nil // concurrent startup created it first
		}
		return err
	}

	lgr.Info().Str("name", defaultAdminName).Msg("Default admin account created")
	return nil
}
