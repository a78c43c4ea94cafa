package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/halitb/certman/internal/app/models"
	"github.com/halitb/certman/internal/pkg/apperrors"
	"github.com/halitb/certman/internal/pkg/auth"
)

// AuthService defines the interface for credential checks
type AuthService interface {
	// Login verifies the credentials against the role table selected by role
	// and returns the matching account row.
	Login(ctx context.Context, username, password, role string) (interface{}, error)
}

type authServiceImpl struct {
	users UserStore
}

// NewAuthService creates a new auth service instance
func NewAuthService(users UserStore) AuthService {
	return &authServiceImpl{users: users}
}

// Login looks the account up by name in the role table and verifies the
// password against the stored bcrypt hash. Unknown names and wrong passwords
// are indistinguishable to the caller.
func (s *authServiceImpl) Login(ctx context.Context, username, password, role string) (interface{}, error) {
	parsed, err := models.ParseRole(role)
	if err != nil {
		return nil, err
	}

	var (
		hash string
		row  interface{}
	)

	switch parsed {
	case models.RoleStudent:
		student, err := s.users.GetStudentByName(ctx, username)
		if err != nil {
			return nil, loginLookupError(err)
		}
		hash, row = student.Password, student
	case models.RoleTeacher:
		teacher, err := s.users.GetTeacherByName(ctx, username)
		if err != nil {
			return nil, loginLookupError(err)
		}
		hash, row = teacher.Password, teacher
	case models.RoleOrganizer:
		organizer, err := s.users.GetOrganizerByName(ctx, username)
		if err != nil {
			return nil, loginLookupError(err)
		}
		hash, row = organizer.Password, organizer
	case models.RoleAdmin:
		admin, err := s.users.GetAdminByName(ctx, username)
		if err != nil {
			return nil, loginLookupError(err)
		}
		hash, row = admin.Password, admin
	}

	if !auth.CheckPassword(hash, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return row, nil
}

// loginLookupError collapses not-found lookups into a credential mismatch so
// the API does not reveal which account names exist.
func loginLookupError(err error) error {
	if apperrors.Is(err, apperrors.ErrStudentNotFound,
		apperrors.ErrTeacherNotFound, apperrors.ErrOrganizerNotFound, apperrors.ErrAdminNotFound) {
		return apperrors.ErrInvalidCredentials
	}
	if errors.Is(err, apperrors.ErrResourceNotFound) {
		return apperrors.ErrInvalidCredentials
	}
	return fmt.Errorf("error looking up account: %w", err)
}
