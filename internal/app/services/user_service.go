package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/halitb/certman/internal/app/models"
	"github.com/halitb/certman/internal/app/models/dto"
	"github.com/halitb/certman/internal/pkg/apperrors"
	"github.com/halitb/certman/internal/pkg/auth"
)

// UserService defines the interface for admin account management
type UserService interface {
	// CreateUser validates the role-dependent fields, hashes the password and
	// inserts one row into the role table. It returns the created row.
	CreateUser(ctx context.Context, req *dto.CreateUserRequest) (interface{}, error)
}

type userServiceImpl struct {
	users UserStore
}

// NewUserService creates a new user service instance
func NewUserService(users UserStore) UserService {
	return &userServiceImpl{users: users}
}

// CreateUser creates an account in the table selected by req.Role.
// Students and teachers require class_id and dept, organizers require
// club_name, admins require nothing beyond name and password.
func (s *userServiceImpl) CreateUser(ctx context.Context, req *dto.CreateUserRequest) (interface{}, error) {
	role, err := models.ParseRole(req.Role)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}
	if req.Password == "" {
		return nil, apperrors.NewValidationError("password cannot be empty")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	switch role {
	case models.RoleStudent, models.RoleTeacher:
		if req.ClassID == nil {
			return nil, apperrors.NewValidationError("class_id is required for students and teachers")
		}
		if strings.TrimSpace(req.Dept) == "" {
			return nil, apperrors.NewValidationError("dept is required for students and teachers")
		}
		if role == models.RoleStudent {
			student := &models.Student{
				Name:     name,
				Password: hash,
				ClassID:  req.ClassID.Int64(),
				Dept:     req.Dept,
			}
			id, err := s.users.CreateStudent(ctx, student)
			if err != nil {
				return nil, err
			}
			student.ID = id
			return student, nil
		}
		teacher := &models.Teacher{
			Name:     name,
			Password: hash,
			ClassID:  req.ClassID.Int64(),
			Dept:     req.Dept,
		}
		id, err := s.users.CreateTeacher(ctx, teacher)
		if err != nil {
			return nil, err
		}
		teacher.ID = id
		return teacher, nil

	case models.RoleOrganizer:
		if strings.TrimSpace(req.ClubName) == "" {
			return nil, apperrors.NewValidationError("club_name is required for organizers")
		}
		organizer := &models.Organizer{
			Name:     name,
			Password: hash,
			ClubName: req.ClubName,
		}
		id, err := s.users.CreateOrganizer(ctx, organizer)
		if err != nil {
			return nil, err
		}
		organizer.ID = id
		return organizer, nil

	default:
		admin := &models.Admin{
			Name:     name,
			Password: hash,
		}
		id, err := s.users.CreateAdmin(ctx, admin)
		if err != nil {
			return nil, err
		}
		admin.ID = id
		return admin, nil
	}
}
