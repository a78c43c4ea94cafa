package models

import (
	"strings"

	"github.com/halitb/certman/internal/pkg/apperrors"
)

// Role selects the per-role entity table an account lives in. The role itself
// is never stored; membership in a table is what makes an account a student,
// teacher, organizer or admin.
type Role string

const (
	RoleStudent   Role = "student"
	RoleTeacher   Role = "teacher"
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"
)

// ParseRole maps a request-supplied role string (case-insensitive) to one of
// the four fixed roles.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleStudent:
		return RoleStudent, nil
	case RoleTeacher:
		return RoleTeacher, nil
	case RoleOrganizer:
		return RoleOrganizer, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", apperrors.NewCustomError(apperrors.ErrUnknownRole, "role must be one of student, teacher, organizer, admin")
	}
}
