package services

import (
	"context"

	"github.com/halitb/certman/internal/app/models"
)

// UserStore is the datastore surface the services need for account rows.
// *repositories.UserRepository satisfies it; tests substitute in-memory
// doubles.
type UserStore interface {
	CreateStudent(ctx context.Context, s *models.Student) (int64, error)
	CreateTeacher(ctx context.Context, t *models.Teacher) (int64, error)
	CreateOrganizer(ctx context.Context, o *models.Organizer) (int64, error)
	CreateAdmin(ctx context.Context, a *models.Admin) (int64, error)

	GetStudentByName(ctx context.Context, name string) (*models.Student, error)
	GetTeacherByName(ctx context.Context, name string) (*models.Teacher, error)
	GetOrganizerByName(ctx context.Context, name string) (*models.Organizer, error)
	GetAdminByName(ctx context.Context, name string) (*models.Admin, error)

	GetStudentByID(ctx context.Context, id int64) (*models.Student, error)
	GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error)
	GetStudentsByClassID(ctx context.Context, classID int64) ([]*models.Student, error)
}

// EventStore is the datastore surface for event rows.
type EventStore interface {
	Create(ctx context.Context, event *models.Event) (*models.Event, error)
	List(ctx context.Context, organizerID *int64) ([]*models.Event, error)
}

// CertificateStore is the datastore surface for certificate rows.
type CertificateStore interface {
	CreateBatch(ctx context.Context, certs []*models.Certificate) error
	ListByStudentID(ctx context.Context, studentID int64) ([]*models.Certificate, error)
	ListByStudentIDs(ctx context.Context, studentIDs []int64) ([]*models.Certificate, error)
}
