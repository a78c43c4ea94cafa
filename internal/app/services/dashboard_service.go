package services

import (
	"context"
	"fmt"

	"github.com/halitb/certman/internal/app/models"
)

// StudentDashboard aggregates a student row with their certificates.
type StudentDashboard struct {
	Student      *models.Student
	Certificates []*models.Certificate
}

// TeacherDashboard aggregates a teacher row with the students of their class
// and those students' certificates.
type TeacherDashboard struct {
	Teacher      *models.Teacher
	Students     []*models.Student
	Certificates []*models.Certificate
}

// DashboardService defines the interface for dashboard aggregation
type DashboardService interface {
	StudentDashboard(ctx context.Context, studentID int64) (*StudentDashboard, error)
	TeacherDashboard(ctx context.Context, teacherID int64) (*TeacherDashboard, error)
}

type dashboardServiceImpl struct {
	users UserStore
	certs CertificateStore
}

// NewDashboardService creates a new dashboard service instance
func NewDashboardService(users UserStore, certs CertificateStore) DashboardService {
	return &dashboardServiceImpl{
		users: users,
		certs: certs,
	}
}

// StudentDashboard fetches exactly one student row and all their
// certificates.
func (s *dashboardServiceImpl) StudentDashboard(ctx context.Context, studentID int64) (*StudentDashboard, error) {
	student, err := s.users.GetStudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	certs, err := s.certs.ListByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error loading student certificates: %w", err)
	}

	return &StudentDashboard{Student: student, Certificates: certs}, nil
}

// TeacherDashboard performs the dependent read sequence: the teacher row,
// then the students sharing the teacher's class_id, then the certificates of
// that student set. A teacher without students gets empty lists, not an
// error. The three reads are sequential round trips; partial results are
// never returned because any failing step aborts the whole aggregation.
func (s *dashboardServiceImpl) TeacherDashboard(ctx context.Context, teacherID int64) (*TeacherDashboard, error) {
	teacher, err := s.users.GetTeacherByID(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	students, err := s.users.GetStudentsByClassID(ctx, teacher.ClassID)
	if err != nil {
		return nil, fmt.Errorf("error loading class students: %w", err)
	}

	studentIDs := make([]int64, len(students))
	for i, st := range students {
		studentIDs[i] = st.ID
	}

	certs, err := s.certs.ListByStudentIDs(ctx, studentIDs)
	if err != nil {
		return nil, fmt.Errorf("error loading class certificates: %w", err)
	}

	return &TeacherDashboard{
		Teacher:      teacher,
		Students:     students,
		Certificates: certs,
	}, nil
}
