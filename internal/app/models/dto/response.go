package dto

import "github.com/halitb/certman/internal/app/models"

// LoginResponse is the success payload of POST /api/login.
type LoginResponse struct {
	Success bool        `json:"success"`
	User    interface{} `json:"user"`
}

// CreateUserResponse is the success payload of POST /api/admin/create-user.
type CreateUserResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// CreateEventResponse is the success payload of POST /api/events.
type CreateEventResponse struct {
	Success bool          `json:"success"`
	Event   *models.Event `json:"event"`
}

// UploadedFile describes one successfully processed certificate upload.
type UploadedFile struct {
	FileName string `json:"fileName"`
	FileURL  string `json:"fileUrl"`
}

// UploadResponse is the success payload of POST /api/upload-certificate.
type UploadResponse struct {
	Success bool           `json:"success"`
	Files   []UploadedFile `json:"files"`
}

// StudentDashboardResponse aggregates a student row with their certificates.
type StudentDashboardResponse struct {
	Success      bool                  `json:"success"`
	Student      *models.Student       `json:"student"`
	Certificates []*models.Certificate `json:"certificates"`
}

// TeacherDashboardResponse aggregates a teacher row with the students of
// their class and those students' certificates.
type TeacherDashboardResponse struct {
	Success      bool                  `json:"success"`
	Teacher      *models.Teacher       `json:"teacher"`
	Students     []*models.Student     `json:"students"`
	Certificates []*models.Certificate `json:"certificates"`
}

// CertificateListResponse is the success payload of GET /api/certificates/:studentId.
type CertificateListResponse struct {
	Success      bool                  `json:"success"`
	Certificates []*models.Certificate `json:"certificates"`
}
