package models

import "time"

// Certificate defines the certificate model based on the 'certificates'
// table. One row per uploaded file; a student accumulates many certificates
// across events.
type Certificate struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	ClassID   int64     `json:"classId" db:"class_id"`
	EventID   int64     `json:"eventId" db:"event_id"`
	UploadBy  int64     `json:"uploadBy" db:"upload_by"` // organizer id
	FileName  string    `json:"fileName" db:"file_name"`
	FileURL   string    `json:"fileUrl" db:"file_url"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
