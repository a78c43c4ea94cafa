package services

import (
	"context"
	"fmt"
	"mime/multipart"

	"github.com/halitb/certman/internal/app/models"
	"github.com/halitb/certman/internal/app/models/dto"
	"github.com/halitb/certman/internal/pkg/apperrors"
	"github.com/halitb/certman/internal/pkg/certfile"
	"github.com/halitb/certman/internal/pkg/filestorage"
	"github.com/halitb/certman/internal/pkg/logger"
)

// CertificateService defines the interface for certificate uploads and reads
type CertificateService interface {
	// Upload validates every filename before any side effect, then stores the
	// files and inserts one certificate row per file. A malformed filename
	// aborts the whole batch with zero writes.
	Upload(ctx context.Context, files []*multipart.FileHeader, eventID, uploadBy int64) ([]dto.UploadedFile, error)

	// ListByStudent returns all certificates of one student.
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Certificate, error)
}

type certificateServiceImpl struct {
	certs   CertificateStore
	storage filestorage.FileStorage
}

// NewCertificateService creates a new certificate service instance
func NewCertificateService(certs CertificateStore, storage filestorage.FileStorage) CertificateService {
	return &certificateServiceImpl{
		certs:   certs,
		storage: storage,
	}
}

func (s *certificateServiceImpl) Upload(ctx context.Context, files []*multipart.FileHeader, eventID, uploadBy int64) ([]dto.UploadedFile, error) {
	if len(files) == 0 {
		return nil, apperrors.NewValidationError("no files supplied")
	}

	// Validate the full batch up front so a bad filename leaves neither disk
	// writes nor database rows behind.
	keys := make([]certfile.Keys, len(files))
	for i, fh := range files {
		k, err := certfile.Parse(fh.Filename)
		if err != nil {
			return nil, err
		}
		keys[i] = k
	}

	certs := make([]*models.Certificate, len(files))
	uploaded := make([]dto.UploadedFile, len(files))
	for i, fh := range files {
		url, err := s.storage.SaveFile(fh)
		if err != nil {
			// Files written so far stay on disk; no rows exist yet.
			return nil, fmt.Errorf("error storing file %s: %w", fh.Filename, err)
		}
		certs[i] = &models.Certificate{
			StudentID: keys[i].StudentID,
			ClassID:   keys[i].ClassID,
			EventID:   eventID,
			UploadBy:  uploadBy,
			FileName:  fh.Filename,
			FileURL:   url,
		}
		uploaded[i] = dto.UploadedFile{FileName: fh.Filename, FileURL: url}
	}

	if err := s.certs.CreateBatch(ctx, certs); err != nil {
		return nil, fmt.Errorf("error recording certificates: %w", err)
	}

	logger.Info().Int("count", len(uploaded)).Int64("eventID", eventID).Int64("uploadBy", uploadBy).Msg("Certificate batch uploaded")
	return uploaded, nil
}

func (s *certificateServiceImpl) ListByStudent(ctx context.Context, studentID int64) ([]*models.Certificate, error) {
	certs, err := s.certs.ListByStudentID(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing certificates: %w", err)
	}
	return certs, nil
}
