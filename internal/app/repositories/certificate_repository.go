package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/halitb/certman/internal/app/models"
	"github.com/halitb/certman/internal/db"
	"github.com/halitb/certman/internal/pkg/logger"
)

// CertificateRepository handles certificate database operations
type CertificateRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewCertificateRepository creates a new CertificateRepository
func NewCertificateRepository(pool *pgxpool.Pool) *CertificateRepository {
	return &CertificateRepository{
		db: pool,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateBatch inserts one certificate row per uploaded file inside a single
// transaction, so a failing insert leaves no partial rows behind. The ids and
// timestamps are written back into the given models.
func (r *CertificateRepository) CreateBatch(ctx context.Context, certs []*models.Certificate) error {
	if len(certs) == 0 {
		return nil
	}

	return db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		for _, cert := range certs {
			sql, args, err := r.sb.Insert("certificates").
				Columns("student_id", "class_id", "event_id", "upload_by", "file_name", "file_url").
				Values(cert.StudentID, cert.ClassID, cert.EventID, cert.UploadBy, cert.FileName, cert.FileURL).
				Suffix("RETURNING id, created_at").
				ToSql()
			if err != nil {
				return fmt.Errorf("failed to build create certificate query: %w", err)
			}

			if err := tx.QueryRow(ctx, sql, args...).Scan(&cert.ID, &cert.CreatedAt); err != nil {
				logger.Error().Err(err).Str("fileName", cert.FileName).Msg("Error inserting certificate row")
				return fmt.Errorf("error creating certificate: %w", err)
			}
		}
		return nil
	})
}

// ListByStudentID returns all certificate rows of one student.
func (r *CertificateRepository) ListByStudentID(ctx context.Context, studentID int64) ([]*models.Certificate, error) {
	return r.list(ctx, squirrel.Eq{"student_id": studentID})
}

// ListByStudentIDs returns all certificate rows whose student id is in the
// given set. An empty set short-circuits to an empty result without querying.
func (r *CertificateRepository) ListByStudentIDs(ctx context.Context, studentIDs []int64) ([]*models.Certificate, error) {
	if len(studentIDs) == 0 {
		return []*models.Certificate{}, nil
	}
	return r.list(ctx, squirrel.Eq{"student_id": studentIDs})
}

func (r *CertificateRepository) list(ctx context.Context, where squirrel.Eq) ([]*models.Certificate, error) {
	sql, args, err := r.sb.Select("id", "student_id", "class_id", "event_id", "upload_by", "file_name", "file_url", "created_at").
		From("certificates").
		Where(where).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list certificates query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying certificates")
		return nil, fmt.Errorf("error querying certificates: %w", err)
	}
	defer rows.Close()

	certs := []*models.Certificate{}
	for rows.Next() {
		c := &models.Certificate{}
		if err := rows.Scan(&c.ID, &c.StudentID, &c.ClassID, &c.EventID, &c.UploadBy, &c.FileName, &c.FileURL, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning certificate row: %w", err)
		}
		certs = append(certs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating certificate rows: %w", err)
	}

	return certs, nil
}
