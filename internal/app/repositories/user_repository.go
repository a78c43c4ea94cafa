package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/halitb/certman/internal/app/models"
	"github.com/halitb/certman/internal/pkg/apperrors"
	"github.com/halitb/certman/internal/pkg/dberrors"
	"github.com/halitb/certman/internal/pkg/logger"
)

// UserRepository handles account rows across the four role tables. Every
// table uses "id" as its primary key; no per-route naming drift.
type UserRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateStudent inserts a student row and returns its id.
func (r *UserRepository) CreateStudent(ctx context.Context, s *models.Student) (int64, error) {
	sql, args, err := r.sb.Insert("students").
		Columns("name", "password", "class_id", "dept").
		Values(s.Name, s.Password, s.ClassID, s.Dept).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create student query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrUserAlreadyExists
		}
		logger.Error().Err(err).Str("name", s.Name).Msg("Error executing create student query")
		return 0, fmt.Errorf("error creating student: %w", err)
	}
	return id, nil
}

// CreateTeacher inserts a teacher row and returns its id.
func (r *UserRepository) CreateTeacher(ctx context.Context, t *models.Teacher) (int64, error) {
	sql, args, err := r.sb.Insert("teachers").
		Columns("name", "password", "class_id", "dept").
		Values(t.Name, t.Password, t.ClassID, t.Dept).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create teacher query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrUserAlreadyExists
		}
		logger.Error().Err(err).Str("name", t.Name).Msg("Error executing create teacher query")
		return 0, fmt.Errorf("error creating teacher: %w", err)
	}
	return id, nil
}

// CreateOrganizer inserts an organizer row and returns its id.
func (r *UserRepository) CreateOrganizer(ctx context.Context, o *models.Organizer) (int64, error) {
	sql, args, err := r.sb.Insert("organizers").
		Columns("name", "password", "club_name").
		Values(o.Name, o.Password, o.ClubName).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create organizer query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrUserAlreadyExists
		}
		logger.Error().Err(err).Str("name", o.Name).Msg("Error executing create organizer query")
		return 0, fmt.Errorf("error creating organizer: %w", err)
	}
	return id, nil
}

// CreateAdmin inserts an admin row and returns its id.
func (r *UserRepository) CreateAdmin(ctx context.Context, a *models.Admin) (int64, error) {
	sql, args, err := r.sb.Insert("admins").
		Columns("name", "password").
		Values(a.Name, a.Password).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build create admin query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return 0, apperrors.ErrUserAlreadyExists
		}
		logger.Error().Err(err).Str("name", a.Name).Msg("Error executing create admin query")
		return 0, fmt.Errorf("error creating admin: %w", err)
	}
	return id, nil
}

// GetStudentByName fetches a student row by account name.
func (r *UserRepository) GetStudentByName(ctx context.Context, name string) (*models.Student, error) {
	sql, args, err := r.sb.Select("id", "name", "password", "class_id", "dept").
		From("students").
		Where(squirrel.Eq{"name": name}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	s := &models.Student{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.Name, &s.Password, &s.ClassID, &s.Dept)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Str("name", name).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by name: %w", err)
	}
	return s, nil
}

// GetTeacherByName fetches a teacher row by account name.
func (r *UserRepository) GetTeacherByName(ctx context.Context, name string) (*models.Teacher, error) {
	sql, args, err := r.sb.Select("id", "name", "password", "class_id", "dept").
		From("teachers").
		Where(squirrel.Eq{"name": name}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get teacher query: %w", err)
	}

	t := &models.Teacher{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&t.ID, &t.Name, &t.Password, &t.ClassID, &t.Dept)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		logger.Error().Err(err).Str("name", name).Msg("Error scanning teacher row")
		return nil, fmt.Errorf("error getting teacher by name: %w", err)
	}
	return t, nil
}

// GetOrganizerByName fetches an organizer row by account name.
func (r *UserRepository) GetOrganizerByName(ctx context.Context, name string) (*models.Organizer, error) {
	sql, args, err := r.sb.Select("id", "name", "password", "club_name").
		From("organizers").
		Where(squirrel.Eq{"name": name}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get organizer query: %w", err)
	}

	o := &models.Organizer{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&o.ID, &o.Name, &o.Password, &o.ClubName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrOrganizerNotFound
		}
		logger.Error().Err(err).Str("name", name).Msg("Error scanning organizer row")
		return nil, fmt.Errorf("error getting organizer by name: %w", err)
	}
	return o, nil
}

// GetAdminByName fetches an admin row by account name.
func (r *UserRepository) GetAdminByName(ctx context.Context, name string) (*models.Admin, error) {
	sql, args, err := r.sb.Select("id", "name", "password").
		From("admins").
		Where(squirrel.Eq{"name": name}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get admin query: %w", err)
	}

	a := &models.Admin{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&a.ID, &a.Name, &a.Password)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdminNotFound
		}
		logger.Error().Err(err).Str("name", name).Msg("Error scanning admin row")
		return nil, fmt.Errorf("error getting admin by name: %w", err)
	}
	return a, nil
}

// GetStudentByID fetches exactly one student row by primary key.
func (r *UserRepository) GetStudentByID(ctx context.Context, id int64) (*models.Student, error) {
	sql, args, err := r.sb.Select("id", "name", "password", "class_id", "dept").
		From("students").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get student query: %w", err)
	}

	s := &models.Student{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&s.ID, &s.Name, &s.Password, &s.ClassID, &s.Dept)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		logger.Error().Err(err).Int64("studentID", id).Msg("Error scanning student row")
		return nil, fmt.Errorf("error getting student by id: %w", err)
	}
	return s, nil
}

// GetTeacherByID fetches exactly one teacher row by primary key.
func (r *UserRepository) GetTeacherByID(ctx context.Context, id int64) (*models.Teacher, error) {
	sql, args, err := r.sb.Select("id", "name", "password", "class_id", "dept").
		From("teachers").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get teacher query: %w", err)
	}

	t := &models.Teacher{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&t.ID, &t.Name, &t.Password, &t.ClassID, &t.Dept)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTeacherNotFound
		}
		logger.Error().Err(err).Int64("teacherID", id).Msg("Error scanning teacher row")
		return nil, fmt.Errorf("error getting teacher by id: %w", err)
	}
	return t, nil
}

// GetStudentsByClassID fetches all students of a class. An empty class yields
// an empty slice, not an error.
func (r *UserRepository) GetStudentsByClassID(ctx context.Context, classID int64) ([]*models.Student, error) {
	sql, args, err := r.sb.Select("id", "name", "password", "class_id", "dept").
		From("students").
		Where(squirrel.Eq{"class_id": classID}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build students by class query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("classID", classID).Msg("Error querying students by class")
		return nil, fmt.Errorf("error querying students by class: %w", err)
	}
	defer rows.Close()

	students := []*models.Student{}
	for rows.Next() {
		s := &models.Student{}
		if err := rows.Scan(&s.ID, &s.Name, &s.Password, &s.ClassID, &s.Dept); err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}

	return students, nil
}
