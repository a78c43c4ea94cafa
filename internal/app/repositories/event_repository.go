package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/halitb/certman/internal/app/models"
	"github.com/halitb/certman/internal/pkg/logger"
)

// EventRepository handles event database operations
type EventRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts an event row as supplied and returns it with id and
// created_at populated.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) (*models.Event, error) {
	sql, args, err := r.sb.Insert("events").
		Columns("organizer_id", "title", "description", "metadata").
		Values(event.OrganizerID, event.Title, event.Description, event.Metadata).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create event query: %w", err)
	}

	if err := r.db.QueryRow(ctx, sql, args...).Scan(&event.ID, &event.CreatedAt); err != nil {
		logger.Error().Err(err).Msg("Error executing create event query")
		return nil, fmt.Errorf("error creating event: %w", err)
	}
	return event, nil
}

// List returns event rows, filtered by organizer when organizerID is
// non-nil. No match means an empty slice, never an error.
func (r *EventRepository) List(ctx context.Context, organizerID *int64) ([]*models.Event, error) {
	builder := r.sb.Select("id", "organizer_id", "title", "description", "metadata", "created_at").
		From("events").
		OrderBy("id ASC")
	if organizerID != nil {
		builder = builder.Where(squirrel.Eq{"organizer_id": *organizerID})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list events query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error querying events")
		return nil, fmt.Errorf("error querying events: %w", err)
	}
	defer rows.Close()

	events := []*models.Event{}
	for rows.Next() {
		e := &models.Event{}
		if err := rows.Scan(&e.ID, &e.OrganizerID, &e.Title, &e.Description, &e.Metadata, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning event row: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event rows: %w", err)
	}

	return events, nil
}
