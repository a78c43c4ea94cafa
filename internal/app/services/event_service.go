package services

import (
	"context"
	"fmt"

	"github.com/halitb/certman/internal/app/models"
	"github.com/halitb/certman/internal/app/models/dto"
)

// EventService defines the interface for event operations
type EventService interface {
	// CreateEvent inserts the payload as supplied; no field validation.
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*models.Event, error)
	// ListEvents returns events, filtered by organizer when organizerID is
	// non-nil. No match yields an empty list.
	ListEvents(ctx context.Context, organizerID *int64) ([]*models.Event, error)
}

type eventServiceImpl struct {
	events EventStore
}

// NewEventService creates a new event service instance
func NewEventService(events EventStore) EventService {
	return &eventServiceImpl{events: events}
}

func (s *eventServiceImpl) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*models.Event, error) {
	event := &models.Event{
		Title:       req.Title,
		Description: req.Description,
		Metadata:    req.Metadata,
	}
	if req.OrganizerID != nil {
		id := req.OrganizerID.Int64()
		event.OrganizerID = &id
	}

	created, err := s.events.Create(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("error creating event: %w", err)
	}
	return created, nil
}

func (s *eventServiceImpl) ListEvents(ctx context.Context, organizerID *int64) ([]*models.Event, error) {
	events, err := s.events.List(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("error listing events: %w", err)
	}
	return events, nil
}
