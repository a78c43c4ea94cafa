package models

import "time"

// Event defines the event model based on the 'events' table. Metadata carries
// whatever extra payload the organizer supplied; event creation performs no
// field validation.
type Event struct {
	ID          int64                  `json:"id" db:"id"`
	OrganizerID *int64                 `json:"organizerId,omitempty" db:"organizer_id"`
	Title       string                 `json:"title" db:"title"`
	Description string                 `json:"description,omitempty" db:"description"`
	Metadata    map[string]interface{} `json:"metadata,omitempty" db:"metadata"`
	CreatedAt   time.Time              `json:"createdAt" db:"created_at"`
}
