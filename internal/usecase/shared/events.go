package shared

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
	EventBookingDeleted       = "booking.deleted"
	EventHotelRated           = "hotel.rated"
)

// Event is an integration event emitted after a successful commit.
type Event struct {
	ID         uuid.UUID      `json:"id"`
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurredAt"`
	Payload    map[string]any `json:"payload"`
}

func NewEvent(eventType string, now time.Time, payload map[string]any) Event {
	return Event{
		ID:         uuid.New(),
		Type:       eventType,
		OccurredAt: now,
		Payload:    payload,
	}
}

type EventPublisher interface {
	Publish(ctx context.Context, evt Event) error
}

// HotelCacheInvalidator drops cached hotel detail after catalog or rating writes.
type HotelCacheInvalidator interface {
	Invalidate(ctx context.Context, hotelID uuid.UUID) error
}
