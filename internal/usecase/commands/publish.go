package commands

import (
	"context"
	"log/slog"

	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

// publish never fails the caller: the write is already committed.
func publish(ctx context.Context, p shared.EventPublisher, evt shared.Event) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, evt); err != nil {
		slog.Warn("failed to publish event",
			"event_type", evt.Type,
			"event_id", evt.ID.String(),
			"error", err.Error())
	}
}

// invalidate drops the cached hotel detail; a stale entry expires on its own TTL.
func invalidate(ctx context.Context, c shared.HotelCacheInvalidator, hotelID uuid.UUID) {
	if c == nil {
		return
	}
	if err := c.Invalidate(ctx, hotelID); err != nil {
		slog.Warn("failed to invalidate hotel cache",
			"hotel_id", hotelID.String(),
			"error", err.Error())
	}
}
