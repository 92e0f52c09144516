package shared

import (
	"time"

	"github.com/google/uuid"
)

type IdempotencyRecord struct {
	Key         string
	UserID      uuid.UUID
	Endpoint    string
	RequestHash string
	BookingID   uuid.UUID
	ExpiresAt   time.Time
	CreatedAt   time.Time
}

func (r IdempotencyRecord) IsExpired(now time.Time) bool {
	return !r.ExpiresAt.After(now)
}
