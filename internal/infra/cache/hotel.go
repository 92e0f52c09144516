package cache

import (
	"context"
	"errors"
	"time"

	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/queries"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const hotelKeyPrefix = "hotel:detail:"

// HotelCache stores hotel details keyed by hotel id. Entries expire after ttl
// and are dropped whenever a command changes the hotel or its rooms.
type HotelCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

func NewHotelCache(client redis.Cmdable, ttl time.Duration) *HotelCache {
	return &HotelCache{client: client, ttl: ttl}
}

func HotelKey(hotelID uuid.UUID) string {
	return hotelKeyPrefix + hotelID.String()
}

func (c *HotelCache) Get(ctx context.Context, hotelID uuid.UUID) (*queries.HotelDetail, error) {
	raw, err := c.client.Get(ctx, HotelKey(hotelID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, errs.Wrap(err, "failed to read hotel cache")
	}

	var detail queries.HotelDetail
	if err := json.Unmarshal(raw, &detail); err != nil {
		// a corrupt entry behaves like a miss and is overwritten on the next Set
		return nil, nil
	}
	return &detail, nil
}

func (c *HotelCache) Set(ctx context.Context, detail *queries.HotelDetail) error {
	raw, err := json.Marshal(detail)
	if err != nil {
		return errs.Wrap(err, "failed to encode hotel cache entry")
	}
	if err := c.client.Set(ctx, HotelKey(detail.Hotel.ID), raw, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to write hotel cache")
	}
	return nil
}

func (c *HotelCache) Invalidate(ctx context.Context, hotelID uuid.UUID) error {
	if err := c.client.Del(ctx, HotelKey(hotelID)).Err(); err != nil {
		return errs.Wrap(err, "failed to invalidate hotel cache")
	}
	return nil
}

// NoopHotelCache is used when Redis is disabled; every read misses.
type NoopHotelCache struct{}

func (NoopHotelCache) Get(context.Context, uuid.UUID) (*queries.HotelDetail, error) { return nil, nil }
func (NoopHotelCache) Set(context.Context, *queries.HotelDetail) error              { return nil }
func (NoopHotelCache) Invalidate(context.Context, uuid.UUID) error                  { return nil }
