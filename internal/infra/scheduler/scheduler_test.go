//go:build unit

package scheduler_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/infra/scheduler"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/usecase/shared"
	"hotel-booking/tests/common/builder"
	"hotel-booking/tests/common/fakestore"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyPurger_Run(t *testing.T) {
	store := fakestore.New()
	userID := uuid.New()
	store.PutIdempotency(shared.IdempotencyRecord{Key: "old", UserID: userID, ExpiresAt: builder.Now.Add(-time.Minute)})
	store.PutIdempotency(shared.IdempotencyRecord{Key: "edge", UserID: userID, ExpiresAt: builder.Now})
	store.PutIdempotency(shared.IdempotencyRecord{Key: "live", UserID: userID, ExpiresAt: builder.Now.Add(time.Hour)})

	purger := scheduler.NewIdempotencyPurger(store, clock.NewFixed(builder.Now))
	n, err := purger.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	_, ok := store.Idempotency("live", userID)
	assert.True(t, ok)
	_, ok = store.Idempotency("old", userID)
	assert.False(t, ok)
}

func TestNew(t *testing.T) {
	purger := scheduler.NewIdempotencyPurger(fakestore.New(), clock.NewFixed(builder.Now))

	t.Run("accepts descriptors and cron expressions", func(t *testing.T) {
		for _, spec := range []string{"@hourly", "*/5 * * * *", "@every 10m"} {
			s, err := scheduler.New(spec, purger)
			require.NoError(t, err, spec)

			s.Start()
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			assert.NoError(t, s.Stop(ctx))
			cancel()
		}
	})

	t.Run("rejects a malformed spec", func(t *testing.T) {
		_, err := scheduler.New("every hour", purger)
		assert.Error(t, err)
	})
}
