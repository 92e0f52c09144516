//go:build unit

package cache

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHotelKey(t *testing.T) {
	id := uuid.MustParse("0b6c7a4e-3f0b-4d5b-9a63-0f7f0c6e2a11")
	assert.Equal(t, "hotel:detail:0b6c7a4e-3f0b-4d5b-9a63-0f7f0c6e2a11", HotelKey(id))
}

func TestNoopHotelCache(t *testing.T) {
	ctx := context.Background()
	var c NoopHotelCache

	got, err := c.Get(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.NoError(t, c.Set(ctx, nil))
	assert.NoError(t, c.Invalidate(ctx, uuid.New()))
}
