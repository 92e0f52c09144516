//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/usecase/queries"
	"hotel-booking/tests/common/builder"
	queriesmock "hotel-booking/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMonthWindowStart(t *testing.T) {
	tests := []struct {
		name   string
		now    time.Time
		months int
		want   time.Time
	}{
		{"mid month", builder.Now, 6, time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)},
		{"single month", builder.Now, 1, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"end of a long month", time.Date(2026, 8, 31, 23, 0, 0, 0, time.UTC), 6, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"non-UTC input", time.Date(2026, 1, 1, 0, 30, 0, 0, time.FixedZone("CET", 3600)), 2, time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, queries.MonthWindowStart(tt.now, tt.months))
		})
	}
}

func TestReportQueries_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockReportReadStore(ctrl)
	sut := queries.NewReportQueries(store, clock.NewFixed(builder.Now))
	want := &queries.Summary{Hotels: 2, Rooms: 5, Bookings: 9, RevenueCents: 123400}

	store.EXPECT().Summary(gomock.Any(), time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC), 5).Return(want, nil)

	got, err := sut.Summary(context.Background())

	require.NoError(t, err)
	assert.Equal(t, want, got)
}
