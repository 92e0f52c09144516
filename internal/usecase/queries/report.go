package queries

import (
	"context"
	"time"

	"hotel-booking/internal/pkg/clock"
)

const (
	summaryMonths    = 6
	summaryTopHotels = 5
)

type ReportReadStore interface {
	// Summary counts revenue over approved, confirmed and completed bookings only.
	Summary(ctx context.Context, since time.Time, topHotels int) (*Summary, error)
}

type ReportQueries interface {
	Summary(ctx context.Context) (*Summary, error)
}

type reportQueriesImpl struct {
	store ReportReadStore
	clock clock.Clock
}

func NewReportQueries(store ReportReadStore, clk clock.Clock) ReportQueries {
	return &reportQueriesImpl{store: store, clock: clk}
}

func (q *reportQueriesImpl) Summary(ctx context.Context) (*Summary, error) {
	return q.store.Summary(ctx, MonthWindowStart(q.clock.Now(), summaryMonths), summaryTopHotels)
}

// MonthWindowStart is the first instant of the oldest month in a window of
// months ending with the month containing now.
func MonthWindowStart(now time.Time, months int) time.Time {
	now = now.UTC()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, -(months - 1), 0)
}
