package readstore

import (
	"context"
	"time"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

// revenueStatuses are the states whose price counts as earned.
var revenueStatuses = []string{"approved", "confirmed", "completed"}

type ReportReadStore struct {
	db db.DBTX
}

func NewReportReadStore(dbtx db.DBTX) *ReportReadStore {
	return &ReportReadStore{db: dbtx}
}

func (r *ReportReadStore) Summary(ctx context.Context, since time.Time, topHotels int) (*queries.Summary, error) {
	s := &queries.Summary{}

	err := r.db.QueryRow(ctx, `
		SELECT
			(SELECT count(*) FROM hotels),
			(SELECT count(*) FROM rooms),
			(SELECT count(*) FROM bookings),
			(SELECT coalesce(sum(total_price_cents), 0)::bigint FROM bookings WHERE status = ANY($1))`,
		revenueStatuses,
	).Scan(&s.Hotels, &s.Rooms, &s.Bookings, &s.RevenueCents)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load totals", err)
	}

	if s.ByStatus, err = r.byStatus(ctx); err != nil {
		return nil, err
	}
	if s.Monthly, err = r.monthly(ctx, since); err != nil {
		return nil, err
	}
	if s.TopByBookings, err = r.topHotels(ctx, "bookings", topHotels); err != nil {
		return nil, err
	}
	if s.TopByRevenue, err = r.topHotels(ctx, "revenue_cents", topHotels); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *ReportReadStore) byStatus(ctx context.Context) ([]queries.StatusCount, error) {
	rows, err := r.db.Query(ctx, `SELECT status, count(*) FROM bookings GROUP BY status ORDER BY status`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count bookings by status", err)
	}
	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (queries.StatusCount, error) {
		var c queries.StatusCount
		err := row.Scan(&c.Status, &c.Count)
		return c, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan status counts", err)
	}
	return result, nil
}

// monthly buckets bookings by the UTC month they were created in.
func (r *ReportReadStore) monthly(ctx context.Context, since time.Time) ([]queries.MonthlyStat, error) {
	rows, err := r.db.Query(ctx, `
		SELECT date_trunc('month', created_at AT TIME ZONE 'UTC') AS month,
		       count(*),
		       coalesce(sum(total_price_cents) FILTER (WHERE status = ANY($2)), 0)::bigint
		FROM bookings
		WHERE created_at >= $1
		GROUP BY month
		ORDER BY month`, since, revenueStatuses)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load monthly stats", err)
	}
	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (queries.MonthlyStat, error) {
		var m queries.MonthlyStat
		if err := row.Scan(&m.Month, &m.Bookings, &m.RevenueCents); err != nil {
			return m, err
		}
		m.Month = time.Date(m.Month.Year(), m.Month.Month(), 1, 0, 0, 0, 0, time.UTC)
		return m, nil
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan monthly stats", err)
	}
	return result, nil
}

// topHotels ranks by one of the two aggregate columns; orderBy is never user input.
func (r *ReportReadStore) topHotels(ctx context.Context, orderBy string, limit int) ([]queries.HotelRevenue, error) {
	rows, err := r.db.Query(ctx, `
		SELECT h.id, h.name,
		       count(b.id) AS bookings,
		       coalesce(sum(b.total_price_cents) FILTER (WHERE b.status = ANY($1)), 0)::bigint AS revenue_cents
		FROM hotels h
		JOIN rooms rm ON rm.hotel_id = h.id
		JOIN bookings b ON b.room_id = rm.id
		GROUP BY h.id, h.name
		ORDER BY `+orderBy+` DESC, h.name
		LIMIT $2`, revenueStatuses, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to rank hotels", err)
	}
	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (queries.HotelRevenue, error) {
		var h queries.HotelRevenue
		err := row.Scan(&h.HotelID, &h.HotelName, &h.Bookings, &h.RevenueCents)
		return h, err
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan hotel ranking", err)
	}
	return result, nil
}
