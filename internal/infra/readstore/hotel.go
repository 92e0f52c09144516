package readstore

import (
	"context"
	"fmt"
	"strings"

	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/db"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const hotelViewSelect = `
	SELECT id, name, description, address, city, country, amenities, rating, ratings_count, created_at, updated_at
	FROM hotels`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type HotelReadStore struct {
	db db.DBTX
}

func NewHotelReadStore(dbtx db.DBTX) *HotelReadStore {
	return &HotelReadStore{db: dbtx}
}

// List matches city exactly and q as a case-insensitive substring of the name.
func (r *HotelReadStore) List(ctx context.Context, filter queries.HotelFilter) ([]*queries.HotelView, error) {
	var (
		conds []string
		args  []any
	)
	if city := strings.TrimSpace(filter.City); city != "" {
		args = append(args, city)
		conds = append(conds, fmt.Sprintf("city = $%d", len(args)))
	}
	if q := strings.TrimSpace(filter.Q); q != "" {
		args = append(args, "%"+likeEscaper.Replace(q)+"%")
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
	}

	sql := hotelViewSelect
	if len(conds) > 0 {
		sql += " WHERE " + strings.Join(conds, " AND ")
	}
	sql += " ORDER BY created_at DESC, id DESC"

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotels", err)
	}
	result, err := pgx.CollectRows(rows, scanHotelView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan hotels", err)
	}
	return result, nil
}

func (r *HotelReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.HotelView, error) {
	rows, err := r.db.Query(ctx, hotelViewSelect+` WHERE id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get hotel", err)
	}
	v, err := pgx.CollectExactlyOneRow(rows, scanHotelView)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get hotel", err)
	}
	return v, nil
}

func (r *HotelReadStore) RatedBookingIDs(ctx context.Context, hotelID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx, `SELECT booking_id FROM hotel_ratings WHERE hotel_id = $1`, hotelID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list rated bookings", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[uuid.UUID])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan rated bookings", err)
	}
	return ids, nil
}

func scanHotelView(row pgx.CollectableRow) (*queries.HotelView, error) {
	var v queries.HotelView
	err := row.Scan(
		&v.ID, &v.Name, &v.Description, &v.Address, &v.City, &v.Country, &v.Amenities,
		&v.Rating, &v.RatingsCount, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if v.Amenities == nil {
		v.Amenities = []string{}
	}
	v.CreatedAt = v.CreatedAt.UTC()
	v.UpdatedAt = v.UpdatedAt.UTC()
	return &v, nil
}
