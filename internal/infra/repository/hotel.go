package repository

import (
	"context"
	"time"

	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/infra/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type HotelRepository struct {
	db db.DBTX
}

func NewHotelRepository(dbtx db.DBTX) *HotelRepository {
	return &HotelRepository{db: dbtx}
}

func (r *HotelRepository) Create(ctx context.Context, h *hotel.Hotel) error {
	d := h.Details()
	agg := h.Aggregate()
	_, err := r.db.Exec(ctx, `
		INSERT INTO hotels (id, name, description, address, city, country, amenities, rating, ratings_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		h.ID(), d.Name, d.Description, d.Address, d.City, d.Country, nonNil(d.Amenities),
		agg.Rating, agg.Count, h.CreatedAt(), h.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to create hotel", err)
	}
	return nil
}

func (r *HotelRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM hotels WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check hotel", err)
	}
	return exists, nil
}

// LockByID locks the hotel row, then loads the rating records it owns.
func (r *HotelRepository) LockByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error) {
	var (
		d                    hotel.Details
		createdAt, updatedAt time.Time
	)
	err := r.db.QueryRow(ctx, `
		SELECT name, description, address, city, country, amenities, created_at, updated_at
		FROM hotels WHERE id = $1 FOR UPDATE`, id,
	).Scan(&d.Name, &d.Description, &d.Address, &d.City, &d.Country, &d.Amenities, &createdAt, &updatedAt)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock hotel", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, booking_id, value, created_at, updated_at
		FROM hotel_ratings WHERE hotel_id = $1
		ORDER BY created_at, id`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to load hotel ratings", err)
	}
	records, err := pgx.CollectRows(rows, scanRatingRecord)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan hotel ratings", err)
	}

	return hotel.ReconstructHotel(id, d, records, createdAt.UTC(), updatedAt.UTC()), nil
}

func (r *HotelRepository) AddRating(ctx context.Context, hotelID uuid.UUID, rec hotel.RatingRecord) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO hotel_ratings (id, hotel_id, user_id, booking_id, value, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rec.ID(), hotelID, rec.UserID(), rec.BookingID(), rec.Value().Float64(), rec.CreatedAt(), rec.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to add hotel rating", err)
	}
	return nil
}

// SaveAggregate writes the derived rating columns; callers hold the row lock.
func (r *HotelRepository) SaveAggregate(ctx context.Context, h *hotel.Hotel) error {
	agg := h.Aggregate()
	tag, err := r.db.Exec(ctx,
		`UPDATE hotels SET rating = $2, ratings_count = $3, updated_at = $4 WHERE id = $1`,
		h.ID(), agg.Rating, agg.Count, h.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to save hotel rating", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("hotel not found")
	}
	return nil
}

func (r *HotelRepository) UpdateDetails(ctx context.Context, h *hotel.Hotel) error {
	d := h.Details()
	tag, err := r.db.Exec(ctx, `
		UPDATE hotels
		SET name = $2, description = $3, address = $4, city = $5, country = $6, amenities = $7, updated_at = $8
		WHERE id = $1`,
		h.ID(), d.Name, d.Description, d.Address, d.City, d.Country, nonNil(d.Amenities), h.UpdatedAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update hotel", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("hotel not found")
	}
	return nil
}

func (r *HotelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM hotels WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete hotel", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFound("hotel not found")
	}
	return nil
}

func scanRatingRecord(row pgx.CollectableRow) (hotel.RatingRecord, error) {
	var (
		id, userID, bookingID uuid.UUID
		value                 float64
		createdAt, updatedAt  time.Time
	)
	if err := row.Scan(&id, &userID, &bookingID, &value, &createdAt, &updatedAt); err != nil {
		return hotel.RatingRecord{}, err
	}
	v, err := hotel.NewRatingValue(value)
	if err != nil {
		return hotel.RatingRecord{}, err
	}
	return hotel.ReconstructRatingRecord(id, userID, bookingID, v, createdAt.UTC(), updatedAt.UTC()), nil
}
