package hotel

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRating = errors.New("rating must be a number between 1 and 5")
	ErrAlreadyRated  = errors.New("booking has already been rated")
)

const (
	MinRating = 1.0
	MaxRating = 5.0
)

type RatingValue struct {
	value float64
}

func NewRatingValue(v float64) (RatingValue, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < MinRating || v > MaxRating {
		return RatingValue{}, ErrInvalidRating
	}
	return RatingValue{value: v}, nil
}

func (r RatingValue) Float64() float64 { return r.value }

// RatingRecord is one guest's rating, earned by a single booking.
// It has no lifecycle outside the hotel that owns it.
type RatingRecord struct {
	id        uuid.UUID
	userID    uuid.UUID
	bookingID uuid.UUID
	value     RatingValue
	createdAt time.Time
	updatedAt time.Time
}

func NewRatingRecord(userID, bookingID uuid.UUID, value RatingValue, now time.Time) RatingRecord {
	return RatingRecord{
		id:        uuid.New(),
		userID:    userID,
		bookingID: bookingID,
		value:     value,
		createdAt: now,
		updatedAt: now,
	}
}

func ReconstructRatingRecord(id, userID, bookingID uuid.UUID, value RatingValue, createdAt, updatedAt time.Time) RatingRecord {
	return RatingRecord{
		id:        id,
		userID:    userID,
		bookingID: bookingID,
		value:     value,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r RatingRecord) ID() uuid.UUID        { return r.id }
func (r RatingRecord) UserID() uuid.UUID    { return r.userID }
func (r RatingRecord) BookingID() uuid.UUID { return r.bookingID }
func (r RatingRecord) Value() RatingValue   { return r.value }
func (r RatingRecord) CreatedAt() time.Time { return r.createdAt }
func (r RatingRecord) UpdatedAt() time.Time { return r.updatedAt }

type Aggregate struct {
	Rating float64
	Count  int
}

// ComputeAggregate is the only source of a hotel's rating and ratings count.
func ComputeAggregate(records []RatingRecord) Aggregate {
	if len(records) == 0 {
		return Aggregate{}
	}
	var sum float64
	for _, r := range records {
		sum += r.value.value
	}
	mean := sum / float64(len(records))
	return Aggregate{
		Rating: math.Round(mean*10) / 10,
		Count:  len(records),
	}
}

// RatedBookings is the set of booking ids already used for a rating.
type RatedBookings map[uuid.UUID]struct{}

func NewRatedBookings(ids ...uuid.UUID) RatedBookings {
	set := make(RatedBookings, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s RatedBookings) Has(id uuid.UUID) bool {
	_, ok := s[id]
	return ok
}
