package hotel

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

var ErrNameRequired = errors.New("hotel name is required")

type Details struct {
	Name        string
	Description string
	Address     string
	City        string
	Country     string
	Amenities   []string
}

type Hotel struct {
	id        uuid.UUID
	details   Details
	ratings   []RatingRecord
	aggregate Aggregate
	createdAt time.Time
	updatedAt time.Time
}

func NewHotel(details Details, now time.Time) (*Hotel, error) {
	details, err := validDetails(details)
	if err != nil {
		return nil, err
	}
	return &Hotel{
		id:        uuid.New(),
		details:   details,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructHotel rebuilds a hotel with its rating records; the aggregate is
// derived from the records rather than trusted from storage.
func ReconstructHotel(id uuid.UUID, details Details, ratings []RatingRecord, createdAt, updatedAt time.Time) *Hotel {
	return &Hotel{
		id:        id,
		details:   details,
		ratings:   ratings,
		aggregate: ComputeAggregate(ratings),
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// UpdateDetails replaces the descriptive fields; the rating aggregate is untouched.
func (h *Hotel) UpdateDetails(details Details, now time.Time) error {
	details, err := validDetails(details)
	if err != nil {
		return err
	}
	h.details = details
	h.updatedAt = now
	return nil
}

func validDetails(d Details) (Details, error) {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return Details{}, ErrNameRequired
	}
	return d, nil
}

// AddRating appends a record and recomputes the aggregate.
// A booking can earn at most one rating.
func (h *Hotel) AddRating(record RatingRecord, now time.Time) error {
	if h.RatedBookings().Has(record.bookingID) {
		return ErrAlreadyRated
	}
	h.ratings = append(h.ratings, record)
	h.aggregate = ComputeAggregate(h.ratings)
	h.updatedAt = now
	return nil
}

func (h *Hotel) RatedBookings() RatedBookings {
	set := make(RatedBookings, len(h.ratings))
	for _, r := range h.ratings {
		set[r.bookingID] = struct{}{}
	}
	return set
}

func (h *Hotel) ID() uuid.UUID           { return h.id }
func (h *Hotel) Details() Details        { return h.details }
func (h *Hotel) Name() string            { return h.details.Name }
func (h *Hotel) Ratings() []RatingRecord { return slices.Clone(h.ratings) }
func (h *Hotel) Aggregate() Aggregate    { return h.aggregate }
func (h *Hotel) CreatedAt() time.Time    { return h.createdAt }
func (h *Hotel) UpdatedAt() time.Time    { return h.updatedAt }
