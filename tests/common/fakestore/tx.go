package fakestore

import (
	"context"
	"errors"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	errDuplicate  = errors.New("duplicate key value violates unique constraint")
	errForeignKey = errors.New("violates foreign key constraint")
	errExclusion  = errors.New("conflicting key value violates exclusion constraint")
)

func duplicate(msg string) error {
	return infra.WrapRepoErr(msg, errDuplicate, infra.KindDuplicateKey)
}

func foreignKey(msg string) error {
	return infra.WrapRepoErr(msg, errForeignKey, infra.KindForeignKeyViolated)
}

type tx struct {
	s *Store
}

func (t *tx) Bookings() shared.BookingRepository        { return bookingRepo{t.s} }
func (t *tx) Rooms() shared.RoomRepository              { return roomRepo{t.s} }
func (t *tx) Hotels() shared.HotelRepository            { return hotelRepo{t.s} }
func (t *tx) Users() shared.UserRepository              { return userRepo{t.s} }
func (t *tx) Idempotency() shared.IdempotencyRepository { return idempotencyRepo{t.s} }

type bookingRepo struct{ s *Store }

// Create enforces the same non-overlap rule as the database exclusion constraint.
func (r bookingRepo) Create(_ context.Context, b *booking.Booking) error {
	if err := r.s.injected("Bookings.Create"); err != nil {
		return err
	}
	if _, ok := r.s.data.rooms[b.RoomID()]; !ok {
		return foreignKey("failed to create booking")
	}
	if _, ok := r.s.data.bookings[b.ID()]; ok {
		return duplicate("failed to create booking")
	}
	if b.Status().HoldsRoom() {
		for _, other := range r.s.data.bookings {
			if other.RoomID() == b.RoomID() && other.Status().HoldsRoom() && other.Stay().Overlaps(b.Stay()) {
				return infra.WrapRepoErr("failed to create booking", errExclusion, infra.KindConflict)
			}
		}
	}
	r.s.data.bookings[b.ID()] = *b
	return nil
}

func (r bookingRepo) LockByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.FindByID(ctx, id)
}

func (r bookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, ok := r.s.data.bookings[id]
	if !ok {
		return nil, infra.NotFound("booking not found")
	}
	return &b, nil
}

func (r bookingRepo) ListOccupancyByRoom(_ context.Context, roomID uuid.UUID) ([]booking.Occupancy, error) {
	var result []booking.Occupancy
	for _, b := range r.s.data.bookings {
		if b.RoomID() == roomID {
			result = append(result, b.Occupancy())
		}
	}
	return result, nil
}

func (r bookingRepo) FindStay(_ context.Context, id uuid.UUID) (*hotel.StaySnapshot, error) {
	b, ok := r.s.data.bookings[id]
	if !ok {
		return nil, infra.NotFound("booking not found")
	}
	rm := r.s.data.rooms[b.RoomID()]
	return &hotel.StaySnapshot{
		BookingID: b.ID(),
		UserID:    b.UserID(),
		HotelID:   rm.HotelID(),
		Status:    b.Status(),
		CheckOut:  b.Stay().CheckOut(),
	}, nil
}

func (r bookingRepo) UpdateStatus(_ context.Context, b *booking.Booking) error {
	if err := r.s.injected("Bookings.UpdateStatus"); err != nil {
		return err
	}
	if _, ok := r.s.data.bookings[b.ID()]; !ok {
		return infra.NotFound("booking not found")
	}
	if b.Status().HoldsRoom() {
		for id, other := range r.s.data.bookings {
			if id != b.ID() && other.RoomID() == b.RoomID() && other.Status().HoldsRoom() && other.Stay().Overlaps(b.Stay()) {
				return infra.WrapRepoErr("failed to update booking status", errExclusion, infra.KindConflict)
			}
		}
	}
	r.s.data.bookings[b.ID()] = *b
	return nil
}

func (r bookingRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.data.bookings[id]; !ok {
		return infra.NotFound("booking not found")
	}
	delete(r.s.data.bookings, id)
	return nil
}

type roomRepo struct{ s *Store }

func (r roomRepo) Create(_ context.Context, rm *room.Room) error {
	if _, ok := r.s.data.hotels[rm.HotelID()]; !ok {
		return foreignKey("failed to create room")
	}
	r.s.data.rooms[rm.ID()] = *rm
	return nil
}

func (r roomRepo) FindByID(_ context.Context, id uuid.UUID) (*room.Room, error) {
	rm, ok := r.s.data.rooms[id]
	if !ok {
		return nil, infra.NotFound("room not found")
	}
	return &rm, nil
}

func (r roomRepo) LockByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	rm, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.s.interleaved(ctx, "Rooms.LockByID")
	return rm, nil
}

func (r roomRepo) Update(_ context.Context, rm *room.Room) error {
	if _, ok := r.s.data.rooms[rm.ID()]; !ok {
		return infra.NotFound("room not found")
	}
	r.s.data.rooms[rm.ID()] = *rm
	return nil
}

// Delete is restricted while bookings reference the room.
func (r roomRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.data.rooms[id]; !ok {
		return infra.NotFound("room not found")
	}
	for _, b := range r.s.data.bookings {
		if b.RoomID() == id {
			return foreignKey("failed to delete room")
		}
	}
	delete(r.s.data.rooms, id)
	return nil
}

type hotelRepo struct{ s *Store }

func (r hotelRepo) Create(_ context.Context, h *hotel.Hotel) error {
	if _, ok := r.s.data.hotels[h.ID()]; ok {
		return duplicate("failed to create hotel")
	}
	agg := h.Aggregate()
	r.s.data.hotels[h.ID()] = hotelRow{
		details:      h.Details(),
		createdAt:    h.CreatedAt(),
		updatedAt:    h.UpdatedAt(),
		rating:       agg.Rating,
		ratingsCount: agg.Count,
	}
	return nil
}

func (r hotelRepo) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := r.s.data.hotels[id]
	return ok, nil
}

func (r hotelRepo) LockByID(_ context.Context, id uuid.UUID) (*hotel.Hotel, error) {
	if _, ok := r.s.data.hotels[id]; !ok {
		return nil, infra.NotFound("hotel not found")
	}
	return r.s.data.loadHotel(id), nil
}

// AddRating enforces one rating per booking like the UNIQUE(booking_id) column.
func (r hotelRepo) AddRating(_ context.Context, hotelID uuid.UUID, rec hotel.RatingRecord) error {
	if err := r.s.injected("Hotels.AddRating"); err != nil {
		return err
	}
	for _, existing := range r.s.data.ratings {
		if existing.record.BookingID() == rec.BookingID() {
			return duplicate("failed to add rating")
		}
	}
	r.s.data.ratings[rec.ID()] = ratingRow{hotelID: hotelID, record: rec}
	return nil
}

func (r hotelRepo) SaveAggregate(_ context.Context, h *hotel.Hotel) error {
	row, ok := r.s.data.hotels[h.ID()]
	if !ok {
		return infra.NotFound("hotel not found")
	}
	agg := h.Aggregate()
	row.rating = agg.Rating
	row.ratingsCount = agg.Count
	row.updatedAt = h.UpdatedAt()
	r.s.data.hotels[h.ID()] = row
	return nil
}

func (r hotelRepo) UpdateDetails(_ context.Context, h *hotel.Hotel) error {
	row, ok := r.s.data.hotels[h.ID()]
	if !ok {
		return infra.NotFound("hotel not found")
	}
	row.details = h.Details()
	row.updatedAt = h.UpdatedAt()
	r.s.data.hotels[h.ID()] = row
	return nil
}

// Delete cascades to rooms but is restricted by their bookings.
func (r hotelRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.s.data.hotels[id]; !ok {
		return infra.NotFound("hotel not found")
	}
	for _, b := range r.s.data.bookings {
		if rm, ok := r.s.data.rooms[b.RoomID()]; ok && rm.HotelID() == id {
			return foreignKey("failed to delete hotel")
		}
	}
	for rid, rm := range r.s.data.rooms {
		if rm.HotelID() == id {
			delete(r.s.data.rooms, rid)
		}
	}
	for rid, rt := range r.s.data.ratings {
		if rt.hotelID == id {
			delete(r.s.data.ratings, rid)
		}
	}
	delete(r.s.data.hotels, id)
	return nil
}

type userRepo struct{ s *Store }

func (r userRepo) Create(_ context.Context, u *user.User) error {
	for _, existing := range r.s.data.users {
		if existing.Email() == u.Email() {
			return duplicate("failed to create user")
		}
	}
	r.s.data.users[u.ID()] = *u
	return nil
}

func (r userRepo) FindByEmail(_ context.Context, email user.Email) (*user.User, error) {
	for _, u := range r.s.data.users {
		if u.Email() == email {
			return &u, nil
		}
	}
	return nil, infra.NotFound("user not found")
}

type idempotencyRepo struct{ s *Store }

func (r idempotencyRepo) Find(_ context.Context, key string, userID uuid.UUID) (*shared.IdempotencyRecord, error) {
	rec, ok := r.s.data.idempotency[idemKey{key, userID}]
	if !ok {
		return nil, infra.NotFound("idempotency key not found")
	}
	return &rec, nil
}

func (r idempotencyRepo) Save(_ context.Context, rec shared.IdempotencyRecord) error {
	k := idemKey{rec.Key, rec.UserID}
	if _, ok := r.s.data.idempotency[k]; ok {
		return duplicate("failed to save idempotency key")
	}
	r.s.data.idempotency[k] = rec
	return nil
}

func (r idempotencyRepo) Delete(_ context.Context, key string, userID uuid.UUID) error {
	delete(r.s.data.idempotency, idemKey{key, userID})
	return nil
}

func (r idempotencyRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for k, rec := range r.s.data.idempotency {
		if rec.IsExpired(now) {
			delete(r.s.data.idempotency, k)
			n++
		}
	}
	return n, nil
}
