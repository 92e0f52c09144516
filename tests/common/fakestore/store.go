// Package fakestore is an in-memory shared.UnitOfWork for use case tests.
// Within holds one global lock for the whole callback and restores the prior
// state when the callback fails, which mirrors row locks plus rollback.
package fakestore

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type hotelRow struct {
	details      hotel.Details
	createdAt    time.Time
	updatedAt    time.Time
	rating       float64
	ratingsCount int
}

type ratingRow struct {
	hotelID uuid.UUID
	record  hotel.RatingRecord
}

type idemKey struct {
	key    string
	userID uuid.UUID
}

type state struct {
	users       map[uuid.UUID]user.User
	hotels      map[uuid.UUID]hotelRow
	rooms       map[uuid.UUID]room.Room
	bookings    map[uuid.UUID]booking.Booking
	ratings     map[uuid.UUID]ratingRow
	idempotency map[idemKey]shared.IdempotencyRecord
}

func (s state) clone() state {
	return state{
		users:       maps.Clone(s.users),
		hotels:      maps.Clone(s.hotels),
		rooms:       maps.Clone(s.rooms),
		bookings:    maps.Clone(s.bookings),
		ratings:     maps.Clone(s.ratings),
		idempotency: maps.Clone(s.idempotency),
	}
}

type Store struct {
	mu       sync.Mutex
	data     state
	failures map[string]error
	hooks    map[string]func(ctx context.Context, tx shared.Tx)
	commits  int
}

func New() *Store {
	return &Store{
		data: state{
			users:       map[uuid.UUID]user.User{},
			hotels:      map[uuid.UUID]hotelRow{},
			rooms:       map[uuid.UUID]room.Room{},
			bookings:    map[uuid.UUID]booking.Booking{},
			ratings:     map[uuid.UUID]ratingRow{},
			idempotency: map[idemKey]shared.IdempotencyRecord{},
		},
		failures: map[string]error{},
		hooks:    map[string]func(ctx context.Context, tx shared.Tx){},
	}
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	if err := fn(ctx, &tx{s: s}); err != nil {
		s.data = snapshot
		return err
	}
	s.commits++
	return nil
}

// FailOnce makes the next call of op ("Bookings.Create", "Hotels.AddRating", ...)
// return err instead of touching the data.
func (s *Store) FailOnce(op string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[op] = err
}

func (s *Store) injected(op string) error {
	err, ok := s.failures[op]
	if !ok {
		return nil
	}
	delete(s.failures, op)
	return err
}

// InterleaveOnce runs fn inside the next transaction that calls op, right
// after op has taken its lock. It stands in for a writer that committed
// while the caller was waiting on that lock.
func (s *Store) InterleaveOnce(op string, fn func(ctx context.Context, tx shared.Tx)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks[op] = fn
}

func (s *Store) interleaved(ctx context.Context, op string) {
	fn, ok := s.hooks[op]
	if !ok {
		return
	}
	delete(s.hooks, op)
	fn(ctx, &tx{s: s})
}

// Commits counts transactions that completed without error.
func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

// Seeding helpers write outside any transaction.

func (s *Store) PutUser(u *user.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.users[u.ID()] = *u
}

func (s *Store) PutHotel(h *hotel.Hotel) {
	s.mu.Lock()
	defer s.mu.Unlock()
	agg := h.Aggregate()
	s.data.hotels[h.ID()] = hotelRow{
		details:      h.Details(),
		createdAt:    h.CreatedAt(),
		updatedAt:    h.UpdatedAt(),
		rating:       agg.Rating,
		ratingsCount: agg.Count,
	}
	for _, rec := range h.Ratings() {
		s.data.ratings[rec.ID()] = ratingRow{hotelID: h.ID(), record: rec}
	}
}

func (s *Store) PutRoom(r *room.Room) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.rooms[r.ID()] = *r
}

func (s *Store) PutBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.bookings[b.ID()] = *b
}

func (s *Store) PutIdempotency(rec shared.IdempotencyRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.idempotency[idemKey{rec.Key, rec.UserID}] = rec
}

// Inspection helpers return copies.

func (s *Store) Booking(id uuid.UUID) (*booking.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.data.bookings[id]
	return &b, ok
}

func (s *Store) Bookings() []booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return collect(s.data.bookings)
}

func (s *Store) Room(id uuid.UUID) (*room.Room, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.data.rooms[id]
	return &r, ok
}

// HotelAggregate returns the stored rating columns, not a recomputation.
func (s *Store) HotelAggregate(id uuid.UUID) (rating float64, count int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.data.hotels[id]
	return row.rating, row.ratingsCount, ok
}

func (s *Store) Hotel(id uuid.UUID) (*hotel.Hotel, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.data.hotels[id]; !ok {
		return nil, false
	}
	return s.data.loadHotel(id), true
}

func (s *Store) RatingCount(hotelID uuid.UUID) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, r := range s.data.ratings {
		if r.hotelID == hotelID {
			n++
		}
	}
	return n
}

func (s *Store) Idempotency(key string, userID uuid.UUID) (shared.IdempotencyRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.data.idempotency[idemKey{key, userID}]
	return rec, ok
}

func (s *Store) UserByEmail(email string) (*user.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.data.users {
		if u.Email().Value() == email {
			return &u, true
		}
	}
	return nil, false
}

func collect[K comparable, V any](m map[K]V) []V {
	out := make([]V, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}

// loadHotel rebuilds the hotel with its records in insertion order.
func (d state) loadHotel(id uuid.UUID) *hotel.Hotel {
	row := d.hotels[id]
	var records []hotel.RatingRecord
	for _, r := range d.ratings {
		if r.hotelID == id {
			records = append(records, r.record)
		}
	}
	slices.SortFunc(records, func(a, b hotel.RatingRecord) int {
		if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
			return c
		}
		return strings.Compare(a.ID().String(), b.ID().String())
	})
	return hotel.ReconstructHotel(id, row.details, records, row.createdAt, row.updatedAt)
}
