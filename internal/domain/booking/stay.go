package booking

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidStay    = errors.New("check-in must be before check-out")
	ErrInvalidInstant = errors.New("invalid date")
)

const secondsPerNight = 24 * 60 * 60

var instantLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

// ParseInstant accepts RFC 3339 timestamps and plain calendar dates (UTC midnight).
func ParseInstant(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidInstant
	}
	for _, layout := range instantLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidInstant
}

// Stay is the half-open interval [checkIn, checkOut).
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	if checkIn.IsZero() || checkOut.IsZero() {
		return Stay{}, ErrInvalidInstant
	}
	if !checkIn.Before(checkOut) {
		return Stay{}, ErrInvalidStay
	}
	return Stay{checkIn: checkIn.UTC(), checkOut: checkOut.UTC()}, nil
}

func ParseStay(checkIn, checkOut string) (Stay, error) {
	in, err := ParseInstant(checkIn)
	if err != nil {
		return Stay{}, err
	}
	out, err := ParseInstant(checkOut)
	if err != nil {
		return Stay{}, err
	}
	return NewStay(in, out)
}

func (s Stay) CheckIn() time.Time  { return s.checkIn }
func (s Stay) CheckOut() time.Time { return s.checkOut }

// Nights rounds partial days up to a full night. It counts in Unix seconds
// since time.Duration saturates for stays longer than about 292 years.
func (s Stay) Nights() int64 {
	secs := s.checkOut.Unix() - s.checkIn.Unix()
	nanos := s.checkOut.Nanosecond() - s.checkIn.Nanosecond()
	if nanos < 0 {
		secs--
		nanos += int(time.Second)
	}
	n := secs / secondsPerNight
	if secs%secondsPerNight != 0 || nanos > 0 {
		n++
	}
	return n
}

// Overlaps is true when both intervals share at least one instant.
// A checkout equal to the other stay's check-in does not overlap.
func (s Stay) Overlaps(other Stay) bool {
	return s.checkIn.Before(other.checkOut) && other.checkIn.Before(s.checkOut)
}

// EndedBy reports whether the stay is over at now.
func (s Stay) EndedBy(now time.Time) bool {
	return !s.checkOut.After(now)
}
