package money

import (
	"errors"
	"math"
)

var (
	ErrNegativeAmount = errors.New("amount cannot be negative")
	ErrInvalidAmount  = errors.New("amount must be a finite number")
	ErrOverflow       = errors.New("amount is too large")
)

// maxCents is 2^63 as a float64; anything at or above it does not fit in int64.
const maxCents = float64(math.MaxInt64)

// Money is an amount in minor units (cents).
type Money struct {
	cents int64
}

func FromCents(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{cents: cents}, nil
}

// FromAmount converts a major-unit amount such as 129.99, rounding to the nearest cent.
func FromAmount(amount float64) (Money, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return Money{}, ErrInvalidAmount
	}
	cents := math.Round(amount * 100)
	if cents < 0 {
		return Money{}, ErrNegativeAmount
	}
	if cents >= maxCents {
		return Money{}, ErrOverflow
	}
	return Money{cents: int64(cents)}, nil
}

func (m Money) Cents() int64 { return m.cents }

func (m Money) Amount() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) IsZero() bool { return m.cents == 0 }

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Times multiplies by a non-negative count and reports ErrOverflow instead of wrapping.
func (m Money) Times(n int64) (Money, error) {
	if n < 0 {
		return Money{}, ErrNegativeAmount
	}
	if n != 0 && m.cents > math.MaxInt64/n {
		return Money{}, ErrOverflow
	}
	return Money{cents: m.cents * n}, nil
}
