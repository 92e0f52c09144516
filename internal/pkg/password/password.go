package password

import (
	"errors"

	"hotel-booking/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmpty    = errors.New("password is empty")
	ErrTooLong  = errors.New("password exceeds 72 bytes")
	ErrMismatch = errors.New("password does not match")
)

// Cost is the bcrypt work factor for new hashes. Existing hashes keep the
// cost they were created with.
const Cost = bcrypt.DefaultCost

// maxBytes is the bcrypt input limit; longer inputs are rejected instead of
// silently truncated.
const maxBytes = 72

func Hash(plain string) (string, error) {
	switch {
	case plain == "":
		return "", ErrEmpty
	case len(plain) > maxBytes:
		return "", ErrTooLong
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), Cost)
	if err != nil {
		return "", errs.Wrap(err, "bcrypt")
	}
	return string(hashed), nil
}

// Compare returns ErrMismatch for a wrong password and a different error when
// the stored hash itself is unusable.
func Compare(hashed, plain string) error {
	if plain == "" {
		return ErrMismatch
	}
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}
