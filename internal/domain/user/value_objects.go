package user

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail    = errors.New("invalid email format")
	ErrInvalidRole     = errors.New("invalid role")
	ErrEmptyName       = errors.New("name cannot be empty")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong = errors.New("password must be at most 72 bytes")
)

const (
	MinPasswordLength = 8
	// bcrypt ignores everything past 72 bytes.
	MaxPasswordBytes = 72
	maxEmailLength   = 254
)

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9\-]+(\.[a-z0-9\-]+)*\.[a-z]{2,}$`)

// Email is always stored lowercased; lookups by email are case-insensitive.
type Email struct{ value string }

func NewEmail(raw string) (Email, error) {
	addr := strings.ToLower(strings.TrimSpace(raw))
	if len(addr) > maxEmailLength || !emailPattern.MatchString(addr) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: addr}, nil
}

func (e Email) Value() string { return e.value }

// Password is a plain-text password that passed the signup rules. It never
// leaves the auth use case unhashed.
type Password struct{ value string }

func NewPassword(raw string) (Password, error) {
	switch {
	case len(raw) < MinPasswordLength:
		return Password{}, ErrPasswordTooWeak
	case len(raw) > MaxPasswordBytes:
		return Password{}, ErrPasswordTooLong
	}
	return Password{value: raw}, nil
}

func (p Password) Value() string { return p.value }

// Credentials pairs a normalized email with an acceptable password.
type Credentials struct {
	email    Email
	password Password
}

func NewCredentials(email, password string) (Credentials, error) {
	e, err := NewEmail(email)
	if err != nil {
		return Credentials{}, err
	}
	p, err := NewPassword(password)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{email: e, password: p}, nil
}

func (c Credentials) Email() Email       { return c.email }
func (c Credentials) Password() Password { return c.password }
