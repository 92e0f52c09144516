package booking

import "errors"

var ErrInvalidStatus = errors.New("invalid booking status")

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"

	// StatusConfirmed is the legacy spelling of StatusApproved kept on old records.
	StatusConfirmed Status = "confirmed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusCancelled, StatusCompleted, StatusConfirmed:
		return true
	default:
		return false
	}
}

// Normalize folds the legacy confirmed status into approved.
func (s Status) Normalize() Status {
	if s == StatusConfirmed {
		return StatusApproved
	}
	return s
}

// Is compares statuses treating confirmed and approved as equal.
func (s Status) Is(other Status) bool {
	return s.Normalize() == other.Normalize()
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

// HoldsRoom reports whether a booking in this status blocks its dates.
// Pending requests hold the room just like approved ones.
func (s Status) HoldsRoom() bool {
	return s != StatusCancelled
}

func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// ParseAdminStatus accepts only the statuses an administrator may set.
func ParseAdminStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusApproved, StatusCancelled, StatusCompleted:
		return Status(s), nil
	default:
		return "", ErrInvalidStatus
	}
}
