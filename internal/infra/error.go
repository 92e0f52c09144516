package infra

import (
	"errors"
	"log/slog"

	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/pkg/pgconv"
)

type RepositoryErrorKind string

const (
	KindNotFound           RepositoryErrorKind = "NOT_FOUND"
	KindDBFailure          RepositoryErrorKind = "DB_FAILURE"
	KindDuplicateKey       RepositoryErrorKind = "DUPLICATE_KEY"
	KindForeignKeyViolated RepositoryErrorKind = "FOREIGN_KEY_VIOLATED"
	// KindConflict is an exclusion-constraint violation, e.g. overlapping stays.
	KindConflict RepositoryErrorKind = "CONFLICT"
)

var kindBySQLState = map[string]RepositoryErrorKind{
	pgconv.CodeUniqueViolation:     KindDuplicateKey,
	pgconv.CodeForeignKeyViolation: KindForeignKeyViolated,
	pgconv.CodeExclusionViolation:  KindConflict,
}

// RepositoryError is what every repository and read store returns on failure.
// Use cases branch on Kind and never inspect driver errors themselves.
type RepositoryError struct {
	Kind       RepositoryErrorKind
	Constraint string
	op         string
	cause      error
}

func (e RepositoryError) Error() string {
	msg := string(e.Kind) + ": " + e.op
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

func (e RepositoryError) Unwrap() error { return e.cause }

// WrapRepoErr wraps a storage error for op. The kind is inferred from the
// SQLSTATE unless one is passed explicitly.
func WrapRepoErr(op string, err error, kind ...RepositoryErrorKind) error {
	k := kindOf(err)
	if len(kind) > 0 {
		k = kind[0]
	}
	constraint := pgconv.ConstraintName(err)

	if k != KindNotFound {
		attrs := []any{"op", op, "kind", string(k)}
		if constraint != "" {
			attrs = append(attrs, "constraint", constraint)
		}
		if err != nil {
			attrs = append(attrs, "error", err.Error())
		}
		slog.Error("repository error", attrs...)
	}

	return RepositoryError{
		Kind:       k,
		Constraint: constraint,
		op:         op,
		cause:      errs.Wrap(err, op),
	}
}

func NotFound(op string) error {
	return RepositoryError{Kind: KindNotFound, op: op}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var e RepositoryError
	return errors.As(err, &e) && e.Kind == kind
}

func kindOf(err error) RepositoryErrorKind {
	if err == nil {
		return KindDBFailure
	}
	if pgconv.IsNoRows(err) {
		return KindNotFound
	}
	if k, ok := kindBySQLState[pgconv.PgErrorCode(err)]; ok {
		return k
	}
	return KindDBFailure
}
