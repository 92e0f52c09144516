// Package errs is a thin layer over cockroachdb/errors so call sites get
// stack traces and mark-aware matching from one import.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error { return cr.New(msg) }

// Wrap returns nil for a nil err.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return cr.Wrapf(err, format, args...)
}

// Mark tags err with sentinel so Is(result, sentinel) holds while the
// original cause stays printable. A nil err yields sentinel itself.
func Mark(err, sentinel error) error {
	if err == nil {
		return sentinel
	}
	return cr.Mark(err, sentinel)
}

// Is also matches marks, which errors.Is cannot see.
func Is(err, reference error) bool { return cr.Is(err, reference) }

// StackLines renders err with its stack and keeps the first n non-blank
// lines (all of them when n <= 0).
func StackLines(err error, n int) []string {
	if err == nil {
		return nil
	}
	var out []string
	for _, line := range strings.Split(fmt.Sprintf("%+v", err), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
		if n > 0 && len(out) == n {
			break
		}
	}
	return out
}
