// Package errs is the error toolkit of the service. Every error created
// here carries a stack trace, and markers survive wrapping so use cases can
// branch on sentinels regardless of how deep the cause sits.
package errs

import (
	"fmt"
	"strings"

	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

// Wrap returns nil for a nil err so call sites can wrap unconditionally.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark tags err with marker without changing its message. A nil err
// yields the marker itself.
func Mark(err error, marker error) error {
	if err == nil {
		return marker
	}
	return cr.Mark(err, marker)
}

// Is also matches markers attached with Mark.
func Is(err, reference error) bool {
	return cr.Is(err, reference)
}

func IsAny(err error, references ...error) bool {
	return cr.IsAny(err, references...)
}

func As(err error, target any) bool {
	return cr.As(err, target)
}

// ExtractStackLines renders err with its stack and keeps the first
// maxLines lines; maxLines <= 0 keeps all of them.
func ExtractStackLines(err error, maxLines int) []string {
	if err == nil {
		return nil
	}
	lines := strings.Split(fmt.Sprintf("%+v", err), "\n")
	if maxLines > 0 && len(lines) > maxLines {
		return lines[:maxLines]
	}
	return lines
}
