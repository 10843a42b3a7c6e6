package ftracker

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownKind matches any *UnknownKindError
	ErrUnknownKind = errors.New("unknown workout type")

	// ErrArityMismatch matches any *ArityMismatchError
	ErrArityMismatch = errors.New("unexpected number of data fields")

	// ErrInvalidReading matches any *InvalidReadingError
	ErrInvalidReading = errors.New("invalid reading")
)

// UnknownKindError is returned when a package names an unregistered kind
type UnknownKindError struct {
	Code string
}

func (e *UnknownKindError) Error() string {
	codes := make([]string, 0, len(kinds))
	for _, k := range Kinds() {
		codes = append(codes, string(k))
	}
	return fmt.Sprintf("%s %q: expected one of %s", ErrUnknownKind, e.Code, strings.Join(codes, ", "))
}

func (e *UnknownKindError) Is(target error) bool {
	return target == ErrUnknownKind
}

// ArityMismatchError is returned when a package carries the wrong number of fields for its kind
type ArityMismatchError struct {
	Kind     Kind
	Expected int
	Actual   int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("%s for %s: expected %d, got %d", ErrArityMismatch, e.Kind, e.Expected, e.Actual)
}

func (e *ArityMismatchError) Is(target error) bool {
	return target == ErrArityMismatch
}

// InvalidReadingError is returned when a reading cannot be used in a calculation:
// a non-positive duration or height, a fractional or negative count, or a non-finite value
type InvalidReadingError struct {
	Kind  Kind
	Field string
	Value float64
}

func (e *InvalidReadingError) Error() string {
	return fmt.Sprintf("%s for %s: %s = %v", ErrInvalidReading, e.Kind, e.Field, e.Value)
}

func (e *InvalidReadingError) Is(target error) bool {
	return target == ErrInvalidReading
}
