package domain

import (
	"errors"
	"fmt"
)

// FormatError reports malformed or incomplete input payloads.
type FormatError struct {
	Msg string
	Err error
}

func (e FormatError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "invalid format"
}

func (e FormatError) Unwrap() error { return e.Err }

type ValidationError struct {
	Field string
	Msg   string
	Err   error
}

func (e ValidationError) Error() string {
	if e.Msg != "" && e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Msg)
	}
	if e.Msg != "" {
		return e.Msg
	}
	if e.Field != "" {
		return fmt.Sprintf("invalid %s", e.Field)
	}
	return "validation error"
}

func (e ValidationError) Unwrap() error { return e.Err }

// ReadOnlyError is returned on any edit or delete of a persisted entity.
// Layouts, seats, routes, schedules and vehicles are frozen once created.
type ReadOnlyError struct {
	Entity string
}

func (e ReadOnlyError) Error() string {
	if e.Entity == "" {
		return "cannot modify a read only object"
	}
	return fmt.Sprintf("cannot modify a read only %s", e.Entity)
}

type DuplicateRouteError struct {
	Source      string
	Destination string
	Err         error
}

func (e DuplicateRouteError) Error() string {
	return fmt.Sprintf("route %s - %s already exists", e.Source, e.Destination)
}

func (e DuplicateRouteError) Unwrap() error { return e.Err }

type NotFoundError struct {
	Resource string
	Err      error
}

func (e NotFoundError) Error() string {
	if e.Resource == "" {
		return "not found"
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e NotFoundError) Unwrap() error { return e.Err }

// AuthorizationError is returned when the claimed booking identity does not
// match the authenticated caller.
type AuthorizationError struct {
	Msg string
}

func (e AuthorizationError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "Intrusion Detected"
}

// SeatBookedError is returned when a booking row already exists for the
// requested (trip, schedule, seat), whatever state that row is in.
type SeatBookedError struct {
	Seat string
	Err  error
}

func (e SeatBookedError) Error() string {
	if e.Seat == "" {
		return "seat already booked"
	}
	return fmt.Sprintf("seat %s already booked", e.Seat)
}

func (e SeatBookedError) Unwrap() error { return e.Err }

type InternalError struct {
	Msg string
	Err error
}

func (e InternalError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "internal error"
}

func (e InternalError) Unwrap() error { return e.Err }

func IsFormat(err error) bool {
	var target FormatError
	return errors.As(err, &target)
}

func IsValidation(err error) bool {
	var target ValidationError
	return errors.As(err, &target)
}

func IsReadOnly(err error) bool {
	var target ReadOnlyError
	return errors.As(err, &target)
}

func IsDuplicateRoute(err error) bool {
	var target DuplicateRouteError
	return errors.As(err, &target)
}

func IsNotFound(err error) bool {
	var target NotFoundError
	return errors.As(err, &target)
}

func IsAuthorization(err error) bool {
	var target AuthorizationError
	return errors.As(err, &target)
}

func IsSeatBooked(err error) bool {
	var target SeatBookedError
	return errors.As(err, &target)
}

func IsInternal(err error) bool {
	var target InternalError
	return errors.As(err, &target)
}

// Kind returns the wire-facing class name of a domain error. Handlers use it
// to build the "<Kind>: <detail>" payload clients parse.
func Kind(err error) string {
	switch {
	case IsFormat(err):
		return "FormatError"
	case IsValidation(err):
		return "ValidationError"
	case IsReadOnly(err):
		return "ReadOnlyViolation"
	case IsDuplicateRoute(err):
		return "DuplicateRoute"
	case IsNotFound(err):
		return "NotFound"
	case IsAuthorization(err):
		return "AuthorizationError"
	case IsSeatBooked(err):
		return "SeatAlreadyBooked"
	default:
		return "InternalError"
	}
}
