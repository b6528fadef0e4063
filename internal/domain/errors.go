package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRecordNotFound        = errors.New("record not found")
	ErrEmptyRequest          = errors.New("at least one seat must be requested")
	ErrOutOfRange            = errors.New("seat is outside of the hall layout")
	ErrDuplicateInRequest    = errors.New("seat is requested more than once")
	ErrSeatAlreadyBooked     = errors.New("seat(s) are already booked")
	ErrStorageUnavailable    = errors.New("storage is temporarily unavailable")
	ErrHallNameTaken         = errors.New("a hall with this name already exists")
	ErrHallInUse             = errors.New("hall is referenced by performances")
	ErrHallGeometryConflict  = errors.New("new hall layout would invalidate sold tickets")
	ErrPerformanceHasTickets = errors.New("performance already has sold tickets")
)

// SeatError reports a seat-level failure together with the coordinates that caused it.
type SeatError struct {
	Err   error
	Seats []Coordinate
}

func NewSeatError(err error, seats ...Coordinate) *SeatError {
	return &SeatError{Err: err, Seats: seats}
}

func (e *SeatError) Error() string {
	if len(e.Seats) == 0 {
		return e.Err.Error()
	}

	labels := make([]string, len(e.Seats))
	for i, c := range e.Seats {
		labels[i] = c.String()
	}

	return fmt.Sprintf("%s: %s", e.Err, strings.Join(labels, ", "))
}

func (e *SeatError) Unwrap() error {
	return e.Err
}

// StorageError marks an infrastructure failure of the backing store. It is transient
// and the request can be retried as-is.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", ErrStorageUnavailable, e.Err)
}

func (e *StorageError) Unwrap() []error {
	return []error{ErrStorageUnavailable, e.Err}
}
