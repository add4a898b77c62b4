package booking

import (
	"errors"
	"fmt"
)

// Validation and not-found errors: reported to the caller, never retried.
var (
	ErrInvalidRequest      = errors.New("invalid request")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrSlotNotFound        = errors.New("appointment slot not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrInvalidStatus       = errors.New("invalid appointment status")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
)

// Conflict errors: the caller may retry after refreshing the slot view.
var (
	ErrSlotBooked      = errors.New("cannot delete a booked appointment slot")
	ErrSlotUnavailable = errors.New("appointment slot is not available")
)

// ErrSlotInPast rejects booking a slot whose time has already passed (or
// whose label does not parse as a date-time). Not retryable without a
// different slot.
var ErrSlotInPast = errors.New("appointment slot is in the past")

// ErrStorageUnavailable surfaces after the bounded internal retries against
// the document store are exhausted. The only retryable class.
var ErrStorageUnavailable = errors.New("storage unavailable")

// DuplicateSlotError reports the first label of an add batch that collides
// with an existing slot or booking. The whole batch is rejected.
type DuplicateSlotError struct {
	Label string
}

func (e DuplicateSlotError) Error() string {
	return fmt.Sprintf("slot %q is already added", e.Label)
}
