package handlers

import (
	"errors"
	"net/http"

	"diagnotech/services/booking"
)

// bookingErrorStatus maps booking service errors onto HTTP status codes.
func bookingErrorStatus(err error) int {
	var dup booking.DuplicateSlotError
	switch {
	case errors.Is(err, booking.ErrInvalidRequest),
		errors.Is(err, booking.ErrInvalidStatus),
		errors.Is(err, booking.ErrInvalidRating),
		errors.Is(err, booking.ErrSlotInPast):
		return http.StatusBadRequest
	case errors.Is(err, booking.ErrDoctorNotFound),
		errors.Is(err, booking.ErrSlotNotFound),
		errors.Is(err, booking.ErrAppointmentNotFound):
		return http.StatusNotFound
	case errors.As(err, &dup),
		errors.Is(err, booking.ErrSlotBooked),
		errors.Is(err, booking.ErrSlotUnavailable):
		return http.StatusConflict
	case errors.Is(err, booking.ErrStorageUnavailable):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
