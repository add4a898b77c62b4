package booking

import (
	"context"

	"diagnotech/models"
)

// SlotRegistry owns a doctor's published slots: the available list and the
// booked appointments are two halves of one partition. A slot label lives in
// exactly one of them at any time.
type SlotRegistry interface {
	// AddSlots appends labels to the doctor's available slots. The whole
	// batch is rejected with DuplicateSlotError on the first collision.
	AddSlots(ctx context.Context, doctorID string, labels []string) ([]string, error)
	// RemoveSlot deletes an unbooked slot. Booked slots cannot be deleted.
	RemoveSlot(ctx context.Context, doctorID, label string) error
	// ListUnbooked returns the current available slots.
	ListUnbooked(ctx context.Context, doctorID string) ([]string, error)
	// ListBooked returns the doctor's appointments in insertion order with
	// patient identity resolved.
	ListBooked(ctx context.Context, doctorID string) ([]models.DoctorAppointment, error)
}

// BookingService is the transactional boundary around the doctor aggregate:
// it validates a request against the registry invariants and commits the
// state change as one atomic persistence unit.
type BookingService interface {
	// Book claims an available future slot for a patient.
	Book(ctx context.Context, doctorID, patientID, slotLabel, reason string) (*models.Appointment, error)
	// SetStatus transitions the appointment holding slotLabel to newStatus.
	// Cancellation does not return the slot to the available list.
	SetStatus(ctx context.Context, doctorID, slotLabel string, newStatus models.AppointmentStatus) (*models.Appointment, error)
	// ListMine returns the patient's appointments across all doctors.
	ListMine(ctx context.Context, patientID string) ([]models.PatientAppointment, error)
}

// ReviewService aggregates patient reviews of doctors.
type ReviewService interface {
	// AddReview appends a review. Duplicate reviews by the same patient are allowed.
	AddReview(ctx context.Context, doctorID, patientID string, rating int, comment string) (*models.Review, error)
	// ListReviews returns all reviews for a doctor.
	ListReviews(ctx context.Context, doctorID string) ([]models.Review, error)
	// AverageRating computes the doctor's mean rating, rounded to one
	// decimal. Rated is false when there are no reviews.
	AverageRating(ctx context.Context, doctorID string) (models.RatingSummary, error)
}
