package doctorRepo

import (
	"context"
	"errors"

	"diagnotech/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNoMatch is returned by conditional updates whose filter matched no
// document, i.e. the doctor's aggregate no longer satisfies the update's
// precondition (slot already taken, slot absent, appointment missing).
var ErrNoMatch = errors.New("conditional update matched no document")

// DoctorRepository defines data access for the doctor aggregate. All slot and
// appointment mutations are single-document conditional updates so that
// concurrent writers cannot observe or persist partial state.
type DoctorRepository interface {
	// GetByID retrieves a doctor by its unique ID; (nil, nil) when absent.
	GetByID(id string) (*models.Doctor, error)
	// GetByUserID retrieves the doctor profile owned by a user account; (nil, nil) when absent.
	GetByUserID(userID string) (*models.Doctor, error)
	// GetAll retrieves all doctors.
	GetAll() ([]models.Doctor, error)
	// Search retrieves doctors filtered by specialty and/or treated disease.
	Search(specialty, disease string) ([]models.Doctor, error)
	// Create inserts a new doctor record.
	Create(doc *models.Doctor) error
	// UpdateSetDocument applies a partial $set update to a doctor record.
	UpdateSetDocument(id string, updateDoc bson.M) error
	// Delete removes a doctor record by its ID.
	Delete(id string) error

	// AddSlots appends labels to the doctor's available slots. The update only
	// matches when none of the labels exist in available_slots nor in any
	// appointment; ErrNoMatch signals a collision (or a missing doctor).
	AddSlots(ctx context.Context, doctorID string, labels []string) error
	// RemoveSlot removes one label from available_slots. ErrNoMatch signals
	// the label is not currently available.
	RemoveSlot(ctx context.Context, doctorID, label string) error
	// BookSlot atomically moves appt.Slot from available_slots into the
	// appointment list. ErrNoMatch signals the slot is no longer available.
	BookSlot(ctx context.Context, doctorID string, appt *models.Appointment) error
	// SetAppointmentStatus updates the status of the appointment holding the
	// given slot. ErrNoMatch signals no such appointment exists.
	SetAppointmentStatus(ctx context.Context, doctorID, slot string, status models.AppointmentStatus) error

	// AppointmentsByPatient returns every appointment across all doctors that
	// belongs to the patient, annotated with doctor identity.
	AppointmentsByPatient(ctx context.Context, patientID string) ([]models.PatientAppointment, error)
	// Count returns the number of doctor records.
	Count() (int64, error)
	// CountAppointmentsByStatus returns appointment totals grouped by status.
	CountAppointmentsByStatus() (map[string]int64, error)
}
