package models

import "time"

// AppointmentStatus is the lifecycle state of a booked appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// ValidStatus reports whether s is a recognized appointment status.
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// statusTransitions is the explicit transition table. Every pair is currently
// permitted, matching the product's behavior of letting doctors move an
// appointment between any two states (including backwards, e.g.
// completed -> pending). Tighten individual entries here if that changes.
var statusTransitions = map[AppointmentStatus]map[AppointmentStatus]bool{
	StatusPending:   {StatusPending: true, StatusConfirmed: true, StatusCompleted: true, StatusCancelled: true},
	StatusConfirmed: {StatusPending: true, StatusConfirmed: true, StatusCompleted: true, StatusCancelled: true},
	StatusCompleted: {StatusPending: true, StatusConfirmed: true, StatusCompleted: true, StatusCancelled: true},
	StatusCancelled: {StatusPending: true, StatusConfirmed: true, StatusCompleted: true, StatusCancelled: true},
}

// CanTransition reports whether an appointment may move from one status to
// another according to the transition table.
func CanTransition(from, to AppointmentStatus) bool {
	allowed, ok := statusTransitions[from]
	return ok && allowed[to]
}

// Appointment is a patient's claim on a slot, embedded in the doctor document.
// Appointments are never removed; cancellation is a status value. A cancelled
// appointment's slot is NOT returned to the available list.
type Appointment struct {
	ID        string            `bson:"id" json:"id"`
	PatientID string            `bson:"patient_id" json:"patient_id"`
	Slot      string            `bson:"slot" json:"slot"`
	Reason    string            `bson:"reason,omitempty" json:"reason,omitempty"`
	Status    AppointmentStatus `bson:"status" json:"status"`
	CreatedAt time.Time         `bson:"created_at" json:"created_at"`
}

// DoctorAppointment is an appointment as seen by the doctor, with the
// patient's identity resolved.
type DoctorAppointment struct {
	Appointment    `bson:",inline"`
	PatientName    string `bson:"-" json:"patient_name"`
	PatientEmail   string `bson:"-" json:"patient_email,omitempty"`
	PatientContact string `bson:"-" json:"patient_contact,omitempty"`
}

// PatientAppointment is an appointment as seen by the patient, annotated with
// the doctor's identity.
type PatientAppointment struct {
	Appointment     `bson:",inline"`
	DoctorID        string `bson:"doctor_id" json:"doctor_id"`
	DoctorName      string `bson:"doctor_name" json:"doctor_name"`
	DoctorSpecialty string `bson:"doctor_specialty" json:"doctor_specialty,omitempty"`
	ClinicAddress   string `bson:"clinic_address" json:"clinic_address,omitempty"`
}
