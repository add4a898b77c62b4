package booking

import (
	"context"
	"errors"
	"time"

	doctorRepo "diagnotech/database/repository/doctor"
	"diagnotech/models"
	"diagnotech/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReminderScheduler queues a reminder for a confirmed appointment. Scheduling
// is best-effort: a failure is logged, never surfaced to the caller.
type ReminderScheduler interface {
	ScheduleReminder(ctx context.Context, doctorID string, appt models.Appointment) error
}

// bookAttempts bounds internal retries against the document store.
const bookAttempts = 3

// DefaultBookingEngine implements BookingService with single-document
// conditional updates: claiming a slot pulls it from the available list and
// pushes the appointment in one write, so two concurrent bookings of the
// same slot cannot both succeed.
type DefaultBookingEngine struct {
	Repo      doctorRepo.DoctorRepository
	Reminders ReminderScheduler
	Now       func() time.Time
}

func (e *DefaultBookingEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}

// getDoctor loads the doctor under the same bounded retry budget as the
// booking commit.
func (e *DefaultBookingEngine) getDoctor(doctorID string) (*models.Doctor, error) {
	var doc *models.Doctor
	var err error
	for attempt := 1; attempt <= bookAttempts; attempt++ {
		doc, err = e.Repo.GetByID(doctorID)
		if err == nil {
			return doc, nil
		}
		utils.GetLogger().Warn("transient storage error fetching doctor",
			zap.String("doctorID", doctorID), zap.Int("attempt", attempt), zap.Error(err))
	}
	return nil, err
}

// Book claims slotLabel for patientID. Checks run in a fixed order against a
// snapshot of the doctor: the doctor must exist, the slot must be in the
// available list, and its time must not have passed. The conditional update
// re-arbitrates availability, so a snapshot that goes stale mid-booking
// still cannot double-book.
func (e *DefaultBookingEngine) Book(ctx context.Context, doctorID, patientID, slotLabel, reason string) (*models.Appointment, error) {
	if doctorID == "" || patientID == "" || slotLabel == "" {
		return nil, ErrInvalidRequest
	}

	doc, err := e.getDoctor(doctorID)
	if err != nil {
		return nil, ErrStorageUnavailable
	}
	if doc == nil {
		return nil, ErrDoctorNotFound
	}

	available := false
	for _, slot := range doc.AvailableSlots {
		if slot == slotLabel {
			available = true
			break
		}
	}
	if !available {
		return nil, ErrSlotUnavailable
	}
	if !models.ParseSlot(slotLabel).InFuture(e.now()) {
		return nil, ErrSlotInPast
	}

	appt := models.Appointment{
		ID:        uuid.New().String(),
		PatientID: patientID,
		Slot:      slotLabel,
		Reason:    reason,
		Status:    models.StatusPending,
		CreatedAt: e.now().UTC(),
	}

	for attempt := 1; ; attempt++ {
		err = e.Repo.BookSlot(ctx, doctorID, &appt)
		if err == nil {
			utils.GetLogger().Info("slot booked",
				zap.String("doctorID", doctorID),
				zap.String("patientID", patientID),
				zap.String("slot", slotLabel))
			return &appt, nil
		}
		if errors.Is(err, doctorRepo.ErrNoMatch) {
			// Doctor exists, so the filter failed on the slot condition:
			// someone else took it (or it never existed).
			return nil, ErrSlotUnavailable
		}
		if attempt >= bookAttempts {
			utils.GetLogger().Error("Book: storage failed after retries",
				zap.String("doctorID", doctorID), zap.Int("attempts", attempt), zap.Error(err))
			return nil, ErrStorageUnavailable
		}
		utils.GetLogger().Warn("Book: transient storage error, retrying",
			zap.String("doctorID", doctorID), zap.Int("attempt", attempt), zap.Error(err))
	}
}

// SetStatus moves the appointment holding slotLabel to newStatus. The slot
// stays out of the available list regardless of the new status.
func (e *DefaultBookingEngine) SetStatus(ctx context.Context, doctorID, slotLabel string, newStatus models.AppointmentStatus) (*models.Appointment, error) {
	if doctorID == "" || slotLabel == "" {
		return nil, ErrInvalidRequest
	}
	if !models.ValidStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	doc, err := e.getDoctor(doctorID)
	if err != nil {
		return nil, ErrStorageUnavailable
	}
	if doc == nil {
		return nil, ErrDoctorNotFound
	}

	var current *models.Appointment
	for i := range doc.Appointments {
		if doc.Appointments[i].Slot == slotLabel {
			current = &doc.Appointments[i]
			break
		}
	}
	if current == nil {
		return nil, ErrAppointmentNotFound
	}
	if !models.CanTransition(current.Status, newStatus) {
		return nil, ErrInvalidStatus
	}

	if err := e.Repo.SetAppointmentStatus(ctx, doctorID, slotLabel, newStatus); err != nil {
		if errors.Is(err, doctorRepo.ErrNoMatch) {
			return nil, ErrAppointmentNotFound
		}
		utils.GetLogger().Error("SetStatus: failed to persist transition",
			zap.String("doctorID", doctorID), zap.String("slot", slotLabel), zap.Error(err))
		return nil, ErrStorageUnavailable
	}

	updated := *current
	updated.Status = newStatus

	if newStatus == models.StatusConfirmed && e.Reminders != nil {
		if rerr := e.Reminders.ScheduleReminder(ctx, doctorID, updated); rerr != nil {
			utils.GetLogger().Warn("SetStatus: failed to schedule reminder",
				zap.String("appointmentID", updated.ID), zap.Error(rerr))
		}
	}

	utils.GetLogger().Info("appointment status updated",
		zap.String("doctorID", doctorID),
		zap.String("slot", slotLabel),
		zap.String("from", string(current.Status)),
		zap.String("to", string(newStatus)))
	return &updated, nil
}

// ListMine returns the patient's appointments across all doctors, oldest first.
func (e *DefaultBookingEngine) ListMine(ctx context.Context, patientID string) ([]models.PatientAppointment, error) {
	if patientID == "" {
		return nil, ErrInvalidRequest
	}
	appts, err := e.Repo.AppointmentsByPatient(ctx, patientID)
	if err != nil {
		return nil, ErrStorageUnavailable
	}
	if appts == nil {
		appts = []models.PatientAppointment{}
	}
	return appts, nil
}
