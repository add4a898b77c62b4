package booking

import (
	"context"
	"errors"
	"fmt"

	doctorRepo "diagnotech/database/repository/doctor"
	userRepo "diagnotech/database/repository/user"
	"diagnotech/models"
	"diagnotech/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// DefaultSlotRegistry implements SlotRegistry on top of the doctor aggregate.
type DefaultSlotRegistry struct {
	Repo  doctorRepo.DoctorRepository
	Users userRepo.UserRepository
}

// AddSlots validates the batch against the doctor's current slots and
// bookings, then commits it with a conditional update. The precondition is
// re-checked by the update filter, so a concurrent writer cannot sneak a
// duplicate in between validation and commit.
func (s *DefaultSlotRegistry) AddSlots(ctx context.Context, doctorID string, labels []string) ([]string, error) {
	if doctorID == "" || len(labels) == 0 {
		return nil, ErrInvalidRequest
	}

	seen := make(map[string]bool, len(labels))
	for _, label := range labels {
		if label == "" {
			return nil, ErrInvalidRequest
		}
		if seen[label] {
			return nil, DuplicateSlotError{Label: label}
		}
		seen[label] = true
	}

	doc, err := s.Repo.GetByID(doctorID)
	if err != nil {
		utils.GetLogger().Error("AddSlots: failed to fetch doctor", zap.String("doctorID", doctorID), zap.Error(err))
		return nil, fmt.Errorf("failed to add slots: %w", err)
	}
	if doc == nil {
		return nil, ErrDoctorNotFound
	}
	if label, ok := findCollision(doc, labels); ok {
		return nil, DuplicateSlotError{Label: label}
	}

	if err := s.Repo.AddSlots(ctx, doctorID, labels); err != nil {
		if errors.Is(err, doctorRepo.ErrNoMatch) {
			// Lost a race with another writer; name the offending label.
			if fresh, ferr := s.Repo.GetByID(doctorID); ferr == nil && fresh != nil {
				if label, ok := findCollision(fresh, labels); ok {
					return nil, DuplicateSlotError{Label: label}
				}
			}
			return nil, DuplicateSlotError{Label: labels[0]}
		}
		utils.GetLogger().Error("AddSlots: failed to persist slots", zap.String("doctorID", doctorID), zap.Error(err))
		return nil, fmt.Errorf("failed to add slots: %w", err)
	}

	return append(doc.AvailableSlots, labels...), nil
}

// findCollision returns the first label already present in the doctor's
// available slots or bookings.
func findCollision(doc *models.Doctor, labels []string) (string, bool) {
	existing := make(map[string]bool, len(doc.AvailableSlots)+len(doc.Appointments))
	for _, slot := range doc.AvailableSlots {
		existing[slot] = true
	}
	for _, appt := range doc.Appointments {
		existing[appt.Slot] = true
	}
	for _, label := range labels {
		if existing[label] {
			return label, true
		}
	}
	return "", false
}

// RemoveSlot deletes a slot from the available list. The error distinguishes
// a slot held by a booking (refused) from a slot that does not exist.
func (s *DefaultSlotRegistry) RemoveSlot(ctx context.Context, doctorID, label string) error {
	if doctorID == "" || label == "" {
		return ErrInvalidRequest
	}

	doc, err := s.Repo.GetByID(doctorID)
	if err != nil {
		return fmt.Errorf("failed to remove slot: %w", err)
	}
	if doc == nil {
		return ErrDoctorNotFound
	}
	for _, appt := range doc.Appointments {
		if appt.Slot == label {
			return ErrSlotBooked
		}
	}

	if err := s.Repo.RemoveSlot(ctx, doctorID, label); err != nil {
		if errors.Is(err, doctorRepo.ErrNoMatch) {
			return ErrSlotNotFound
		}
		utils.GetLogger().Error("RemoveSlot: failed to persist removal", zap.String("doctorID", doctorID), zap.Error(err))
		return fmt.Errorf("failed to remove slot: %w", err)
	}
	return nil
}

// ListUnbooked returns a snapshot of the doctor's available slots.
func (s *DefaultSlotRegistry) ListUnbooked(ctx context.Context, doctorID string) ([]string, error) {
	if doctorID == "" {
		return nil, ErrInvalidRequest
	}
	doc, err := s.Repo.GetByID(doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}
	if doc == nil {
		return nil, ErrDoctorNotFound
	}
	if doc.AvailableSlots == nil {
		return []string{}, nil
	}
	return doc.AvailableSlots, nil
}

// ListBooked returns the doctor's appointments with patient identity
// resolved. Patients that can no longer be loaded keep an empty identity
// rather than failing the whole listing.
func (s *DefaultSlotRegistry) ListBooked(ctx context.Context, doctorID string) ([]models.DoctorAppointment, error) {
	if doctorID == "" {
		return nil, ErrInvalidRequest
	}
	doc, err := s.Repo.GetByID(doctorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	if doc == nil {
		return nil, ErrDoctorNotFound
	}

	projection := bson.M{"id": 1, "full_name": 1, "email": 1}
	booked := make([]models.DoctorAppointment, 0, len(doc.Appointments))
	for _, appt := range doc.Appointments {
		entry := models.DoctorAppointment{Appointment: appt}
		if s.Users != nil {
			if patient, perr := s.Users.GetByIDWithProjection(appt.PatientID, projection); perr == nil && patient != nil {
				entry.PatientName = patient.FullName
				entry.PatientEmail = patient.Email
			} else if perr != nil {
				utils.GetLogger().Warn("ListBooked: failed to resolve patient",
					zap.String("patientID", appt.PatientID), zap.Error(perr))
			}
		}
		booked = append(booked, entry)
	}
	return booked, nil
}
