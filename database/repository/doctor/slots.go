package doctorRepo

import (
	"context"
	"fmt"
	"time"

	"diagnotech/models"

	"go.mongodb.org/mongo-driver/bson"
)

// AddSlots appends the labels to available_slots in one conditional update.
// The filter requires that no label is already present, either as an
// available slot or inside an appointment, so a concurrent writer cannot
// introduce a duplicate between check and commit.
func (r *MongoDoctorRepo) AddSlots(ctx context.Context, doctorID string, labels []string) error {
	filter := bson.M{
		"id":                doctorID,
		"available_slots":   bson.M{"$nin": labels},
		"appointments.slot": bson.M{"$nin": labels},
	}
	update := bson.M{
		"$push": bson.M{"available_slots": bson.M{"$each": labels}},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to add slots for doctor %s: %w", doctorID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNoMatch
	}
	return nil
}

// RemoveSlot removes one label from available_slots. The filter requires the
// label to still be present; a booked or unknown label yields ErrNoMatch.
func (r *MongoDoctorRepo) RemoveSlot(ctx context.Context, doctorID, label string) error {
	filter := bson.M{
		"id":              doctorID,
		"available_slots": label,
	}
	update := bson.M{
		"$pull": bson.M{"available_slots": label},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to remove slot %q for doctor %s: %w", label, doctorID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNoMatch
	}
	return nil
}

// BookSlot moves appt.Slot from available_slots into the appointment list as
// one document update. MongoDB applies the update atomically, so either both
// mutations commit or neither does; the filter's membership condition makes
// exactly one of two concurrent bookings win.
func (r *MongoDoctorRepo) BookSlot(ctx context.Context, doctorID string, appt *models.Appointment) error {
	filter := bson.M{
		"id":              doctorID,
		"available_slots": appt.Slot,
	}
	update := bson.M{
		"$pull": bson.M{"available_slots": appt.Slot},
		"$push": bson.M{"appointments": appt},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to book slot %q for doctor %s: %w", appt.Slot, doctorID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNoMatch
	}
	return nil
}

// SetAppointmentStatus updates the status of the appointment holding the
// given slot via a positional update.
func (r *MongoDoctorRepo) SetAppointmentStatus(ctx context.Context, doctorID, slot string, status models.AppointmentStatus) error {
	filter := bson.M{
		"id": doctorID,
		"appointments": bson.M{
			"$elemMatch": bson.M{"slot": slot},
		},
	}
	update := bson.M{
		"$set": bson.M{
			"appointments.$.status": status,
			"updated_at":            time.Now(),
		},
	}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to update appointment status for doctor %s: %w", doctorID, err)
	}
	if result.MatchedCount == 0 {
		return ErrNoMatch
	}
	return nil
}

