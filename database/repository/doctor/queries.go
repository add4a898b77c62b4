package doctorRepo

import (
	"context"
	"fmt"
	"time"

	"diagnotech/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentsByPatient fetches the patient's appointments across every
// doctor using an aggregation pipeline, each entry annotated with doctor
// identity. Linear in the total number of bookings; fine at the current
// scale, there is no patient-indexed secondary view.
func (r *MongoDoctorRepo) AppointmentsByPatient(ctx context.Context, patientID string) ([]models.PatientAppointment, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"appointments.patient_id": patientID}}},
		{{Key: "$unwind", Value: "$appointments"}},
		{{Key: "$match", Value: bson.M{"appointments.patient_id": patientID}}},
		{{Key: "$sort", Value: bson.M{"appointments.created_at": 1}}},
		{{Key: "$project", Value: bson.M{
			"_id":              0,
			"id":               "$appointments.id",
			"patient_id":       "$appointments.patient_id",
			"slot":             "$appointments.slot",
			"reason":           "$appointments.reason",
			"status":           "$appointments.status",
			"created_at":       "$appointments.created_at",
			"doctor_id":        "$id",
			"doctor_name":      "$full_name",
			"doctor_specialty": "$specialty",
			"clinic_address":   "$clinic_address",
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate appointments for patient %s: %w", patientID, err)
	}
	defer cursor.Close(ctx)

	var results []models.PatientAppointment
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode patient appointments: %w", err)
	}
	return results, nil
}

// CountAppointmentsByStatus returns appointment totals grouped by status.
func (r *MongoDoctorRepo) CountAppointmentsByStatus() (map[string]int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$unwind", Value: "$appointments"}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$appointments.status",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate appointment counts: %w", err)
	}
	defer cursor.Close(ctx)

	var results []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode appointment counts: %w", err)
	}

	counts := make(map[string]int64, len(results))
	for _, r := range results {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
