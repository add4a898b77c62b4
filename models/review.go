package models

import "time"

// Review is a patient's rating of a doctor. A patient may review the same
// doctor more than once; there is no uniqueness constraint.
type Review struct {
	ID        string    `bson:"id" json:"id"`
	DoctorID  string    `bson:"doctor_id" json:"doctor_id"`
	PatientID string    `bson:"patient_id" json:"patient_id"`
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// RatingSummary is the aggregated rating for a doctor. Rated is false when
// the doctor has no reviews; Average is meaningless in that case.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
	Rated   bool    `json:"rated"`
}
