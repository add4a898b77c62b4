package reviewRepo

import "diagnotech/models"

// ReviewRepository defines data access for reviews. Reviews reference doctors
// and patients by id only; they belong to no aggregate.
type ReviewRepository interface {
	// Create inserts a new review record.
	Create(review *models.Review) error
	// GetByDoctor retrieves all reviews for a doctor in insertion order.
	GetByDoctor(doctorID string) ([]models.Review, error)
	// AverageForDoctor returns the mean rating and review count for a doctor.
	// count == 0 means the doctor has no reviews and avg is meaningless.
	AverageForDoctor(doctorID string) (avg float64, count int, err error)
	// Count returns the number of review records.
	Count() (int64, error)
}
