package diagnosisRepo

import "diagnotech/models"

// DiagnosisRepository defines data access for stored diagnoses.
type DiagnosisRepository interface {
	// Create inserts a new diagnosis record.
	Create(diag *models.Diagnosis) error
	// GetByUser retrieves a user's diagnoses, newest first.
	GetByUser(userID string) ([]models.Diagnosis, error)
	// GetByID retrieves one diagnosis scoped to its owner; (nil, nil) when absent.
	GetByID(userID, id string) (*models.Diagnosis, error)
	// Count returns the number of diagnosis records.
	Count() (int64, error)
}
