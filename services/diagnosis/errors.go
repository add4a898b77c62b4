package diagnosis

import "errors"

var (
	// ErrTooFewSymptoms rejects prediction requests with fewer than three symptoms.
	ErrTooFewSymptoms = errors.New("at least three symptoms are required")
	// ErrPredictionFailed surfaces when the prediction service cannot produce a result.
	ErrPredictionFailed = errors.New("prediction service failed")
)
