package models

import "time"

// PredictedDisease is one entry of the prediction service's response. The
// JSON field names follow the service's wire format.
type PredictedDisease struct {
	Disease     string   `json:"Disease"`
	Probability float64  `json:"Probability (%)"`
	Description string   `json:"Description"`
	Precautions []string `json:"Precautions"`
}

// PredictionResponse is the prediction service's response envelope.
type PredictionResponse struct {
	Top5Diseases []PredictedDisease `json:"top5_diseases"`
}

// DiagnosisResult is the best match persisted with a diagnosis.
type DiagnosisResult struct {
	Disease     string   `bson:"disease" json:"disease"`
	Probability float64  `bson:"probability" json:"probability"`
	Description string   `bson:"description" json:"description"`
	Precautions []string `bson:"precautions,omitempty" json:"precautions,omitempty"`
}

// Diagnosis is a stored symptom-prediction record for a user.
type Diagnosis struct {
	ID        string          `bson:"id" json:"id"`
	UserID    string          `bson:"user_id" json:"user_id"`
	Symptoms  []string        `bson:"symptoms" json:"symptoms"`
	Result    DiagnosisResult `bson:"result" json:"result"`
	CreatedAt time.Time       `bson:"created_at" json:"created_at"`
}
