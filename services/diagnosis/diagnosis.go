package diagnosis

import (
	"context"
	"fmt"
	"time"

	diagnosisRepo "diagnotech/database/repository/diagnosis"
	"diagnotech/models"
	"diagnotech/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DiagnosisService runs symptom predictions and keeps per-user history.
type DiagnosisService interface {
	// Predict ranks likely diseases for the symptoms, persists the best match
	// and returns the full ranked response.
	Predict(ctx context.Context, userID string, symptoms []string) (*models.PredictionResponse, *models.Diagnosis, error)
	// History returns the user's stored diagnoses, newest first.
	History(ctx context.Context, userID string) ([]models.Diagnosis, error)
	// GetDiagnosis returns one stored diagnosis owned by the user.
	GetDiagnosis(ctx context.Context, userID, id string) (*models.Diagnosis, error)
}

// DefaultDiagnosisService is the production implementation of DiagnosisService.
type DefaultDiagnosisService struct {
	Client PredictionClient
	Repo   diagnosisRepo.DiagnosisRepository
}

func (s *DefaultDiagnosisService) Predict(ctx context.Context, userID string, symptoms []string) (*models.PredictionResponse, *models.Diagnosis, error) {
	if userID == "" {
		return nil, nil, fmt.Errorf("user id is required")
	}
	cleaned := make([]string, 0, len(symptoms))
	for _, sym := range symptoms {
		if sym != "" {
			cleaned = append(cleaned, sym)
		}
	}
	if len(cleaned) < 3 {
		return nil, nil, ErrTooFewSymptoms
	}

	resp, err := s.Client.Predict(ctx, cleaned)
	if err != nil {
		return nil, nil, err
	}

	best := resp.Top5Diseases[0]
	diag := &models.Diagnosis{
		ID:       uuid.New().String(),
		UserID:   userID,
		Symptoms: cleaned,
		Result: models.DiagnosisResult{
			Disease:     best.Disease,
			Probability: best.Probability,
			Description: best.Description,
			Precautions: best.Precautions,
		},
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Repo.Create(diag); err != nil {
		// The prediction succeeded; losing the history entry is not fatal.
		utils.GetLogger().Warn("Predict: failed to persist diagnosis",
			zap.String("userID", userID), zap.Error(err))
		return resp, nil, nil
	}

	utils.GetLogger().Info("diagnosis recorded",
		zap.String("userID", userID),
		zap.String("disease", best.Disease))
	return resp, diag, nil
}

func (s *DefaultDiagnosisService) History(ctx context.Context, userID string) ([]models.Diagnosis, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required")
	}
	history, err := s.Repo.GetByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch diagnosis history: %w", err)
	}
	if history == nil {
		history = []models.Diagnosis{}
	}
	return history, nil
}

func (s *DefaultDiagnosisService) GetDiagnosis(ctx context.Context, userID, id string) (*models.Diagnosis, error) {
	if userID == "" || id == "" {
		return nil, fmt.Errorf("user id and diagnosis id are required")
	}
	return s.Repo.GetByID(userID, id)
}
