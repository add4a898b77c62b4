package diagnosis

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"diagnotech/config"
	"diagnotech/models"
	"diagnotech/utils"

	"go.uber.org/zap"
)

// PredictionClient calls the symptom-prediction model service.
type PredictionClient interface {
	Predict(ctx context.Context, symptoms []string) (*models.PredictionResponse, error)
}

// HTTPPredictionClient talks to the model service over HTTP.
type HTTPPredictionClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewPredictionClient builds a client against the configured model service.
func NewPredictionClient() *HTTPPredictionClient {
	return &HTTPPredictionClient{
		BaseURL:    config.AppConfig.PredictionURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Predict posts the symptom list and decodes the ranked disease response.
func (c *HTTPPredictionClient) Predict(ctx context.Context, symptoms []string) (*models.PredictionResponse, error) {
	payload, err := json.Marshal(map[string][]string{"symptoms": symptoms})
	if err != nil {
		return nil, fmt.Errorf("failed to encode prediction request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/predict", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build prediction request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		utils.GetLogger().Error("prediction request failed", zap.Error(err))
		return nil, ErrPredictionFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		utils.GetLogger().Error("prediction service returned non-success status",
			zap.Int("status", resp.StatusCode))
		return nil, ErrPredictionFailed
	}

	var out models.PredictionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		utils.GetLogger().Error("failed to decode prediction response", zap.Error(err))
		return nil, ErrPredictionFailed
	}
	if len(out.Top5Diseases) == 0 {
		return nil, ErrPredictionFailed
	}
	return &out, nil
}
