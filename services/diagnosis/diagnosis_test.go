package diagnosis

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"diagnotech/models"

	"github.com/stretchr/testify/assert"
)

type fakeDiagnosisRepo struct {
	mu      sync.Mutex
	records []models.Diagnosis
}

func (r *fakeDiagnosisRepo) Create(diag *models.Diagnosis) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, *diag)
	return nil
}

func (r *fakeDiagnosisRepo) GetByUser(userID string) ([]models.Diagnosis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Diagnosis
	for i := len(r.records) - 1; i >= 0; i-- {
		if r.records[i].UserID == userID {
			out = append(out, r.records[i])
		}
	}
	return out, nil
}

func (r *fakeDiagnosisRepo) GetByID(userID, id string) (*models.Diagnosis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rec := range r.records {
		if rec.UserID == userID && rec.ID == id {
			out := rec
			return &out, nil
		}
	}
	return nil, nil
}

func (r *fakeDiagnosisRepo) Count() (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.records)), nil
}

func predictionServer(t *testing.T, handler http.HandlerFunc) *HTTPPredictionClient {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return &HTTPPredictionClient{
		BaseURL:    srv.URL,
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestHTTPPredictionClient(t *testing.T) {
	ctx := context.Background()

	t.Run("posts symptoms and decodes the ranked response", func(t *testing.T) {
		client := predictionServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/predict", r.URL.Path)

			var req map[string][]string
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, []string{"fever", "cough", "fatigue"}, req["symptoms"])

			json.NewEncoder(w).Encode(models.PredictionResponse{
				Top5Diseases: []models.PredictedDisease{
					{Disease: "Influenza", Probability: 72.5, Description: "Viral infection"},
					{Disease: "Common Cold", Probability: 15.0},
				},
			})
		})

		resp, err := client.Predict(ctx, []string{"fever", "cough", "fatigue"})
		assert.NoError(t, err)
		assert.Len(t, resp.Top5Diseases, 2)
		assert.Equal(t, "Influenza", resp.Top5Diseases[0].Disease)
	})

	t.Run("fails on a non-success status", func(t *testing.T) {
		client := predictionServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.Predict(ctx, []string{"fever", "cough", "fatigue"})
		assert.ErrorIs(t, err, ErrPredictionFailed)
	})

	t.Run("fails on an empty disease list", func(t *testing.T) {
		client := predictionServer(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(models.PredictionResponse{})
		})

		_, err := client.Predict(ctx, []string{"fever", "cough", "fatigue"})
		assert.ErrorIs(t, err, ErrPredictionFailed)
	})
}

func TestPredict(t *testing.T) {
	ctx := context.Background()

	newService := func(t *testing.T) (*DefaultDiagnosisService, *fakeDiagnosisRepo) {
		repo := &fakeDiagnosisRepo{}
		client := predictionServer(t, func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(models.PredictionResponse{
				Top5Diseases: []models.PredictedDisease{
					{Disease: "Influenza", Probability: 72.5, Precautions: []string{"rest", "fluids"}},
				},
			})
		})
		return &DefaultDiagnosisService{Client: client, Repo: repo}, repo
	}

	t.Run("persists the best match", func(t *testing.T) {
		svc, repo := newService(t)

		resp, diag, err := svc.Predict(ctx, "user-1", []string{"fever", "cough", "fatigue"})
		assert.NoError(t, err)
		assert.Len(t, resp.Top5Diseases, 1)
		assert.Equal(t, "Influenza", diag.Result.Disease)
		assert.Equal(t, 72.5, diag.Result.Probability)

		count, _ := repo.Count()
		assert.Equal(t, int64(1), count)
	})

	t.Run("rejects fewer than three symptoms", func(t *testing.T) {
		svc, _ := newService(t)
		_, _, err := svc.Predict(ctx, "user-1", []string{"fever", "cough"})
		assert.ErrorIs(t, err, ErrTooFewSymptoms)
	})

	t.Run("ignores blank symptom entries", func(t *testing.T) {
		svc, _ := newService(t)
		_, _, err := svc.Predict(ctx, "user-1", []string{"fever", "cough", ""})
		assert.ErrorIs(t, err, ErrTooFewSymptoms)
	})

	t.Run("serves history newest first", func(t *testing.T) {
		svc, _ := newService(t)
		_, first, err := svc.Predict(ctx, "user-1", []string{"fever", "cough", "fatigue"})
		assert.NoError(t, err)
		_, second, err := svc.Predict(ctx, "user-1", []string{"headache", "nausea", "dizziness"})
		assert.NoError(t, err)

		history, err := svc.History(ctx, "user-1")
		assert.NoError(t, err)
		assert.Len(t, history, 2)
		assert.Equal(t, second.ID, history[0].ID)
		assert.Equal(t, first.ID, history[1].ID)
	})

	t.Run("scopes lookups to the owner", func(t *testing.T) {
		svc, _ := newService(t)
		_, diag, err := svc.Predict(ctx, "user-1", []string{"fever", "cough", "fatigue"})
		assert.NoError(t, err)

		found, err := svc.GetDiagnosis(ctx, "user-1", diag.ID)
		assert.NoError(t, err)
		assert.NotNil(t, found)

		other, err := svc.GetDiagnosis(ctx, "user-2", diag.ID)
		assert.NoError(t, err)
		assert.Nil(t, other)
	})
}
