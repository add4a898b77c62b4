package handlers

import (
	"errors"
	"net/http"

	"diagnotech/services/diagnosis"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PredictHandler runs a symptom prediction for the authenticated user.
func PredictHandler(svc diagnosis.DiagnosisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			Symptoms []string `json:"symptoms" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		resp, diag, err := svc.Predict(c.Request.Context(), c.GetString("userID"), req.Symptoms)
		if err != nil {
			switch {
			case errors.Is(err, diagnosis.ErrTooFewSymptoms):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, diagnosis.ErrPredictionFailed):
				logger.Error("Prediction failed", zap.Error(err))
				c.JSON(http.StatusBadGateway, gin.H{"error": "Prediction service is unavailable"})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			}
			return
		}

		out := gin.H{"top5_diseases": resp.Top5Diseases}
		if diag != nil {
			out["diagnosis_id"] = diag.ID
		}
		c.JSON(http.StatusOK, out)
	}
}

// DiagnosisHistoryHandler lists the authenticated user's stored diagnoses.
func DiagnosisHistoryHandler(svc diagnosis.DiagnosisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		history, err := svc.History(c.Request.Context(), c.GetString("userID"))
		if err != nil {
			logger.Error("Failed to fetch diagnosis history", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch diagnosis history"})
			return
		}
		c.JSON(http.StatusOK, history)
	}
}

// GetDiagnosisHandler returns one stored diagnosis owned by the user.
func GetDiagnosisHandler(svc diagnosis.DiagnosisService) gin.HandlerFunc {
	return func(c *gin.Context) {
		diag, err := svc.GetDiagnosis(c.Request.Context(), c.GetString("userID"), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch diagnosis"})
			return
		}
		if diag == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Diagnosis not found"})
			return
		}
		c.JSON(http.StatusOK, diag)
	}
}
