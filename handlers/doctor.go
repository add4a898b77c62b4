package handlers

import (
	"net/http"

	"diagnotech/models"
	"diagnotech/services/doctor"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterDoctorHandler creates a doctor profile for the authenticated account.
func RegisterDoctorHandler(svc doctor.DoctorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req models.DoctorRegistrationData
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}
		req.UserID = c.GetString("userID")

		doc, err := svc.RegisterDoctor(req)
		if err != nil {
			logger.Warn("Doctor registration failed", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, doc)
	}
}

// ListDoctorsHandler lists all doctors, optionally filtered by specialty or
// treated disease via query parameters.
func ListDoctorsHandler(svc doctor.DoctorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		specialty := c.Query("specialty")
		disease := c.Query("disease")

		var (
			doctors []models.Doctor
			err     error
		)
		if specialty != "" || disease != "" {
			doctors, err = svc.SearchDoctors(specialty, disease)
		} else {
			doctors, err = svc.ListDoctors()
		}
		if err != nil {
			logger.Error("Failed to list doctors", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list doctors"})
			return
		}
		if doctors == nil {
			doctors = []models.Doctor{}
		}
		c.JSON(http.StatusOK, doctors)
	}
}

// GetDoctorHandler returns one doctor's public profile.
func GetDoctorHandler(svc doctor.DoctorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		doc, err := svc.GetDoctorByID(c.Param("id"))
		if err != nil {
			logger.Error("Failed to fetch doctor", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch doctor"})
			return
		}
		if doc == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Doctor not found"})
			return
		}
		c.JSON(http.StatusOK, doc)
	}
}
