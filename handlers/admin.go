package handlers

import (
	"net/http"

	diagnosisRepo "diagnotech/database/repository/diagnosis"
	doctorRepo "diagnotech/database/repository/doctor"
	reviewRepo "diagnotech/database/repository/review"
	userRepo "diagnotech/database/repository/user"
	"diagnotech/models"
	"diagnotech/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminStatsHandler reports platform-wide totals for the dashboard.
func AdminStatsHandler(users userRepo.UserRepository, doctors doctorRepo.DoctorRepository, reviews reviewRepo.ReviewRepository, diagnoses diagnosisRepo.DiagnosisRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		stats := models.PlatformStats{}
		var err error

		if stats.Users, err = users.Count(); err != nil {
			logger.Error("Failed to count users", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		if stats.Doctors, err = doctors.Count(); err != nil {
			logger.Error("Failed to count doctors", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		if stats.Reviews, err = reviews.Count(); err != nil {
			logger.Error("Failed to count reviews", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		if stats.Diagnoses, err = diagnoses.Count(); err != nil {
			logger.Error("Failed to count diagnoses", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}

		byStatus, err := doctors.CountAppointmentsByStatus()
		if err != nil {
			logger.Error("Failed to count appointments", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stats"})
			return
		}
		stats.AppointmentsByStatus = byStatus
		for _, n := range byStatus {
			stats.Appointments += n
		}

		c.JSON(http.StatusOK, stats)
	}
}

// AdminListUsersHandler lists every account for the dashboard.
func AdminListUsersHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		users, err := svc.GetAllUsers()
		if err != nil {
			logger.Error("Failed to list users", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list users"})
			return
		}
		if users == nil {
			users = []models.User{}
		}
		c.JSON(http.StatusOK, users)
	}
}
