package routes

import (
	"net/http"
	"time"

	"diagnotech/handlers"
	"diagnotech/middleware"
	"diagnotech/models"
	"diagnotech/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)
		api.POST("/forgot-password", hb.ForgotPasswordHandler)
		api.POST("/reset-password", hb.ResetPasswordHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.GetProfileHandler)
		api.PUT("/me", hb.UpdateProfileHandler)
		api.PUT("/me/password", hb.ChangePasswordHandler)
		api.DELETE("/me", hb.DeleteAccountHandler)
		api.POST("/logout", hb.LogoutHandler)
		if hb.UploadPictureHandler != nil {
			api.POST("/me/picture", hb.UploadPictureHandler)
		}
	}
}

// RegisterDoctorRoutes registers the public doctor directory plus profile
// registration.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		api.GET("", hb.ListDoctorsHandler)
		api.GET("/:id", hb.GetDoctorHandler)
		api.GET("/:id/slots", hb.AvailableSlotsHandler)
		api.GET("/:id/reviews", hb.ListReviewsHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.POST("/register", hb.RegisterDoctorHandler)
		protected.POST("/:id/book", hb.BookSlotHandler)
		protected.POST("/:id/reviews", hb.AddReviewHandler)
	}
}

// RegisterDoctorProfileRoutes registers the authenticated doctor's own surface.
func RegisterDoctorProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctorprofile")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleDoctor))
		api.GET("/me", hb.MyDoctorProfileHandler)
		api.PUT("/me", hb.UpdateDoctorProfileHandler)
		api.DELETE("/me", hb.DeleteDoctorProfileHandler)
		api.POST("/slots", hb.AddSlotsHandler)
		api.DELETE("/slots", hb.RemoveSlotHandler)
		api.GET("/appointments", hb.DoctorAppointmentsHandler)
		api.PUT("/appointments/status", hb.SetAppointmentStatusHandler)
	}
}

// RegisterAppointmentRoutes registers the patient's appointment listing.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/mine", hb.MyAppointmentsHandler)
	}
}

// RegisterDiagnosisRoutes registers symptom prediction and history endpoints.
func RegisterDiagnosisRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/diagnosis")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/predict", hb.PredictHandler)
		api.GET("/history", hb.DiagnosisHistoryHandler)
		api.GET("/history/:id", hb.GetDiagnosisHandler)
	}
}

// RegisterChatRoutes registers medical assistant endpoints when the chat
// integration is configured.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	if hb.ChatHandler == nil {
		return
	}
	api := r.Group("/api/chat")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.ChatHandler)
		api.DELETE("", hb.ResetChatHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.RequireRole(models.RoleAdmin))
		api.GET("/stats", hb.AdminStatsHandler)
		api.GET("/users", hb.AdminListUsersHandler)
		api.GET("/doctors", hb.ListDoctorsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		if !status.CheckedAt.IsZero() && !status.Healthy {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "detail": status})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "detail": status})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterUserRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterDoctorProfileRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterDiagnosisRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
