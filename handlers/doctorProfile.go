package handlers

import (
	"net/http"

	"diagnotech/models"
	"diagnotech/services/booking"
	"diagnotech/services/doctor"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// resolveOwnDoctor loads the doctor profile owned by the authenticated
// account, aborting the request when there is none.
func resolveOwnDoctor(c *gin.Context, svc doctor.DoctorService) (*models.Doctor, bool) {
	doc, err := svc.GetDoctorByUserID(c.GetString("userID"))
	if err != nil {
		getLogger(c).Error("Failed to resolve doctor profile", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve doctor profile"})
		return nil, false
	}
	if doc == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No doctor profile for this account"})
		return nil, false
	}
	return doc, true
}

// MyDoctorProfileHandler returns the authenticated doctor's own profile.
func MyDoctorProfileHandler(svc doctor.DoctorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, ok := resolveOwnDoctor(c, svc)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, doc)
	}
}

// UpdateDoctorProfileHandler updates the authenticated doctor's profile.
func UpdateDoctorProfileHandler(svc doctor.DoctorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, ok := resolveOwnDoctor(c, svc)
		if !ok {
			return
		}

		var req models.DoctorUpdate
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		updated, err := svc.UpdateProfile(doc.ID, req)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// DeleteDoctorProfileHandler removes the authenticated doctor's profile.
func DeleteDoctorProfileHandler(svc doctor.DoctorService) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, ok := resolveOwnDoctor(c, svc)
		if !ok {
			return
		}
		if err := svc.DeleteDoctor(doc.ID); err != nil {
			getLogger(c).Error("Failed to delete doctor profile", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete doctor profile"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Doctor profile deleted"})
	}
}

// AddSlotsHandler publishes new appointment slots for the authenticated doctor.
func AddSlotsHandler(docSvc doctor.DoctorService, registry booking.SlotRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, ok := resolveOwnDoctor(c, docSvc)
		if !ok {
			return
		}

		var req struct {
			Slots []string `json:"slots" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		slots, err := registry.AddSlots(c.Request.Context(), doc.ID, req.Slots)
		if err != nil {
			c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"available_slots": slots})
	}
}

// RemoveSlotHandler deletes an unbooked slot.
func RemoveSlotHandler(docSvc doctor.DoctorService, registry booking.SlotRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, ok := resolveOwnDoctor(c, docSvc)
		if !ok {
			return
		}

		var req struct {
			Slot string `json:"slot" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		if err := registry.RemoveSlot(c.Request.Context(), doc.ID, req.Slot); err != nil {
			c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Slot removed"})
	}
}

// DoctorAppointmentsHandler lists the authenticated doctor's appointments
// with patient identity resolved.
func DoctorAppointmentsHandler(docSvc doctor.DoctorService, registry booking.SlotRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, ok := resolveOwnDoctor(c, docSvc)
		if !ok {
			return
		}

		appts, err := registry.ListBooked(c.Request.Context(), doc.ID)
		if err != nil {
			c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, appts)
	}
}

// SetAppointmentStatusHandler transitions one of the doctor's appointments.
func SetAppointmentStatusHandler(docSvc doctor.DoctorService, bookSvc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		doc, ok := resolveOwnDoctor(c, docSvc)
		if !ok {
			return
		}

		var req struct {
			Slot   string `json:"slot" binding:"required"`
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		appt, err := bookSvc.SetStatus(c.Request.Context(), doc.ID, req.Slot, models.AppointmentStatus(req.Status))
		if err != nil {
			c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, appt)
	}
}
