package handlers

import (
	"net/http"

	"diagnotech/services/booking"

	"github.com/gin-gonic/gin"
)

// AvailableSlotsHandler returns a doctor's currently available slots.
func AvailableSlotsHandler(registry booking.SlotRegistry) gin.HandlerFunc {
	return func(c *gin.Context) {
		slots, err := registry.ListUnbooked(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"available_slots": slots})
	}
}

// BookSlotHandler books a slot with a doctor for the authenticated patient.
func BookSlotHandler(bookSvc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Slot   string `json:"slot" binding:"required"`
			Reason string `json:"reason"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		appt, err := bookSvc.Book(c.Request.Context(), c.Param("id"), c.GetString("userID"), req.Slot, req.Reason)
		if err != nil {
			c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, appt)
	}
}

// MyAppointmentsHandler lists the authenticated patient's appointments
// across all doctors.
func MyAppointmentsHandler(bookSvc booking.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		appts, err := bookSvc.ListMine(c.Request.Context(), c.GetString("userID"))
		if err != nil {
			c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, appts)
	}
}
