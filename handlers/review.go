package handlers

import (
	"net/http"

	"diagnotech/services/booking"

	"github.com/gin-gonic/gin"
)

// AddReviewHandler records the authenticated patient's review of a doctor.
func AddReviewHandler(svc booking.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Rating  int    `json:"rating" binding:"required"`
			Comment string `json:"comment"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		review, err := svc.AddReview(c.Request.Context(), c.Param("id"), c.GetString("userID"), req.Rating, req.Comment)
		if err != nil {
			c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}

// ListReviewsHandler returns a doctor's reviews together with the rating summary.
func ListReviewsHandler(svc booking.ReviewService) gin.HandlerFunc {
	return func(c *gin.Context) {
		doctorID := c.Param("id")

		reviews, err := svc.ListReviews(c.Request.Context(), doctorID)
		if err != nil {
			c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		summary, err := svc.AverageRating(c.Request.Context(), doctorID)
		if err != nil {
			c.JSON(bookingErrorStatus(err), gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"reviews": reviews, "rating": summary})
	}
}
