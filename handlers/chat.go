package handlers

import (
	"net/http"

	"diagnotech/services/intelligence"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler forwards a message to the medical assistant.
func ChatHandler(svc intelligence.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			Message string `json:"message" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		reply, err := svc.Chat(c.Request.Context(), c.GetString("userID"), req.Message)
		if err != nil {
			logger.Error("Chat failed", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Chat service is unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"reply": reply})
	}
}

// ResetChatHandler drops the stored conversation for the authenticated user.
func ResetChatHandler(svc intelligence.ChatService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.ResetConversation(c.Request.Context(), c.GetString("userID")); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reset conversation"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Conversation reset"})
	}
}
