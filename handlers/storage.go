package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"diagnotech/services/user"
	"diagnotech/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxPictureSize caps profile picture uploads at 5 MiB.
const maxPictureSize = 5 << 20

// UploadProfilePictureHandler uploads the authenticated user's profile
// picture to media storage and records its URL.
func UploadProfilePictureHandler(storage utils.MediaStorage, svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
			return
		}
		if fileHeader.Size > maxPictureSize {
			c.JSON(http.StatusBadRequest, gin.H{"error": "file exceeds the 5MB limit"})
			return
		}

		tempFilePath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(fileHeader.Filename))
		if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
			logger.Error("Failed to buffer upload", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process upload"})
			return
		}
		defer os.Remove(tempFilePath)

		url, err := storage.UploadImage(c.Request.Context(), tempFilePath, "profile_pictures")
		if err != nil {
			logger.Error("Failed to upload picture", zap.Error(err))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to upload picture"})
			return
		}

		updated, err := svc.UpdateProfilePicture(c.GetString("userID"), url)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save picture URL"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}
