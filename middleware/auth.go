package middleware

import (
	"context"
	"net/http"
	"strings"

	userRepo "diagnotech/database/repository/user"
	"diagnotech/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JWTAuthMiddleware validates the bearer token and resolves the account it
// belongs to. The token hash is checked against the Redis auth cache first
// and falls back to the user collection on a miss.
func JWTAuthMiddleware(users userRepo.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		token, err := utils.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		role, err := utils.ExtractRoleFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		computedHash := utils.HashToken(tokenString)

		// Check the auth cache before hitting the database.
		cacheKey := utils.AuthCachePrefix + computedHash
		cached, cerr := utils.GetAuthCacheClient().Get(context.Background(), cacheKey).Result()
		if cerr == nil && cached != "" {
			c.Set("userID", cached)
			c.Set("role", role)
			c.Next()
			return
		}

		userRec, err := users.GetByTokenHash(computedHash)
		if err != nil || userRec == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked or user not found"})
			return
		}

		if err := utils.GetAuthCacheClient().Set(context.Background(), cacheKey, userRec.ID, utils.AuthCacheTTL).Err(); err != nil {
			utils.GetLogger().Warn("auth: failed to prime auth cache", zap.Error(err))
		}

		c.Set("userID", userRec.ID)
		c.Set("role", userRec.Role)
		c.Next()
	}
}
