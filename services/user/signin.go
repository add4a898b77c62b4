package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"diagnotech/models"
	"diagnotech/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// tokenDuration is how long an issued JWT stays valid.
const tokenDuration = 72 * time.Hour

// AuthenticateUser verifies the credentials and issues a fresh token. The
// token hash is stored on the user record and cached so middleware can
// validate without a database round trip.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("invalid email or password")
	}

	resp, err := s.issueToken(userRec)
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("user authenticated", zap.String("userID", userRec.ID))
	return resp, nil
}

// issueToken generates a JWT for the user, persists its hash and primes the
// auth cache.
func (s *DefaultUserService) issueToken(userRec *models.User) (*AuthResponse, error) {
	token, err := utils.GenerateToken(userRec.ID, userRec.Email, userRec.Role, tokenDuration)
	if err != nil {
		utils.GetLogger().Error("issueToken: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	tokenHash := utils.HashToken(token)

	if err := s.Repo.UpdateSetDocument(userRec.ID, bson.M{
		"token_hash": tokenHash,
		"updated_at": time.Now().UTC(),
	}); err != nil {
		utils.GetLogger().Error("issueToken: failed to store token hash", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}

	cacheKey := utils.AuthCachePrefix + tokenHash
	if err := utils.GetAuthCacheClient().Set(context.Background(), cacheKey, userRec.ID, utils.AuthCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("issueToken: failed to prime auth cache", zap.Error(err))
	}

	userCopy := *userRec
	userCopy.TokenHash = ""
	return &AuthResponse{Token: token, User: userCopy}, nil
}

// RevokeAuthToken clears the stored token hash so the current token can no
// longer authenticate.
func (s *DefaultUserService) RevokeAuthToken(id string) error {
	userRec, err := s.Repo.GetByIDWithProjection(id, bson.M{"id": 1, "token_hash": 1})
	if err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	if userRec == nil {
		return fmt.Errorf("user not found")
	}

	if userRec.TokenHash != "" {
		cacheKey := utils.AuthCachePrefix + userRec.TokenHash
		if err := utils.GetAuthCacheClient().Del(context.Background(), cacheKey).Err(); err != nil {
			utils.GetLogger().Warn("RevokeAuthToken: failed to clear auth cache", zap.Error(err))
		}
	}

	if err := s.Repo.UpdateSetDocument(id, bson.M{"token_hash": "", "updated_at": time.Now().UTC()}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}
