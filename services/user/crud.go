package user

import (
	"fmt"
	"strings"
	"time"

	"diagnotech/models"
	"diagnotech/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	if id == "" {
		return nil, fmt.Errorf("user id is required")
	}
	return s.Repo.GetByID(id)
}

func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	return s.Repo.GetByEmail(email)
}

func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAll()
}

// UpdateUser applies the non-empty fields of the update to the profile.
func (s *DefaultUserService) UpdateUser(id string, update models.UserUpdate) (*models.User, error) {
	if id == "" {
		return nil, fmt.Errorf("user id is required")
	}

	updateDoc := bson.M{}
	if update.FullName != "" {
		updateDoc["full_name"] = update.FullName
	}
	if update.Gender != "" {
		updateDoc["gender"] = update.Gender
	}
	if update.Age > 0 {
		updateDoc["age"] = update.Age
	}
	if len(updateDoc) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}
	updateDoc["updated_at"] = time.Now().UTC()

	if err := s.Repo.UpdateSetDocument(id, updateDoc); err != nil {
		utils.GetLogger().Error("UpdateUser: failed to update user", zap.String("userID", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update profile")
	}
	return s.Repo.GetByID(id)
}

// UpdateUserPassword changes the password after verifying the current one.
func (s *DefaultUserService) UpdateUserPassword(id, currentPassword, newPassword string) error {
	if id == "" || currentPassword == "" || newPassword == "" {
		return fmt.Errorf("current and new passwords are required")
	}
	if err := VerifyPasswordComplexity(newPassword); err != nil {
		return err
	}

	userRec, err := s.Repo.GetByIDWithProjection(id, bson.M{"id": 1, "password_hash": 1})
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if userRec == nil {
		return fmt.Errorf("user not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(currentPassword)); err != nil {
		return fmt.Errorf("current password is incorrect")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("UpdateUserPassword: failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to update password")
	}
	return s.Repo.UpdateSetDocument(id, bson.M{
		"password_hash": string(hashed),
		"updated_at":    time.Now().UTC(),
	})
}

// UpdateProfilePicture stores the uploaded picture URL on the account.
func (s *DefaultUserService) UpdateProfilePicture(id, pictureURL string) (*models.User, error) {
	if id == "" || pictureURL == "" {
		return nil, fmt.Errorf("user id and picture URL are required")
	}
	if err := s.Repo.UpdateSetDocument(id, bson.M{
		"profile_picture": pictureURL,
		"updated_at":      time.Now().UTC(),
	}); err != nil {
		utils.GetLogger().Error("UpdateProfilePicture: failed to update user", zap.String("userID", id), zap.Error(err))
		return nil, fmt.Errorf("failed to update profile picture")
	}
	return s.Repo.GetByID(id)
}

// DeleteUser removes the account after verifying the password.
func (s *DefaultUserService) DeleteUser(id, password string) error {
	if id == "" || password == "" {
		return fmt.Errorf("user id and password are required")
	}

	userRec, err := s.Repo.GetByIDWithProjection(id, bson.M{"id": 1, "password_hash": 1})
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	if userRec == nil {
		return fmt.Errorf("user not found")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return fmt.Errorf("password is incorrect")
	}

	if err := s.RevokeAuthToken(id); err != nil {
		utils.GetLogger().Warn("DeleteUser: failed to revoke token", zap.String("userID", id), zap.Error(err))
	}
	if err := s.Repo.Delete(id); err != nil {
		utils.GetLogger().Error("DeleteUser: failed to delete user", zap.String("userID", id), zap.Error(err))
		return fmt.Errorf("failed to delete account")
	}

	utils.GetLogger().Info("user deleted", zap.String("userID", id))
	return nil
}
