package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"diagnotech/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// InitiatePasswordReset generates a reset code and emails it to the account
// holder. Unknown emails are reported the same as known ones so the endpoint
// cannot be used to probe for accounts.
func (s *DefaultUserService) InitiatePasswordReset(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return fmt.Errorf("email is required")
	}

	userRec, err := s.Repo.GetByEmailWithProjection(email, bson.M{"id": 1})
	if err != nil {
		utils.GetLogger().Error("InitiatePasswordReset: failed to fetch user", zap.Error(err))
		return fmt.Errorf("failed to initiate password reset")
	}
	if userRec == nil {
		utils.GetLogger().Info("password reset requested for unknown email", zap.String("email", email))
		return nil
	}

	code, err := utils.InitiateResetCode(email)
	if err != nil {
		return err
	}

	subject, text, html := utils.ResetCodeEmail(code)
	if err := s.Mailer.Send(context.Background(), email, subject, text, html); err != nil {
		utils.GetLogger().Error("InitiatePasswordReset: failed to send reset email", zap.Error(err))
		return fmt.Errorf("failed to send reset email")
	}

	utils.GetLogger().Info("password reset initiated", zap.String("userID", userRec.ID))
	return nil
}

// CompletePasswordReset verifies the emailed code and replaces the password.
// A successful reset also revokes the current token.
func (s *DefaultUserService) CompletePasswordReset(email, code, newPassword string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || code == "" || newPassword == "" {
		return fmt.Errorf("email, code and new password are required")
	}
	if err := VerifyPasswordComplexity(newPassword); err != nil {
		return err
	}

	userRec, err := s.Repo.GetByEmailWithProjection(email, bson.M{"id": 1})
	if err != nil {
		utils.GetLogger().Error("CompletePasswordReset: failed to fetch user", zap.Error(err))
		return fmt.Errorf("failed to reset password")
	}
	if userRec == nil {
		return fmt.Errorf("reset code expired or not found")
	}

	if err := utils.VerifyResetCode(email, code); err != nil {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("CompletePasswordReset: failed to hash password", zap.Error(err))
		return fmt.Errorf("failed to reset password")
	}

	if err := s.Repo.UpdateSetDocument(userRec.ID, bson.M{
		"password_hash": string(hashed),
		"token_hash":    "",
		"updated_at":    time.Now().UTC(),
	}); err != nil {
		utils.GetLogger().Error("CompletePasswordReset: failed to update password", zap.Error(err))
		return fmt.Errorf("failed to reset password")
	}

	utils.GetLogger().Info("password reset completed", zap.String("userID", userRec.ID))
	return nil
}
