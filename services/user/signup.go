package user

import (
	"fmt"
	"strings"
	"time"

	"diagnotech/models"
	"diagnotech/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser validates the registration data, checks for duplicates,
// creates the account with the patient role, and signs the user in.
func (s *DefaultUserService) RegisterUser(req models.UserRegistrationData) (*AuthResponse, error) {
	if req.Email == "" || req.Password == "" || req.FullName == "" {
		return nil, fmt.Errorf("full name, email and password are required")
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !strings.Contains(email, "@") {
		return nil, fmt.Errorf("invalid email address")
	}
	if err := VerifyPasswordComplexity(req.Password); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByEmailWithProjection(email, bson.M{"id": 1})
	if err != nil {
		utils.GetLogger().Error("RegisterUser: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, fmt.Errorf("a user with this email already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("RegisterUser: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	now := time.Now().UTC()
	newUser := models.User{
		ID:           uuid.New().String(),
		FullName:     req.FullName,
		Email:        email,
		Gender:       req.Gender,
		Age:          req.Age,
		Role:         models.RoleUser,
		PasswordHash: string(hashed),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(&newUser); err != nil {
		utils.GetLogger().Error("RegisterUser: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	resp, err := s.issueToken(&newUser)
	if err != nil {
		return nil, err
	}

	utils.GetLogger().Info("user registered", zap.String("userID", newUser.ID), zap.String("email", email))
	return resp, nil
}
