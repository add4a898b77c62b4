package user

import (
	userRepo "diagnotech/database/repository/user"
	"diagnotech/models"
	"diagnotech/utils"
)

// AuthResponse is returned on successful authentication.
type AuthResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// UserService defines account management and authentication.
type UserService interface {
	// RegisterUser creates a new patient account and returns it with a fresh token.
	RegisterUser(req models.UserRegistrationData) (*AuthResponse, error)
	// AuthenticateUser verifies credentials and returns a fresh token.
	AuthenticateUser(email, password string) (*AuthResponse, error)
	// InitiatePasswordReset emails a reset code to the account holder.
	InitiatePasswordReset(email string) error
	// CompletePasswordReset verifies the reset code and sets a new password.
	CompletePasswordReset(email, code, newPassword string) error
	// GetUserByID fetches a user by id; (nil, nil) when absent.
	GetUserByID(id string) (*models.User, error)
	// GetUserByEmail fetches a user by email; (nil, nil) when absent.
	GetUserByEmail(email string) (*models.User, error)
	// GetAllUsers lists every account.
	GetAllUsers() ([]models.User, error)
	// UpdateUser applies a partial profile update and returns the fresh record.
	UpdateUser(id string, update models.UserUpdate) (*models.User, error)
	// UpdateUserPassword changes the password after verifying the current one.
	UpdateUserPassword(id, currentPassword, newPassword string) error
	// UpdateProfilePicture stores the picture URL on the account.
	UpdateProfilePicture(id, pictureURL string) (*models.User, error)
	// DeleteUser removes the account after verifying the password.
	DeleteUser(id, password string) error
	// RevokeAuthToken invalidates the user's current token.
	RevokeAuthToken(id string) error
}

// DefaultUserService is the production implementation of UserService.
type DefaultUserService struct {
	Repo   userRepo.UserRepository
	Mailer utils.Mailer
}
