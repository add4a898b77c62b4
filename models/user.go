package models

import "time"

// Roles recognized by the platform.
const (
	RoleUser   = "user"
	RoleDoctor = "doctor"
	RoleAdmin  = "admin"
)

// User represents a platform account (patient, doctor or admin).
type User struct {
	ID             string    `bson:"id" json:"id"`
	FullName       string    `bson:"full_name" json:"full_name"`
	Email          string    `bson:"email" json:"email"`
	Gender         string    `bson:"gender,omitempty" json:"gender,omitempty"`
	Age            int       `bson:"age,omitempty" json:"age,omitempty"`
	Role           string    `bson:"role" json:"role"`
	PasswordHash   string    `bson:"password_hash" json:"-"`
	TokenHash      string    `bson:"token_hash,omitempty" json:"-"`
	ProfilePicture string    `bson:"profile_picture,omitempty" json:"profile_picture,omitempty"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}

// UserRegistrationData is the payload for account registration.
type UserRegistrationData struct {
	FullName string `json:"full_name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Gender   string `json:"gender" binding:"required"`
	Age      int    `json:"age" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserUpdate carries the fields a user may change on their own profile.
type UserUpdate struct {
	FullName string `json:"full_name,omitempty"`
	Gender   string `json:"gender,omitempty"`
	Age      int    `json:"age,omitempty"`
}
