package dto

import (
	"time"

	"github.com/google/uuid"
)

type SignupRequest struct {
	Username        string `json:"username" validate:"required,max=150"`
	Email           string `json:"email" validate:"required,email,max=255"`
	Password        string `json:"password" validate:"required,min=8,max=128"`
	PasswordConfirm string `json:"password_confirm" validate:"required,eqfield=Password"`
	FirstName       string `json:"first_name" validate:"max=30"`
	LastName        string `json:"last_name" validate:"max=30"`
	Phone           string `json:"phone" validate:"max=20"`
	County          string `json:"county" validate:"max=100"`
}

type SignupResponse struct {
	Id       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

type UserResponse struct {
	Id        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	IsStaff   bool      `json:"is_staff"`
}

type ProfileResponse struct {
	User      UserResponse `json:"user"`
	Phone     string       `json:"phone"`
	County    string       `json:"county"`
	CreatedAt time.Time    `json:"created_at"`
}

// UpdateProfileRequest only touches the fields that are present.
type UpdateProfileRequest struct {
	Phone  *string `json:"phone" validate:"omitempty,max=20"`
	County *string `json:"county" validate:"omitempty,max=100"`
}
