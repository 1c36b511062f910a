package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleStaff UserRole = "staff"
)

type User struct {
	Id           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         UserRole
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) IsStaff() bool {
	return u.Role == UserRoleStaff
}

// UserProfile holds the optional contact details collected at signup.
type UserProfile struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Phone     *string
	County    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
