package dto

import (
	"time"

	"github.com/google/uuid"
)

type AdminOverviewResponse struct {
	Reports           ReportStats      `json:"reports"`
	ReportsByState    map[string]int64 `json:"reports_by_status"`
	ActiveLawyers     int64            `json:"active_lawyers"`
	ActiveTherapists  int64            `json:"active_therapists"`
	PublishedArticles int64            `json:"published_articles"`
	Users             int64            `json:"users"`
}

type LogListRequest struct {
	Level  string `query:"level"`
	Limit  int    `query:"limit"`
	Offset int    `query:"offset"`
}

// LogResponse ids are content hashes, not uuids.
type LogResponse struct {
	Id        string                 `json:"id"`
	Timestamp string                 `json:"timestamp"`
	Level     string                 `json:"level"`
	Module    string                 `json:"module"`
	Message   string                 `json:"message"`
	Details   map[string]interface{} `json:"details,omitempty"`
}

type NotificationResponse struct {
	Id         uuid.UUID              `json:"id"`
	TypeCode   string                 `json:"type_code"`
	Title      string                 `json:"title"`
	Message    string                 `json:"message"`
	EntityType string                 `json:"entity_type"`
	EntityId   *uuid.UUID             `json:"entity_id"`
	Metadata   map[string]interface{} `json:"metadata"`
	IsRead     bool                   `json:"is_read"`
	ReadAt     *time.Time             `json:"read_at"`
	CreatedAt  time.Time              `json:"created_at"`
}

type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Unread        int64                  `json:"unread"`
	Total         int64                  `json:"total"`
}

type AdminUserListRequest struct {
	Search string `query:"search"`
	Role   string `query:"role"`
	Page   int    `query:"page"`
}

type AdminUserResponse struct {
	UserResponse
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type AdminUserListResponse struct {
	Users []AdminUserResponse `json:"users"`
	Page  PageResponse        `json:"page"`
}

type AdminCreateUserRequest struct {
	Username  string `json:"username" validate:"required,max=150"`
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=8,max=128"`
	FirstName string `json:"first_name" validate:"max=30"`
	LastName  string `json:"last_name" validate:"max=30"`
	Role      string `json:"role" validate:"omitempty,oneof=user staff"`
}

// AdminUpdateUserRequest only touches the fields that are present.
type AdminUpdateUserRequest struct {
	FirstName *string `json:"first_name" validate:"omitempty,max=30"`
	LastName  *string `json:"last_name" validate:"omitempty,max=30"`
	Role      *string `json:"role" validate:"omitempty,oneof=user staff"`
	IsActive  *bool   `json:"is_active"`
}
