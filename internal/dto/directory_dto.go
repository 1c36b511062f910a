package dto

import (
	"time"

	"github.com/google/uuid"
)

type DirectoryListRequest struct {
	County string `query:"county"`
	Search string `query:"search"`
	Page   int    `query:"page"`
}

type LawyerResponse struct {
	Id             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Whatsapp       *string   `json:"whatsapp"`
	Email          *string   `json:"email"`
	County         string    `json:"county"`
	Specialization string    `json:"specialization"`
	Address        *string   `json:"address"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

type LawyerListResponse struct {
	Lawyers      []LawyerResponse `json:"lawyers"`
	Counties     []string         `json:"counties"`
	CountyFilter string           `json:"county_filter"`
	SearchQuery  string           `json:"search_query"`
	Page         PageResponse     `json:"page"`
}

type LawyerRequest struct {
	Name           string  `json:"name" validate:"required,max=200"`
	Phone          string  `json:"phone" validate:"required,max=20"`
	Whatsapp       *string `json:"whatsapp" validate:"omitempty,max=20"`
	Email          *string `json:"email" validate:"omitempty,email"`
	County         string  `json:"county" validate:"required,max=100"`
	Specialization string  `json:"specialization" validate:"required"`
	Address        *string `json:"address"`
	IsActive       *bool   `json:"is_active"`
}

type TherapistResponse struct {
	Id             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Specialty      string    `json:"specialty"`
	Phone          string    `json:"phone"`
	Email          *string   `json:"email"`
	County         string    `json:"county"`
	Address        *string   `json:"address"`
	Qualifications *string   `json:"qualifications"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

type TherapistListResponse struct {
	Therapists   []TherapistResponse `json:"therapists"`
	Counties     []string            `json:"counties"`
	CountyFilter string              `json:"county_filter"`
	SearchQuery  string              `json:"search_query"`
	Page         PageResponse        `json:"page"`
}

type TherapistRequest struct {
	Name           string  `json:"name" validate:"required,max=200"`
	Specialty      string  `json:"specialty" validate:"required,max=200"`
	Phone          string  `json:"phone" validate:"required,max=20"`
	Email          *string `json:"email" validate:"omitempty,email"`
	County         string  `json:"county" validate:"required,max=100"`
	Address        *string `json:"address"`
	Qualifications *string `json:"qualifications"`
	IsActive       *bool   `json:"is_active"`
}

type SetActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}
