package entity

import (
	"time"

	"github.com/google/uuid"
)

// Lawyer is a legal aid directory entry.
type Lawyer struct {
	Id             uuid.UUID
	Name           string
	Phone          string
	Whatsapp       *string
	Email          *string
	County         string
	Specialization string
	Address        *string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Therapist is a mental health directory entry.
type Therapist struct {
	Id             uuid.UUID
	Name           string
	Specialty      string
	Phone          string
	Email          *string
	County         string
	Address        *string
	Qualifications *string
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
