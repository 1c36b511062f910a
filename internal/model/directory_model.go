package model

import (
	"time"

	"github.com/google/uuid"
)

type Lawyer struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Phone          string    `gorm:"type:varchar(20);not null"`
	Whatsapp       *string   `gorm:"type:varchar(20)"`
	Email          *string   `gorm:"type:varchar(254)"`
	County         string    `gorm:"type:varchar(100);not null;index"`
	Specialization string    `gorm:"type:varchar(255);not null"`
	Address        *string   `gorm:"type:text"`
	IsActive       bool      `gorm:"not null;index"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Lawyer) TableName() string {
	return "lawyers"
}

type Therapist struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Specialty      string    `gorm:"type:varchar(255);not null"`
	Phone          string    `gorm:"type:varchar(20);not null"`
	Email          *string   `gorm:"type:varchar(254)"`
	County         string    `gorm:"type:varchar(100);not null;index"`
	Address        *string   `gorm:"type:text"`
	Qualifications *string   `gorm:"type:varchar(255)"`
	IsActive       bool      `gorm:"not null;index"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (Therapist) TableName() string {
	return "therapists"
}
