package model

import (
	"time"

	"github.com/google/uuid"
)

type Report struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TypeOfViolence string     `gorm:"type:varchar(20);not null;default:'other'"`
	Location       string     `gorm:"type:varchar(255);not null"`
	Details        string     `gorm:"type:text;not null"`
	IncidentDate   *time.Time `gorm:"type:date"`
	FileUpload     *string    `gorm:"type:varchar(255)"`
	Status         string     `gorm:"type:varchar(20);not null;default:'pending';index"`
	AdminNotes     *string    `gorm:"type:text"`
	CreatedAt      time.Time  `gorm:"autoCreateTime;index"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime"`
}

func (Report) TableName() string {
	return "gbv_reports"
}
