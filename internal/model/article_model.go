package model

import (
	"time"

	"github.com/google/uuid"
)

type Article struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Slug        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Content     string    `gorm:"type:text;not null"`
	Category    string    `gorm:"type:varchar(100);not null;default:'other';index"`
	IsPublished bool      `gorm:"not null"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Article) TableName() string {
	return "resource_articles"
}
