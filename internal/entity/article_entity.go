package entity

import (
	"time"

	"github.com/google/uuid"
)

type ArticleCategory string

const (
	ArticleCategoryRights     ArticleCategory = "rights"
	ArticleCategoryComplaint  ArticleCategory = "complaint"
	ArticleCategoryEmergency  ArticleCategory = "emergency"
	ArticleCategorySupport    ArticleCategory = "support"
	ArticleCategoryPrevention ArticleCategory = "prevention"
	ArticleCategoryOther      ArticleCategory = "other"
)

var articleCategoryLabels = map[ArticleCategory]string{
	ArticleCategoryRights:     "Know Your Rights",
	ArticleCategoryComplaint:  "How to File a Complaint",
	ArticleCategoryEmergency:  "Emergency Steps",
	ArticleCategorySupport:    "Support Services",
	ArticleCategoryPrevention: "Prevention",
	ArticleCategoryOther:      "Other",
}

func ArticleCategories() []ArticleCategory {
	return []ArticleCategory{
		ArticleCategoryRights,
		ArticleCategoryComplaint,
		ArticleCategoryEmergency,
		ArticleCategorySupport,
		ArticleCategoryPrevention,
		ArticleCategoryOther,
	}
}

func (c ArticleCategory) Valid() bool {
	_, ok := articleCategoryLabels[c]
	return ok
}

func (c ArticleCategory) Label() string {
	if l, ok := articleCategoryLabels[c]; ok {
		return l
	}
	return string(c)
}

type Article struct {
	Id          uuid.UUID
	Title       string
	Slug        string
	Content     string
	Category    ArticleCategory
	IsPublished bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// EmergencyContact is a static hotline entry.
type EmergencyContact struct {
	Name        string
	Number      string
	Description string
}
