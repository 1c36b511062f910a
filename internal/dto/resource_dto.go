package dto

import (
	"time"

	"github.com/google/uuid"
)

type ArticleListRequest struct {
	Category string `query:"category"`
	Search   string `query:"search"`
	Page     int    `query:"page"`
}

type ArticleResponse struct {
	Id            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Content       string    `json:"content,omitempty"`
	Category      string    `json:"category"`
	CategoryLabel string    `json:"category_label"`
	IsPublished   bool      `json:"is_published"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type ArticleListResponse struct {
	Articles       []ArticleResponse `json:"articles"`
	Categories     []ChoiceResponse  `json:"categories"`
	CategoryFilter string            `json:"category_filter"`
	SearchQuery    string            `json:"search_query"`
	Page           PageResponse      `json:"page"`
}

type ArticleDetailResponse struct {
	Article         ArticleResponse   `json:"article"`
	RelatedArticles []ArticleResponse `json:"related_articles"`
}

type ArticleRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Slug        string `json:"slug" validate:"omitempty,max=200"`
	Content     string `json:"content" validate:"required"`
	Category    string `json:"category" validate:"omitempty,oneof=rights complaint emergency support prevention other"`
	IsPublished *bool  `json:"is_published"`
}

type EmergencyContactResponse struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
}
