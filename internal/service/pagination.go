package service

import "eveshield-be/internal/dto"

const (
	reportsPerPage   = 20
	directoryPerPage = 12
	articlesPerPage  = 10
	relatedArticles  = 3
)

// clampPage turns a requested page into a valid 1-based page. Out of range
// requests land on the nearest valid page instead of failing.
func clampPage(page, size int, total int64) dto.PageResponse {
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	if page < 1 {
		page = 1
	}
	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	if totalPages == 0 {
		page = 1
	}
	return dto.PageResponse{Page: page, PageSize: size, Total: total, TotalPages: totalPages}
}
