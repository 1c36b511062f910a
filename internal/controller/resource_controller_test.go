package controller

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"eveshield-be/internal/dto"
	"eveshield-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResources struct {
	service.IResourceService

	created *dto.ArticleRequest
}

func (s *stubResources) GetArticle(ctx context.Context, slug string) (*dto.ArticleDetailResponse, error) {
	if slug != "know-your-rights" {
		return nil, service.ErrArticleNotFound
	}
	return &dto.ArticleDetailResponse{Article: dto.ArticleResponse{Slug: slug, Title: "Know Your Rights"}}, nil
}

func (s *stubResources) EmergencyContacts(ctx context.Context) []dto.EmergencyContactResponse {
	return []dto.EmergencyContactResponse{{Key: "gbv_hotline", Name: "National GBV Hotline", Phone: "1195"}}
}

func (s *stubResources) CreateArticle(ctx context.Context, req *dto.ArticleRequest) (*dto.ArticleResponse, error) {
	if req.Slug == "taken" {
		return nil, service.ErrSlugTaken
	}
	s.created = req
	return &dto.ArticleResponse{Id: uuid.New(), Title: req.Title, Slug: service.Slugify(req.Title)}, nil
}

func TestGetArticleBySlug(t *testing.T) {
	app := newTestApp(NewResourceController(&stubResources{}, testAuth()))

	code, res := do(t, app, httptest.NewRequest(fiber.MethodGet, "/api/resources/article/know-your-rights", nil))
	require.Equal(t, fiber.StatusOK, code)

	var detail dto.ArticleDetailResponse
	require.NoError(t, json.Unmarshal(res.Data, &detail))
	assert.Equal(t, "Know Your Rights", detail.Article.Title)

	code, res = do(t, app, httptest.NewRequest(fiber.MethodGet, "/api/resources/article/draft-only", nil))
	assert.Equal(t, fiber.StatusNotFound, code)
	assert.Equal(t, "Article not found", res.Message)
}

func TestEmergencyContactsEndpoint(t *testing.T) {
	app := newTestApp(NewResourceController(&stubResources{}, testAuth()))

	code, res := do(t, app, httptest.NewRequest(fiber.MethodGet, "/api/resources/emergency-contacts", nil))
	require.Equal(t, fiber.StatusOK, code)

	var contacts []dto.EmergencyContactResponse
	require.NoError(t, json.Unmarshal(res.Data, &contacts))
	require.Len(t, contacts, 1)
	assert.Equal(t, "1195", contacts[0].Phone)
}

func TestCreateArticle(t *testing.T) {
	resources := &stubResources{}
	app := newTestApp(NewResourceController(resources, testAuth()))

	req := jsonRequest(t, fiber.MethodPost, "/api/resources/articles", dto.ArticleRequest{
		Title:    "Emergency Steps",
		Content:  "Call 1195.",
		Category: "emergency",
	})
	req.Header.Set("Authorization", bearer(t, staffId, true))
	code, res := do(t, app, req)

	require.Equal(t, fiber.StatusCreated, code)
	require.NotNil(t, resources.created)
	var article dto.ArticleResponse
	require.NoError(t, json.Unmarshal(res.Data, &article))
	assert.Equal(t, "emergency-steps", article.Slug)
}

func TestCreateArticleRejectsUnknownCategory(t *testing.T) {
	resources := &stubResources{}
	app := newTestApp(NewResourceController(resources, testAuth()))

	req := jsonRequest(t, fiber.MethodPost, "/api/resources/articles", dto.ArticleRequest{Title: "T", Content: "C", Category: "gossip"})
	req.Header.Set("Authorization", bearer(t, staffId, true))
	code, _ := do(t, app, req)

	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Nil(t, resources.created)
}

func TestCreateArticleSlugConflict(t *testing.T) {
	app := newTestApp(NewResourceController(&stubResources{}, testAuth()))

	req := jsonRequest(t, fiber.MethodPost, "/api/resources/articles", dto.ArticleRequest{Title: "T", Slug: "taken", Content: "C"})
	req.Header.Set("Authorization", bearer(t, staffId, true))
	code, res := do(t, app, req)

	assert.Equal(t, fiber.StatusConflict, code)
	assert.Equal(t, service.ErrSlugTaken.Error(), res.Message)
}

func TestArticleWritesRequireToken(t *testing.T) {
	app := newTestApp(NewResourceController(&stubResources{}, testAuth()))

	code, _ := do(t, app, httptest.NewRequest(fiber.MethodDelete, "/api/resources/articles/"+uuid.NewString(), nil))
	assert.Equal(t, fiber.StatusUnauthorized, code)
}
