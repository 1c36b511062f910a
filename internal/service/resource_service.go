package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"eveshield-be/internal/dto"
	"eveshield-be/internal/entity"
	"eveshield-be/internal/pkg/logger"
	"eveshield-be/internal/repository/contract"
	"eveshield-be/internal/repository/scope"
	"eveshield-be/internal/repository/specification"
	"eveshield-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type emergencyContact struct {
	key string
	entity.EmergencyContact
}

var emergencyContacts = []emergencyContact{
	{key: "national_gbv_hotline", EmergencyContact: entity.EmergencyContact{Name: "National GBV Hotline", Number: "1195", Description: "24/7 helpline for gender-based violence support"}},
	{key: "police_emergency", EmergencyContact: entity.EmergencyContact{Name: "Police Emergency", Number: "999", Description: "Emergency police services"}},
	{key: "child_helpline", EmergencyContact: entity.EmergencyContact{Name: "Child Helpline", Number: "116", Description: "Support for children in distress"}},
}

type IResourceService interface {
	ListArticles(ctx context.Context, req dto.ArticleListRequest) (*dto.ArticleListResponse, error)
	GetArticle(ctx context.Context, slug string) (*dto.ArticleDetailResponse, error)
	EmergencyContacts(ctx context.Context) []dto.EmergencyContactResponse

	GetArticleById(ctx context.Context, id uuid.UUID) (*dto.ArticleResponse, error)
	CreateArticle(ctx context.Context, req *dto.ArticleRequest) (*dto.ArticleResponse, error)
	UpdateArticle(ctx context.Context, id uuid.UUID, req *dto.ArticleRequest) (*dto.ArticleResponse, error)
	DeleteArticle(ctx context.Context, id uuid.UUID) error
}

type resourceService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
}

func NewResourceService(uowFactory unitofwork.RepositoryFactory, log logger.ILogger) IResourceService {
	return &resourceService{uowFactory: uowFactory, logger: log}
}

func (s *resourceService) ListArticles(ctx context.Context, req dto.ArticleListRequest) (*dto.ArticleListResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ArticleRepository()

	filters := []specification.Specification{specification.PublishedOnly{}}
	if req.Category != "" {
		filters = append(filters, specification.Filter("category", req.Category))
	}
	search := strings.TrimSpace(req.Search)
	if search != "" {
		filters = append(filters, specification.ILikeAny{Fields: []string{"title", "content"}, Query: search})
	}

	total, err := repo.Count(ctx, filters...)
	if err != nil {
		return nil, err
	}
	page := clampPage(req.Page, articlesPerPage, total)

	articles, err := repo.FindAll(ctx, append(filters,
		specification.Scope(scope.OrderByCreatedDesc),
		specification.Page(page.Page, articlesPerPage),
	)...)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ArticleResponse, len(articles))
	for i, a := range articles {
		items[i] = toArticleResponse(a, false)
	}

	categories := make([]dto.ChoiceResponse, 0, len(entity.ArticleCategories()))
	for _, c := range entity.ArticleCategories() {
		categories = append(categories, dto.ChoiceResponse{Value: string(c), Label: c.Label()})
	}

	return &dto.ArticleListResponse{
		Articles:       items,
		Categories:     categories,
		CategoryFilter: req.Category,
		SearchQuery:    search,
		Page:           page,
	}, nil
}

func (s *resourceService) GetArticle(ctx context.Context, slug string) (*dto.ArticleDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ArticleRepository()

	article, err := repo.FindOne(ctx, specification.BySlug{Slug: slug}, specification.PublishedOnly{})
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}

	related, err := repo.FindAll(ctx,
		specification.PublishedOnly{},
		specification.Filter("category", string(article.Category)),
		specification.ExcludeID{ID: article.Id},
		specification.Scope(scope.OrderByCreatedDesc),
		specification.Pagination{Limit: relatedArticles},
	)
	if err != nil {
		return nil, err
	}

	relatedItems := make([]dto.ArticleResponse, len(related))
	for i, a := range related {
		relatedItems[i] = toArticleResponse(a, false)
	}

	return &dto.ArticleDetailResponse{
		Article:         toArticleResponse(article, true),
		RelatedArticles: relatedItems,
	}, nil
}

func (s *resourceService) EmergencyContacts(ctx context.Context) []dto.EmergencyContactResponse {
	res := make([]dto.EmergencyContactResponse, len(emergencyContacts))
	for i, c := range emergencyContacts {
		res[i] = dto.EmergencyContactResponse{
			Key:         c.key,
			Name:        c.Name,
			Phone:       c.Number,
			Description: c.Description,
		}
	}
	return res
}

func (s *resourceService) findArticle(ctx context.Context, repo contract.ArticleRepository, id uuid.UUID) (*entity.Article, error) {
	article, err := repo.FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrArticleNotFound
	}
	return article, nil
}

func (s *resourceService) GetArticleById(ctx context.Context, id uuid.UUID) (*dto.ArticleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	article, err := s.findArticle(ctx, uow.ArticleRepository(), id)
	if err != nil {
		return nil, err
	}
	res := toArticleResponse(article, true)
	return &res, nil
}

func (s *resourceService) CreateArticle(ctx context.Context, req *dto.ArticleRequest) (*dto.ArticleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	repo := uow.ArticleRepository()
	article := &entity.Article{Id: uuid.New(), IsPublished: true}
	applyArticleRequest(article, req)

	slug, err := s.resolveSlug(ctx, repo, req.Slug, article.Title, uuid.Nil)
	if err != nil {
		return nil, err
	}
	article.Slug = slug

	if err := repo.Create(ctx, article); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.logger.Info("RESOURCE", "Article created", map[string]interface{}{"article_id": article.Id.String(), "slug": article.Slug})
	res := toArticleResponse(article, true)
	return &res, nil
}

func (s *resourceService) UpdateArticle(ctx context.Context, id uuid.UUID, req *dto.ArticleRequest) (*dto.ArticleResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	repo := uow.ArticleRepository()
	article, err := s.findArticle(ctx, repo, id)
	if err != nil {
		return nil, err
	}
	applyArticleRequest(article, req)

	// an explicit slug is honoured, otherwise the current one is kept
	if req.Slug != "" && req.Slug != article.Slug {
		slug, err := s.resolveSlug(ctx, repo, req.Slug, article.Title, article.Id)
		if err != nil {
			return nil, err
		}
		article.Slug = slug
	}

	if err := repo.Update(ctx, article); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	res := toArticleResponse(article, true)
	return &res, nil
}

func (s *resourceService) DeleteArticle(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.ArticleRepository().Delete(ctx, id); err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return ErrArticleNotFound
		}
		return err
	}
	s.logger.Info("RESOURCE", "Article deleted", map[string]interface{}{"article_id": id.String()})
	return nil
}

// resolveSlug validates an explicit slug or derives a unique one from the title.
// self is excluded from the uniqueness check.
func (s *resourceService) resolveSlug(ctx context.Context, repo contract.ArticleRepository, explicit, title string, self uuid.UUID) (string, error) {
	taken := func(slug string) (bool, error) {
		existing, err := repo.FindOne(ctx, specification.BySlug{Slug: slug})
		if err != nil {
			return false, err
		}
		return existing != nil && existing.Id != self, nil
	}

	if explicit != "" {
		slug := Slugify(explicit)
		if slug == "" {
			return "", ErrArticleSlugEmpty
		}
		clash, err := taken(slug)
		if err != nil {
			return "", err
		}
		if clash {
			return "", ErrSlugTaken
		}
		return slug, nil
	}

	base := Slugify(title)
	if base == "" {
		base = "article"
	}
	slug := base
	for i := 2; ; i++ {
		clash, err := taken(slug)
		if err != nil {
			return "", err
		}
		if !clash {
			return slug, nil
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

// Slugify keeps ASCII letters and digits, lower-cases them and joins runs of
// anything else with a single hyphen.
func Slugify(s string) string {
	var b strings.Builder
	pendingHyphen := false
	for _, r := range strings.ToLower(s) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case r == '\'':
			// apostrophes vanish: "women's" -> "womens"
		default:
			pendingHyphen = true
		}
	}
	return b.String()
}

func applyArticleRequest(a *entity.Article, req *dto.ArticleRequest) {
	a.Title = strings.TrimSpace(req.Title)
	a.Content = req.Content
	category := entity.ArticleCategory(req.Category)
	if !category.Valid() {
		category = entity.ArticleCategoryOther
	}
	a.Category = category
	if req.IsPublished != nil {
		a.IsPublished = *req.IsPublished
	}
}

func toArticleResponse(a *entity.Article, withContent bool) dto.ArticleResponse {
	res := dto.ArticleResponse{
		Id:            a.Id,
		Title:         a.Title,
		Slug:          a.Slug,
		Category:      string(a.Category),
		CategoryLabel: a.Category.Label(),
		IsPublished:   a.IsPublished,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
	if withContent {
		res.Content = a.Content
	}
	return res
}
