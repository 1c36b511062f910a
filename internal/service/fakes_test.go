package service

import (
	"context"
	"fmt"
	"mime/multipart"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"eveshield-be/internal/entity"
	"eveshield-be/internal/repository/contract"
	"eveshield-be/internal/repository/scope"
	"eveshield-be/internal/repository/specification"
	"eveshield-be/internal/repository/unitofwork"
	"eveshield-be/pkg/events"
	pktNats "eveshield-be/pkg/nats"

	"github.com/google/uuid"
)

// memStore is an in-memory stand-in for the database. Specifications are
// interpreted against a column view of each row.
type memStore struct {
	mu sync.Mutex

	users         []*entity.User
	profiles      []*entity.UserProfile
	reports       []*entity.Report
	lawyers       []*entity.Lawyer
	therapists    []*entity.Therapist
	articles      []*entity.Article
	notifications []*entity.Notification

	createErr error
	begins    int
	commits   int
}

func newMemStore() *memStore { return &memStore{} }

func (s *memStore) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &memUoW{s: s}
}

type memUoW struct {
	s *memStore
}

func (u *memUoW) Begin(ctx context.Context) error {
	u.s.mu.Lock()
	u.s.begins++
	u.s.mu.Unlock()
	return nil
}

func (u *memUoW) Commit() error {
	u.s.mu.Lock()
	u.s.commits++
	u.s.mu.Unlock()
	return nil
}

func (u *memUoW) Rollback() error { return nil }

func (u *memUoW) UserRepository() contract.UserRepository           { return &memUsers{u.s} }
func (u *memUoW) ReportRepository() contract.ReportRepository       { return &memReports{u.s} }
func (u *memUoW) LawyerRepository() contract.LawyerRepository       { return &memLawyers{u.s} }
func (u *memUoW) TherapistRepository() contract.TherapistRepository { return &memTherapists{u.s} }
func (u *memUoW) ArticleRepository() contract.ArticleRepository     { return &memArticles{u.s} }
func (u *memUoW) NotificationRepository() contract.NotificationRepository {
	return &memNotifications{u.s}
}

type columns map[string]interface{}

var (
	orderByCreatedDesc = reflect.ValueOf(scope.OrderByCreatedDesc).Pointer()
	orderByCountyName  = reflect.ValueOf(scope.OrderByCountyName).Pointer()
)

// query filters, orders and pages rows the way the gorm specifications would.
func query[T any](rows []*T, cols func(*T) columns, specs []specification.Specification) []*T {
	var page *specification.Pagination
	var order func(a, b columns) bool
	var out []*T

	match := func(c columns) bool {
		for _, spec := range specs {
			switch sp := spec.(type) {
			case specification.ByID:
				if c["id"] != sp.ID {
					return false
				}
			case specification.ExcludeID:
				if c["id"] == sp.ID {
					return false
				}
			case specification.FilterBy:
				if fmt.Sprint(c[sp.Field]) != fmt.Sprint(sp.Value) {
					return false
				}
			case specification.ActiveOnly:
				if c["is_active"] != true {
					return false
				}
			case specification.PublishedOnly:
				if c["is_published"] != true {
					return false
				}
			case specification.BySlug:
				if c["slug"] != sp.Slug {
					return false
				}
			case specification.ByEmail:
				if !strings.EqualFold(fmt.Sprint(c["email"]), sp.Email) {
					return false
				}
			case specification.ByUsername:
				if c["username"] != sp.Username {
					return false
				}
			case specification.ByRole:
				if c["role"] != sp.Role {
					return false
				}
			case specification.UserOwnedBy:
				if c["user_id"] != sp.UserID {
					return false
				}
			case specification.ILike:
				if !containsFold(fmt.Sprint(c[sp.Field]), sp.Value) {
					return false
				}
			case specification.ILikeAny:
				hit := false
				for _, f := range sp.Fields {
					if containsFold(fmt.Sprint(c[f]), sp.Query) {
						hit = true
					}
				}
				if !hit {
					return false
				}
			}
		}
		return true
	}

	for _, spec := range specs {
		switch sp := spec.(type) {
		case specification.Pagination:
			p := sp
			page = &p
		case specification.Scope:
			switch reflect.ValueOf(sp).Pointer() {
			case orderByCreatedDesc:
				order = func(a, b columns) bool {
					return a["created_at"].(time.Time).After(b["created_at"].(time.Time))
				}
			case orderByCountyName:
				order = func(a, b columns) bool {
					if a["county"] != b["county"] {
						return a["county"].(string) < b["county"].(string)
					}
					return a["name"].(string) < b["name"].(string)
				}
			}
		}
	}

	for _, r := range rows {
		if match(cols(r)) {
			cp := *r
			out = append(out, &cp)
		}
	}
	if order != nil {
		sort.SliceStable(out, func(i, j int) bool { return order(cols(out[i]), cols(out[j])) })
	}
	if page != nil {
		start := page.Offset
		if start > len(out) {
			start = len(out)
		}
		end := len(out)
		if page.Limit > 0 && start+page.Limit < end {
			end = start + page.Limit
		}
		out = out[start:end]
	}
	return out
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func first[T any](rows []*T) *T {
	if len(rows) == 0 {
		return nil
	}
	return rows[0]
}

func userCols(u *entity.User) columns {
	return columns{"id": u.Id, "username": u.Username, "email": u.Email, "first_name": u.FirstName,
		"last_name": u.LastName, "role": string(u.Role), "is_active": u.IsActive, "created_at": u.CreatedAt}
}

func reportCols(r *entity.Report) columns {
	return columns{"id": r.Id, "status": string(r.Status), "type_of_violence": string(r.TypeOfViolence),
		"location": r.Location, "details": r.Details, "created_at": r.CreatedAt}
}

func lawyerCols(l *entity.Lawyer) columns {
	return columns{"id": l.Id, "name": l.Name, "county": l.County, "specialization": l.Specialization,
		"is_active": l.IsActive, "created_at": l.CreatedAt}
}

func therapistCols(t *entity.Therapist) columns {
	return columns{"id": t.Id, "name": t.Name, "county": t.County, "specialty": t.Specialty,
		"is_active": t.IsActive, "created_at": t.CreatedAt}
}

func articleCols(a *entity.Article) columns {
	return columns{"id": a.Id, "title": a.Title, "slug": a.Slug, "content": a.Content,
		"category": string(a.Category), "is_published": a.IsPublished, "created_at": a.CreatedAt}
}

func stamp(created *time.Time, updated *time.Time) {
	now := time.Now()
	if created != nil && created.IsZero() {
		*created = now
	}
	if updated != nil {
		*updated = now
	}
}

func replace[T any](rows []*T, id uuid.UUID, idOf func(*T) uuid.UUID, v *T) bool {
	for i, r := range rows {
		if idOf(r) == id {
			cp := *v
			rows[i] = &cp
			return true
		}
	}
	return false
}

func remove[T any](rows []*T, id uuid.UUID, idOf func(*T) uuid.UUID) ([]*T, bool) {
	for i, r := range rows {
		if idOf(r) == id {
			return append(rows[:i], rows[i+1:]...), true
		}
	}
	return rows, false
}

// users

type memUsers struct{ s *memStore }

func (r *memUsers) Create(ctx context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.createErr != nil {
		return r.s.createErr
	}
	stamp(&u.CreatedAt, &u.UpdatedAt)
	cp := *u
	r.s.users = append(r.s.users, &cp)
	return nil
}

func (r *memUsers) Update(ctx context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !replace(r.s.users, u.Id, func(x *entity.User) uuid.UUID { return x.Id }, u) {
		return contract.ErrNotFound
	}
	return nil
}

func (r *memUsers) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var ok bool
	r.s.users, ok = remove(r.s.users, id, func(x *entity.User) uuid.UUID { return x.Id })
	if !ok {
		return contract.ErrNotFound
	}
	return nil
}

func (r *memUsers) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return first(query(r.s.users, userCols, specs)), nil
}

func (r *memUsers) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return query(r.s.users, userCols, specs), nil
}

func (r *memUsers) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(query(r.s.users, userCols, specs))), nil
}

func (r *memUsers) CreateProfile(ctx context.Context, p *entity.UserProfile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *p
	r.s.profiles = append(r.s.profiles, &cp)
	return nil
}

func (r *memUsers) UpdateProfile(ctx context.Context, p *entity.UserProfile) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !replace(r.s.profiles, p.Id, func(x *entity.UserProfile) uuid.UUID { return x.Id }, p) {
		return contract.ErrNotFound
	}
	return nil
}

func (r *memUsers) FindProfileByUserId(ctx context.Context, userId uuid.UUID) (*entity.UserProfile, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.profiles {
		if p.UserId == userId {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

// reports

type memReports struct{ s *memStore }

func (r *memReports) Create(ctx context.Context, rep *entity.Report) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.createErr != nil {
		return r.s.createErr
	}
	stamp(&rep.CreatedAt, &rep.UpdatedAt)
	cp := *rep
	r.s.reports = append(r.s.reports, &cp)
	return nil
}

func (r *memReports) Update(ctx context.Context, rep *entity.Report) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !replace(r.s.reports, rep.Id, func(x *entity.Report) uuid.UUID { return x.Id }, rep) {
		return contract.ErrNotFound
	}
	return nil
}

func (r *memReports) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Report, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return first(query(r.s.reports, reportCols, specs)), nil
}

func (r *memReports) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Report, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return query(r.s.reports, reportCols, specs), nil
}

func (r *memReports) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(query(r.s.reports, reportCols, specs))), nil
}

func (r *memReports) CountByStatus(ctx context.Context) (map[entity.ReportStatus]int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := map[entity.ReportStatus]int64{}
	for _, rep := range r.s.reports {
		out[rep.Status]++
	}
	return out, nil
}

func (r *memReports) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ReportStatus, adminNotes *string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rep := range r.s.reports {
		if rep.Id == id {
			rep.Status = status
			rep.AdminNotes = adminNotes
			rep.UpdatedAt = time.Now()
			return nil
		}
	}
	return contract.ErrNotFound
}

// directories

type memLawyers struct{ s *memStore }

func (r *memLawyers) Create(ctx context.Context, l *entity.Lawyer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stamp(&l.CreatedAt, &l.UpdatedAt)
	cp := *l
	r.s.lawyers = append(r.s.lawyers, &cp)
	return nil
}

func (r *memLawyers) Update(ctx context.Context, l *entity.Lawyer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !replace(r.s.lawyers, l.Id, func(x *entity.Lawyer) uuid.UUID { return x.Id }, l) {
		return contract.ErrNotFound
	}
	return nil
}

func (r *memLawyers) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var ok bool
	r.s.lawyers, ok = remove(r.s.lawyers, id, func(x *entity.Lawyer) uuid.UUID { return x.Id })
	if !ok {
		return contract.ErrNotFound
	}
	return nil
}

func (r *memLawyers) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Lawyer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return first(query(r.s.lawyers, lawyerCols, specs)), nil
}

func (r *memLawyers) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Lawyer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return query(r.s.lawyers, lawyerCols, specs), nil
}

func (r *memLawyers) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(query(r.s.lawyers, lawyerCols, specs))), nil
}

func (r *memLawyers) DistinctActiveCounties(ctx context.Context) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var counties []string
	for _, l := range r.s.lawyers {
		if l.IsActive {
			counties = append(counties, l.County)
		}
	}
	return distinctSorted(counties), nil
}

type memTherapists struct{ s *memStore }

func (r *memTherapists) Create(ctx context.Context, t *entity.Therapist) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stamp(&t.CreatedAt, &t.UpdatedAt)
	cp := *t
	r.s.therapists = append(r.s.therapists, &cp)
	return nil
}

func (r *memTherapists) Update(ctx context.Context, t *entity.Therapist) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !replace(r.s.therapists, t.Id, func(x *entity.Therapist) uuid.UUID { return x.Id }, t) {
		return contract.ErrNotFound
	}
	return nil
}

func (r *memTherapists) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var ok bool
	r.s.therapists, ok = remove(r.s.therapists, id, func(x *entity.Therapist) uuid.UUID { return x.Id })
	if !ok {
		return contract.ErrNotFound
	}
	return nil
}

func (r *memTherapists) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Therapist, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return first(query(r.s.therapists, therapistCols, specs)), nil
}

func (r *memTherapists) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Therapist, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return query(r.s.therapists, therapistCols, specs), nil
}

func (r *memTherapists) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(query(r.s.therapists, therapistCols, specs))), nil
}

func (r *memTherapists) DistinctActiveCounties(ctx context.Context) ([]string, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var counties []string
	for _, t := range r.s.therapists {
		if t.IsActive {
			counties = append(counties, t.County)
		}
	}
	return distinctSorted(counties), nil
}

func distinctSorted(in []string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _, s := range in {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

// articles

type memArticles struct{ s *memStore }

func (r *memArticles) Create(ctx context.Context, a *entity.Article) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	stamp(&a.CreatedAt, &a.UpdatedAt)
	cp := *a
	r.s.articles = append(r.s.articles, &cp)
	return nil
}

func (r *memArticles) Update(ctx context.Context, a *entity.Article) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if !replace(r.s.articles, a.Id, func(x *entity.Article) uuid.UUID { return x.Id }, a) {
		return contract.ErrNotFound
	}
	return nil
}

func (r *memArticles) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var ok bool
	r.s.articles, ok = remove(r.s.articles, id, func(x *entity.Article) uuid.UUID { return x.Id })
	if !ok {
		return contract.ErrNotFound
	}
	return nil
}

func (r *memArticles) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Article, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return first(query(r.s.articles, articleCols, specs)), nil
}

func (r *memArticles) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Article, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return query(r.s.articles, articleCols, specs), nil
}

func (r *memArticles) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return int64(len(query(r.s.articles, articleCols, specs))), nil
}

// notifications

type memNotifications struct{ s *memStore }

func (r *memNotifications) Create(ctx context.Context, n *entity.Notification) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.createErr != nil {
		return r.s.createErr
	}
	stamp(&n.CreatedAt, nil)
	cp := *n
	r.s.notifications = append(r.s.notifications, &cp)
	return nil
}

func (r *memNotifications) FindByUserId(ctx context.Context, userId uuid.UUID, limit, offset int) ([]*entity.Notification, int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var mine []*entity.Notification
	for i := len(r.s.notifications) - 1; i >= 0; i-- {
		if n := r.s.notifications[i]; n.UserId == userId {
			cp := *n
			mine = append(mine, &cp)
		}
	}
	total := int64(len(mine))
	if offset > len(mine) {
		offset = len(mine)
	}
	end := offset + limit
	if end > len(mine) {
		end = len(mine)
	}
	return mine[offset:end], total, nil
}

func (r *memNotifications) CountUnread(ctx context.Context, userId uuid.UUID) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for _, x := range r.s.notifications {
		if x.UserId == userId && !x.IsRead {
			n++
		}
	}
	return n, nil
}

func (r *memNotifications) MarkAsRead(ctx context.Context, id, userId uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.notifications {
		if x.Id == id && x.UserId == userId {
			now := time.Now()
			x.IsRead = true
			x.ReadAt = &now
			return nil
		}
	}
	return contract.ErrNotFound
}

func (r *memNotifications) MarkAllAsRead(ctx context.Context, userId uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	now := time.Now()
	for _, x := range r.s.notifications {
		if x.UserId == userId && !x.IsRead {
			x.IsRead = true
			x.ReadAt = &now
		}
	}
	return nil
}

// collaborators

type recordingEvents struct {
	mu         sync.Mutex
	submitted  []uuid.UUID
	updated    []entity.ReportStatus
	registered []string
}

func (e *recordingEvents) PublishReportSubmitted(ctx context.Context, report *entity.Report) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.submitted = append(e.submitted, report.Id)
}

func (e *recordingEvents) PublishReportStatusUpdated(ctx context.Context, reportId uuid.UUID, previous, current entity.ReportStatus) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.updated = append(e.updated, current)
}

func (e *recordingEvents) PublishUserRegistered(ctx context.Context, user *entity.User) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.registered = append(e.registered, user.Username)
}

type recordingAlerts struct {
	payloads [][]byte
	err      error
}

func (a *recordingAlerts) Publish(ctx context.Context, payload []byte) error {
	a.payloads = append(a.payloads, payload)
	return a.err
}

type stubLimiter struct {
	allow bool
	err   error
	keys  []string
}

func (l *stubLimiter) Allow(ctx context.Context, key string) (bool, error) {
	l.keys = append(l.keys, key)
	return l.allow, l.err
}

type stubEvidence struct {
	validateErr error
	saved       []string
	removed     []string
	saveErr     error
	paths       map[string]string
}

func (e *stubEvidence) Validate(fh *multipart.FileHeader) error { return e.validateErr }

func (e *stubEvidence) Save(fh *multipart.FileHeader) (string, error) {
	if e.saveErr != nil {
		return "", e.saveErr
	}
	rel := "reports/2024/05/01/" + fh.Filename
	e.saved = append(e.saved, rel)
	return rel, nil
}

func (e *stubEvidence) Path(rel string) (string, error) {
	if p, ok := e.paths[rel]; ok {
		return p, nil
	}
	return "/srv/uploads/" + rel, nil
}

func (e *stubEvidence) Remove(rel string) error {
	e.removed = append(e.removed, rel)
	return nil
}

type stubSubscriber struct {
	subject string
	durable string
	handler func(ctx context.Context, event events.Event) error
}

func (s *stubSubscriber) Subscribe(ctx context.Context, subject, durableName string, handler pktNats.EventHandler) error {
	s.subject = subject
	s.durable = durableName
	s.handler = handler
	return nil
}
