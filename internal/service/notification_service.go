package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"eveshield-be/internal/dto"
	"eveshield-be/internal/entity"
	"eveshield-be/internal/pkg/logger"
	"eveshield-be/internal/repository/contract"
	"eveshield-be/internal/repository/specification"
	"eveshield-be/internal/repository/unitofwork"
	"eveshield-be/pkg/events"
	pktNats "eveshield-be/pkg/nats"

	"github.com/google/uuid"
)

const (
	NotificationSubject = "events.>"
	NotificationDurable = "staff-notifier"

	defaultNotificationLimit = 20
	maxNotificationLimit     = 100
)

// EventSubscriber is the durable consumer side of the bus. *nats.Subscriber satisfies it.
type EventSubscriber interface {
	Subscribe(ctx context.Context, subject, durableName string, handler pktNats.EventHandler) error
}

type notificationTemplate struct {
	title   string
	message string
}

// Placeholders in {braces} are filled from the event payload.
var notificationTemplates = map[string]notificationTemplate{
	events.ReportSubmitted: {
		title:   "New report received",
		message: "A new {type_label} report was submitted and is awaiting review.",
	},
	events.ReportStatusUpdated: {
		title:   "Report status updated",
		message: "Report {report_id} moved from {previous_status} to {status_label}.",
	},
	events.UserRegistered: {
		title:   "New account",
		message: "{username} created an account.",
	},
}

type INotificationService interface {
	Start(ctx context.Context) error
	HandleEvent(ctx context.Context, event events.Event) error
	List(ctx context.Context, userId uuid.UUID, limit, offset int) (*dto.NotificationListResponse, error)
	MarkAsRead(ctx context.Context, userId, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context, userId uuid.UUID) error
}

type notificationService struct {
	uowFactory unitofwork.RepositoryFactory
	subscriber EventSubscriber
	logger     logger.ILogger
	now        func() time.Time
}

// NewNotificationService accepts a nil subscriber; Start is then a no-op and
// only the inbox endpoints work.
func NewNotificationService(uowFactory unitofwork.RepositoryFactory, subscriber EventSubscriber, log logger.ILogger) INotificationService {
	return &notificationService{
		uowFactory: uowFactory,
		subscriber: subscriber,
		logger:     log,
		now:        time.Now,
	}
}

func (s *notificationService) Start(ctx context.Context) error {
	if s.subscriber == nil {
		s.logger.Warn("NOTIFICATION", "No event subscriber, staff notifications disabled", nil)
		return nil
	}
	if err := s.subscriber.Subscribe(ctx, NotificationSubject, NotificationDurable, s.HandleEvent); err != nil {
		return err
	}
	s.logger.Info("NOTIFICATION", "Listening for events", map[string]interface{}{"subject": NotificationSubject})
	return nil
}

// HandleEvent fans an event out to every active staff account. Unknown event
// types are acknowledged and ignored.
func (s *notificationService) HandleEvent(ctx context.Context, event events.Event) error {
	tmpl, ok := notificationTemplates[event.EventType()]
	if !ok {
		s.logger.Debug("NOTIFICATION", "Ignoring event", map[string]interface{}{"type": event.EventType()})
		return nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	staff, err := uow.UserRepository().FindAll(ctx,
		specification.ByRole{Role: string(entity.UserRoleStaff)},
		specification.ActiveOnly{},
	)
	if err != nil {
		return err
	}

	failed := 0
	for _, u := range staff {
		n := s.buildNotification(u.Id, event, tmpl)
		if err := uow.NotificationRepository().Create(ctx, n); err != nil {
			failed++
			s.logger.Error("NOTIFICATION", "Failed to store notification", map[string]interface{}{
				"user_id": u.Id.String(),
				"type":    event.EventType(),
				"error":   err.Error(),
			})
		}
	}
	// redeliver only when nobody got it; a retry would duplicate the rest
	if failed > 0 && failed == len(staff) {
		return fmt.Errorf("storing %s notifications failed for all %d recipients", event.EventType(), failed)
	}

	s.logger.Info("NOTIFICATION", "Event fanned out", map[string]interface{}{
		"type":       event.EventType(),
		"recipients": len(staff) - failed,
	})
	return nil
}

func (s *notificationService) buildNotification(userId uuid.UUID, event events.Event, tmpl notificationTemplate) *entity.Notification {
	payload := event.Payload()

	msg := tmpl.message
	for k, v := range payload {
		msg = strings.ReplaceAll(msg, "{"+k+"}", fmt.Sprintf("%v", v))
	}

	entityType := events.StringField(payload, "entity_type")
	var entityId *uuid.UUID
	if id, err := uuid.Parse(events.StringField(payload, "entity_id")); err == nil {
		entityId = &id
	}

	meta := make(map[string]interface{}, len(payload)+1)
	for k, v := range payload {
		meta[k] = v
	}
	if entityType != "" && entityId != nil {
		meta["action_url"] = fmt.Sprintf("/%ss/%s", entityType, entityId.String())
	}

	return &entity.Notification{
		Id:         uuid.New(),
		UserId:     userId,
		TypeCode:   event.EventType(),
		Title:      tmpl.title,
		Message:    msg,
		EntityType: entityType,
		EntityId:   entityId,
		Metadata:   meta,
		CreatedAt:  s.now(),
	}
}

func (s *notificationService) List(ctx context.Context, userId uuid.UUID, limit, offset int) (*dto.NotificationListResponse, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	if limit > maxNotificationLimit {
		limit = maxNotificationLimit
	}
	if offset < 0 {
		offset = 0
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.NotificationRepository()

	items, total, err := repo.FindByUserId(ctx, userId, limit, offset)
	if err != nil {
		return nil, err
	}
	unread, err := repo.CountUnread(ctx, userId)
	if err != nil {
		return nil, err
	}

	res := &dto.NotificationListResponse{
		Notifications: make([]dto.NotificationResponse, len(items)),
		Unread:        unread,
		Total:         total,
	}
	for i, n := range items {
		res.Notifications[i] = dto.NotificationResponse{
			Id:         n.Id,
			TypeCode:   n.TypeCode,
			Title:      n.Title,
			Message:    n.Message,
			EntityType: n.EntityType,
			EntityId:   n.EntityId,
			Metadata:   n.Metadata,
			IsRead:     n.IsRead,
			ReadAt:     n.ReadAt,
			CreatedAt:  n.CreatedAt,
		}
	}
	return res, nil
}

func (s *notificationService) MarkAsRead(ctx context.Context, userId, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NotificationRepository().MarkAsRead(ctx, id, userId); err != nil {
		if errors.Is(err, contract.ErrNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	return nil
}

func (s *notificationService) MarkAllAsRead(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.NotificationRepository().MarkAllAsRead(ctx, userId)
}
