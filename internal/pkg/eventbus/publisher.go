package eventbus

import (
	"context"
	"time"

	"eveshield-be/internal/entity"
	"eveshield-be/internal/pkg/logger"
	"eveshield-be/pkg/events"

	"github.com/google/uuid"
)

// Publisher emits domain events. Failures are logged, never returned: an
// event that cannot be delivered must not undo a committed write.
type Publisher interface {
	PublishReportSubmitted(ctx context.Context, report *entity.Report)
	PublishReportStatusUpdated(ctx context.Context, reportId uuid.UUID, previous, current entity.ReportStatus)
	PublishUserRegistered(ctx context.Context, user *entity.User)
}

// Sink is the transport an event ends up on. *nats.Publisher satisfies it.
type Sink interface {
	Publish(ctx context.Context, event events.Event) error
}

type busPublisher struct {
	sink   Sink
	logger logger.ILogger
	now    func() time.Time
}

// NewPublisher wraps a sink. A nil sink yields a publisher that drops everything,
// which is what runs when NATS is unreachable at startup.
func NewPublisher(sink Sink, log logger.ILogger) Publisher {
	return &busPublisher{sink: sink, logger: log, now: time.Now}
}

func (p *busPublisher) PublishReportSubmitted(ctx context.Context, report *entity.Report) {
	// details and location stay out of the bus
	p.publish(ctx, events.ReportSubmitted, map[string]interface{}{
		"report_id":   report.Id.String(),
		"type":        string(report.TypeOfViolence),
		"type_label":  report.TypeOfViolence.Label(),
		"status":      string(report.Status),
		"has_file":    report.FileUpload != nil,
		"entity_type": "report",
		"entity_id":   report.Id.String(),
	})
}

func (p *busPublisher) PublishReportStatusUpdated(ctx context.Context, reportId uuid.UUID, previous, current entity.ReportStatus) {
	p.publish(ctx, events.ReportStatusUpdated, map[string]interface{}{
		"report_id":       reportId.String(),
		"previous_status": string(previous),
		"status":          string(current),
		"status_label":    current.Label(),
		"entity_type":     "report",
		"entity_id":       reportId.String(),
	})
}

func (p *busPublisher) PublishUserRegistered(ctx context.Context, user *entity.User) {
	p.publish(ctx, events.UserRegistered, map[string]interface{}{
		"user_id":     user.Id.String(),
		"username":    user.Username,
		"entity_type": "user",
		"entity_id":   user.Id.String(),
	})
}

func (p *busPublisher) publish(ctx context.Context, eventType string, data map[string]interface{}) {
	if p.sink == nil {
		return
	}

	evt := events.BaseEvent{Type: eventType, Data: data, OccurredAt: p.now()}
	if err := p.sink.Publish(ctx, evt); err != nil {
		p.logger.Error("EVENTBUS", "Failed to publish "+eventType+" event", map[string]interface{}{"error": err.Error()})
	}
}
