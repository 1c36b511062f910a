package service

import (
	"context"
	"encoding/json"

	"eveshield-be/internal/dto"
	"eveshield-be/internal/entity"
	"eveshield-be/internal/pkg/logger"
	"eveshield-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill/message"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	subscriber   message.Subscriber
	topicName    string
	emailService mailer.IEmailService
	alertEmail   string
	baseURL      string
	logger       logger.ILogger
}

func NewConsumerService(
	subscriber message.Subscriber,
	topicName string,
	emailService mailer.IEmailService,
	alertEmail string,
	baseURL string,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		subscriber:   subscriber,
		topicName:    topicName,
		emailService: emailService,
		alertEmail:   alertEmail,
		baseURL:      baseURL,
		logger:       log,
	}
}

// Consume subscribes and processes messages in the background until ctx ends.
func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.subscriber.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(msg)
		}
	}()

	return nil
}

// processMessage always acks. Alerts are best effort and a nack on the
// in-process channel would redeliver immediately in a tight loop.
func (cs *consumerService) processMessage(msg *message.Message) {
	defer msg.Ack()

	var payload dto.ReportSubmittedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("CONSUMER", "Failed to unmarshal report alert", map[string]interface{}{"error": err.Error()})
		return
	}

	if cs.alertEmail == "" {
		cs.logger.Debug("CONSUMER", "No staff alert address configured, skipping", map[string]interface{}{"report_id": payload.ReportId.String()})
		return
	}

	alert := mailer.ReportAlert{
		ReportId:     payload.ReportId.String(),
		Type:         entity.ViolenceType(payload.Type).Label(),
		Status:       entity.ReportStatus(payload.Status).Label(),
		DashboardURL: cs.baseURL + "/api/reports/admin/report/" + payload.ReportId.String(),
	}

	if err := cs.emailService.SendReportAlert(cs.alertEmail, alert); err != nil {
		cs.logger.Error("CONSUMER", "Failed to send report alert", map[string]interface{}{
			"report_id": payload.ReportId.String(),
			"error":     err.Error(),
		})
		return
	}

	cs.logger.Info("CONSUMER", "Report alert sent", map[string]interface{}{"report_id": payload.ReportId.String()})
}
