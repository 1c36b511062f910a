package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"eveshield-be/internal/dto"
	"eveshield-be/internal/pkg/logger"
	"eveshield-be/internal/pkg/mailer"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sentAlert struct {
	to    string
	alert mailer.ReportAlert
}

type chanMailer struct {
	sent chan sentAlert
	err  error
}

func (m *chanMailer) SendReportAlert(toEmail string, alert mailer.ReportAlert) error {
	m.sent <- sentAlert{to: toEmail, alert: alert}
	return m.err
}

func newAlertPipeline(t *testing.T, mail *chanMailer, alertEmail string) IPublisherService {
	t.Helper()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	t.Cleanup(func() { _ = pubSub.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	consumer := NewConsumerService(pubSub, ReportAlertTopic, mail, alertEmail, "https://eveshield.test", logger.NewNop())
	require.NoError(t, consumer.Consume(ctx))

	return NewPublisherService(ReportAlertTopic, pubSub)
}

func publishReport(t *testing.T, pub IPublisherService, id uuid.UUID) {
	t.Helper()
	payload, err := json.Marshal(dto.ReportSubmittedMessage{ReportId: id, Type: "digital", Status: "pending"})
	require.NoError(t, err)
	require.NoError(t, pub.Publish(context.Background(), payload))
}

func TestConsumer_SendsAlertForSubmittedReport(t *testing.T) {
	mail := &chanMailer{sent: make(chan sentAlert, 1)}
	pub := newAlertPipeline(t, mail, "staff@eveshield.test")

	id := uuid.New()
	publishReport(t, pub, id)

	select {
	case got := <-mail.sent:
		assert.Equal(t, "staff@eveshield.test", got.to)
		assert.Equal(t, id.String(), got.alert.ReportId)
		assert.Equal(t, "Digital/Online Violence", got.alert.Type)
		assert.Equal(t, "Pending", got.alert.Status)
		assert.Equal(t, "https://eveshield.test/api/reports/admin/report/"+id.String(), got.alert.DashboardURL)
	case <-time.After(2 * time.Second):
		t.Fatal("alert was not sent")
	}
}

func TestConsumer_MailFailureDoesNotBlockNextMessage(t *testing.T) {
	mail := &chanMailer{sent: make(chan sentAlert, 2), err: errors.New("smtp down")}
	pub := newAlertPipeline(t, mail, "staff@eveshield.test")

	first, second := uuid.New(), uuid.New()
	publishReport(t, pub, first)
	publishReport(t, pub, second)

	var ids []string
	for len(ids) < 2 {
		select {
		case got := <-mail.sent:
			ids = append(ids, got.alert.ReportId)
		case <-time.After(2 * time.Second):
			t.Fatalf("expected two alert attempts, got %d", len(ids))
		}
	}
	assert.ElementsMatch(t, []string{first.String(), second.String()}, ids)
}

func TestConsumer_NoAlertAddressSkipsMail(t *testing.T) {
	mail := &chanMailer{sent: make(chan sentAlert, 1)}
	pub := newAlertPipeline(t, mail, "")

	publishReport(t, pub, uuid.New())

	select {
	case <-mail.sent:
		t.Fatal("mail sent without an alert address")
	case <-time.After(200 * time.Millisecond):
	}
}
