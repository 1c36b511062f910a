package mailer

import (
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"
)

var ErrNoRecipient = errors.New("mailer: no recipient configured")

// ReportAlert is everything a staff alert may reveal about a report.
// The free-text details never leave the database.
type ReportAlert struct {
	ReportId     string
	Type         string
	Status       string
	DashboardURL string
}

type IEmailService interface {
	SendReportAlert(toEmail string, alert ReportAlert) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderName string) IEmailService {
	return &emailService{
		dialer:      gomail.NewDialer(host, port, username, password),
		senderEmail: username,
		senderName:  senderName,
	}
}

func (s *emailService) SendReportAlert(toEmail string, alert ReportAlert) error {
	if toEmail == "" {
		return ErrNoRecipient
	}
	m := buildReportAlert(s.dialer.Username, s.senderName, toEmail, alert)
	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send report alert: %w", err)
	}
	return nil
}

func buildReportAlert(from, fromName, to string, alert ReportAlert) *gomail.Message {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", from, fromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "New GBV report received")

	link := ""
	if alert.DashboardURL != "" {
		link = fmt.Sprintf(`<p><a href="%s">Open the report</a></p>`, alert.DashboardURL)
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>A new report was submitted</h2>
			<p><strong>Reference:</strong> %s</p>
			<p><strong>Type:</strong> %s</p>
			<p><strong>Status:</strong> %s</p>
			%s
			<p>Sign in to the staff dashboard to review it.</p>
		</div>
	`, alert.ReportId, alert.Type, alert.Status, link)

	m.SetBody("text/html", body)
	return m
}
