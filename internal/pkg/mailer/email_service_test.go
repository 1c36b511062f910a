package mailer

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildReportAlert(t *testing.T) {
	m := buildReportAlert("alerts@eveshield.test", "EveShield", "staff@eveshield.test", ReportAlert{
		ReportId:     "3f1c",
		Type:         "Physical Violence",
		Status:       "Pending",
		DashboardURL: "http://localhost:3000/api/reports/admin/report/3f1c",
	})

	assert.Equal(t, []string{"staff@eveshield.test"}, m.GetHeader("To"))
	assert.Equal(t, []string{"New GBV report received"}, m.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	raw := buf.String()
	assert.Contains(t, raw, "3f1c")
	assert.Contains(t, raw, "Physical Violence")
}

func TestSendReportAlertRequiresRecipient(t *testing.T) {
	svc := NewEmailService("localhost", 2525, "alerts@eveshield.test", "", "EveShield")
	assert.ErrorIs(t, svc.SendReportAlert("", ReportAlert{ReportId: "x"}), ErrNoRecipient)
}
