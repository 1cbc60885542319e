package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
	"go.uber.org/zap"

	"github.com/kerbside/kerbside-api/internal/types/business"
)

// EmailService sends deadline reminder emails through Resend. It
// implements ReminderDispatcher; the engine itself never touches email.
type EmailService struct {
	client    *resend.Client
	logger    *zap.Logger
	fromEmail string
	fromName  string
	toEmail   string
}

// NewEmailService creates a new email service
func NewEmailService(apiKey, fromEmail, fromName, toEmail string, logger *zap.Logger) *EmailService {
	return &EmailService{
		client:    resend.NewClient(apiKey),
		logger:    logger,
		fromEmail: fromEmail,
		fromName:  fromName,
		toEmail:   toEmail,
	}
}

var reminderTemplate = template.Must(template.New("reminder").Parse(`
<h2>Tax deadline reminder</h2>
<p>{{.Description}} is due on <strong>{{.DueDate.Format "2 January 2006"}}</strong>
({{.DaysUntilDue}} day(s) from now).</p>
<p>Tax year {{.TaxYear}}, period {{.TaxPeriod}}.</p>
`))

// Dispatch sends a reminder email for the given deadline
func (s *EmailService) Dispatch(ctx context.Context, reminder business.Reminder) error {
	var body bytes.Buffer
	if err := reminderTemplate.Execute(&body, reminder); err != nil {
		return fmt.Errorf("failed to render reminder template: %w", err)
	}

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromEmail)
	params := &resend.SendEmailRequest{
		From:    from,
		To:      []string{s.toEmail},
		Subject: fmt.Sprintf("Reminder: %s due in %d day(s)", reminder.Description, reminder.DaysUntilDue),
		Html:    body.String(),
		Headers: map[string]string{
			"X-Entity-Ref-ID": uuid.New().String(),
		},
		Tags: []resend.Tag{
			{Name: "category", Value: "deadline_reminder"},
			{Name: "deadline_kind", Value: string(reminder.Kind)},
		},
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		s.logger.Error("failed to send reminder email",
			zap.Error(err),
			zap.String("deadline_id", reminder.DeadlineID.String()))
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Info("reminder email sent",
		zap.String("email_id", sent.Id),
		zap.String("deadline_id", reminder.DeadlineID.String()),
		zap.Int("days_until_due", reminder.DaysUntilDue))

	return nil
}
