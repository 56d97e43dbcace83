package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/flashspace/leads-api/internal/config"
	"github.com/flashspace/leads-api/internal/leads"
	"github.com/flashspace/leads-api/pkg/logging"
)

// ErrNotConfigured is returned when no usable SendGrid key is present.
var ErrNotConfigured = errors.New("notify: email service not configured")

// ProviderError is a structured rejection reported by SendGrid itself, as
// opposed to a transport failure reaching it.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("notify: sendgrid returned status %d: %s", e.StatusCode, e.Body)
}

// SentInfo reports a successful send.
type SentInfo struct {
	MessageID string
	LeadID    string
}

// Notifier sends the sales-team alert for one submission.
// Implementations can be swapped (SendGrid, stub) without changing callers.
type Notifier interface {
	Send(ctx context.Context, sub *leads.Submission) (SentInfo, error)
	Configured() bool
}

// SendGridNotifier sends lead alerts via the SendGrid API.
type SendGridNotifier struct {
	client     *sendgrid.Client
	apiKey     string
	fromEmail  string
	fromName   string
	salesEmail string
	logger     *logging.Logger
}

// NewSendGridNotifier creates a SendGrid-backed notifier from app config.
func NewSendGridNotifier(cfg *config.Config, logger *logging.Logger) *SendGridNotifier {
	if logger == nil {
		logger = logging.Default()
	}
	return &SendGridNotifier{
		client:     sendgrid.NewSendClient(cfg.SendGridAPIKey),
		apiKey:     cfg.SendGridAPIKey,
		fromEmail:  cfg.FromEmail,
		fromName:   cfg.FromName,
		salesEmail: cfg.SalesEmail,
		logger:     logger,
	}
}

// Configured reports whether a real (non-placeholder) API key was provided.
func (n *SendGridNotifier) Configured() bool {
	return n.apiKey != "" && n.apiKey != config.PlaceholderAPIKey
}

// Send renders the lead alert and delivers it to the sales inbox with the
// submitter set as reply-to. The returned lead id is the one embedded in the
// email body; the spreadsheet generates its own.
func (n *SendGridNotifier) Send(ctx context.Context, sub *leads.Submission) (SentInfo, error) {
	if !n.Configured() {
		return SentInfo{}, ErrNotConfigured
	}

	leadID := leads.NewLeadID()
	subject := fmt.Sprintf("🎯 New Lead: %s from %s - %s", sub.Name, sub.Campaign(), sub.City)

	from := mail.NewEmail(n.fromName, n.fromEmail)
	to := mail.NewEmail("", n.salesEmail)
	plain := fmt.Sprintf("New lead: %s <%s>, phone %s, city %s. Lead ID %s.",
		sub.Name, sub.Email, sub.Phone, sub.City, leadID)
	message := mail.NewSingleEmail(from, subject, to, plain, renderLeadAlert(sub, leadID))
	message.SetReplyTo(mail.NewEmail(sub.Name, sub.Email))

	response, err := n.client.SendWithContext(ctx, message)
	if err != nil {
		n.logger.Error("sendgrid send failed", "error", err, "lead_id", leadID)
		return SentInfo{}, fmt.Errorf("notify: sendgrid send failed: %w", err)
	}

	if response.StatusCode >= 400 {
		n.logger.Error("sendgrid rejected message",
			"status", response.StatusCode, "body", response.Body, "lead_id", leadID)
		return SentInfo{}, &ProviderError{StatusCode: response.StatusCode, Body: response.Body}
	}

	messageID := ""
	if ids := response.Headers["X-Message-Id"]; len(ids) > 0 {
		messageID = ids[0]
	}

	n.logger.Info("lead alert sent",
		"message_id", messageID,
		"lead_id", leadID,
		"subject", subject,
		"status", response.StatusCode,
	)
	return SentInfo{MessageID: messageID, LeadID: leadID}, nil
}

// StubNotifier logs instead of sending, for local runs without a key.
type StubNotifier struct {
	logger *logging.Logger
}

// NewStubNotifier creates a stub notifier.
func NewStubNotifier(logger *logging.Logger) *StubNotifier {
	if logger == nil {
		logger = logging.Default()
	}
	return &StubNotifier{logger: logger}
}

// Configured always reports true so the handler exercises the full path.
func (n *StubNotifier) Configured() bool { return true }

// Send logs the alert but doesn't deliver it.
func (n *StubNotifier) Send(ctx context.Context, sub *leads.Submission) (SentInfo, error) {
	leadID := leads.NewLeadID()
	n.logger.Info("stub notifier: would send lead alert",
		"name", sub.Name, "email", sub.Email, "lead_id", leadID)
	return SentInfo{MessageID: "stub", LeadID: leadID}, nil
}

var _ Notifier = (*SendGridNotifier)(nil)
var _ Notifier = (*StubNotifier)(nil)
