package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/flashspace/leads-api/internal/leads"
	"github.com/flashspace/leads-api/internal/notify"
	"github.com/flashspace/leads-api/internal/observability/metrics"
	"github.com/flashspace/leads-api/internal/sheets"
	"github.com/flashspace/leads-api/pkg/logging"
)

// Appender records a submission in the spreadsheet. Its result is
// informational only and never fails the request.
type Appender interface {
	Append(ctx context.Context, sub *leads.Submission) sheets.AppendResult
}

// LeadHandler orchestrates the submit pipeline: validate, email, then
// best-effort sheet append.
type LeadHandler struct {
	notifier notify.Notifier
	appender Appender
	metrics  *metrics.LeadMetrics
	logger   *logging.Logger
}

// NewLeadHandler creates the submission handler.
func NewLeadHandler(notifier notify.Notifier, appender Appender, m *metrics.LeadMetrics, logger *logging.Logger) *LeadHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &LeadHandler{
		notifier: notifier,
		appender: appender,
		metrics:  m,
		logger:   logger,
	}
}

type submitResponse struct {
	Success           bool    `json:"success"`
	Message           string  `json:"message"`
	EmailID           string  `json:"emailId"`
	LeadID            string  `json:"leadId"`
	GoogleSheets      bool    `json:"googleSheets"`
	GoogleSheetsError *string `json:"googleSheetsError"`
}

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// SubmitLead handles POST /api/send-email.
func (h *LeadHandler) SubmitLead(w http.ResponseWriter, r *http.Request) {
	sub, err := decodeSubmission(r)
	if err != nil {
		h.logger.Error("failed to decode submission", "error", err)
		h.metrics.ObserveSubmission("invalid")
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid request body"})
		return
	}

	h.logSubmission(sub)

	if err := sub.Validate(); err != nil {
		h.logger.Warn("validation failed", "error", err)
		h.metrics.ObserveSubmission("invalid")
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Name and email are required"})
		return
	}

	if !h.notifier.Configured() {
		h.logger.Error("email service not configured")
		h.metrics.ObserveSubmission("not_configured")
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Message: "Email service not configured. Please contact administrator.",
		})
		return
	}

	sent, err := h.notifier.Send(r.Context(), sub)
	if err != nil {
		h.respondEmailFailure(w, err)
		return
	}
	h.metrics.ObserveEmail("sent")

	// Email success gates the sheet append; the append outcome is merged into
	// the response without changing the status.
	result := h.appender.Append(r.Context(), sub)
	h.metrics.ObserveSheetAppend(result.OK)
	if !result.OK {
		h.logger.Error("sheet append failed",
			"error", result.Err, "hint", result.Hint, "lead_id", sent.LeadID)
	}

	h.metrics.ObserveSubmission("accepted")
	resp := submitResponse{
		Success:      true,
		Message:      "Email sent successfully! We will contact you soon.",
		EmailID:      sent.MessageID,
		LeadID:       sent.LeadID,
		GoogleSheets: result.OK,
	}
	if !result.OK {
		errText := result.Err
		resp.GoogleSheetsError = &errText
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *LeadHandler) respondEmailFailure(w http.ResponseWriter, err error) {
	var provider *notify.ProviderError
	switch {
	case errors.Is(err, notify.ErrNotConfigured):
		h.metrics.ObserveEmail("not_configured")
		h.metrics.ObserveSubmission("not_configured")
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Message: "Email service not configured. Please contact administrator.",
		})
	case errors.As(err, &provider):
		h.logger.Error("email provider rejected message", "status", provider.StatusCode)
		h.metrics.ObserveEmail("rejected")
		h.metrics.ObserveSubmission("email_failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Message: "Failed to send email via SendGrid.",
			Error:   provider.Error(),
		})
	default:
		h.logger.Error("email send failed", "error", err)
		h.metrics.ObserveEmail("failed")
		h.metrics.ObserveSubmission("email_failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Message: "Failed to send email. Please try again later.",
			Error:   err.Error(),
		})
	}
}

// decodeSubmission accepts JSON bodies and urlencoded form posts.
func decodeSubmission(r *http.Request) (*leads.Submission, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.Contains(contentType, "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		sub := &leads.Submission{
			Name:      r.PostFormValue("name"),
			Email:     r.PostFormValue("email"),
			Phone:     r.PostFormValue("phone"),
			City:      r.PostFormValue("city"),
			Company:   r.PostFormValue("company"),
			Message:   r.PostFormValue("message"),
			Timestamp: r.PostFormValue("timestamp"),
			UserAgent: r.PostFormValue("user_agent"),
		}
		utm := &leads.Attribution{
			Source:      r.PostFormValue("utm_source"),
			Medium:      r.PostFormValue("utm_medium"),
			Campaign:    r.PostFormValue("utm_campaign"),
			Term:        r.PostFormValue("utm_term"),
			Content:     r.PostFormValue("utm_content"),
			GCLID:       r.PostFormValue("gclid"),
			Referrer:    r.PostFormValue("referrer"),
			LandingPage: r.PostFormValue("landing_page"),
		}
		if !utm.Empty() {
			sub.UTM = utm
		}
		return sub, nil
	}

	var sub leads.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (h *LeadHandler) logSubmission(sub *leads.Submission) {
	utm := sub.Attribution()
	h.logger.Info("form submission received",
		"name", sub.Name,
		"email", sub.Email,
		"phone", orNotProvided(sub.Phone),
		"company", orNotProvided(sub.Company),
		"city", orNotProvided(sub.City),
		"message_len", len(sub.Message),
		"utm_source", orNotProvided(utm.Source),
		"utm_medium", orNotProvided(utm.Medium),
		"utm_campaign", orNotProvided(utm.Campaign),
		"gclid", orNotProvided(utm.GCLID),
		"referrer", orNotProvided(utm.Referrer),
		"landing_page", orNotProvided(utm.LandingPage),
		"client_timestamp", sub.Timestamp,
		"user_agent", orNotProvided(sub.UserAgent),
	)
}

func orNotProvided(v string) string {
	if v == "" {
		return "not provided"
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// HealthHandler serves GET /api/health and GET /.
type HealthHandler struct {
	emailConfigured bool
}

// NewHealthHandler creates the health/info handler.
func NewHealthHandler(emailConfigured bool) *HealthHandler {
	return &HealthHandler{emailConfigured: emailConfigured}
}

// Health handles GET /api/health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	emailService := "not configured"
	if h.emailConfigured {
		emailService = "sendgrid configured"
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":       "ok",
		"message":      "FlashSpace Leads API is running",
		"emailService": emailService,
		"timestamp":    time.Now().UTC().Format(time.RFC3339),
	})
}

// Root handles GET / with a static service descriptor.
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "FlashSpace Leads API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"health":    "/api/health",
			"sendEmail": "/api/send-email",
		},
	})
}
