package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/flashspace/leads-api/internal/http/handlers"
	"github.com/flashspace/leads-api/internal/leads"
	"github.com/flashspace/leads-api/internal/notify"
	"github.com/flashspace/leads-api/internal/sheets"
)

type staticNotifier struct{}

func (staticNotifier) Send(ctx context.Context, sub *leads.Submission) (notify.SentInfo, error) {
	return notify.SentInfo{MessageID: "m", LeadID: "FS-1"}, nil
}
func (staticNotifier) Configured() bool { return true }

type staticAppender struct{}

func (staticAppender) Append(ctx context.Context, sub *leads.Submission) sheets.AppendResult {
	return sheets.AppendResult{OK: true}
}

func newTestRouter() http.Handler {
	return New(&Config{
		LeadHandler:        handlers.NewLeadHandler(staticNotifier{}, staticAppender{}, nil, nil),
		HealthHandler:      handlers.NewHealthHandler(true),
		CORSAllowedOrigins: []string{"https://flashspace.co"},
	})
}

func TestRouterRoutes(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/", http.StatusOK},
		{http.MethodGet, "/api/health", http.StatusOK},
		{http.MethodGet, "/api/send-email", http.StatusMethodNotAllowed},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}
	for _, tt := range tests {
		req := httptest.NewRequest(tt.method, tt.path, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != tt.want {
			t.Errorf("%s %s = %d, want %d", tt.method, tt.path, rec.Code, tt.want)
		}
	}
}

func TestRouterPreflight(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/send-email", nil)
	req.Header.Set("Origin", "https://flashspace.co")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 for preflight, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://flashspace.co" {
		t.Fatalf("expected origin echoed, got %q", got)
	}
}

func TestRouterCORSOnSubmit(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/send-email",
		nil)
	req.Header.Set("Origin", "https://not-allowed.example")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("unlisted origin must not be echoed, got %q", got)
	}
}
