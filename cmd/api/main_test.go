package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSetupMetricsExposesLeadCounters(t *testing.T) {
	handler, m := setupMetrics()
	if handler == nil || m == nil {
		t.Fatalf("expected non-nil handler and metrics")
	}

	m.ObserveSubmission("accepted")
	m.ObserveEmail("sent")
	m.ObserveSheetAppend(false)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	body := rr.Body.String()
	for _, metric := range []string{
		"flashspace_leads_submissions_total",
		"flashspace_leads_emails_total",
		"flashspace_leads_sheet_appends_total",
	} {
		if !strings.Contains(body, metric) {
			t.Fatalf("expected %s to be exported", metric)
		}
	}
}
