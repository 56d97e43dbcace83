package notify

import (
	"strings"
	"testing"

	"github.com/flashspace/leads-api/internal/leads"
)

func TestRenderLeadAlertWithAttribution(t *testing.T) {
	sub := &leads.Submission{
		Name:    "Asha",
		Email:   "a@b.com",
		Phone:   "+919000000000",
		City:    "Pune",
		Company: "Acme",
		UTM: &leads.Attribution{
			Source:   "google",
			Medium:   "cpc",
			Campaign: "pune-q3",
			GCLID:    "Cj0KCQ",
		},
	}

	html := renderLeadAlert(sub, "FS-1700000000000")

	for _, want := range []string{
		"Marketing Tracking Data",
		"pune-q3",
		"google",
		"cpc",
		"Cj0KCQ",
		"Asha",
		"a@b.com",
		"Pune",
		"FS-1700000000000",
		"Next Steps",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered email missing %q", want)
		}
	}
	if strings.Contains(html, "No UTM parameters") {
		t.Error("should not render the direct-visit variant when attribution is present")
	}
	if strings.Contains(html, "Customer Message") {
		t.Error("should not render a message block when message is empty")
	}
}

func TestRenderLeadAlertDirectVisit(t *testing.T) {
	sub := &leads.Submission{Name: "Asha", Email: "a@b.com", City: "Pune"}

	html := renderLeadAlert(sub, "FS-1700000000001")

	if !strings.Contains(html, "Direct Visit (No UTM parameters)") {
		t.Error("expected the no-attribution variant")
	}
	if strings.Contains(html, "Marketing Tracking Data") {
		t.Error("should not render the full attribution table")
	}
	if strings.Contains(html, "Estimated Lead Value") {
		t.Error("should not render the campaign value callout without a campaign")
	}
}

func TestRenderLeadAlertEmptyAttributionRecord(t *testing.T) {
	// A present-but-empty record still counts as no attribution.
	sub := &leads.Submission{Name: "Asha", Email: "a@b.com", UTM: &leads.Attribution{}}

	html := renderLeadAlert(sub, "FS-1")
	if !strings.Contains(html, "Direct Visit (No UTM parameters)") {
		t.Error("expected the no-attribution variant for an all-empty record")
	}
}

func TestRenderLeadAlertMessageBlock(t *testing.T) {
	sub := &leads.Submission{
		Name:    "Asha",
		Email:   "a@b.com",
		Message: "Need a GST-registered address",
	}

	html := renderLeadAlert(sub, "FS-2")
	if !strings.Contains(html, "Customer Message") {
		t.Error("expected a message block")
	}
	if !strings.Contains(html, `"Need a GST-registered address"`) {
		t.Error("expected the quoted message text")
	}
}

func TestRenderLeadAlertCampaignValue(t *testing.T) {
	sub := &leads.Submission{
		Name:  "Asha",
		Email: "a@b.com",
		UTM:   &leads.Attribution{Campaign: "diwali-offer"},
	}

	html := renderLeadAlert(sub, "FS-3")
	if !strings.Contains(html, "Estimated Lead Value") {
		t.Error("expected the campaign value callout")
	}
	if !strings.Contains(html, "diwali-offer") {
		t.Error("expected the campaign name in the callout")
	}
}
