package leads

import (
	"strconv"
	"strings"
	"time"
)

// Submission represents one contact-form submission from the marketing site.
// It is read-only after decoding; absent fields stay as empty strings.
type Submission struct {
	Name      string       `json:"name"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone"`
	City      string       `json:"city"`
	Company   string       `json:"company"`
	Message   string       `json:"message"`
	UTM       *Attribution `json:"utm,omitempty"`
	Timestamp string       `json:"timestamp"`
	UserAgent string       `json:"user_agent"`
}

// Attribution carries the marketing-attribution parameters captured by the
// landing page alongside the form fields.
type Attribution struct {
	Source      string `json:"utm_source"`
	Medium      string `json:"utm_medium"`
	Campaign    string `json:"utm_campaign"`
	Term        string `json:"utm_term"`
	Content     string `json:"utm_content"`
	GCLID       string `json:"gclid"`
	Referrer    string `json:"referrer"`
	LandingPage string `json:"landing_page"`
}

// Empty reports whether every attribution field is blank.
func (a *Attribution) Empty() bool {
	if a == nil {
		return true
	}
	return a.Source == "" && a.Medium == "" && a.Campaign == "" &&
		a.Term == "" && a.Content == "" && a.GCLID == "" &&
		a.Referrer == "" && a.LandingPage == ""
}

// Validate checks the required fields. Optional fields are never validated.
func (s *Submission) Validate() error {
	if strings.TrimSpace(s.Name) == "" || strings.TrimSpace(s.Email) == "" {
		return ErrMissingRequiredFields
	}
	return nil
}

// Attribution returns the submission's UTM record, or a zero record when the
// form sent none, so formatting code never branches on nil.
func (s *Submission) Attribution() *Attribution {
	if s.UTM == nil {
		return &Attribution{}
	}
	return s.UTM
}

// Campaign returns the attribution campaign, or "Direct Visit" when absent.
func (s *Submission) Campaign() string {
	if utm := s.Attribution(); utm.Campaign != "" {
		return utm.Campaign
	}
	return "Direct Visit"
}

// LeadIDPrefix prefixes every generated lead identifier.
const LeadIDPrefix = "FS-"

// NewLeadID generates a lead identifier from the current millisecond epoch.
// Two requests inside the same millisecond get the same id; the sheet only
// appends, so collisions cost nothing but a duplicate reference.
func NewLeadID() string {
	return LeadIDPrefix + strconv.FormatInt(time.Now().UnixMilli(), 10)
}
