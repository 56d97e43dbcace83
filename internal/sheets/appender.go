package sheets

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"

	"github.com/flashspace/leads-api/internal/config"
	"github.com/flashspace/leads-api/internal/leads"
	"github.com/flashspace/leads-api/pkg/logging"
)

// AppendResult is the tagged outcome of a sheet append. The submit path
// treats it as informational only; a failed append never fails the request.
type AppendResult struct {
	OK           bool
	UpdatedCells int64
	UpdatedRange string
	Err          string
	Code         int
	Hint         string
}

// failure builds a non-OK result.
func failure(err string) AppendResult {
	return AppendResult{Err: err}
}

// Appender appends lead submissions as rows to the configured Google Sheet.
type Appender struct {
	cfg    *config.Config
	logger *logging.Logger
}

// NewAppender creates a sheet appender from app config.
func NewAppender(cfg *config.Config, logger *logging.Logger) *Appender {
	if logger == nil {
		logger = logging.Default()
	}
	return &Appender{cfg: cfg, logger: logger}
}

// Append writes one 16-column row for the submission. It never returns an
// error; every failure mode is folded into the result so the caller can merge
// it into the response as diagnostics.
func (a *Appender) Append(ctx context.Context, sub *leads.Submission) AppendResult {
	if a.cfg.SheetsID == "" {
		a.logger.Warn("google sheets not configured, skipping append")
		return failure("Google Sheets not configured (missing GOOGLE_SHEETS_ID)")
	}

	creds, err := LoadCredentials(a.cfg, a.logger)
	if err != nil {
		a.logger.Error("failed to load sheet credentials", "error", err)
		return failure(err.Error())
	}

	jwtCfg, err := google.JWTConfigFromJSON(creds.JSON(), gsheets.SpreadsheetsScope)
	if err != nil {
		a.logger.Error("failed to build google auth config", "error", err)
		return failure("Failed to create Google auth client: " + err.Error())
	}

	svc, err := gsheets.NewService(ctx, option.WithHTTPClient(jwtCfg.Client(ctx)))
	if err != nil {
		a.logger.Error("failed to init sheets service", "error", err)
		return failure("Failed to initialize Google Sheets API: " + err.Error())
	}

	row := buildRow(sub, time.Now())
	values := &gsheets.ValueRange{Values: [][]interface{}{row}}

	a.logger.Info("appending lead to sheet",
		"spreadsheet_id", a.cfg.SheetsID,
		"range", a.cfg.SheetRange,
		"name", sub.Name,
		"email", sub.Email,
		"city", sub.City,
	)

	resp, err := svc.Spreadsheets.Values.Append(a.cfg.SheetsID, a.cfg.SheetRange, values).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		result := classifyAppendError(err)
		a.logger.Error("sheet append failed",
			"error", result.Err, "code", result.Code, "hint", result.Hint)
		return result
	}

	result := AppendResult{OK: true}
	if resp.Updates != nil {
		result.UpdatedCells = resp.Updates.UpdatedCells
		result.UpdatedRange = resp.Updates.UpdatedRange
	}
	a.logger.Info("lead saved to sheet",
		"updated_cells", result.UpdatedCells, "updated_range", result.UpdatedRange)
	return result
}

// buildRow lays out the fixed 16-column SheetRow: server timestamp in Indian
// time, contact fields, the 8 attribution fields, then a fresh lead id.
func buildRow(sub *leads.Submission, now time.Time) []interface{} {
	utm := sub.Attribution()
	return []interface{}{
		now.In(istLocation).Format("2/1/2006, 3:04:05 pm"),
		sub.Name,
		sub.Email,
		sub.Phone,
		sub.City,
		sub.Company,
		sub.Message,
		utm.Source,
		utm.Medium,
		utm.Campaign,
		utm.Term,
		utm.Content,
		utm.GCLID,
		utm.Referrer,
		utm.LandingPage,
		leads.NewLeadID(),
	}
}

var istLocation = loadISTLocation()

func loadISTLocation() *time.Location {
	if loc, err := time.LoadLocation("Asia/Kolkata"); err == nil {
		return loc
	}
	// Containers without tzdata still get IST.
	return time.FixedZone("IST", 5*3600+30*60)
}

// classifyAppendError maps provider errors to operator hints by matching the
// message text. Brittle on purpose: the hints are best-effort diagnostics, not
// a contract with the API.
func classifyAppendError(err error) AppendResult {
	result := failure(err.Error())
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		result.Code = apiErr.Code
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "Unable to parse range"):
		result.Hint = `Check GOOGLE_SHEET_NAME format. Should be like: "SheetName!A:P"`
	case strings.Contains(msg, "Requested entity was not found"):
		result.Hint = "Check if GOOGLE_SHEETS_ID is correct and sheet exists"
	case strings.Contains(msg, "does not have permission"):
		result.Hint = "Share the Google Sheet with the service account email"
	}
	return result
}
