package sheets

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/flashspace/leads-api/internal/config"
	"github.com/flashspace/leads-api/pkg/logging"
)

// ErrNoCredentials is returned when neither credential encoding is configured.
var ErrNoCredentials = errors.New("sheets: google service account not configured (no credentials found)")

// Credentials holds a parsed service-account key. Only the client email is
// surfaced for logging; the raw JSON feeds the Google auth client and is
// never logged.
type Credentials struct {
	ClientEmail string `json:"client_email"`

	raw []byte
}

// JSON returns the raw service-account key bytes.
func (c *Credentials) JSON() []byte {
	return c.raw
}

// LoadCredentials resolves the service-account key from process configuration.
// A Base64-encoded key (production) wins over a raw JSON key (local); both
// absent is ErrNoCredentials.
func LoadCredentials(cfg *config.Config, logger *logging.Logger) (*Credentials, error) {
	if logger == nil {
		logger = logging.Default()
	}

	switch {
	case cfg.ServiceAccountKeyBase64 != "":
		decoded, err := base64.StdEncoding.DecodeString(cfg.ServiceAccountKeyBase64)
		if err != nil {
			return nil, fmt.Errorf("sheets: decode base64 credentials: %w", err)
		}
		creds, err := parseCredentials(decoded)
		if err != nil {
			return nil, err
		}
		logger.Info("using base64 encoded service account credentials",
			"client_email", creds.ClientEmail)
		return creds, nil

	case cfg.ServiceAccountKey != "":
		creds, err := parseCredentials([]byte(cfg.ServiceAccountKey))
		if err != nil {
			return nil, err
		}
		logger.Info("using raw JSON service account credentials",
			"client_email", creds.ClientEmail)
		return creds, nil

	default:
		return nil, ErrNoCredentials
	}
}

func parseCredentials(raw []byte) (*Credentials, error) {
	creds := &Credentials{raw: raw}
	if err := json.Unmarshal(raw, creds); err != nil {
		return nil, fmt.Errorf("sheets: parse service account credentials: %w", err)
	}
	return creds, nil
}
