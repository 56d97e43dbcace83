package config

import (
	"os"
	"strings"
)

// PlaceholderAPIKey is the value shipped in .env.example; a key equal to it is
// treated the same as no key at all.
const PlaceholderAPIKey = "SG.your_api_key_here"

// defaultAllowedOrigins lists the marketing-site origins allowed to call the API.
var defaultAllowedOrigins = []string{
	"http://localhost:3000",
	"https://vo.flashspace.co",
	"https://virtual.flashspace.co",
	"https://flashspace.co",
	"https://www.flashspace.co",
	"https://flashspace01-flash-space-google-ads.vercel.app",
}

// Config holds application configuration, read once at startup.
type Config struct {
	Port     string
	Env      string
	LogLevel string

	// SendGrid email configuration
	SendGridAPIKey string
	FromEmail      string
	FromName       string
	SalesEmail     string

	// Google Sheets configuration
	SheetsID                string
	SheetRange              string
	ServiceAccountKeyBase64 string
	ServiceAccountKey       string

	CORSAllowedOrigins []string
}

// Load reads configuration from environment variables.
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "5000"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		SendGridAPIKey: getEnv("SENDGRID_API_KEY", ""),
		FromEmail:      getEnv("LEAD_FROM_EMAIL", "leads@flashspace.co"),
		FromName:       getEnv("LEAD_FROM_NAME", "FlashSpace Virtual Office"),
		SalesEmail:     getEnv("LEAD_TO_EMAIL", "sales@flashspace.co"),

		SheetsID:                getEnv("GOOGLE_SHEETS_ID", ""),
		SheetRange:              getEnv("GOOGLE_SHEET_NAME", "Sheet1!A:P"),
		ServiceAccountKeyBase64: getEnv("GOOGLE_SERVICE_ACCOUNT_KEY_BASE64", ""),
		ServiceAccountKey:       getEnv("GOOGLE_SERVICE_ACCOUNT_KEY", ""),

		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", defaultAllowedOrigins),
	}
}

// EmailConfigured reports whether a usable SendGrid key is present.
func (c *Config) EmailConfigured() bool {
	return c.SendGridAPIKey != "" && c.SendGridAPIKey != PlaceholderAPIKey
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsSlice retrieves a comma-separated environment variable or returns a default value
func getEnvAsSlice(key string, defaultValue []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
