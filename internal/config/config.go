package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs from the environment: the
// HTTP port and the Google Sheets spreadsheet plus service-account
// credentials.
type Config struct {
	App struct {
		Port string
	}
	Sheets struct {
		SpreadsheetID string
		// Either a path to a service-account JSON file, or the
		// email/private-key pair the original deployment used.
		CredentialsFile string
		ClientEmail     string
		PrivateKey      string
	}
}

// Load reads configuration from the environment, optionally loading a
// .env file first. A missing .env file is not an error.
func Load(path string) (*Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to load .env: %w", err)
		}
	}

	cfg := &Config{}

	cfg.App.Port = os.Getenv("APP_PORT")
	if cfg.App.Port == "" {
		cfg.App.Port = "8080"
	}

	cfg.Sheets.SpreadsheetID = os.Getenv("GOOGLE_SHEET_ID")
	if cfg.Sheets.SpreadsheetID == "" {
		return nil, fmt.Errorf("GOOGLE_SHEET_ID is required")
	}

	cfg.Sheets.CredentialsFile = os.Getenv("GOOGLE_CREDENTIALS_FILE")
	cfg.Sheets.ClientEmail = os.Getenv("GOOGLE_SERVICE_ACCOUNT_EMAIL")
	// Deployment environments store the key with literal \n sequences.
	cfg.Sheets.PrivateKey = strings.ReplaceAll(os.Getenv("GOOGLE_PRIVATE_KEY"), `\n`, "\n")

	if cfg.Sheets.CredentialsFile == "" && (cfg.Sheets.ClientEmail == "" || cfg.Sheets.PrivateKey == "") {
		return nil, fmt.Errorf("either GOOGLE_CREDENTIALS_FILE or GOOGLE_SERVICE_ACCOUNT_EMAIL and GOOGLE_PRIVATE_KEY are required")
	}

	return cfg, nil
}
