// Package sheets is the store boundary of the system: the Google
// spreadsheet is the database, and this package owns the mapping
// between tab ranges with positional columns and the domain types.
// Swapping the spreadsheet for a real table store should only ever
// touch this package.
package sheets

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/CompromisoPro/Control-de-pedidos/internal/config"
	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Values is the narrow slice of the Sheets API the repositories need:
// whole-range reads and row appends. Tests fake this interface.
type Values interface {
	Get(ctx context.Context, readRange string) ([][]string, error)
	Append(ctx context.Context, writeRange string, rows [][]interface{}) error
}

// Client implements Values against the Google Sheets API.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
}

// NewClient builds an authenticated Sheets client from either a
// service-account credentials file or the email/private-key pair.
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}

	if cfg.Sheets.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Sheets.CredentialsFile))
	} else {
		credJSON, err := json.Marshal(map[string]string{
			"type":         "service_account",
			"client_email": cfg.Sheets.ClientEmail,
			"private_key":  cfg.Sheets.PrivateKey,
			"token_uri":    "https://oauth2.googleapis.com/token",
		})
		if err != nil {
			return nil, fmt.Errorf("sheets: failed to build credentials: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(credJSON))
	}

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: failed to create service: %w", err)
	}

	log.Info().Str("spreadsheet_id", cfg.Sheets.SpreadsheetID).Msg("Connected to Google Sheets")

	return &Client{svc: svc, spreadsheetID: cfg.Sheets.SpreadsheetID}, nil
}

func (c *Client) Get(ctx context.Context, readRange string) ([][]string, error) {
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: failed to read range %q: %w", readRange, err)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, r := range resp.Values {
		row := make([]string, len(r))
		for i, cell := range r {
			row[i] = fmt.Sprint(cell)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (c *Client) Append(ctx context.Context, writeRange string, rows [][]interface{}) error {
	_, err := c.svc.Spreadsheets.Values.
		Append(c.spreadsheetID, writeRange, &sheets.ValueRange{Values: rows}).
		ValueInputOption("USER_ENTERED").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets: failed to append to range %q: %w", writeRange, err)
	}
	return nil
}
