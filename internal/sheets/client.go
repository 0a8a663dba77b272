package sheets

import (
	"context"
	"fmt"
	"os"

	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"

	"teamreg-bot/internal/models"
)

// Client is the record store for completed registrations: one spreadsheet
// row per team. It holds no live connection; every call authenticates a
// fresh sheets service, so there is nothing to pool or invalidate.
type Client struct {
	credentialsPath string
	spreadsheetID   string
	sheetName       string
}

func New(credentialsPath, spreadsheetID, sheetName string) (*Client, error) {
	if _, err := os.Stat(credentialsPath); err != nil {
		return nil, fmt.Errorf("service account json: %w", err)
	}
	return &Client{
		credentialsPath: credentialsPath,
		spreadsheetID:   spreadsheetID,
		sheetName:       sheetName,
	}, nil
}

func (c *Client) service(ctx context.Context) (*sheetsv4.Service, error) {
	return sheetsv4.NewService(ctx,
		option.WithCredentialsFile(c.credentialsPath),
		option.WithScopes(sheetsv4.SpreadsheetsScope),
	)
}

// ReadAll returns every stored row, header excluded, with cells stringified.
func (c *Client) ReadAll(ctx context.Context) ([][]string, error) {
	srv, err := c.service(ctx)
	if err != nil {
		return nil, err
	}
	resp, err := srv.Spreadsheets.Values.Get(c.spreadsheetID, c.sheetName+"!A:Z").
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}
	rows := [][]string{}
	for i := 1; i < len(resp.Values); i++ {
		raw := resp.Values[i]
		row := make([]string, len(raw))
		for j, cell := range raw {
			if cell != nil {
				row[j] = fmt.Sprint(cell)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Append writes one team as the next row. No uniqueness checks here; the
// registration flow owns those.
func (c *Client) Append(ctx context.Context, t models.Team) error {
	srv, err := c.service(ctx)
	if err != nil {
		return err
	}
	vr := &sheetsv4.ValueRange{Values: [][]interface{}{t.ToRow()}}
	_, err = srv.Spreadsheets.Values.Append(c.spreadsheetID, c.sheetName+"!A:Z", vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	return err
}
