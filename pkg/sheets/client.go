// Package sheets wraps the Google Sheets API for partition (tab) management
// and row-level reads and appends against a single spreadsheet document.
package sheets

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	sheetsv4 "google.golang.org/api/sheets/v4"
)

// Client defines the Sheets API operations used by this application.
type Client interface {
	// SheetTitles returns the titles of all tabs in the spreadsheet.
	SheetTitles(ctx context.Context) ([]string, error)
	// AddSheet creates a new tab with the given grid size.
	AddSheet(ctx context.Context, title string, rows, cols int64) error
	// ReadRange returns cell values for an A1-notation range, as strings.
	ReadRange(ctx context.Context, rangeA1 string) ([][]string, error)
	// AppendRow appends one row after the last non-empty row of the range.
	AppendRow(ctx context.Context, rangeA1 string, row []string) error
}

// ClientOption configures the Sheets client.
type ClientOption func(*apiClient)

// WithRateLimit overrides the default request throttle (1 req/s, matching the
// per-user quota of 60 requests per minute).
func WithRateLimit(rps float64) ClientOption {
	return func(c *apiClient) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), max(int(rps), 1))
		} else {
			c.limiter = nil
		}
	}
}

// WithEndpoint overrides the API base URL.
func WithEndpoint(url string) ClientOption {
	return func(c *apiClient) {
		c.opts = append(c.opts, option.WithEndpoint(url))
	}
}

// WithHTTPClient overrides the underlying http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *apiClient) {
		c.opts = append(c.opts, option.WithHTTPClient(hc))
	}
}

// WithoutAuth disables credential exchange. Test use only.
func WithoutAuth() ClientOption {
	return func(c *apiClient) {
		c.noAuth = true
	}
}

// apiClient implements Client on top of the generated sheets/v4 service.
type apiClient struct {
	svc           *sheetsv4.Service
	spreadsheetID string
	limiter       *rate.Limiter
	opts          []option.ClientOption
	noAuth        bool
}

// NewClient creates a Sheets client for one spreadsheet, authenticating with a
// service-account credential supplied as a raw JSON blob.
func NewClient(ctx context.Context, spreadsheetID string, credentialsJSON []byte, opts ...ClientOption) (Client, error) {
	if spreadsheetID == "" {
		return nil, eris.New("sheets: spreadsheet ID is required")
	}

	c := &apiClient{
		spreadsheetID: spreadsheetID,
		limiter:       rate.NewLimiter(1, 1),
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.noAuth {
		c.opts = append(c.opts, option.WithoutAuthentication())
	} else {
		if len(credentialsJSON) == 0 {
			return nil, eris.New("sheets: service-account credentials are required")
		}
		c.opts = append(c.opts,
			option.WithCredentialsJSON(credentialsJSON),
			option.WithScopes(sheetsv4.SpreadsheetsScope),
		)
	}

	svc, err := sheetsv4.NewService(ctx, c.opts...)
	if err != nil {
		return nil, eris.Wrap(err, "sheets: create service")
	}
	c.svc = svc

	return c, nil
}

func (c *apiClient) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return eris.Wrap(err, "sheets: rate limit wait")
	}
	return nil
}

func (c *apiClient) SheetTitles(ctx context.Context) ([]string, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	doc, err := c.svc.Spreadsheets.Get(c.spreadsheetID).
		Fields("sheets.properties.title").
		Context(ctx).Do()
	if err != nil {
		return nil, eris.Wrap(err, "sheets: get spreadsheet")
	}

	titles := make([]string, 0, len(doc.Sheets))
	for _, sh := range doc.Sheets {
		if sh.Properties != nil {
			titles = append(titles, sh.Properties.Title)
		}
	}
	return titles, nil
}

func (c *apiClient) AddSheet(ctx context.Context, title string, rows, cols int64) error {
	if err := c.wait(ctx); err != nil {
		return err
	}

	req := &sheetsv4.BatchUpdateSpreadsheetRequest{
		Requests: []*sheetsv4.Request{{
			AddSheet: &sheetsv4.AddSheetRequest{
				Properties: &sheetsv4.SheetProperties{
					Title: title,
					GridProperties: &sheetsv4.GridProperties{
						RowCount:    rows,
						ColumnCount: cols,
					},
				},
			},
		}},
	}

	_, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		return eris.Wrapf(err, "sheets: add sheet %q", title)
	}
	return nil
}

func (c *apiClient) ReadRange(ctx context.Context, rangeA1 string) ([][]string, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}

	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, rangeA1).Context(ctx).Do()
	if err != nil {
		return nil, eris.Wrapf(err, "sheets: read range %q", rangeA1)
	}

	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, 0, len(raw))
		for _, cell := range raw {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func (c *apiClient) AppendRow(ctx context.Context, rangeA1 string, row []string) error {
	if err := c.wait(ctx); err != nil {
		return err
	}

	cells := make([]interface{}, len(row))
	for i, v := range row {
		cells[i] = v
	}

	_, err := c.svc.Spreadsheets.Values.Append(c.spreadsheetID, rangeA1, &sheetsv4.ValueRange{
		Values: [][]interface{}{cells},
	}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return eris.Wrapf(err, "sheets: append to %q", rangeA1)
	}
	return nil
}

// IsAlreadyExists reports whether err is the API rejection for creating a tab
// whose title is already taken.
func IsAlreadyExists(err error) bool {
	var apiErr *googleapi.Error
	if eris.As(err, &apiErr) {
		return apiErr.Code == http.StatusBadRequest &&
			strings.Contains(strings.ToLower(apiErr.Message), "already exists")
	}
	return false
}
