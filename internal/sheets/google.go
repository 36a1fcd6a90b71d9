package sheets

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"
)

// columnSpan is the range read and appended on every sheet.
const columnSpan = "A:Z"

// GoogleStore talks to one spreadsheet through the Sheets v4 API.
type GoogleStore struct {
	spreadsheetID string
	timeout       time.Duration
	svc           *sheetsapi.Service
}

// NewGoogleStore builds a driver whose every request carries a token from ts.
// timeout bounds each call; zero means no bound.
func NewGoogleStore(ctx context.Context, spreadsheetID string, ts oauth2.TokenSource, timeout time.Duration) (*GoogleStore, error) {
	client := &http.Client{
		Transport: &oauth2.Transport{
			Source: ts,
			Base:   otelhttp.NewTransport(http.DefaultTransport),
		},
	}
	svc, err := sheetsapi.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}
	return &GoogleStore{spreadsheetID: spreadsheetID, timeout: timeout, svc: svc}, nil
}

func (g *GoogleStore) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, g.timeout)
}

func (g *GoogleStore) ReadTable(ctx context.Context, name string) ([]Record, error) {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	resp, err := g.svc.Spreadsheets.Values.Get(g.spreadsheetID, name+"!"+columnSpan).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(resp.Values))
	for _, raw := range resp.Values {
		row := make([]string, len(raw))
		for i, cell := range raw {
			row[i] = fmt.Sprint(cell)
		}
		rows = append(rows, row)
	}
	return recordsFromRows(rows), nil
}

func (g *GoogleStore) AppendRow(ctx context.Context, name string, values []any) error {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	body := &sheetsapi.ValueRange{Values: [][]interface{}{values}}
	_, err := g.svc.Spreadsheets.Values.Append(g.spreadsheetID, name+"!"+columnSpan, body).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	return err
}

// Probe fetches only the spreadsheet id, enough to prove the token works.
func (g *GoogleStore) Probe(ctx context.Context) error {
	ctx, cancel := g.withTimeout(ctx)
	defer cancel()

	_, err := g.svc.Spreadsheets.Get(g.spreadsheetID).Fields("spreadsheetId").Context(ctx).Do()
	return err
}
