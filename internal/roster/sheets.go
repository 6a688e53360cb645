package roster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNoData is returned when the sheet responds successfully but holds no
// usable rows. Callers surface it as a retryable error state.
var ErrNoData = errors.New("no data rows found in the spreadsheet")

const sheetsBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"

// SheetsClient reads the alumni roster tab. The sheet is fetched with
// FORMULA rendering so =IMAGE() cells arrive intact for the asset
// normalizer.
type SheetsClient struct {
	spreadsheetID string
	apiKey        string
	readRange     string
	baseURL       string
	httpClient    *http.Client
}

func NewSheetsClient(spreadsheetID, apiKey, readRange string) *SheetsClient {
	return &SheetsClient{
		spreadsheetID: spreadsheetID,
		apiKey:        apiKey,
		readRange:     readRange,
		baseURL:       sheetsBaseURL,
		httpClient:    &http.Client{Timeout: 15 * time.Second},
	}
}

// valuesEnvelope is the Sheets API values.get response. Cells are untyped
// because the sheet mixes strings and numbers.
type valuesEnvelope struct {
	Values [][]any `json:"values"`
	Error  *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// FetchEntries reads the sheet and builds roster entries: the header row
// maps 1:1 onto entry fields, all-blank rows are dropped, and every
// image-bearing column is normalized. Unlike the calendar source, failures
// here are returned to the caller so the page can show a retry action.
func (sc *SheetsClient) FetchEntries(ctx context.Context) ([]Entry, error) {
	reqURL := fmt.Sprintf("%s/%s/values/%s?key=%s&valueRenderOption=FORMULA",
		sc.baseURL, sc.spreadsheetID, url.PathEscape(sc.readRange), url.QueryEscape(sc.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building sheets request: %w", err)
	}

	resp, err := sc.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching roster sheet: %w", err)
	}
	defer resp.Body.Close()

	var envelope valuesEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decoding sheets response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		msg := "unknown error"
		if envelope.Error != nil {
			msg = envelope.Error.Message
		}
		return nil, fmt.Errorf("sheets API returned status %d: %s", resp.StatusCode, msg)
	}
	if envelope.Error != nil {
		return nil, fmt.Errorf("sheets API error: %s", envelope.Error.Message)
	}
	if len(envelope.Values) == 0 {
		return nil, ErrNoData
	}

	headers := make([]string, len(envelope.Values[0]))
	for i, cell := range envelope.Values[0] {
		headers[i] = cellString(cell)
	}

	entries := make([]Entry, 0, len(envelope.Values)-1)
	for _, row := range envelope.Values[1:] {
		if rowBlank(row) {
			continue
		}
		var e Entry
		for i, header := range headers {
			if i < len(row) {
				e.setField(header, cellString(row[i]))
			}
		}
		e.normalizeAssets()
		entries = append(entries, e)
	}

	if len(entries) == 0 {
		return nil, ErrNoData
	}
	return entries, nil
}

func rowBlank(row []any) bool {
	for _, cell := range row {
		if strings.TrimSpace(cellString(cell)) != "" {
			return false
		}
	}
	return true
}

func cellString(cell any) string {
	if cell == nil {
		return ""
	}
	if s, ok := cell.(string); ok {
		return s
	}
	return fmt.Sprint(cell)
}
