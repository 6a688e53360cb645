package calendar

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/nextstarsoccer/nss-backend/pkg/metrics"
)

// ProxyClient talks to the cloud-function proxy that fronts the Google
// Calendar API. The proxy keeps the calendar credentials server-side; we
// only send it a month request and get raw event objects back.
//
// Calendar failures surface as errors so callers can tell an outage from
// a genuinely empty month. The HTTP handlers still degrade to an empty
// month rather than an error screen.
type ProxyClient struct {
	proxyURL   string
	functionID string
	httpClient *http.Client
}

func NewProxyClient(proxyURL, functionID string) *ProxyClient {
	return &ProxyClient{
		proxyURL:   proxyURL,
		functionID: functionID,
		httpClient: &http.Client{Timeout: 20 * time.Second},
	}
}

type proxyRequest struct {
	Service      string `json:"service"`
	Action       string `json:"action"`
	Year         int    `json:"year"`
	Month        int    `json:"month"` // 0-based on the wire, matching the proxy contract
	CalendarType string `json:"calendarType"`
}

type proxyEnvelope struct {
	Success bool       `json:"success"`
	Data    []rawEvent `json:"data"`
	Error   string     `json:"error"`
}

// rawEvent is the proxy's pass-through of a Google Calendar event. Timed
// events carry start.dateTime/end.dateTime; all-day events carry only the
// date forms.
type rawEvent struct {
	ID          string `json:"id"`
	Summary     string `json:"summary"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Start       struct {
		DateTime string `json:"dateTime"`
		Date     string `json:"date"`
	} `json:"start"`
	End struct {
		DateTime string `json:"dateTime"`
		Date     string `json:"date"`
	} `json:"end"`
}

// EventsForMonth fetches one month of events. month is 1-based here and
// converted to the proxy's 0-based convention on the wire.
func (pc *ProxyClient) EventsForMonth(ctx context.Context, year int, month time.Month, calendarType string) ([]Event, error) {
	if pc.proxyURL == "" {
		return nil, errors.New("calendar proxy url is not configured")
	}

	metrics.RecordCalendarFetch()

	payload, err := json.Marshal(proxyRequest{
		Service:      "google-calendar",
		Action:       "getEventsForMonth",
		Year:         year,
		Month:        int(month) - 1,
		CalendarType: calendarType,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, pc.proxyURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if pc.functionID != "" {
		req.Header.Set("X-Function-Id", pc.functionID)
	}

	resp, err := pc.httpClient.Do(req)
	if err != nil {
		log.Printf("calendar proxy request failed: %v", err)
		metrics.RecordCalendarFetchError()
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("calendar proxy returned status %d", resp.StatusCode)
		metrics.RecordCalendarFetchError()
		return nil, fmt.Errorf("calendar proxy returned status %d", resp.StatusCode)
	}

	var envelope proxyEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		log.Printf("calendar proxy returned malformed body: %v", err)
		metrics.RecordCalendarFetchError()
		return nil, err
	}
	if !envelope.Success {
		log.Printf("calendar proxy error: %s", envelope.Error)
		metrics.RecordCalendarFetchError()
		return nil, fmt.Errorf("calendar proxy error: %s", envelope.Error)
	}

	events := make([]Event, 0, len(envelope.Data))
	for _, raw := range envelope.Data {
		events = append(events, normalizeEvent(raw))
	}
	return events, nil
}

// normalizeEvent folds the timed and all-day representations into one
// shape. All-day events span the whole day; events missing both forms get
// "now" so they at least surface somewhere visible.
func normalizeEvent(raw rawEvent) Event {
	title := raw.Summary
	if title == "" {
		title = raw.Title
	}
	if title == "" {
		title = "Untitled Event"
	}

	id := raw.ID
	if id == "" {
		id = "event-" + uuid.NewString()
	}

	event := Event{
		ID:          id,
		Title:       title,
		Description: raw.Description,
		Location:    raw.Location,
	}

	now := time.Now().UTC().Format(time.RFC3339)

	switch {
	case raw.Start.DateTime != "":
		event.Start = raw.Start.DateTime
	case raw.Start.Date != "":
		event.Start = raw.Start.Date + "T00:00:00"
		event.AllDay = true
	default:
		event.Start = now
	}

	switch {
	case raw.End.DateTime != "":
		event.End = raw.End.DateTime
	case raw.End.Date != "":
		event.End = raw.End.Date + "T23:59:59"
		event.AllDay = true
	default:
		event.End = now
	}

	return event
}
