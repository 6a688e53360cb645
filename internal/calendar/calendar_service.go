package calendar

import (
	"context"
	"sync"
	"time"
)

const calendarCacheTTL = 5 * time.Minute

// Service wraps the proxy client with a short-lived per-month result and a
// request generation counter. Month fetches can overlap when a user pages
// quickly; the counter makes sure a stale response never overwrites a newer
// one. Failed fetches are never retained, so a proxy outage only blanks the
// requests that hit it.
type Service struct {
	client     *ProxyClient
	classifier *TypeClassifier

	mu        sync.Mutex
	gen       uint64
	lastYear  int
	lastMonth time.Month
	lastType  string
	lastSet   []Event
	fetchedAt time.Time

	// now is swappable in tests.
	now func() time.Time
}

func NewService(client *ProxyClient, classifier *TypeClassifier) *Service {
	return &Service{
		client:     client,
		classifier: classifier,
		now:        time.Now,
	}
}

// EventsForMonth fetches a month's events. Each call takes a generation
// ticket before hitting the network; only the latest generation may update
// the retained month, but every caller still receives its own result.
// A failed fetch degrades to an empty list and leaves the cache untouched,
// so the next request retries the proxy.
func (s *Service) EventsForMonth(ctx context.Context, year int, month time.Month, calendarType string) []Event {
	s.mu.Lock()
	if s.lastSet != nil && s.lastYear == year && s.lastMonth == month && s.lastType == calendarType &&
		s.now().Sub(s.fetchedAt) < calendarCacheTTL {
		events := s.lastSet
		s.mu.Unlock()
		return events
	}
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	events, err := s.client.EventsForMonth(ctx, year, month, calendarType)
	if err != nil {
		return []Event{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen == s.gen {
		s.lastYear, s.lastMonth, s.lastType = year, month, calendarType
		s.lastSet = events
		s.fetchedAt = s.now()
	}
	return events
}

// TodaysEvents returns the current month's events that start today.
func (s *Service) TodaysEvents(ctx context.Context, calendarType string) []Event {
	now := s.now()
	events := s.EventsForMonth(ctx, now.Year(), now.Month(), calendarType)
	today := now.Format("2006-01-02")

	matched := []Event{}
	for _, event := range events {
		if eventDate(event) == today {
			matched = append(matched, event)
		}
	}
	return matched
}

// MonthGrid builds the day-bucketed grid for a month, including the
// today's-events override when the month contains today.
func (s *Service) MonthGrid(ctx context.Context, year int, month time.Month, options []FilterOption, calendarType string) ([]DayCell, []Event) {
	events := s.EventsForMonth(ctx, year, month, calendarType)

	var todaysEvents []Event
	now := s.now()
	if now.Year() == year && now.Month() == month {
		todaysEvents = s.TodaysEvents(ctx, calendarType)
	}

	grid := BuildMonthGrid(year, month, events, options, todaysEvents, now, s.classifier)
	return grid, FilterEvents(events, options, s.classifier)
}
