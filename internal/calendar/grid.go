package calendar

import (
	"fmt"
	"time"
)

// DayCell is one cell of the month grid. Leading cells before day 1 have
// Day 0 and no date; they pad the first week so day 1 lands on its weekday
// column (Sunday-first).
type DayCell struct {
	Day    int     `json:"day"`
	Date   string  `json:"date,omitempty"` // YYYY-MM-DD
	Today  bool    `json:"today"`
	Events []Event `json:"events"`
}

// BuildMonthGrid lays a month's events into a Sunday-first calendar grid.
// Events are filtered by the selected options (an event whose category has
// no option falls back to the "other" option's flag), then bucketed by the
// date prefix of their start instant.
//
// If a cell is "today" and todaysEvents is non-empty, that cell shows
// todaysEvents instead of the bucketed events. This mirrors the behavior
// the site has always had: today's card and today's grid cell stay
// identical even when todaysEvents was fetched with different filters.
// See DESIGN.md before changing it.
func BuildMonthGrid(year int, month time.Month, events []Event, options []FilterOption, todaysEvents []Event, today time.Time, classifier *TypeClassifier) []DayCell {
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	leading := int(firstDay.Weekday()) // Sunday == 0

	filtered := FilterEvents(events, options, classifier)
	todayStr := today.Format("2006-01-02")

	cells := make([]DayCell, 0, leading+daysInMonth)
	for i := 0; i < leading; i++ {
		cells = append(cells, DayCell{Events: []Event{}})
	}

	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
		cell := DayCell{
			Day:    day,
			Date:   date,
			Today:  date == todayStr,
			Events: eventsOnDate(filtered, date),
		}
		if cell.Today && len(todaysEvents) > 0 {
			cell.Events = todaysEvents
		}
		cells = append(cells, cell)
	}
	return cells
}

// FilterEvents keeps events whose derived category is selected in options.
func FilterEvents(events []Event, options []FilterOption, classifier *TypeClassifier) []Event {
	selected := make(map[string]bool, len(options))
	for _, opt := range options {
		selected[opt.ID] = opt.Selected
	}

	kept := make([]Event, 0, len(events))
	for _, event := range events {
		id := classifier.Classify(event.Title)
		keep, known := selected[id]
		if !known {
			keep = selected["other"]
		}
		if keep {
			kept = append(kept, event)
		}
	}
	return kept
}

// eventsOnDate buckets by comparing the date prefix of the start instant,
// in whatever zone the source encoded it.
func eventsOnDate(events []Event, date string) []Event {
	matched := []Event{}
	for _, event := range events {
		if eventDate(event) == date {
			matched = append(matched, event)
		}
	}
	return matched
}

func eventDate(event Event) string {
	if len(event.Start) < 10 {
		return ""
	}
	return event.Start[:10]
}
