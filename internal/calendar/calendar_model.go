package calendar

// Event is one occurrence on the external calendar. Start and End keep the
// source's ISO representation: day bucketing compares date prefixes in the
// event's own encoded zone, so the strings are never reparsed into another
// zone. All-day events are normalized to span midnight to midnight.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Start       string `json:"startDateTime"`
	End         string `json:"endDateTime"`
	AllDay      bool   `json:"allDay"`
}

// FilterOption is one selectable event category on the calendar page.
// Unlike the roster filters these are independent booleans with no
// parent/child relationship.
type FilterOption struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Color    string `json:"color"`
	Selected bool   `json:"selected"`
}

// DefaultColor is used for events whose category has no configured color.
const DefaultColor = "#D3D3D3"

// DefaultFilterOptions returns the calendar's category set, everything
// selected. Callers get a fresh slice so per-request toggles don't leak.
func DefaultFilterOptions() []FilterOption {
	return []FilterOption{
		{ID: "evening-training", Label: "Evening Group Training", Color: "#E50101", Selected: true},
		{ID: "morning-training", Label: "Morning Group Training", Color: "#FF8A14", Selected: true},
		{ID: "next-star-x-nike-evening", Label: "Next Star x Nike Evening", Color: "#06B6D4", Selected: true},
		{ID: "youth-group-camp", Label: "Camp, Youth Group", Color: "#008806", Selected: true},
		{ID: "college-pro-group-camp", Label: "Camp, College/Pro", Color: "#9FDC59", Selected: true},
		{ID: "camp-morning", Label: "Camp Morning Session", Color: "#1976D2", Selected: true},
		{ID: "camp-afternoon", Label: "Camp Afternoon Session", Color: "#29B6F6", Selected: true},
		{ID: "clinic", Label: "Clinic", Color: "#FF00FF", Selected: true},
		{ID: "showcase", Label: "Showcase", Color: "#800080", Selected: true},
		{ID: "other", Label: "Other Events", Color: DefaultColor, Selected: true},
	}
}
