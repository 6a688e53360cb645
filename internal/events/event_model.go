package events

import (
	"time"

	"gorm.io/gorm"
)

// Event is a portal training session parents can sign their players up for.
type Event struct {
	gorm.Model
	Title       string    `gorm:"not null" json:"title"`
	Description string    `json:"description,omitempty"`
	Location    string    `json:"location,omitempty"`
	StartTime   time.Time `gorm:"not null;index" json:"start_time"`
	EndTime     time.Time `gorm:"not null" json:"end_time"`
	Capacity    int       `gorm:"default:0" json:"capacity"` // 0 means unlimited
	CoachID     *uint     `json:"coach_id,omitempty"`
	Status      string    `gorm:"type:VARCHAR(20);check:status IN ('scheduled','cancelled','completed');default:'scheduled'" json:"status"`
}

// Signup links a portal user to an event. A signup lands on the waitlist
// when the event is at capacity.
type Signup struct {
	gorm.Model
	EventID uint   `gorm:"index;uniqueIndex:idx_event_user" json:"event_id"`
	UserID  uint   `gorm:"index;uniqueIndex:idx_event_user" json:"user_id"`
	Status  string `gorm:"type:VARCHAR(20);check:status IN ('confirmed','cancelled','waitlist');default:'confirmed'" json:"status"`
}

const (
	StatusScheduled = "scheduled"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"

	SignupConfirmed = "confirmed"
	SignupCancelled = "cancelled"
	SignupWaitlist  = "waitlist"
)

type CreateEventRequest struct {
	Title       string    `json:"title" binding:"required,min=3,max=200"`
	Description string    `json:"description" binding:"omitempty,max=5000"`
	Location    string    `json:"location" binding:"omitempty,max=255"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required,gtfield=StartTime"`
	Capacity    int       `json:"capacity" binding:"omitempty,min=0"`
}

// EventView decorates an event with signup counts for the listing page.
type EventView struct {
	Event
	Enrolled int    `json:"enrolled"`
	SignedUp bool   `json:"signed_up"`
	MyStatus string `json:"my_status,omitempty"`
}
