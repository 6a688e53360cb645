package events

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type EventRepository interface {
	CreateEvent(event *Event) error
	GetEventByID(id uint) (*Event, error)
	GetUpcomingEvents(from time.Time) ([]Event, error)
	GetPastEvents(before time.Time, limit int) ([]Event, error)
	UpdateEvent(event *Event) error

	CountConfirmedSignups(eventID uint) (int64, error)
	GetSignup(eventID, userID uint) (*Signup, error)
	GetSignupsForUser(userID uint) ([]Signup, error)
	SaveSignup(signup *Signup) error
	ConfirmOrWaitlistSignup(event *Event, signup *Signup) error
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) CreateEvent(event *Event) error {
	return r.db.Create(event).Error
}

func (r *eventRepository) GetEventByID(id uint) (*Event, error) {
	var event Event
	if err := r.db.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) GetUpcomingEvents(from time.Time) ([]Event, error) {
	var events []Event
	err := r.db.Where("start_time >= ? AND status <> ?", from, StatusCancelled).
		Order("start_time ASC").Find(&events).Error
	return events, err
}

func (r *eventRepository) GetPastEvents(before time.Time, limit int) ([]Event, error) {
	var events []Event
	query := r.db.Where("start_time < ?", before).Order("start_time DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&events).Error
	return events, err
}

func (r *eventRepository) UpdateEvent(event *Event) error {
	return r.db.Save(event).Error
}

func (r *eventRepository) CountConfirmedSignups(eventID uint) (int64, error) {
	var count int64
	err := r.db.Model(&Signup{}).
		Where("event_id = ? AND status = ?", eventID, SignupConfirmed).
		Count(&count).Error
	return count, err
}

func (r *eventRepository) GetSignup(eventID, userID uint) (*Signup, error) {
	var signup Signup
	err := r.db.Where("event_id = ? AND user_id = ?", eventID, userID).First(&signup).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &signup, nil
}

func (r *eventRepository) GetSignupsForUser(userID uint) ([]Signup, error) {
	var signups []Signup
	err := r.db.Where("user_id = ?", userID).Find(&signups).Error
	return signups, err
}

func (r *eventRepository) SaveSignup(signup *Signup) error {
	return r.db.Save(signup).Error
}

// ConfirmOrWaitlistSignup counts the confirmed signups and stores the new
// one in a single transaction, so two racing signups for the last slot
// cannot both land confirmed.
func (r *eventRepository) ConfirmOrWaitlistSignup(event *Event, signup *Signup) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var enrolled int64
		if err := tx.Model(&Signup{}).
			Where("event_id = ? AND status = ?", event.ID, SignupConfirmed).
			Count(&enrolled).Error; err != nil {
			return err
		}
		signup.Status = SignupConfirmed
		if event.Capacity > 0 && enrolled >= int64(event.Capacity) {
			signup.Status = SignupWaitlist
		}
		return tx.Save(signup).Error
	})
}
