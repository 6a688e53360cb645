package contact

import "gorm.io/gorm"

type ContactRepository interface {
	SaveMessage(msg *Message) error
	UpdateMessage(msg *Message) error
	GetPendingMessages(limit int) ([]Message, error)
}

type contactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) SaveMessage(msg *Message) error {
	return r.db.Create(msg).Error
}

func (r *contactRepository) UpdateMessage(msg *Message) error {
	return r.db.Save(msg).Error
}

func (r *contactRepository) GetPendingMessages(limit int) ([]Message, error) {
	var messages []Message
	err := r.db.Where("pending = ?", true).Order("created_at ASC").Limit(limit).Find(&messages).Error
	return messages, err
}
