package contact

import "gorm.io/gorm"

// Message is a contact-form submission. Every submission is persisted
// before any mail is sent so nothing is lost when the mail provider is down.
type Message struct {
	gorm.Model
	Name    string `gorm:"not null" json:"name"`
	Email   string `gorm:"not null" json:"email"`
	Phone   string `json:"phone,omitempty"`
	Subject string `gorm:"not null" json:"subject"`
	Body    string `gorm:"type:text;not null" json:"body"`
	// Pending is set when the notification email could not be delivered.
	Pending bool `gorm:"default:false" json:"pending"`
}

type SubmitMessageRequest struct {
	Name    string `json:"name" binding:"required,min=2,max=100" example:"Jane Doe"`
	Email   string `json:"email" binding:"required,email" example:"jane@example.com"`
	Phone   string `json:"phone" binding:"omitempty,max=30" example:"+1 555 0100"`
	Subject string `json:"subject" binding:"required,min=2,max=200" example:"Fall tryouts"`
	Body    string `json:"body" binding:"required,min=5,max=5000" example:"When do fall tryouts start?"`
}
