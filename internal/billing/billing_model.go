package billing

import (
	"time"

	"gorm.io/gorm"
)

// Bill is an invoice issued to a portal user (the parent account).
type Bill struct {
	gorm.Model
	UserID      uint       `gorm:"index;not null" json:"user_id"`
	Description string     `gorm:"not null" json:"description"`
	Amount      int64      `gorm:"not null" json:"amount"` // cents
	DueDate     time.Time  `gorm:"not null;index" json:"due_date"`
	Status      string     `gorm:"type:VARCHAR(20);check:status IN ('pending','paid','overdue','cancelled');default:'pending'" json:"status"`
	PaidAt      *time.Time `json:"paid_at,omitempty"`
	Items       []BillItem `json:"items"`
}

// BillItem is one line on a bill, optionally tied to a training event.
type BillItem struct {
	gorm.Model
	BillID      uint   `gorm:"index;not null" json:"bill_id"`
	Description string `gorm:"not null" json:"description"`
	Amount      int64  `gorm:"not null" json:"amount"` // cents
	Quantity    int    `gorm:"default:1" json:"quantity"`
	EventID     *uint  `json:"event_id,omitempty"`
}

// Payment records a settled bill. The processor reference is stored opaque;
// this service never talks to the payment gateway itself.
type Payment struct {
	gorm.Model
	BillID       uint   `gorm:"index;not null" json:"bill_id"`
	UserID       uint   `gorm:"index;not null" json:"user_id"`
	Amount       int64  `gorm:"not null" json:"amount"` // cents
	Method       string `json:"method"`
	ProcessorRef string `json:"processor_ref,omitempty"`
	Status       string `gorm:"type:VARCHAR(20);check:status IN ('pending','succeeded','failed');default:'succeeded'" json:"status"`
}

const (
	BillPending   = "pending"
	BillPaid      = "paid"
	BillOverdue   = "overdue"
	BillCancelled = "cancelled"

	PaymentSucceeded = "succeeded"
)

type PayBillRequest struct {
	Method       string `json:"method" binding:"required,max=50" example:"Credit Card"`
	ProcessorRef string `json:"processor_ref" binding:"omitempty,max=255"`
}

// Summary backs the three cards at the top of the billing page.
type Summary struct {
	TotalDue      int64      `json:"total_due"`
	PaidThisMonth int64      `json:"paid_this_month"`
	NextDueDate   *time.Time `json:"next_due_date,omitempty"`
}
