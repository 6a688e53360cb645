package billing

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

type BillingRepository interface {
	GetOpenBills(userID uint) ([]Bill, error)
	GetBillByID(billID uint) (*Bill, error)
	GetPayments(userID uint, limit, offset int) ([]Payment, int64, error)
	RecordPayment(bill *Bill, payment *Payment) error
	SumOpenAmount(userID uint) (int64, error)
	SumPaidSince(userID uint, since time.Time) (int64, error)
	NextDueDate(userID uint) (*time.Time, error)
}

type billingRepository struct {
	db *gorm.DB
}

func NewBillingRepository(db *gorm.DB) BillingRepository {
	return &billingRepository{db: db}
}

func (r *billingRepository) GetOpenBills(userID uint) ([]Bill, error) {
	var bills []Bill
	err := r.db.Preload("Items").
		Where("user_id = ? AND status IN ?", userID, []string{BillPending, BillOverdue}).
		Order("due_date ASC").
		Find(&bills).Error
	return bills, err
}

func (r *billingRepository) GetBillByID(billID uint) (*Bill, error) {
	var bill Bill
	err := r.db.Preload("Items").First(&bill, billID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bill, nil
}

func (r *billingRepository) GetPayments(userID uint, limit, offset int) ([]Payment, int64, error) {
	var payments []Payment
	var total int64

	q := r.db.Model(&Payment{}).Where("user_id = ?", userID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&payments).Error
	return payments, total, err
}

// RecordPayment stores the payment and flips the bill to paid in one
// transaction so a crash cannot leave a paid bill without its payment row.
func (r *billingRepository) RecordPayment(bill *Bill, payment *Payment) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(payment).Error; err != nil {
			return err
		}
		now := time.Now()
		bill.Status = BillPaid
		bill.PaidAt = &now
		return tx.Model(bill).Updates(map[string]interface{}{
			"status":  BillPaid,
			"paid_at": now,
		}).Error
	})
}

func (r *billingRepository) SumOpenAmount(userID uint) (int64, error) {
	var total int64
	err := r.db.Model(&Bill{}).
		Where("user_id = ? AND status IN ?", userID, []string{BillPending, BillOverdue}).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *billingRepository) SumPaidSince(userID uint, since time.Time) (int64, error) {
	var total int64
	err := r.db.Model(&Payment{}).
		Where("user_id = ? AND status = ? AND created_at >= ?", userID, PaymentSucceeded, since).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

func (r *billingRepository) NextDueDate(userID uint) (*time.Time, error) {
	var bill Bill
	err := r.db.Where("user_id = ? AND status IN ?", userID, []string{BillPending, BillOverdue}).
		Order("due_date ASC").
		First(&bill).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bill.DueDate, nil
}
