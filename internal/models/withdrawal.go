package models

import "time"

// Withdrawal payment statuses. The toggle between them is freely
// reversible and carries no transition timestamps.
const (
	WithdrawalPending  = "pending"
	WithdrawalReceived = "received"
)

// Withdrawal records money drawn down from accumulated net earnings.
// WithdrawalAmount is always computed server-side as
// NetEarnings - TransactionFee, never trusted from the caller.
type Withdrawal struct {
	ID               uint      `gorm:"primaryKey"`
	NetEarnings      float64   `gorm:"column:net_earnings;not null"`
	TransactionFee   float64   `gorm:"column:transaction_fee;not null"`
	WithdrawalAmount float64   `gorm:"column:withdrawal_amount;not null"`
	WithdrawalDate   time.Time `gorm:"index;not null"`
	PaymentStatus    string    `gorm:"size:16;not null;default:pending"`
	Notes            string    `gorm:"size:255"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
