package models

import "time"

// CashLogType classifies a cash ledger entry
type CashLogType string

const (
	CashOpen         CashLogType = "OPEN"
	CashClose        CashLogType = "CLOSE"
	CashOrder        CashLogType = "ORDER"
	CashOrderPrinted CashLogType = "ORDER_PRINTED"
	CashWithdrawal   CashLogType = "WITHDRAWAL"
)

// CashLog is an append-only financial audit row. Rows are never
// updated or deleted; cancellations append a negative ORDER amount.
type CashLog struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	Type        CashLogType `json:"type" gorm:"not null"`
	Amount      float64     `json:"amount" gorm:"not null"`
	Description string      `json:"description"`
	OrderID     *string     `json:"order_id" gorm:"size:36"`
	CreatedAt   time.Time   `json:"created_at"`
}
