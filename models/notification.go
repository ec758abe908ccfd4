package models

import "time"

type NotificationSource string

const (
	SourceSystem NotificationSource = "SYSTEM"
	SourceIfood  NotificationSource = "IFOOD"
)

// Notification is a per-customer message created as a side effect of
// order status transitions
type Notification struct {
	ID        uint               `json:"id" gorm:"primaryKey"`
	UserID    string             `json:"user_id" gorm:"not null;size:36;index"`
	Type      string             `json:"type" gorm:"not null"`
	Source    NotificationSource `json:"source" gorm:"not null;default:'SYSTEM'"`
	Title     string             `json:"title" gorm:"not null"`
	Message   string             `json:"message"`
	OrderID   *string            `json:"order_id" gorm:"size:36"`
	Read      bool               `json:"read" gorm:"default:false"`
	CreatedAt time.Time          `json:"created_at"`
}
