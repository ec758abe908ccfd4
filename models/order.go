package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStatus represents all possible states of an order
type OrderStatus string

const (
	StatusPending    OrderStatus = "PENDING"
	StatusConfirmed  OrderStatus = "CONFIRMED"
	StatusDelivering OrderStatus = "DELIVERING"
	StatusDelivered  OrderStatus = "DELIVERED"
	StatusCancelled  OrderStatus = "CANCELLED"
)

type DeliveryType string

const (
	DeliveryTypeDelivery DeliveryType = "DELIVERY"
	DeliveryTypePickup   DeliveryType = "PICKUP"
)

type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "CASH"
	PaymentCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentDebitCard  PaymentMethod = "DEBIT_CARD"
	PaymentPix        PaymentMethod = "PIX"
	PaymentIfood      PaymentMethod = "IFOOD"
)

type Order struct {
	ID            string        `json:"id" gorm:"primaryKey;size:36"`
	UserID        string        `json:"user_id" gorm:"not null;size:36"`
	User          User          `json:"user,omitempty" gorm:"foreignKey:UserID"`
	AddressID     *string       `json:"address_id" gorm:"size:36"`
	Address       *Address      `json:"address,omitempty" gorm:"foreignKey:AddressID"`
	Status        OrderStatus   `json:"status" gorm:"not null;default:'PENDING'"`
	Total         float64       `json:"total" gorm:"not null"`
	DeliveryType  DeliveryType  `json:"delivery_type" gorm:"not null;default:'PICKUP'"`
	PaymentMethod PaymentMethod `json:"payment_method" gorm:"not null;default:'CASH'"`
	Notes         string        `json:"notes"`
	IfoodOrderID  *string       `json:"ifood_order_id"`
	ConfirmedAt   *time.Time    `json:"confirmed_at"`
	ConfirmedBy   *string       `json:"confirmed_by" gorm:"size:36"`
	CancelledAt   *time.Time    `json:"cancelled_at"`
	CancelledBy   *string       `json:"cancelled_by" gorm:"size:36"`
	Items         []OrderItem   `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

// Number is the short identifier shown on tickets: last 8 chars of the ID
func (o *Order) Number() string {
	if len(o.ID) <= 8 {
		return o.ID
	}
	return o.ID[len(o.ID)-8:]
}

type OrderItem struct {
	ID      string  `json:"id" gorm:"primaryKey;size:36"`
	OrderID string  `json:"order_id" gorm:"not null;size:36"`
	ComboID string  `json:"combo_id" gorm:"not null;size:36"`
	Combo   Combo   `json:"combo,omitempty" gorm:"foreignKey:ComboID"`
	Quantity int    `json:"quantity" gorm:"not null"`
	Price   float64 `json:"price" gorm:"not null"` // snapshot price at time of order
	// SelectedFlavors holds the raw flavor references as JSON. Historical
	// rows mix shapes (bare ids, {id} objects, double-encoded strings), so
	// it stays opaque here and is normalized by the printing package.
	SelectedFlavors string    `json:"selected_flavors"`
	Extras          string    `json:"extras"` // JSON, may carry flavorsPizza2 for a second pizza
	Observations    string    `json:"observations"`
	CreatedAt       time.Time `json:"created_at"`
}

func (it *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if it.ID == "" {
		it.ID = uuid.NewString()
	}
	return nil
}
