package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeliveryPersonStatus string

const (
	DeliveryPersonAvailable  DeliveryPersonStatus = "AVAILABLE"
	DeliveryPersonDelivering DeliveryPersonStatus = "DELIVERING"
	DeliveryPersonOffline    DeliveryPersonStatus = "OFFLINE"
)

// DeliveryPerson is a motoboy registered to carry DELIVERY orders
type DeliveryPerson struct {
	ID        string               `json:"id" gorm:"primaryKey;size:36"`
	Name      string               `json:"name" gorm:"not null"`
	Phone     string               `json:"phone" gorm:"uniqueIndex;not null"`
	Plate     string               `json:"plate"`
	Status    DeliveryPersonStatus `json:"status" gorm:"not null;default:'OFFLINE'"`
	IsActive  bool                 `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

func (d *DeliveryPerson) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
