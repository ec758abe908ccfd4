package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeliveryArea is a neighborhood the pizzeria delivers to, with its
// delivery fee. Area names are unique within a city/state.
type DeliveryArea struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Name        string    `json:"name" gorm:"not null;uniqueIndex:idx_area_name_city_state"`
	City        string    `json:"city" gorm:"not null;uniqueIndex:idx_area_name_city_state"`
	State       string    `json:"state" gorm:"not null;uniqueIndex:idx_area_name_city_state"`
	ZipCode     string    `json:"zip_code"`
	DeliveryFee float64   `json:"delivery_fee" gorm:"not null"`
	IsActive    bool      `json:"is_active" gorm:"default:true"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (a *DeliveryArea) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
