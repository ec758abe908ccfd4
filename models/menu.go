package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"uniqueIndex;not null"`
	SortOrder int       `json:"sort_order" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (cat *Category) BeforeCreate(tx *gorm.DB) error {
	if cat.ID == "" {
		cat.ID = uuid.NewString()
	}
	return nil
}

// Combo is a purchasable menu item (pizza, drink, side)
type Combo struct {
	ID                 string    `json:"id" gorm:"primaryKey;size:36"`
	Name               string    `json:"name" gorm:"not null"`
	Description        string    `json:"description"`
	Price              float64   `json:"price" gorm:"not null"`
	Image              string    `json:"image"`
	IsActive           bool      `json:"is_active" gorm:"default:true"`
	IsPizza            bool      `json:"is_pizza" gorm:"default:false"`
	AllowCustomization bool      `json:"allow_customization" gorm:"default:false"`
	CategoryID         string    `json:"category_id" gorm:"size:36"`
	Category           *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func (cb *Combo) BeforeCreate(tx *gorm.DB) error {
	if cb.ID == "" {
		cb.ID = uuid.NewString()
	}
	return nil
}

// FlavorType is the price tier of a pizza flavor
type FlavorType string

const (
	FlavorTradicional FlavorType = "TRADICIONAL"
	FlavorEspecial    FlavorType = "ESPECIAL"
	FlavorPremium     FlavorType = "PREMIUM"
)

// PizzaFlavor is a named topping combination. Legacy flavors carry
// historical prefixed IDs (trad-*, esp-*, prem-*) that may not exist
// in this table; the printing package keeps a fallback map for those.
type PizzaFlavor struct {
	ID        string     `json:"id" gorm:"primaryKey;size:36"`
	Name      string     `json:"name" gorm:"not null"`
	Type      FlavorType `json:"type" gorm:"not null;default:'TRADICIONAL'"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func (f *PizzaFlavor) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}
