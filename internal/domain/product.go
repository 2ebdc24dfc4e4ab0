package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Product struct {
	ID         uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name       string         `gorm:"column:name;not null" json:"name"`
	Category   string         `gorm:"column:category;not null;index" json:"category"`
	Price      float64        `gorm:"column:price;not null" json:"price"`
	Stock      int            `gorm:"column:stock;not null;default:0" json:"stock"`
	Attributes datatypes.JSON `gorm:"column:attributes;type:jsonb" json:"attributes,omitempty"`
	CreatedAt  time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"not null;default:now()" json:"updated_at"`
}

func (Product) TableName() string { return "products" }
