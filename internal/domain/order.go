package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
	OrderStatusCanceled  = "canceled"
)

func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusCompleted, OrderStatusCanceled:
		return true
	}
	return false
}

// TotalAmount is trusted as stored; the category breakdown recomputes
// revenue from line items instead, so the two can legitimately
// disagree.
type Order struct {
	ID          uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CustomerID  uuid.UUID   `gorm:"type:uuid;not null;index" json:"customer_id"`
	Customer    *Customer   `gorm:"constraint:OnDelete:CASCADE;foreignKey:CustomerID;references:ID" json:"customer,omitempty"`
	Items       []OrderItem `gorm:"constraint:OnDelete:CASCADE;foreignKey:OrderID;references:ID" json:"items"`
	TotalAmount float64     `gorm:"column:total_amount;not null" json:"total_amount"`
	Status      string      `gorm:"column:status;not null;index" json:"status"`
	OrderDate   time.Time   `gorm:"column:order_date;not null;index" json:"order_date"`
	CreatedAt   time.Time   `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"not null;default:now()" json:"updated_at"`
}

func (Order) TableName() string { return "orders" }

// OrderItem is owned by its Order; it has no lifecycle of its own.
type OrderItem struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	OrderID         uuid.UUID `gorm:"type:uuid;not null;index" json:"order_id"`
	ProductID       uuid.UUID `gorm:"type:uuid;not null;index" json:"product_id"`
	Product         *Product  `gorm:"foreignKey:ProductID;references:ID" json:"product,omitempty"`
	Quantity        int       `gorm:"column:quantity;not null" json:"quantity"`
	PriceAtPurchase float64   `gorm:"column:price_at_purchase;not null" json:"price_at_purchase"`
}

func (OrderItem) TableName() string { return "order_items" }
