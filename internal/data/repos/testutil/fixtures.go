package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/storefront-analytics/internal/domain"
)

func SeedCustomer(tb testing.TB, ctx context.Context, tx *gorm.DB, email string) *domain.Customer {
	tb.Helper()
	c := &domain.Customer{
		ID:    uuid.New(),
		Name:  "Test Customer",
		Email: email,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed customer: %v", err)
	}
	return c
}

func SeedProduct(tb testing.TB, ctx context.Context, tx *gorm.DB, name, category string, price float64) *domain.Product {
	tb.Helper()
	p := &domain.Product{
		ID:       uuid.New(),
		Name:     name,
		Category: category,
		Price:    price,
		Stock:    100,
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed product: %v", err)
	}
	return p
}

func SeedOrder(tb testing.TB, ctx context.Context, tx *gorm.DB, customerID uuid.UUID, status string, orderDate time.Time, items []domain.OrderItem) *domain.Order {
	tb.Helper()
	total := 0.0
	for _, it := range items {
		total += float64(it.Quantity) * it.PriceAtPurchase
	}
	return seedOrder(tb, ctx, tx, customerID, status, orderDate, total, items)
}

// SeedOrderWithTotal stores an explicit total_amount that may disagree
// with the line items, mirroring the trusted-but-unverified stored
// total in production data.
func SeedOrderWithTotal(tb testing.TB, ctx context.Context, tx *gorm.DB, customerID uuid.UUID, status string, orderDate time.Time, total float64, items []domain.OrderItem) *domain.Order {
	tb.Helper()
	return seedOrder(tb, ctx, tx, customerID, status, orderDate, total, items)
}

func seedOrder(tb testing.TB, ctx context.Context, tx *gorm.DB, customerID uuid.UUID, status string, orderDate time.Time, total float64, items []domain.OrderItem) *domain.Order {
	tb.Helper()
	o := &domain.Order{
		ID:          uuid.New(),
		CustomerID:  customerID,
		TotalAmount: total,
		Status:      status,
		OrderDate:   orderDate,
	}
	if err := tx.WithContext(ctx).Create(o).Error; err != nil {
		tb.Fatalf("seed order: %v", err)
	}
	for i := range items {
		items[i].ID = uuid.New()
		items[i].OrderID = o.ID
	}
	if len(items) > 0 {
		if err := tx.WithContext(ctx).Create(&items).Error; err != nil {
			tb.Fatalf("seed order items: %v", err)
		}
		o.Items = items
	}
	return o
}
