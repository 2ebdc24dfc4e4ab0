package commerce

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/storefront-analytics/internal/domain"
	"github.com/yungbote/storefront-analytics/internal/platform/logger"
)

type SpendingRow struct {
	TotalSpent    float64    `gorm:"column:total_spent"`
	OrderCount    int64      `gorm:"column:order_count"`
	LastOrderDate *time.Time `gorm:"column:last_order_date"`
}

type ProductQuantityRow struct {
	ProductID uuid.UUID `gorm:"column:product_id"`
	TotalSold int64     `gorm:"column:total_sold"`
}

type WindowTotalsRow struct {
	TotalRevenue    float64 `gorm:"column:total_revenue"`
	CompletedOrders int64   `gorm:"column:completed_orders"`
}

type CategoryRevenueRow struct {
	Category string  `gorm:"column:category"`
	Revenue  float64 `gorm:"column:revenue"`
}

type OrderRepo interface {
	Create(ctx context.Context, tx *gorm.DB, orders []*domain.Order) ([]*domain.Order, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, orderIDs []uuid.UUID) ([]*domain.Order, error)
	SpendingByCustomer(ctx context.Context, tx *gorm.DB, customerID uuid.UUID) (*SpendingRow, error)
	TopProductQuantities(ctx context.Context, tx *gorm.DB, limit int) ([]ProductQuantityRow, error)
	CompletedTotalsInWindow(ctx context.Context, tx *gorm.DB, start, end time.Time) (*WindowTotalsRow, error)
	CategoryRevenueInWindow(ctx context.Context, tx *gorm.DB, start, end time.Time) ([]CategoryRevenueRow, error)
}

type orderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrderRepo(db *gorm.DB, baseLog *logger.Logger) OrderRepo {
	repoLog := baseLog.With("repo", "OrderRepo")
	return &orderRepo{db: db, log: repoLog}
}

func (or *orderRepo) Create(ctx context.Context, tx *gorm.DB, orders []*domain.Order) ([]*domain.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	if len(orders) == 0 {
		return []*domain.Order{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (or *orderRepo) GetByIDs(ctx context.Context, tx *gorm.DB, orderIDs []uuid.UUID) ([]*domain.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	var results []*domain.Order
	if len(orderIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Preload("Items").
		Where("id IN ?", orderIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// SpendingByCustomer aggregates over stored order totals; per-item
// revenue is deliberately not consulted here.
func (or *orderRepo) SpendingByCustomer(ctx context.Context, tx *gorm.DB, customerID uuid.UUID) (*SpendingRow, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	var row SpendingRow
	if err := transaction.WithContext(ctx).
		Model(&domain.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS total_spent, COUNT(*) AS order_count, MAX(order_date) AS last_order_date").
		Where("customer_id = ?", customerID).
		Scan(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// TopProductQuantities counts line items across all orders regardless
// of status. Ties on total_sold break by product id ascending so the
// ordering is stable across runs.
func (or *orderRepo) TopProductQuantities(ctx context.Context, tx *gorm.DB, limit int) ([]ProductQuantityRow, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	var rows []ProductQuantityRow
	if err := transaction.WithContext(ctx).
		Model(&domain.OrderItem{}).
		Select("product_id, SUM(quantity) AS total_sold").
		Group("product_id").
		Order("total_sold DESC, product_id ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (or *orderRepo) CompletedTotalsInWindow(ctx context.Context, tx *gorm.DB, start, end time.Time) (*WindowTotalsRow, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	var row WindowTotalsRow
	if err := transaction.WithContext(ctx).
		Model(&domain.Order{}).
		Select("COALESCE(SUM(total_amount), 0) AS total_revenue, COUNT(*) AS completed_orders").
		Where("status = ? AND order_date >= ? AND order_date < ?", domain.OrderStatusCompleted, start, end).
		Scan(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// CategoryRevenueInWindow recomputes revenue as quantity times
// price_at_purchase per line item. The inner join to products drops
// items whose product no longer exists.
func (or *orderRepo) CategoryRevenueInWindow(ctx context.Context, tx *gorm.DB, start, end time.Time) ([]CategoryRevenueRow, error) {
	transaction := tx
	if transaction == nil {
		transaction = or.db
	}

	var rows []CategoryRevenueRow
	if err := transaction.WithContext(ctx).
		Model(&domain.OrderItem{}).
		Select("products.category AS category, SUM(order_items.quantity * order_items.price_at_purchase) AS revenue").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("orders.status = ? AND orders.order_date >= ? AND orders.order_date < ?", domain.OrderStatusCompleted, start, end).
		Group("products.category").
		Order("revenue DESC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
