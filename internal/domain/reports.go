package domain

import "github.com/google/uuid"

type CustomerSpending struct {
	CustomerID        uuid.UUID `json:"customer_id"`
	TotalSpent        float64   `json:"total_spent"`
	AverageOrderValue float64   `json:"average_order_value"`
	OrderCount        int64     `json:"order_count"`
	LastOrderDate     *ISOTime  `json:"last_order_date"`
}

type TopProduct struct {
	ProductID uuid.UUID `json:"product_id"`
	Name      string    `json:"name"`
	TotalSold int64     `json:"total_sold"`
}

type CategoryRevenue struct {
	Category string  `json:"category"`
	Revenue  float64 `json:"revenue"`
}

type SalesAnalytics struct {
	TotalRevenue      float64           `json:"total_revenue"`
	CompletedOrders   int64             `json:"completed_orders"`
	CategoryBreakdown []CategoryRevenue `json:"category_breakdown"`
}
