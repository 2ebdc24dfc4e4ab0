package repos

import (
	"gorm.io/gorm"

	"github.com/yungbote/storefront-analytics/internal/data/repos/commerce"
	"github.com/yungbote/storefront-analytics/internal/platform/logger"
)

type CustomerRepo = commerce.CustomerRepo
type ProductRepo = commerce.ProductRepo
type OrderRepo = commerce.OrderRepo

type SpendingRow = commerce.SpendingRow
type ProductQuantityRow = commerce.ProductQuantityRow
type WindowTotalsRow = commerce.WindowTotalsRow
type CategoryRevenueRow = commerce.CategoryRevenueRow

func NewCustomerRepo(db *gorm.DB, baseLog *logger.Logger) CustomerRepo {
	return commerce.NewCustomerRepo(db, baseLog)
}

func NewProductRepo(db *gorm.DB, baseLog *logger.Logger) ProductRepo {
	return commerce.NewProductRepo(db, baseLog)
}

func NewOrderRepo(db *gorm.DB, baseLog *logger.Logger) OrderRepo {
	return commerce.NewOrderRepo(db, baseLog)
}
