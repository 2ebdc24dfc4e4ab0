package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/storefront-analytics/internal/platform/logger"
	"github.com/yungbote/storefront-analytics/internal/services"
)

type Services struct {
	Customer services.CustomerService
	Product  services.ProductService
	Order    services.OrderService
	Report   services.ReportService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Customer: services.NewCustomerService(db, log, reposet.Customer, cfg.QueryTimeout),
		Product:  services.NewProductService(db, log, reposet.Product, cfg.QueryTimeout),
		Order:    services.NewOrderService(db, log, reposet.Customer, reposet.Product, reposet.Order, cfg.QueryTimeout),
		Report:   services.NewReportService(db, log, reposet.Customer, reposet.Product, reposet.Order, cfg.QueryTimeout),
	}
}
