package app

import (
	"github.com/gin-gonic/gin"

	httpx "github.com/yungbote/storefront-analytics/internal/http"
	httpH "github.com/yungbote/storefront-analytics/internal/http/handlers"
	"github.com/yungbote/storefront-analytics/internal/platform/logger"
)

type Handlers struct {
	Health   *httpH.HealthHandler
	Customer *httpH.CustomerHandler
	Product  *httpH.ProductHandler
	Order    *httpH.OrderHandler
	Report   *httpH.ReportHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(),
		Customer: httpH.NewCustomerHandler(serviceset.Customer),
		Product:  httpH.NewProductHandler(serviceset.Product),
		Order:    httpH.NewOrderHandler(serviceset.Order),
		Report:   httpH.NewReportHandler(log, serviceset.Report),
	}
}

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers) *gin.Engine {
	return httpx.NewRouter(httpx.RouterConfig{
		Log:             log,
		CORSOrigins:     cfg.CORSOrigins,
		HealthHandler:   handlers.Health,
		CustomerHandler: handlers.Customer,
		ProductHandler:  handlers.Product,
		OrderHandler:    handlers.Order,
		ReportHandler:   handlers.Report,
	})
}
