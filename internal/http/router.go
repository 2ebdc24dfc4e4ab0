package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/yungbote/storefront-analytics/internal/http/handlers"
	httpMW "github.com/yungbote/storefront-analytics/internal/http/middleware"
	"github.com/yungbote/storefront-analytics/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	CORSOrigins []string

	HealthHandler   *httpH.HealthHandler
	CustomerHandler *httpH.CustomerHandler
	ProductHandler  *httpH.ProductHandler
	OrderHandler    *httpH.OrderHandler
	ReportHandler   *httpH.ReportHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		// Point lookups
		if cfg.CustomerHandler != nil {
			api.GET("/customers/:id", cfg.CustomerHandler.GetCustomer)
		}
		if cfg.ProductHandler != nil {
			api.GET("/products/:id", cfg.ProductHandler.GetProduct)
		}
		if cfg.OrderHandler != nil {
			api.GET("/orders/:id", cfg.OrderHandler.GetOrder)
		}

		// Reports
		if cfg.ReportHandler != nil {
			api.GET("/reports/customers/:id/spending", cfg.ReportHandler.GetCustomerSpending)
			api.GET("/reports/products/top", cfg.ReportHandler.GetTopSellingProducts)
			api.GET("/reports/sales", cfg.ReportHandler.GetSalesAnalytics)
		}
	}

	return r
}
