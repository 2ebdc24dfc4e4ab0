package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/storefront-analytics/internal/http/response"
	"github.com/yungbote/storefront-analytics/internal/platform/logger"
	"github.com/yungbote/storefront-analytics/internal/services"
)

type ReportHandler struct {
	log           *logger.Logger
	reportService services.ReportService
}

func NewReportHandler(log *logger.Logger, reportService services.ReportService) *ReportHandler {
	return &ReportHandler{
		log:           log.With("handler", "ReportHandler"),
		reportService: reportService,
	}
}

// GET /api/reports/customers/:id/spending
func (rh *ReportHandler) GetCustomerSpending(c *gin.Context) {
	spending, err := rh.reportService.GetCustomerSpending(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, "get_customer_spending_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"spending": spending})
}

// GET /api/reports/products/top?limit=N
func (rh *ReportHandler) GetTopSellingProducts(c *gin.Context) {
	limitStr := strings.TrimSpace(c.Query("limit"))
	if limitStr == "" {
		response.RespondError(c, http.StatusBadRequest, "limit_required", errors.New("limit is required"))
		return
	}
	limit, err := strconv.Atoi(limitStr)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "limit_invalid", errors.New("limit must be a positive integer"))
		return
	}

	products, err := rh.reportService.GetTopSellingProducts(c.Request.Context(), limit)
	if err != nil {
		respondServiceError(c, "get_top_products_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"products": products})
}

// GET /api/reports/sales?start=...&end=...
func (rh *ReportHandler) GetSalesAnalytics(c *gin.Context) {
	analytics, err := rh.reportService.GetSalesAnalytics(c.Request.Context(), c.Query("start"), c.Query("end"))
	if err != nil {
		respondServiceError(c, "get_sales_analytics_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"analytics": analytics})
}
