package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/storefront-analytics/internal/http/response"
	"github.com/yungbote/storefront-analytics/internal/services"
)

type OrderHandler struct {
	orderService services.OrderService
}

func NewOrderHandler(orderService services.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// GET /api/orders/:id?expand=customer,products
func (oh *OrderHandler) GetOrder(c *gin.Context) {
	expandCustomer := false
	expandProducts := false
	for _, part := range strings.Split(c.Query("expand"), ",") {
		switch strings.TrimSpace(part) {
		case "customer":
			expandCustomer = true
		case "products":
			expandProducts = true
		}
	}

	order, err := oh.orderService.GetByID(c.Request.Context(), c.Param("id"), expandCustomer, expandProducts)
	if err != nil {
		respondServiceError(c, "get_order_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"order": order})
}
