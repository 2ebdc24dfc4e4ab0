package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/storefront-analytics/internal/http/response"
	"github.com/yungbote/storefront-analytics/internal/services"
)

type CustomerHandler struct {
	customerService services.CustomerService
}

func NewCustomerHandler(customerService services.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// GET /api/customers/:id
func (ch *CustomerHandler) GetCustomer(c *gin.Context) {
	customer, err := ch.customerService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, "get_customer_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"customer": customer})
}
