package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/storefront-analytics/internal/http/response"
	"github.com/yungbote/storefront-analytics/internal/services"
)

type ProductHandler struct {
	productService services.ProductService
}

func NewProductHandler(productService services.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// GET /api/products/:id
func (ph *ProductHandler) GetProduct(c *gin.Context) {
	product, err := ph.productService.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, "get_product_failed", err)
		return
	}
	response.RespondOK(c, gin.H{"product": product})
}
