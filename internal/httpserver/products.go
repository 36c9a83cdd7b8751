package httpserver

import (
	"net/http"
	"strconv"

	"foodbrand-commerce/internal/domain"
	catalogsvc "foodbrand-commerce/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

// listProductsHandler serves GET /api/products. The featured filter keys on
// parameter presence, not truthiness: featured=false still filters.
func listProductsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in catalogsvc.ListInput

		if category := c.Query("category"); category != "" {
			in.Category = &category
		}
		if raw, ok := c.GetQuery("featured"); ok {
			featured, err := strconv.ParseBool(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "featured must be a boolean"})
				return
			}
			in.Featured = &featured
		}
		in.Limit = catalogsvc.DefaultLimit
		if raw, ok := c.GetQuery("limit"); ok {
			limit, err := strconv.Atoi(raw)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
				return
			}
			in.Limit = limit
		}

		products, err := svc.List(c.Request.Context(), in)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if products == nil {
			products = []domain.Product{}
		}
		c.JSON(http.StatusOK, products)
	}
}
