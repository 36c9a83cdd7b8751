package httpserver

import (
	"net/http"

	checkoutsvc "foodbrand-commerce/internal/service/checkout"
	"foodbrand-commerce/internal/validation"
	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"
)

// Price is a pointer so an absent field is distinguishable from an explicit
// zero: missing price must fail validation, a free item must not.
type cartItemRequest struct {
	ProductID string   `json:"product_id" validate:"required"`
	Title     string   `json:"title" validate:"required"`
	Price     *float64 `json:"price" validate:"required,gte=0"`
	Quantity  int      `json:"quantity" validate:"required,min=1"`
	Image     string   `json:"image"`
}

type checkoutRequest struct {
	CustomerName string            `json:"customer_name" validate:"required"`
	Email        string            `json:"email" validate:"required,email"`
	Address      string            `json:"address" validate:"required"`
	City         string            `json:"city" validate:"required"`
	Country      string            `json:"country" validate:"required"`
	Items        []cartItemRequest `json:"items" validate:"required,min=1,dive"`
}

// checkoutHandler serves POST /api/checkout. A structurally invalid payload
// fails with 400 before any computation; everything past binding surfaces as
// a 500 carrying the underlying message.
func checkoutHandler(svc CheckoutService, v *validatorv10.Validate) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := validation.BindAndValidate(c, &req, v); err != nil {
			return
		}

		items := make([]checkoutsvc.CartItem, 0, len(req.Items))
		for _, it := range req.Items {
			items = append(items, checkoutsvc.CartItem{
				ProductID: it.ProductID,
				Title:     it.Title,
				Price:     *it.Price,
				Quantity:  it.Quantity,
				Image:     it.Image,
			})
		}

		order, err := svc.Checkout(c.Request.Context(), checkoutsvc.Input{
			CustomerName: req.CustomerName,
			Email:        req.Email,
			Address:      req.Address,
			City:         req.City,
			Country:      req.Country,
			Items:        items,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "order_id": order.ID})
	}
}
