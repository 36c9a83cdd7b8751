package httpserver

import (
	"context"
	"log"
	"net/http"

	"foodbrand-commerce/internal/domain"
	"foodbrand-commerce/internal/seed"
	catalogsvc "foodbrand-commerce/internal/service/catalog"
	checkoutsvc "foodbrand-commerce/internal/service/checkout"
	"foodbrand-commerce/internal/validation"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CatalogService lists catalog products.
type CatalogService interface {
	List(ctx context.Context, in catalogsvc.ListInput) ([]domain.Product, error)
}

// CheckoutService turns a cart payload into a persisted order.
type CheckoutService interface {
	Checkout(ctx context.Context, in checkoutsvc.Input) (*domain.Order, error)
}

// Seeder bootstraps the demo catalog.
type Seeder interface {
	Apply(ctx context.Context) (seed.Result, error)
}

// Deps groups the services the router depends on.
type Deps struct {
	CatalogSvc  CatalogService
	CheckoutSvc CheckoutService
	SeedSvc     Seeder
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept", "Authorization"},
	}))

	router.GET("/", rootHandler)
	router.GET("/test", diagHandler(db))
	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	v := validation.New()
	api := router.Group("/api")
	api.GET("/products", listProductsHandler(deps.CatalogSvc))
	api.POST("/checkout", checkoutHandler(deps.CheckoutSvc, v))
	api.POST("/seed", seedHandler(deps.SeedSvc))

	return router
}

func rootHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Food Brand E-Commerce API running"})
}
