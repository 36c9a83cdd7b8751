package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodbrand-commerce/internal/domain"
	catalogsvc "foodbrand-commerce/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type stubCatalog struct {
	products []domain.Product
	err      error
	lastIn   catalogsvc.ListInput
}

func (s *stubCatalog) List(_ context.Context, in catalogsvc.ListInput) ([]domain.Product, error) {
	s.lastIn = in
	return s.products, s.err
}

func productsRouter(svc CatalogService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/products", listProductsHandler(svc))
	return router
}

func TestListProducts_ParsesQuery(t *testing.T) {
	svc := &stubCatalog{}
	router := productsRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/products?category=snacks&featured=false&limit=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.lastIn.Category == nil || *svc.lastIn.Category != "snacks" {
		t.Fatalf("expected category snacks, got %+v", svc.lastIn.Category)
	}
	if svc.lastIn.Featured == nil || *svc.lastIn.Featured != false {
		t.Fatalf("expected featured=false filter to be present, got %+v", svc.lastIn.Featured)
	}
	if svc.lastIn.Limit != 2 {
		t.Fatalf("expected limit 2, got %d", svc.lastIn.Limit)
	}
}

func TestListProducts_DefaultsWhenAbsent(t *testing.T) {
	svc := &stubCatalog{}
	router := productsRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if svc.lastIn.Category != nil || svc.lastIn.Featured != nil {
		t.Fatalf("expected no filter clauses, got %+v", svc.lastIn)
	}
	if svc.lastIn.Limit != catalogsvc.DefaultLimit {
		t.Fatalf("expected default limit, got %d", svc.lastIn.Limit)
	}

	var body []domain.Product
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected JSON array, got %s", rec.Body.String())
	}
	if len(body) != 0 {
		t.Fatalf("expected empty list, got %d", len(body))
	}
}

func TestListProducts_BadQuery(t *testing.T) {
	for _, path := range []string{"/api/products?featured=maybe", "/api/products?limit=lots"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		productsRouter(&stubCatalog{}).ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", path, rec.Code)
		}
	}
}

func TestListProducts_ServiceError(t *testing.T) {
	router := productsRouter(&stubCatalog{err: errors.New("boom")})

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}
