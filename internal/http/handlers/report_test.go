package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/storefront-analytics/internal/domain"
	"github.com/yungbote/storefront-analytics/internal/platform/apierr"
	"github.com/yungbote/storefront-analytics/internal/platform/logger"
)

type stubReportService struct {
	spending  *domain.CustomerSpending
	products  []*domain.TopProduct
	analytics *domain.SalesAnalytics
	err       error

	gotLimit int
}

func (s *stubReportService) GetCustomerSpending(_ context.Context, _ string) (*domain.CustomerSpending, error) {
	return s.spending, s.err
}

func (s *stubReportService) GetTopSellingProducts(_ context.Context, limit int) ([]*domain.TopProduct, error) {
	s.gotLimit = limit
	return s.products, s.err
}

func (s *stubReportService) GetSalesAnalytics(_ context.Context, _, _ string) (*domain.SalesAnalytics, error) {
	return s.analytics, s.err
}

func reportRouter(t *testing.T, svc *stubReportService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	h := NewReportHandler(log, svc)
	r := gin.New()
	r.GET("/api/reports/customers/:id/spending", h.GetCustomerSpending)
	r.GET("/api/reports/products/top", h.GetTopSellingProducts)
	r.GET("/api/reports/sales", h.GetSalesAnalytics)
	return r
}

func TestTopSellingProductsLimitParamRequired(t *testing.T) {
	r := reportRouter(t, &stubReportService{})

	for _, target := range []string{
		"/api/reports/products/top",
		"/api/reports/products/top?limit=abc",
	} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: got status=%d want=400", target, rec.Code)
		}
	}
}

func TestTopSellingProductsPassesLimit(t *testing.T) {
	svc := &stubReportService{products: []*domain.TopProduct{}}
	r := reportRouter(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/products/top?limit=5", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status=%d want=200", rec.Code)
	}
	if svc.gotLimit != 5 {
		t.Fatalf("limit not forwarded: got=%d", svc.gotLimit)
	}
}

func TestServiceErrorsMapToEnvelope(t *testing.T) {
	svc := &stubReportService{err: apierr.NotFound("customer_not_found", nil)}
	r := reportRouter(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/customers/0a0b0c0d-0000-0000-0000-000000000000/spending", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("got status=%d want=404", rec.Code)
	}
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Error.Code != "customer_not_found" {
		t.Fatalf("unexpected error code: %q", body.Error.Code)
	}
}

func TestSalesAnalyticsOKPayload(t *testing.T) {
	svc := &stubReportService{analytics: &domain.SalesAnalytics{
		TotalRevenue:      150,
		CompletedOrders:   2,
		CategoryBreakdown: []domain.CategoryRevenue{{Category: "books", Revenue: 30}},
	}}
	r := reportRouter(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/api/reports/sales?start=2024-01-01&end=2024-02-01", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("got status=%d want=200", rec.Code)
	}
	var body struct {
		Analytics domain.SalesAnalytics `json:"analytics"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Analytics.TotalRevenue != 150 || len(body.Analytics.CategoryBreakdown) != 1 {
		t.Fatalf("unexpected payload: %+v", body.Analytics)
	}
}
