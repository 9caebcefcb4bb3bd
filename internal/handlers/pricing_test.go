package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anonprint-backend/internal/models"
)

func newPricingRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewPricingHandler()
	r.GET("/api/v1/pricing", h.GetPricing)
	r.GET("/api/v1/quote", h.GetQuote)
	r.GET("/health", HealthCheck)
	return r
}

func TestGetPricing(t *testing.T) {
	router := newPricingRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/pricing", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var res models.PricingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 5, res.PricePerPage["bw"])
	assert.Equal(t, 12, res.PricePerPage["color"])
	assert.Equal(t, 200, res.MinimumOrder)
	require.Len(t, res.Zones, 2)
	assert.Equal(t, 60, res.Zones[0].Fee)
	assert.Contains(t, res.Zones[0].Areas, "Antipolo")
	assert.Equal(t, 100, res.Zones[1].Fee)
}

func TestGetQuote(t *testing.T) {
	router := newPricingRouter()

	tests := []struct {
		name  string
		query string
		want  models.QuoteResponse
	}{
		{
			"bw order",
			"print_type=bw&pages=10&copies=2&delivery_area=Antipolo",
			models.QuoteResponse{Computable: true, PrintCost: 100, DeliveryFee: 60, Total: 160},
		},
		{
			"color far zone",
			"print_type=color&pages=3&copies=1&delivery_area=Quezon+City",
			models.QuoteResponse{Computable: true, PrintCost: 36, DeliveryFee: 100, Total: 136},
		},
		{"missing area", "print_type=bw&pages=10&copies=2", models.QuoteResponse{Computable: false}},
		{"unknown area", "print_type=bw&pages=10&copies=2&delivery_area=Cebu", models.QuoteResponse{Computable: false}},
		{"bad pages", "print_type=bw&pages=ten&copies=2&delivery_area=Antipolo", models.QuoteResponse{Computable: false}},
		{"empty form", "", models.QuoteResponse{Computable: false}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/quote?"+tc.query, nil))

			require.Equal(t, http.StatusOK, rec.Code)
			var res models.QuoteResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
			assert.Equal(t, tc.want, res)
		})
	}
}

func TestHealthCheck(t *testing.T) {
	router := newPricingRouter()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
