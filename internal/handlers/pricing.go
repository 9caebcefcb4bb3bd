package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"anonprint-backend/internal/models"
	"anonprint-backend/internal/pricing"
)

type PricingHandler struct{}

func NewPricingHandler() *PricingHandler {
	return &PricingHandler{}
}

// GetPricing godoc
// @Summary     Get the pricing tables
// @Description Returns per-page prices, the minimum order and the delivery-zone table the order page renders.
// @Tags        pricing
// @Produce     json
// @Success     200 {object} models.PricingResponse
// @Router      /api/v1/pricing [get]
func (h *PricingHandler) GetPricing(c *gin.Context) {
	zones := make([]models.ZoneInfo, 0, len(pricing.Zones))
	for _, z := range pricing.Zones {
		zones = append(zones, models.ZoneInfo{
			Label: z.Label,
			Fee:   z.Fee,
			Areas: z.Areas,
		})
	}
	c.JSON(http.StatusOK, models.PricingResponse{
		PricePerPage: pricing.PricePerPage,
		MinimumOrder: pricing.MinimumOrder,
		Zones:        zones,
	})
}

// GetQuote godoc
// @Summary     Price a prospective order
// @Description Computes print cost, delivery fee and total from query parameters. Incomplete or invalid inputs yield computable=false with a 200, never an error; the form polls this while the user is still typing.
// @Tags        pricing
// @Produce     json
// @Param       print_type    query string false "bw or color"
// @Param       pages         query int    false "Pages per copy"
// @Param       copies        query int    false "Number of copies"
// @Param       delivery_area query string false "Delivery area name"
// @Success     200 {object} models.QuoteResponse
// @Router      /api/v1/quote [get]
func (h *PricingHandler) GetQuote(c *gin.Context) {
	quote, ok := pricing.ComputeRaw(
		c.Query("print_type"),
		c.Query("pages"),
		c.Query("copies"),
		c.Query("delivery_area"),
	)
	if !ok {
		c.JSON(http.StatusOK, models.QuoteResponse{Computable: false})
		return
	}
	c.JSON(http.StatusOK, models.QuoteResponse{
		Computable:  true,
		PrintCost:   quote.PrintCost,
		DeliveryFee: quote.DeliveryFee,
		Total:       quote.Total,
	})
}
