package models

// OrderResult is the submission outcome returned to the form. A tripped
// honeypot also reports success here, with a fabricated order id.
type OrderResult struct {
	Success     bool              `json:"success"`
	OrderID     string            `json:"orderId,omitempty"`
	Error       string            `json:"error,omitempty"`
	FieldErrors map[string]string `json:"fieldErrors,omitempty"`
}

type QuoteResponse struct {
	Computable  bool `json:"computable"`
	PrintCost   int  `json:"printCost,omitempty"`
	DeliveryFee int  `json:"deliveryFee,omitempty"`
	Total       int  `json:"total,omitempty"`
}

type PricingResponse struct {
	PricePerPage map[string]int `json:"price_per_page"`
	MinimumOrder int            `json:"minimum_order"`
	Zones        []ZoneInfo     `json:"zones"`
}

type ZoneInfo struct {
	Label string   `json:"label"`
	Fee   int      `json:"fee"`
	Areas []string `json:"areas"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
