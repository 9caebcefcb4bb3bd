package models

// Order is the row written to the orders table. Orders are immutable once
// inserted; fulfillment happens outside this service.
type Order struct {
	OrderID       string  `json:"order_id"`
	Email         string  `json:"email"`
	PrintType     string  `json:"print_type"`
	PaperSize     string  `json:"paper_size"`
	Copies        int     `json:"copies"`
	Pages         int     `json:"pages"`
	DeliveryArea  string  `json:"delivery_area"`
	Instructions  *string `json:"instructions"`
	Address       string  `json:"address"`
	ContactNumber string  `json:"contact_number"`
	AmountPaid    int     `json:"amount_paid"`
	DocumentURL   string  `json:"document_url"`
	DocumentName  string  `json:"document_name"`
	ReceiptURL    string  `json:"receipt_url"`
	Status        string  `json:"status"`
}

const StatusPending = "pending"
