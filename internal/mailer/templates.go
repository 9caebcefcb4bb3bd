package mailer

import (
	"bytes"
	"html/template"

	"anonprint-backend/internal/models"
)

var ownerTemplate = template.Must(template.New("owner").Parse(`
<div style="font-family:monospace;max-width:600px;">
  <h2 style="color:#00cc33;">New Order: {{.Order.OrderID}}</h2>
  <hr/>
  <p><strong>Customer Email:</strong> {{.Order.Email}}</p>
  <p><strong>Print:</strong> {{.PrintLabel}} | {{.PaperLabel}} | {{.Order.Pages}} pages | {{.Order.Copies}} copies</p>
  <p><strong>Amount Paid:</strong> ₱{{.Order.AmountPaid}}</p>
  <p><strong>Delivery Area:</strong> {{.Order.DeliveryArea}}</p>
  <p><strong>Address:</strong> {{.Order.Address}}</p>
  <p><strong>Contact:</strong> {{.Order.ContactNumber}}</p>
  <p><strong>Instructions:</strong> {{.Instructions}}</p>
  <hr/>
  <p><strong>Document:</strong> <a href="{{.Order.DocumentURL}}">{{.Order.DocumentName}}</a></p>
  <p><strong>Receipt:</strong> <a href="{{.Order.ReceiptURL}}">View Receipt</a></p>
  <hr/>
  <p style="color:#888;font-size:12px;">Reply to this email to contact the customer directly.</p>
</div>
`))

var customerTemplate = template.Must(template.New("customer").Parse(`
<div style="font-family:monospace;max-width:600px;color:#fafaf9;background:#0a0a0a;padding:32px;">
  <h2 style="color:#00ff41;margin:0 0 8px;">Order Confirmed</h2>
  <p style="color:#00ff41;font-size:18px;font-weight:bold;margin:0 0 24px;">{{.Order.OrderID}}</p>

  <table style="width:100%;border-collapse:collapse;margin-bottom:24px;">
    <tr><td style="padding:8px 0;color:#888;">Print Type</td><td style="padding:8px 0;text-align:right;">{{.PrintLabel}}</td></tr>
    <tr><td style="padding:8px 0;color:#888;">Paper Size</td><td style="padding:8px 0;text-align:right;">{{.PaperLabel}}</td></tr>
    <tr><td style="padding:8px 0;color:#888;">Pages</td><td style="padding:8px 0;text-align:right;">{{.Order.Pages}}</td></tr>
    <tr><td style="padding:8px 0;color:#888;">Copies</td><td style="padding:8px 0;text-align:right;">{{.Order.Copies}}</td></tr>
    <tr><td style="padding:8px 0;color:#888;">Delivery Area</td><td style="padding:8px 0;text-align:right;">{{.Order.DeliveryArea}}</td></tr>
    <tr><td style="padding:8px 0;color:#888;">Amount Paid</td><td style="padding:8px 0;color:#00ff41;text-align:right;font-weight:bold;">₱{{.Order.AmountPaid}}</td></tr>
  </table>

  <p style="color:#c4c4be;font-size:14px;line-height:1.6;">
    We're verifying your payment and will start printing shortly.
    You'll receive your courier tracking link via email once your order is dispatched.
  </p>

  <div style="margin-top:24px;padding:16px;border:1px solid #00cc33;background:#0a3d1a;">
    <p style="color:#00ff41;font-size:12px;margin:0;">
      Your files will be permanently deleted within 24 hours after delivery. We don't store your data.
    </p>
  </div>

  <p style="color:#555;font-size:11px;margin-top:24px;">
    Reply to this email if you have questions about your order.
  </p>
</div>
`))

type emailData struct {
	Order        *models.Order
	PrintLabel   string
	PaperLabel   string
	Instructions string
}

func buildEmailData(order *models.Order) emailData {
	printLabel := "Full Color"
	if order.PrintType == "bw" {
		printLabel = "Black & White"
	}

	var paperLabel string
	switch order.PaperSize {
	case "short":
		paperLabel = "SHORT"
	case "long":
		paperLabel = "LONG"
	default:
		paperLabel = "A4"
	}

	instructions := "None"
	if order.Instructions != nil && *order.Instructions != "" {
		instructions = *order.Instructions
	}

	return emailData{
		Order:        order,
		PrintLabel:   printLabel,
		PaperLabel:   paperLabel,
		Instructions: instructions,
	}
}

func renderOwnerEmail(order *models.Order) (string, error) {
	var buf bytes.Buffer
	if err := ownerTemplate.Execute(&buf, buildEmailData(order)); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderCustomerEmail(order *models.Order) (string, error) {
	var buf bytes.Buffer
	if err := customerTemplate.Execute(&buf, buildEmailData(order)); err != nil {
		return "", err
	}
	return buf.String(), nil
}
