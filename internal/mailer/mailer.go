// Package mailer sends the two order notification emails through Resend:
// one to the shop owner (reply-to the customer, so replies route back) and
// one confirmation to the customer. Both sends are best-effort; the caller
// decides what to do with a failure, and the pipeline only logs it.
package mailer

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"

	"anonprint-backend/internal/models"
)

type Mailer struct {
	client      *resend.Client
	from        string
	notifyEmail string
}

// New builds a mailer. notifyEmail is where owner notifications go; when
// empty the customer's own address is used, same as the original behavior
// of NOTIFY_EMAIL falling back to the order email.
func New(apiKey, from, notifyEmail string) *Mailer {
	return &Mailer{
		client:      resend.NewClient(apiKey),
		from:        from,
		notifyEmail: notifyEmail,
	}
}

func (m *Mailer) notifyAddress(order *models.Order) string {
	if m.notifyEmail != "" {
		return m.notifyEmail
	}
	return order.Email
}

// NotifyOwner emails the new-order summary to the shop.
func (m *Mailer) NotifyOwner(ctx context.Context, order *models.Order) error {
	html, err := renderOwnerEmail(order)
	if err != nil {
		return fmt.Errorf("failed to render owner email: %w", err)
	}

	_, err = m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{m.notifyAddress(order)},
		ReplyTo: order.Email,
		Subject: fmt.Sprintf("New Order: %s", order.OrderID),
		Html:    html,
	})
	if err != nil {
		return fmt.Errorf("failed to send owner notification: %w", err)
	}
	return nil
}

// ConfirmCustomer emails the order confirmation to the customer.
func (m *Mailer) ConfirmCustomer(ctx context.Context, order *models.Order) error {
	html, err := renderCustomerEmail(order)
	if err != nil {
		return fmt.Errorf("failed to render customer email: %w", err)
	}

	_, err = m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{order.Email},
		ReplyTo: m.notifyAddress(order),
		Subject: fmt.Sprintf("Order Confirmed: %s", order.OrderID),
		Html:    html,
	})
	if err != nil {
		return fmt.Errorf("failed to send customer confirmation: %w", err)
	}
	return nil
}
