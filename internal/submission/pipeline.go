// Package submission implements the order intake pipeline: a sequential
// gate chain where the first failing gate short-circuits the rest.
package submission

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"anonprint-backend/internal/metrics"
	"anonprint-backend/internal/models"
	"anonprint-backend/internal/pricing"
	"anonprint-backend/internal/validation"
)

// User-facing result messages. Internal error detail stays in the logs.
const (
	MsgTooManySubmissions = "Too many submissions. Please wait a few minutes."
	MsgCaptchaRequired    = "Please complete the verification."
	MsgInvalidFields      = "Please fix the highlighted fields."
	MsgDocumentUpload     = "Failed to upload document. Please try again."
	MsgReceiptUpload      = "Failed to upload receipt. Please try again."
	MsgSaveFailed         = "Failed to save order. Please try again."
	MsgSomethingWrong     = "Something went wrong. Please try again."
)

// BlobStore is the write-once file store for documents and receipts.
type BlobStore interface {
	Upload(path string, data []byte, contentType string) error
	PublicURL(path string) string
}

// OrderStore appends order rows.
type OrderStore interface {
	Insert(ctx context.Context, order *models.Order) error
}

// Limiter throttles submissions per client key.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// CaptchaVerifier checks the client's verification token.
type CaptchaVerifier interface {
	Verify(ctx context.Context, token string) (bool, error)
}

// Notifier sends the two post-commit emails. Both are best-effort.
type Notifier interface {
	NotifyOwner(ctx context.Context, order *models.Order) error
	ConfirmCustomer(ctx context.Context, order *models.Order) error
}

// Pipeline runs the submission gate chain against injected collaborators.
// It holds no mutable state of its own; one instance serves all requests.
type Pipeline struct {
	blobs    BlobStore
	orders   OrderStore
	limiter  Limiter
	captcha  CaptchaVerifier
	notifier Notifier // nil disables the notification step
	metrics  *metrics.Metrics
	log      *logrus.Logger
	now      func() time.Time
}

func New(blobs BlobStore, orders OrderStore, limiter Limiter, captcha CaptchaVerifier, notifier Notifier, m *metrics.Metrics, log *logrus.Logger) *Pipeline {
	return &Pipeline{
		blobs:    blobs,
		orders:   orders,
		limiter:  limiter,
		captcha:  captcha,
		notifier: notifier,
		metrics:  m,
		log:      log,
		now:      time.Now,
	}
}

// Submit executes the gate chain. It never panics outward: any fault not
// handled by a gate becomes the generic failure result.
func (p *Pipeline) Submit(ctx context.Context, sub *models.Submission) (result models.OrderResult) {
	start := p.now()
	defer func() {
		if r := recover(); r != nil {
			p.log.WithField("panic", r).Error("order submission panicked")
			p.metrics.SubmissionsTotal.WithLabelValues("failed").Inc()
			result = models.OrderResult{Success: false, Error: MsgSomethingWrong}
		}
		p.metrics.SubmissionDuration.Observe(time.Since(start).Seconds())
	}()

	// Honeypot: bots that fill the hidden field get a fabricated success
	// with a synthetic order id, so they cannot tell they were caught.
	// Nothing is persisted.
	if sub.Honeypot != "" {
		p.metrics.GateRejections.WithLabelValues("honeypot").Inc()
		p.metrics.SubmissionsTotal.WithLabelValues("honeypot").Inc()
		p.log.WithField("client_ip", sub.ClientIP).Warn("honeypot tripped, returning fake success")
		return models.OrderResult{Success: true, OrderID: p.newOrderID()}
	}

	allowed, err := p.limiter.Allow(ctx, sub.ClientIP)
	if err != nil {
		p.log.WithError(err).Error("rate limiter error")
		p.metrics.SubmissionsTotal.WithLabelValues("failed").Inc()
		return models.OrderResult{Success: false, Error: MsgSomethingWrong}
	}
	if !allowed {
		p.metrics.GateRejections.WithLabelValues("rate_limit").Inc()
		p.metrics.SubmissionsTotal.WithLabelValues("throttled").Inc()
		p.log.WithField("client_ip", sub.ClientIP).Warn("submission rate limit exceeded")
		return models.OrderResult{Success: false, Error: MsgTooManySubmissions}
	}

	if sub.CaptchaToken == "" {
		p.metrics.GateRejections.WithLabelValues("captcha").Inc()
		p.metrics.SubmissionsTotal.WithLabelValues("captcha_failed").Inc()
		return models.OrderResult{Success: false, Error: MsgCaptchaRequired}
	}
	verified, err := p.captcha.Verify(ctx, sub.CaptchaToken)
	if err != nil {
		p.log.WithError(err).Error("captcha verification error")
		p.metrics.SubmissionsTotal.WithLabelValues("failed").Inc()
		return models.OrderResult{Success: false, Error: MsgSomethingWrong}
	}
	if !verified {
		p.metrics.GateRejections.WithLabelValues("captcha").Inc()
		p.metrics.SubmissionsTotal.WithLabelValues("captcha_failed").Inc()
		p.log.WithField("client_ip", sub.ClientIP).Warn("captcha verification rejected")
		return models.OrderResult{Success: false, Error: MsgCaptchaRequired}
	}

	// Exhaustive re-validation. The dynamic amount minimum is the quoted
	// total when the pricing inputs resolve.
	minAmount := 0
	if quote, ok := pricing.ComputeRaw(sub.PrintType, sub.Pages, sub.Copies, sub.DeliveryArea); ok {
		minAmount = quote.Total
	}
	if fieldErrs := validation.All(sub, minAmount); len(fieldErrs) > 0 {
		p.metrics.GateRejections.WithLabelValues("validation").Inc()
		p.metrics.SubmissionsTotal.WithLabelValues("invalid").Inc()
		return models.OrderResult{Success: false, Error: MsgInvalidFields, FieldErrors: fieldErrs}
	}

	orderID := p.newOrderID()
	ts := storageTimestamp(p.now())

	docPath := fmt.Sprintf("documents/%s/%s.%s", orderID, ts, fileExt(sub.Document.Name, "pdf"))
	if err := p.blobs.Upload(docPath, sub.Document.Data, sub.Document.ContentType); err != nil {
		p.log.WithError(err).WithField("order_id", orderID).Error("document upload failed")
		p.metrics.SubmissionsTotal.WithLabelValues("failed").Inc()
		return models.OrderResult{Success: false, Error: MsgDocumentUpload}
	}

	// A receipt failure here leaves the document blob in place. Nothing
	// references it yet, so it is only orphaned, never visible.
	receiptPath := fmt.Sprintf("receipts/%s/%s.%s", orderID, ts, fileExt(sub.Receipt.Name, "jpg"))
	if err := p.blobs.Upload(receiptPath, sub.Receipt.Data, sub.Receipt.ContentType); err != nil {
		p.log.WithError(err).WithField("order_id", orderID).Error("receipt upload failed")
		p.metrics.SubmissionsTotal.WithLabelValues("failed").Inc()
		return models.OrderResult{Success: false, Error: MsgReceiptUpload}
	}

	order := p.buildOrder(orderID, sub, docPath, receiptPath)
	if err := p.orders.Insert(ctx, order); err != nil {
		p.log.WithError(err).WithField("order_id", orderID).Error("order insert failed")
		p.metrics.SubmissionsTotal.WithLabelValues("failed").Inc()
		return models.OrderResult{Success: false, Error: MsgSaveFailed}
	}

	// The order is committed; from here nothing may change the outcome.
	if p.notifier != nil {
		if err := p.notifier.NotifyOwner(ctx, order); err != nil {
			p.log.WithError(err).WithField("order_id", orderID).Error("owner notification failed")
		}
		if err := p.notifier.ConfirmCustomer(ctx, order); err != nil {
			p.log.WithError(err).WithField("order_id", orderID).Error("customer confirmation failed")
		}
	}

	p.metrics.SubmissionsTotal.WithLabelValues("accepted").Inc()
	p.log.WithFields(logrus.Fields{
		"order_id":      orderID,
		"delivery_area": order.DeliveryArea,
		"amount_paid":   order.AmountPaid,
	}).Info("order accepted")

	return models.OrderResult{Success: true, OrderID: orderID}
}

func (p *Pipeline) buildOrder(orderID string, sub *models.Submission, docPath, receiptPath string) *models.Order {
	// Validation has already passed; these conversions cannot fail.
	copies, _ := strconv.Atoi(strings.TrimSpace(sub.Copies))
	pages, _ := strconv.Atoi(strings.TrimSpace(sub.Pages))
	amount, _ := strconv.Atoi(strings.TrimSpace(sub.AmountPaid))

	var instructions *string
	if v := strings.TrimSpace(sub.Instructions); v != "" {
		instructions = &v
	}

	return &models.Order{
		OrderID:       orderID,
		Email:         strings.TrimSpace(sub.Email),
		PrintType:     sub.PrintType,
		PaperSize:     sub.PaperSize,
		Copies:        copies,
		Pages:         pages,
		DeliveryArea:  sub.DeliveryArea,
		Instructions:  instructions,
		Address:       strings.TrimSpace(sub.Address),
		ContactNumber: strings.TrimSpace(sub.ContactNumber),
		AmountPaid:    amount,
		DocumentURL:   p.blobs.PublicURL(docPath),
		DocumentName:  sub.Document.Name,
		ReceiptURL:    p.blobs.PublicURL(receiptPath),
		Status:        models.StatusPending,
	}
}

// newOrderID returns "AP-" plus the current millisecond timestamp in upper
// base36. Uniqueness is time-based only; two submissions in the same
// millisecond would collide. Known accepted risk.
func (p *Pipeline) newOrderID() string {
	return "AP-" + strings.ToUpper(strconv.FormatInt(p.now().UnixMilli(), 36))
}

// storageTimestamp renders a filesystem-safe UTC timestamp for blob paths.
func storageTimestamp(t time.Time) string {
	ts := t.UTC().Format("2006-01-02T15:04:05.000Z")
	return strings.NewReplacer(":", "-", ".", "-").Replace(ts)
}

// fileExt extracts the lower-cased extension without the dot, falling back
// when the filename has none.
func fileExt(name, fallback string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(name)), ".")
	if ext == "" {
		return fallback
	}
	return ext
}
