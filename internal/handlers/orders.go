package handlers

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"anonprint-backend/internal/models"
	"anonprint-backend/internal/submission"
)

// maxRequestBody caps the whole multipart payload: two 10MB uploads plus
// form fields.
const maxRequestBody = 25 << 20

// Submitter runs the intake pipeline for one parsed submission.
type Submitter interface {
	Submit(ctx context.Context, sub *models.Submission) models.OrderResult
}

type OrderHandler struct {
	submitter Submitter
	log       *logrus.Logger
}

func NewOrderHandler(submitter Submitter, log *logrus.Logger) *OrderHandler {
	return &OrderHandler{submitter: submitter, log: log}
}

// SubmitOrder godoc
// @Summary     Submit a print order
// @Description Accepts the multipart order form (fields, document and receipt uploads), runs the intake pipeline and returns the outcome. Field errors come back keyed by field name.
// @Tags        orders
// @Accept      multipart/form-data
// @Produce     json
// @Success     201 {object} models.OrderResult
// @Failure     400 {object} models.OrderResult
// @Failure     429 {object} models.OrderResult
// @Failure     500 {object} models.OrderResult
// @Router      /api/v1/orders [post]
func (h *OrderHandler) SubmitOrder(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxRequestBody)
	if err := c.Request.ParseMultipartForm(maxRequestBody); err != nil {
		h.log.WithError(err).Warn("rejected unparseable order payload")
		c.JSON(http.StatusBadRequest, models.OrderResult{
			Success: false,
			Error:   "Invalid form submission. Please try again.",
		})
		return
	}

	sub := &models.Submission{
		Email:         c.PostForm("email"),
		PrintType:     c.PostForm("print_type"),
		PaperSize:     c.PostForm("paper_size"),
		Copies:        c.PostForm("copies"),
		Pages:         c.PostForm("pages"),
		DeliveryArea:  c.PostForm("delivery_area"),
		Instructions:  c.PostForm("instructions"),
		Address:       c.PostForm("address"),
		ContactNumber: c.PostForm("contact_number"),
		AmountPaid:    c.PostForm("amount_paid"),
		Honeypot:      c.PostForm("website"),
		CaptchaToken:  c.PostForm("g-recaptcha-response"),
		ClientIP:      clientIP(c),
	}

	var err error
	if sub.Document, err = formFile(c, "document"); err != nil {
		h.log.WithError(err).Warn("failed to read document upload")
		c.JSON(http.StatusBadRequest, models.OrderResult{
			Success:     false,
			Error:       submission.MsgInvalidFields,
			FieldErrors: map[string]string{"document": "Please upload your document"},
		})
		return
	}
	if sub.Receipt, err = formFile(c, "receipt"); err != nil {
		h.log.WithError(err).Warn("failed to read receipt upload")
		c.JSON(http.StatusBadRequest, models.OrderResult{
			Success:     false,
			Error:       submission.MsgInvalidFields,
			FieldErrors: map[string]string{"receipt": "Please upload your payment receipt"},
		})
		return
	}

	result := h.submitter.Submit(c.Request.Context(), sub)
	c.JSON(statusFor(result), result)
}

// formFile reads one named upload fully into memory. A missing part is not
// an error here; the pipeline's validation reports it with the proper
// field message.
func formFile(c *gin.Context, name string) (*models.FileUpload, error) {
	file, header, err := c.Request.FormFile(name)
	if err == http.ErrMissingFile {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}
	return &models.FileUpload{
		Name:        header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// clientIP resolves the submitting client's address for rate limiting
// from the proxy headers the hosting platform sets. Without a proxy in
// front every direct client shares the "unknown" bucket.
func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		if first, _, found := strings.Cut(xff, ","); found {
			return strings.TrimSpace(first)
		}
		return strings.TrimSpace(xff)
	}
	if real := c.GetHeader("X-Real-IP"); real != "" {
		return real
	}
	return "unknown"
}

// statusFor maps a pipeline result to an HTTP status. The body carries the
// user-facing detail either way.
func statusFor(result models.OrderResult) int {
	if result.Success {
		return http.StatusCreated
	}
	switch result.Error {
	case submission.MsgTooManySubmissions:
		return http.StatusTooManyRequests
	case submission.MsgCaptchaRequired, submission.MsgInvalidFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
