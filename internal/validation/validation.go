// Package validation implements the order form's per-field rules. The same
// rules run incrementally on the client and exhaustively on the server; the
// server never trusts the client-side pass.
package validation

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"anonprint-backend/internal/models"
	"anonprint-backend/internal/pricing"
)

// MaxFileSize caps both uploads at 10MB.
const MaxFileSize = 10 << 20

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^09\d{9}$`)
)

var docExtensions = map[string]bool{
	".pdf": true, ".doc": true, ".docx": true, ".ppt": true, ".pptx": true,
	".xls": true, ".xlsx": true, ".jpg": true, ".jpeg": true, ".png": true,
}

var receiptExtensions = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".pdf": true,
}

// FieldOrder lists every validated field in form order. Exhaustive
// validation walks this list so error aggregation is stable.
var FieldOrder = []string{
	"email",
	"document",
	"print_type",
	"paper_size",
	"copies",
	"pages",
	"delivery_area",
	"address",
	"contact_number",
	"receipt",
	"amount_paid",
}

// Field validates one field and returns its user-facing message, or ""
// when the value passes. file is only consulted for document/receipt;
// minAmount only for amount_paid (0 means no computable order total, so
// the ₱200 floor applies).
func Field(name, value string, file *models.FileUpload, minAmount int) string {
	switch name {
	case "email":
		v := strings.TrimSpace(value)
		if v == "" {
			return "Email is required for tracking updates"
		}
		if !emailRe.MatchString(v) {
			return "Enter a valid email address"
		}
	case "document":
		if file == nil {
			return "Please upload your document"
		}
		if file.Size > MaxFileSize {
			return "File too large — max 10MB"
		}
		if !docExtensions[extOf(file.Name)] {
			return "Unsupported format — use PDF, DOC, PPT, JPG, or PNG"
		}
	case "print_type":
		if value != "bw" && value != "color" {
			return "Select B&W or Color"
		}
	case "paper_size":
		if value != "short" && value != "long" && value != "a4" {
			return "Select a paper size"
		}
	case "copies":
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err != nil || n < 1 {
			return "At least 1 copy required"
		}
	case "pages":
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err != nil || n < 1 {
			return "At least 1 page required"
		}
	case "delivery_area":
		if strings.TrimSpace(value) == "" {
			return "Select your delivery area"
		}
		if !pricing.KnownArea(value) {
			return "Delivery area not covered"
		}
	case "address":
		v := strings.TrimSpace(value)
		if v == "" {
			return "Delivery address is required"
		}
		if len(v) < 10 {
			return "Please enter a complete address"
		}
	case "contact_number":
		if strings.TrimSpace(value) == "" {
			return "Contact number is required"
		}
		if !phoneRe.MatchString(stripSpaces(value)) {
			return "Enter a valid PH number (09XX XXX XXXX)"
		}
	case "receipt":
		if file == nil {
			return "Please upload your payment receipt"
		}
		if file.Size > MaxFileSize {
			return "File too large — max 10MB"
		}
		if !receiptExtensions[extOf(file.Name)] {
			return "Use JPG, PNG, or PDF only"
		}
	case "amount_paid":
		if strings.TrimSpace(value) == "" {
			return "Amount is required"
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return "Enter a valid amount"
		}
		// The computed order total is the minimum when a quote exists;
		// the ₱200 floor only applies when it does not.
		min := pricing.MinimumOrder
		if minAmount > 0 {
			min = minAmount
		}
		if n < min {
			if min == pricing.MinimumOrder {
				return "Minimum order is ₱200"
			}
			return fmt.Sprintf("Amount must cover the order total of ₱%d", min)
		}
	}
	return ""
}

// All runs every field rule against the submission and aggregates the
// violations, keyed by field name, so the user sees every problem at once.
func All(sub *models.Submission, minAmount int) map[string]string {
	errs := make(map[string]string)
	for _, name := range FieldOrder {
		var value string
		var file *models.FileUpload
		switch name {
		case "email":
			value = sub.Email
		case "document":
			file = sub.Document
		case "print_type":
			value = sub.PrintType
		case "paper_size":
			value = sub.PaperSize
		case "copies":
			value = sub.Copies
		case "pages":
			value = sub.Pages
		case "delivery_area":
			value = sub.DeliveryArea
		case "address":
			value = sub.Address
		case "contact_number":
			value = sub.ContactNumber
		case "receipt":
			file = sub.Receipt
		case "amount_paid":
			value = sub.AmountPaid
		}
		if msg := Field(name, value, file, minAmount); msg != "" {
			errs[name] = msg
		}
	}
	// Files must also be non-empty server-side; a zero-byte part passes
	// the size cap but is not a usable upload.
	if sub.Document != nil && sub.Document.Size == 0 {
		errs["document"] = "Please upload your document"
	}
	if sub.Receipt != nil && sub.Receipt.Size == 0 {
		errs["receipt"] = "Please upload your payment receipt"
	}
	return errs
}

func extOf(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}
