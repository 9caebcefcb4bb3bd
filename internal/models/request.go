package models

// FileUpload holds one file from the multipart payload, fully read into
// memory (uploads are capped at 10MB well before this point).
type FileUpload struct {
	Name        string
	Size        int64
	ContentType string
	Data        []byte
}

// Submission is the raw order form payload. Numeric fields stay strings
// until validation has run; the client is never trusted to send integers.
type Submission struct {
	Email         string
	PrintType     string
	PaperSize     string
	Copies        string
	Pages         string
	DeliveryArea  string
	Instructions  string
	Address       string
	ContactNumber string
	AmountPaid    string

	Document *FileUpload
	Receipt  *FileUpload

	// Honeypot carries the hidden "website" field. Real users leave it empty.
	Honeypot     string
	CaptchaToken string
	ClientIP     string
}
