package dto

// ErrorKind classifies terminal extraction failures. The set is closed;
// callers switch on it to decide how to prompt for manual entry.
type ErrorKind string

const (
	ErrEmptyFile             ErrorKind = "empty_file"
	ErrUnsupportedFileType   ErrorKind = "unsupported_file_type"
	ErrImageFileNotSupported ErrorKind = "image_file_not_supported"
	ErrPDFExtractionFailed   ErrorKind = "pdf_extraction_failed"
	ErrNoTextExtracted       ErrorKind = "no_text_extracted"
	ErrParsingFailed         ErrorKind = "parsing_failed"
)

var errorMessages = map[ErrorKind]string{
	ErrEmptyFile:             "File is empty. Please upload a valid PDF file.",
	ErrUnsupportedFileType:   "Please upload a PDF file.",
	ErrImageFileNotSupported: "Image files are not supported. Please convert to PDF or enter details manually.",
	ErrPDFExtractionFailed:   "Could not extract text from PDF. Please enter invoice details manually.",
	ErrNoTextExtracted:       "No readable text found in PDF (possibly a scanned image). Please enter invoice details manually.",
	ErrParsingFailed:         "Could not extract structured data from PDF. Please enter invoice details manually.",
}

// Message returns the user-facing guidance for the error kind.
func (k ErrorKind) Message() string {
	return errorMessages[k]
}

// InvoiceHeaderPayload is the wire shape of the parsed header. Monetary
// fields are coerced to float64 at this boundary only; the parsing core
// works in exact decimals.
type InvoiceHeaderPayload struct {
	InvoiceNo     *string  `json:"invoice_no"`
	CodeNo        *string  `json:"code_no"`
	Date          *string  `json:"date"`
	CustomerName  *string  `json:"customer_name"`
	Address       *string  `json:"address"`
	Phone         *string  `json:"phone"`
	Email         *string  `json:"email"`
	Reference     *string  `json:"reference"`
	Subtotal      *float64 `json:"subtotal"`
	Tax           *float64 `json:"tax"`
	TaxRate       *float64 `json:"tax_rate"`
	Total         *float64 `json:"total"`
	PaymentMethod *string  `json:"payment_method"`
	DeliveryTerms *string  `json:"delivery_terms"`
	Remarks       *string  `json:"remarks"`
	AttendedBy    *string  `json:"attended_by"`
	KindAttention *string  `json:"kind_attention"`
	SellerInfo
}

// LineItemPayload is the wire shape of a parsed item row.
type LineItemPayload struct {
	Description string   `json:"description"`
	Qty         int      `json:"qty"`
	Unit        *string  `json:"unit"`
	Code        *string  `json:"code"`
	Value       float64  `json:"value"`
	Rate        *float64 `json:"rate"`
}

// ExtractionResult is the single outcome value returned to callers.
// A failure result never carries a populated header or items; raw text may
// still be present for diagnostics and manual correction.
type ExtractionResult struct {
	ExtractionID string                `json:"extraction_id"`
	Success      bool                  `json:"success"`
	Error        ErrorKind             `json:"error,omitempty"`
	Message      string                `json:"message"`
	OCRAvailable bool                  `json:"ocr_available"`
	Header       *InvoiceHeaderPayload `json:"header"`
	Items        []LineItemPayload     `json:"items"`
	RawText      string                `json:"raw_text"`
}

// FailureResult builds a typed failure outcome. rawText may be empty when
// the failure happened before any text was recovered.
func FailureResult(kind ErrorKind, rawText string) *ExtractionResult {
	return &ExtractionResult{
		Success:      false,
		Error:        kind,
		Message:      kind.Message(),
		OCRAvailable: false,
		Items:        []LineItemPayload{},
		RawText:      rawText,
	}
}

// ErrorResponse represents a transport-level error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}
