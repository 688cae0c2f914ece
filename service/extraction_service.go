package service

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/abbakary/nwwpos123456/dto"
	"github.com/abbakary/nwwpos123456/utils"
)

var pdfMagic = []byte("%PDF")

var imageSuffixes = []string{".jpg", ".jpeg", ".png", ".gif", ".tiff", ".bmp"}

// ExtractionService drives the pipeline end to end: classify the upload,
// obtain text from the extraction providers, parse it, and classify the
// outcome. It holds no mutable state across calls, so concurrent
// extractions are independently safe.
type ExtractionService struct {
	extractors []TextExtractor
	log        *zap.SugaredLogger
}

func NewExtractionService(log *zap.SugaredLogger, extractors ...TextExtractor) *ExtractionService {
	return &ExtractionService{
		extractors: extractors,
		log:        log,
	}
}

// ExtractFromBytes is the main entry point: extract text from the file and
// parse invoice data out of it. Only PDF input is supported; image files
// require manual entry because OCR is not available.
func (s *ExtractionService) ExtractFromBytes(fileBytes []byte, filename string) *dto.ExtractionResult {
	extractionID := uuid.NewString()

	if len(fileBytes) == 0 {
		return s.failure(extractionID, dto.ErrEmptyFile, "")
	}

	lower := strings.ToLower(filename)
	for _, suffix := range imageSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return s.failure(extractionID, dto.ErrImageFileNotSupported, "")
		}
	}

	isPDF := strings.HasSuffix(lower, ".pdf") ||
		(len(fileBytes) >= 4 && bytes.Equal(fileBytes[:4], pdfMagic))
	if !isPDF {
		return s.failure(extractionID, dto.ErrUnsupportedFileType, "")
	}

	text, err := s.extractText(fileBytes)
	if err != nil {
		s.log.Errorw("PDF text extraction failed", "extraction_id", extractionID, "file", filename, "error", err)
		return s.failure(extractionID, dto.ErrPDFExtractionFailed, "")
	}

	if strings.TrimSpace(text) == "" {
		s.log.Warnw("PDF text extraction returned empty text", "extraction_id", extractionID, "file", filename)
		return s.failure(extractionID, dto.ErrNoTextExtracted, "")
	}

	return s.parseAndClassify(extractionID, text)
}

// extractText tries each provider in priority order and returns the first
// non-blank output. A provider failure moves on to the next one; when all
// fail, the combined error names each provider's reason.
func (s *ExtractionService) extractText(fileBytes []byte) (string, error) {
	if len(s.extractors) == 0 {
		return "", errors.New("no PDF extraction provider available")
	}

	var reasons []string
	for _, extractor := range s.extractors {
		text, err := safeExtract(extractor, fileBytes)
		if err != nil {
			s.log.Warnw("extraction provider failed", "provider", extractor.Name(), "error", err)
			reasons = append(reasons, fmt.Sprintf("%s: %v", extractor.Name(), err))
			continue
		}
		if strings.TrimSpace(text) != "" {
			s.log.Infow("extracted text from PDF", "provider", extractor.Name(), "chars", len(text))
			return text, nil
		}
		s.log.Debugw("extraction provider found no text", "provider", extractor.Name())
	}
	if len(reasons) == len(s.extractors) {
		return "", fmt.Errorf("PDF extraction failed - %s", strings.Join(reasons, ". "))
	}
	// At least one provider ran cleanly but the document has no text layer.
	return "", nil
}

// safeExtract shields the pipeline from a panicking provider; a panic is
// treated as that provider's failure.
func safeExtract(extractor TextExtractor, fileBytes []byte) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider panicked: %v", r)
		}
	}()
	return extractor.ExtractText(fileBytes)
}

// parseAndClassify runs the field and line-item extraction and decides
// between success and a low-confidence failure. Raw text is kept on the
// failure path for diagnostics and manual correction.
func (s *ExtractionService) parseAndClassify(extractionID, text string) (result *dto.ExtractionResult) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Errorw("invoice parsing failed", "extraction_id", extractionID, "error", r)
			result = s.failure(extractionID, dto.ErrParsingFailed, text)
		}
	}()

	parsed := utils.ParseInvoiceText(text)

	if !parsed.HasSignal() {
		s.log.Warnw("PDF text extracted but no invoice data found after parsing", "extraction_id", extractionID)
		return s.failure(extractionID, dto.ErrParsingFailed, text)
	}

	s.log.Infow("extracted invoice data",
		"extraction_id", extractionID,
		"has_customer", parsed.CustomerName != nil,
		"items", len(parsed.Items),
		"has_amounts", parsed.Subtotal != nil || parsed.Tax != nil || parsed.Total != nil,
	)

	return &dto.ExtractionResult{
		ExtractionID: extractionID,
		Success:      true,
		Message:      "Invoice data extracted successfully",
		OCRAvailable: false,
		Header:       buildHeaderPayload(parsed),
		Items:        buildItemPayloads(parsed.Items),
		RawText:      text,
	}
}

func (s *ExtractionService) failure(extractionID string, kind dto.ErrorKind, rawText string) *dto.ExtractionResult {
	result := dto.FailureResult(kind, rawText)
	result.ExtractionID = extractionID
	return result
}

// buildHeaderPayload converts the parsed header to its wire shape. This is
// the one place where exact decimals become float64.
func buildHeaderPayload(parsed *dto.ParsedInvoice) *dto.InvoiceHeaderPayload {
	return &dto.InvoiceHeaderPayload{
		InvoiceNo:     parsed.InvoiceNo,
		CodeNo:        parsed.CodeNo,
		Date:          parsed.Date,
		CustomerName:  parsed.CustomerName,
		Address:       parsed.Address,
		Phone:         parsed.Phone,
		Email:         parsed.Email,
		Reference:     parsed.Reference,
		Subtotal:      decimalToFloat(parsed.Subtotal),
		Tax:           decimalToFloat(parsed.Tax),
		TaxRate:       decimalToFloat(parsed.TaxRate),
		Total:         decimalToFloat(parsed.Total),
		PaymentMethod: parsed.PaymentMethod,
		DeliveryTerms: parsed.DeliveryTerms,
		Remarks:       parsed.Remarks,
		AttendedBy:    parsed.AttendedBy,
		KindAttention: parsed.KindAttention,
		SellerInfo:    parsed.Seller,
	}
}

func buildItemPayloads(items []dto.LineItem) []dto.LineItemPayload {
	payloads := make([]dto.LineItemPayload, 0, len(items))
	for _, item := range items {
		payload := dto.LineItemPayload{
			Description: item.Description,
			Qty:         item.Qty,
			Unit:        item.Unit,
			Code:        item.Code,
			Rate:        decimalToFloat(item.Rate),
		}
		if item.Value != nil {
			payload.Value = item.Value.InexactFloat64()
		}
		payloads = append(payloads, payload)
	}
	return payloads
}

func decimalToFloat(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}
