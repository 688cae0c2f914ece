package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/abbakary/nwwpos123456/dto"
)

type stubExtractor struct {
	name string
	text string
	err  error
}

func (s stubExtractor) Name() string { return s.name }

func (s stubExtractor) ExtractText([]byte) (string, error) { return s.text, s.err }

type panicExtractor struct{}

func (panicExtractor) Name() string { return "panicky" }

func (panicExtractor) ExtractText([]byte) (string, error) { panic("malformed xref") }

const invoiceText = `Customer Name: ACME LTD
P.O.BOX 1234
DAR ES SALAAM
TANZANIA
Net Value: 100,000.00
VAT: 18,000.00
Gross Value: 118,000.00`

var pdfBytes = []byte("%PDF-1.4 stub")

func newTestService(extractors ...TextExtractor) *ExtractionService {
	return NewExtractionService(zap.NewNop().Sugar(), extractors...)
}

func TestExtractFromBytesSuccess(t *testing.T) {
	svc := newTestService(stubExtractor{name: "stub", text: invoiceText})

	result := svc.ExtractFromBytes(pdfBytes, "invoice.pdf")

	assert.True(t, result.Success)
	assert.Empty(t, result.Error)
	assert.NotEmpty(t, result.ExtractionID)
	assert.False(t, result.OCRAvailable)
	assert.Equal(t, invoiceText, result.RawText)

	assert.NotNil(t, result.Header)
	assert.NotNil(t, result.Header.CustomerName)
	assert.Equal(t, "ACME LTD", *result.Header.CustomerName)
	assert.NotNil(t, result.Header.Subtotal)
	assert.Equal(t, 100000.0, *result.Header.Subtotal)
	assert.NotNil(t, result.Header.Tax)
	assert.Equal(t, 18000.0, *result.Header.Tax)
	assert.NotNil(t, result.Header.Total)
	assert.Equal(t, 118000.0, *result.Header.Total)
}

func TestExtractFromBytesEmptyFile(t *testing.T) {
	svc := newTestService(stubExtractor{name: "stub", text: invoiceText})

	result := svc.ExtractFromBytes(nil, "invoice.pdf")

	assert.False(t, result.Success)
	assert.Equal(t, dto.ErrEmptyFile, result.Error)
	assert.Equal(t, dto.ErrEmptyFile.Message(), result.Message)
	assert.Nil(t, result.Header)
}

func TestExtractFromBytesRejectsImages(t *testing.T) {
	svc := newTestService(stubExtractor{name: "stub", text: invoiceText})

	for _, name := range []string{"scan.jpg", "scan.JPEG", "photo.png", "fax.tiff"} {
		result := svc.ExtractFromBytes([]byte("binary"), name)
		assert.False(t, result.Success, name)
		assert.Equal(t, dto.ErrImageFileNotSupported, result.Error, name)
	}
}

func TestExtractFromBytesRejectsNonPDF(t *testing.T) {
	svc := newTestService(stubExtractor{name: "stub", text: invoiceText})

	result := svc.ExtractFromBytes([]byte("hello world"), "notes.txt")

	assert.False(t, result.Success)
	assert.Equal(t, dto.ErrUnsupportedFileType, result.Error)
}

func TestExtractFromBytesAcceptsMagicWithoutExtension(t *testing.T) {
	svc := newTestService(stubExtractor{name: "stub", text: invoiceText})

	result := svc.ExtractFromBytes(pdfBytes, "upload.bin")

	assert.True(t, result.Success)
}

func TestExtractFromBytesProviderFallback(t *testing.T) {
	svc := newTestService(
		stubExtractor{name: "first", err: errors.New("encrypted stream")},
		panicExtractor{},
		stubExtractor{name: "last", text: invoiceText},
	)

	result := svc.ExtractFromBytes(pdfBytes, "invoice.pdf")

	assert.True(t, result.Success)
	assert.Equal(t, invoiceText, result.RawText)
}

func TestExtractFromBytesAllProvidersFail(t *testing.T) {
	svc := newTestService(
		stubExtractor{name: "first", err: errors.New("encrypted stream")},
		panicExtractor{},
	)

	result := svc.ExtractFromBytes(pdfBytes, "invoice.pdf")

	assert.False(t, result.Success)
	assert.Equal(t, dto.ErrPDFExtractionFailed, result.Error)
}

func TestExtractFromBytesNoProviders(t *testing.T) {
	svc := newTestService()

	result := svc.ExtractFromBytes(pdfBytes, "invoice.pdf")

	assert.False(t, result.Success)
	assert.Equal(t, dto.ErrPDFExtractionFailed, result.Error)
}

func TestExtractFromBytesNoTextLayer(t *testing.T) {
	svc := newTestService(
		stubExtractor{name: "first", err: errors.New("encrypted stream")},
		stubExtractor{name: "second", text: "   \n  "},
	)

	result := svc.ExtractFromBytes(pdfBytes, "invoice.pdf")

	assert.False(t, result.Success)
	assert.Equal(t, dto.ErrNoTextExtracted, result.Error)
}

func TestExtractFromBytesParsingFailedKeepsRawText(t *testing.T) {
	noise := "lorem ipsum dolor\nsit amet consectetur\nadipiscing elit sed"
	svc := newTestService(stubExtractor{name: "stub", text: noise})

	result := svc.ExtractFromBytes(pdfBytes, "invoice.pdf")

	assert.False(t, result.Success)
	assert.Equal(t, dto.ErrParsingFailed, result.Error)
	assert.Equal(t, noise, result.RawText)
	assert.Nil(t, result.Header)
	assert.Empty(t, result.Items)
}

func TestExtractFromBytesLineItems(t *testing.T) {
	text := invoiceText + "\nSr No Item Code Description Qty Rate Value\n1 21004 BRAKE DRUM ASSEMBLY NOS 3 50,000.00 150,000.00"
	svc := newTestService(stubExtractor{name: "stub", text: text})

	result := svc.ExtractFromBytes(pdfBytes, "invoice.pdf")

	assert.True(t, result.Success)
	assert.Len(t, result.Items, 1)
	assert.Equal(t, "BRAKE DRUM ASSEMBLY", result.Items[0].Description)
	assert.Equal(t, 3, result.Items[0].Qty)
	assert.Equal(t, 150000.0, result.Items[0].Value)
	assert.NotNil(t, result.Items[0].Rate)
	assert.Equal(t, 50000.0, *result.Items[0].Rate)
}
