package handler

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abbakary/nwwpos123456/dto"
	"github.com/abbakary/nwwpos123456/service"
)

type InvoiceHandler struct {
	extractionService *service.ExtractionService
	maxFileSize       int64
	log               *zap.SugaredLogger
}

func NewInvoiceHandler(extractionService *service.ExtractionService, maxFileSize int64, log *zap.SugaredLogger) *InvoiceHandler {
	return &InvoiceHandler{
		extractionService: extractionService,
		maxFileSize:       maxFileSize,
		log:               log,
	}
}

// ExtractInvoice handles the POST /invoices/extract endpoint. Typed
// extraction failures come back as 200 responses with success=false so the
// client can route the user to manual entry; only transport problems are
// HTTP errors.
func (h *InvoiceHandler) ExtractInvoice(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "No file provided", err)
		return
	}

	request := &dto.InvoiceExtractionRequest{File: fileHeader}
	if err := request.Validate(h.maxFileSize); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to open uploaded file", err)
		return
	}
	defer f.Close()

	fileBytes, err := io.ReadAll(f)
	if err != nil {
		h.sendError(c, http.StatusInternalServerError, "Failed to read uploaded file", err)
		return
	}

	h.log.Infow("received invoice extraction request", "file", fileHeader.Filename, "size", fileHeader.Size)

	result := h.extractionService.ExtractFromBytes(fileBytes, fileHeader.Filename)
	c.JSON(http.StatusOK, result)
}

// sendError sends a structured error response.
func (h *InvoiceHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		h.log.Warnw("request failed", "message", message, "error", err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "EXTRACTION_REQUEST_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
