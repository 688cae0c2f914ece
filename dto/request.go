package dto

import (
	"errors"
	"mime/multipart"
)

// InvoiceExtractionRequest represents the incoming upload request.
type InvoiceExtractionRequest struct {
	File *multipart.FileHeader `form:"file" binding:"required"`
}

// Validate performs basic validation on the request.
func (r *InvoiceExtractionRequest) Validate(maxFileSize int64) error {
	if r.File == nil {
		return errors.New("file is required")
	}
	if r.File.Size == 0 {
		return errors.New("file is empty")
	}
	if maxFileSize > 0 && r.File.Size > maxFileSize {
		return errors.New("file exceeds maximum allowed size")
	}
	return nil
}
