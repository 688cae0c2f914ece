package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abbakary/nwwpos123456/config"
	"github.com/abbakary/nwwpos123456/handler"
	"github.com/abbakary/nwwpos123456/service"
)

func main() {
	cfg := config.LoadConfig()

	logger, _ := zap.NewProduction()
	defer logger.Sync()
	zap.ReplaceGlobals(logger)
	log := logger.Sugar()

	// Providers are tried in this order; the first non-blank output wins.
	extractionService := service.NewExtractionService(log,
		service.NewPDFReaderExtractor(),
		service.NewContentStreamExtractor(),
	)

	invoiceHandler := handler.NewInvoiceHandler(extractionService, cfg.MaxFileSize, log)

	router := gin.Default()

	// Configure max multipart memory (32 MB)
	router.MaxMultipartMemory = 32 << 20

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":        "healthy",
			"service":       "Invoice Extraction",
			"ocr_available": false,
		})
	})

	api := router.Group("/api/v1")
	{
		invoices := api.Group("/invoices")
		{
			invoices.POST("/extract", invoiceHandler.ExtractInvoice)
		}
	}

	log.Infof("Starting Invoice Extraction Service on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
