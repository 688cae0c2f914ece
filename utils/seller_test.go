package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectSellerBlock(t *testing.T) {
	text := `SUPERDOLL TRAILER SPARES LTD
PLOT 89 NYERERE ROAD
Tel: +255 22 2862661 info@superdoll.co.tz
Tax No: 123-456-789 VAT No: 40-005432-E
PROFORMA INVOICE
Customer Name: ACME LTD`

	seller, remaining := DetectSellerBlock(text)

	assert.NotNil(t, seller.Name)
	assert.Equal(t, "SUPERDOLL TRAILER SPARES LTD", *seller.Name)
	assert.NotNil(t, seller.Address)
	assert.Contains(t, *seller.Address, "PLOT 89 NYERERE ROAD")
	assert.NotNil(t, seller.Phone)
	assert.Equal(t, "+255 22 2862661", *seller.Phone)
	assert.NotNil(t, seller.Email)
	assert.Equal(t, "info@superdoll.co.tz", *seller.Email)
	assert.NotNil(t, seller.TaxID)
	assert.Equal(t, "123-456-789", *seller.TaxID)
	assert.NotNil(t, seller.VATReg)
	assert.Equal(t, "40-005432-E", *seller.VATReg)

	assert.NotContains(t, remaining, "SUPERDOLL")
	assert.Contains(t, remaining, "Customer Name: ACME LTD")
}

func TestDetectSellerBlockMarkerOnFirstLine(t *testing.T) {
	text := "Customer Name: ACME LTD\nNet Value: 100,000"

	seller, remaining := DetectSellerBlock(text)

	assert.Nil(t, seller.Name)
	assert.Equal(t, text, remaining)
}

func TestDetectSellerBlockStripsFirstOccurrenceOnly(t *testing.T) {
	text := `SUPERDOLL TRAILER SPARES LTD
PLOT 89 NYERERE ROAD
PROFORMA INVOICE
Supplied by:
SUPERDOLL TRAILER SPARES LTD
PLOT 89 NYERERE ROAD`

	_, remaining := DetectSellerBlock(text)

	assert.Equal(t, 1, strings.Count(remaining, "SUPERDOLL TRAILER SPARES LTD"))
}

func TestDetectSellerBlockNeverStripsWholeDocument(t *testing.T) {
	text := "GENERIC TRADING CO\nPLOT 5 MWANZA"

	seller, remaining := DetectSellerBlock(text)

	assert.NotNil(t, seller.Name)
	assert.Equal(t, text, remaining)
}
