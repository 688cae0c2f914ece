package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseLineItemsTable(t *testing.T) {
	lines := []string{
		"Sr No Item Code Description Qty Rate Value",
		"1 21004 BRAKE DRUM ASSEMBLY NOS 3 50,000.00 150,000.00",
		"2 SERVICE CHARGE 2 45,000",
		"Net Value: 195,000",
		"3 555123 GHOST ITEM 1 9,999.00 9,999.00",
	}

	items := ParseLineItems(lines)

	assert.Len(t, items, 2)

	first := items[0]
	assert.Equal(t, "BRAKE DRUM ASSEMBLY", first.Description)
	assert.NotNil(t, first.Code)
	assert.Equal(t, "21004", *first.Code)
	assert.NotNil(t, first.Unit)
	assert.Equal(t, "NOS", *first.Unit)
	assert.Equal(t, 3, first.Qty)
	assert.NotNil(t, first.Value)
	assert.True(t, first.Value.Equal(decimal.NewFromInt(150000)))
	assert.NotNil(t, first.Rate)
	assert.True(t, first.Rate.Equal(decimal.NewFromInt(50000)))

	second := items[1]
	assert.Equal(t, "SERVICE CHARGE 2", second.Description)
	assert.Equal(t, 2, second.Qty)
	assert.NotNil(t, second.Value)
	assert.True(t, second.Value.Equal(decimal.NewFromInt(45000)))
	assert.NotNil(t, second.Rate)
	assert.True(t, second.Rate.Equal(decimal.NewFromInt(22500)))
}

func TestParseLineItemsNoHeader(t *testing.T) {
	lines := []string{
		"1 21004 BRAKE DRUM ASSEMBLY 3 50,000.00 150,000.00",
		"Net Value: 150,000",
	}
	assert.Empty(t, ParseLineItems(lines))
}

func TestParseLineItemsSkipsContinuationLines(t *testing.T) {
	lines := []string{
		"Item Description Qty Rate Value",
		"1 REPAIR LABOUR 85,000.00",
		"10 PCS",
		"18%",
	}

	items := ParseLineItems(lines)

	assert.Len(t, items, 1)
	assert.Equal(t, "REPAIR LABOUR", items[0].Description)
	assert.Equal(t, 1, items[0].Qty)
	assert.NotNil(t, items[0].Value)
	assert.True(t, items[0].Value.Equal(decimal.NewFromInt(85000)))
	assert.Nil(t, items[0].Rate)
}

func TestParseLineItemsDropsRowsWithoutData(t *testing.T) {
	lines := []string{
		"Item Description Qty Rate Value",
		"1 MISC ITEM",
		"CARRIED FORWARD",
	}
	assert.Empty(t, ParseLineItems(lines))
}

func TestParseLineItemsStopsAtTotals(t *testing.T) {
	lines := []string{
		"Sr Description Qty Rate Value",
		"1 OIL FILTER 4 12,000.00 48,000.00",
		"Gross Value: 48,000",
		"2 AIR FILTER 2 30,000.00 60,000.00",
	}

	items := ParseLineItems(lines)

	assert.Len(t, items, 1)
	assert.Equal(t, "OIL FILTER 4", items[0].Description)
	assert.Equal(t, 4, items[0].Qty)
	assert.NotNil(t, items[0].Value)
	assert.True(t, items[0].Value.Equal(decimal.NewFromInt(48000)))
}
