package dto

import "github.com/shopspring/decimal"

// SellerInfo holds supplier identity detected in the document header block.
// All fields are optional; detection is best-effort.
type SellerInfo struct {
	Name    *string `json:"seller_name"`
	Address *string `json:"seller_address"`
	Phone   *string `json:"seller_phone"`
	Email   *string `json:"seller_email"`
	TaxID   *string `json:"seller_tax_id"`
	VATReg  *string `json:"seller_vat_reg"`
}

// LineItem is a single parsed row of the invoice item table.
// Money fields stay exact decimals inside the parsing core.
type LineItem struct {
	Description string
	Qty         int
	Unit        *string
	Rate        *decimal.Decimal
	Value       *decimal.Decimal
	Code        *string
}

// ParsedInvoice is the full output of the text parser. Every field is
// independently nullable: a field the parser could not recover stays nil
// without blocking the others.
type ParsedInvoice struct {
	InvoiceNo     *string
	CodeNo        *string
	Date          *string
	CustomerName  *string
	Address       *string
	Phone         *string
	Email         *string
	Reference     *string
	Subtotal      *decimal.Decimal
	Tax           *decimal.Decimal
	TaxRate       *decimal.Decimal
	Total         *decimal.Decimal
	PaymentMethod *string
	DeliveryTerms *string
	Remarks       *string
	AttendedBy    *string
	KindAttention *string
	Items         []LineItem
	Seller        SellerInfo
}

// HasSignal reports whether the parse produced any usable data. An all-nil
// header with no items is treated as a failed extraction, not a success.
func (p *ParsedInvoice) HasSignal() bool {
	if p == nil {
		return false
	}
	if p.CustomerName != nil {
		return true
	}
	if len(p.Items) > 0 {
		return true
	}
	return p.Subtotal != nil || p.Tax != nil || p.Total != nil
}
