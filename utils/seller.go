package utils

import (
	"regexp"
	"strings"

	"github.com/abbakary/nwwpos123456/dto"
)

// sellerBlockScanDepth bounds how far into the document the seller header
// can reach.
const sellerBlockScanDepth = 8

var (
	invoiceMarkerRe = regexp.MustCompile(`(?i)Proforma|Invoice\b|PI\b|Customer\b|Bill\s*To|Date\b|Customer\s*Reference|Invoice\s*No|Code`)
	sellerPhoneRe   = regexp.MustCompile(`(?i)(?:Tel\.?|Telephone|Phone)[:\s]*([+\d][\d\s\-/(),]{4,}\d)`)
	emailRe         = regexp.MustCompile(`([\w.\-]+@[\w.\-]+\.\w+)`)
	sellerTaxIDRe   = regexp.MustCompile(`(?i)(?:Tax\s*ID|Tax\s*No\.?|Tax\s*Number)[:\s]*([A-Z0-9\-/]+)`)
	sellerVATRegRe  = regexp.MustCompile(`(?i)(?:VAT\s*Reg\.?|VAT\s*No\.?|VAT)[:\s]*([A-Z0-9\-/]+)`)
)

// DetectSellerBlock separates the supplier header at the top of the
// document from the invoice body. It returns the seller identity and the
// working text with the seller block removed, so later extractors are not
// confused by header noise. The removal happens exactly once (first
// occurrence). Detection is strictly best-effort: on any internal failure
// the seller fields stay nil and the text comes back unmodified.
func DetectSellerBlock(text string) (seller dto.SellerInfo, remaining string) {
	remaining = text
	defer func() {
		if r := recover(); r != nil {
			seller = dto.SellerInfo{}
			remaining = text
		}
	}()

	top := nonBlankLines(text)
	if len(top) > sellerBlockScanDepth {
		top = top[:sellerBlockScanDepth]
	}

	splitIdx := -1
	for i, line := range top {
		if invoiceMarkerRe.MatchString(line) {
			splitIdx = i
			break
		}
	}
	if splitIdx < 0 {
		// No explicit marker: assume the first 1-2 lines are the header.
		splitIdx = 2
		if len(top) < splitIdx {
			splitIdx = len(top)
		}
	}

	sellerLines := top[:splitIdx]
	if len(sellerLines) == 0 {
		return seller, remaining
	}

	seller.Name = strPtr(sellerLines[0])
	if len(sellerLines) > 1 {
		seller.Address = strPtr(strings.Join(sellerLines[1:], " "))
	}

	block := strings.Join(sellerLines, "\n")
	if m := sellerPhoneRe.FindStringSubmatch(block); m != nil {
		seller.Phone = strPtr(m[1])
	}
	if m := emailRe.FindStringSubmatch(block); m != nil {
		seller.Email = strPtr(m[1])
	}
	if m := sellerTaxIDRe.FindStringSubmatch(block); m != nil {
		seller.TaxID = strPtr(m[1])
	}
	if m := sellerVATRegRe.FindStringSubmatch(block); m != nil {
		seller.VATReg = strPtr(m[1])
	}

	stripped := strings.Replace(remaining, block, "", 1)
	if strings.TrimSpace(stripped) == "" {
		// A block that covers the whole document is not a seller header.
		return seller, remaining
	}
	return seller, stripped
}

// nonBlankLines returns the trimmed, non-empty lines of text in order.
func nonBlankLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func strPtr(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
