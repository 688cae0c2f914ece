package utils

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/abbakary/nwwpos123456/dto"
)

// ParseInvoiceText extracts structured invoice data from raw text using
// pattern heuristics. The text usually comes out of a PDF with multi-column
// layouts linearized, so labels and values may be interleaved, reordered,
// or split across unrelated lines; every field therefore runs an ordered
// list of strategies and degrades to nil on its own when none match.
//
// The returned record always carries the full header shape. Repeated calls
// over the same text yield identical results; the only mutation in the
// pipeline is the one-time seller block strip at the start.
func ParseInvoiceText(text string) *dto.ParsedInvoice {
	parsed := &dto.ParsedInvoice{Items: []dto.LineItem{}}
	if strings.TrimSpace(text) == "" {
		return parsed
	}

	working := strings.TrimSpace(text)
	// Head-section lines before the seller strip; the loose code/invoice
	// number fallbacks scan these.
	cleanedLines := nonBlankLines(working)

	seller, working := DetectSellerBlock(working)
	parsed.Seller = seller

	bodyLines := nonBlankLines(working)

	parsed.CodeNo = extractCodeNo(working, cleanedLines)
	parsed.CustomerName = extractCustomerName(working)
	parsed.Address = extractAddress(bodyLines)

	// Scrambled layouts sometimes glue the customer name onto the address
	// block. When no name was found, test the leading address tokens and
	// reassign them if they look like a name.
	if parsed.CustomerName == nil && parsed.Address != nil {
		fields := strings.Fields(*parsed.Address)
		potential := strings.Join(fields[:min(3, len(fields))], " ")
		if isLikelyCustomerName(potential) {
			parsed.CustomerName = &potential
			rest := strings.TrimSpace(strings.TrimPrefix(*parsed.Address, potential))
			if len(rest) < 3 {
				parsed.Address = nil
			} else {
				parsed.Address = &rest
			}
		}
	}

	parsed.Phone = extractPhone(bodyLines)
	parsed.Email = extractEmail(working)
	parsed.Reference = extractReference(working)
	parsed.InvoiceNo = extractInvoiceNo(working, cleanedLines)
	parsed.Date = extractDate(working)

	parsed.Subtotal = findAmount(working, subtotalLabels)
	parsed.Tax = findAmount(working, taxLabels)
	parsed.TaxRate = extractTaxRate(working, parsed.Subtotal, parsed.Tax)
	parsed.Total = findAmount(working, totalLabels)

	parsed.PaymentMethod = extractPaymentMethod(working)
	parsed.DeliveryTerms = extractDeliveryTerms(working)
	parsed.Remarks = extractRemarks(working)
	parsed.AttendedBy = extractAttendedBy(working)
	parsed.KindAttention = extractKindAttention(working)

	parsed.Items = ParseLineItems(bodyLines)
	return parsed
}

var digitRe = regexp.MustCompile(`\d`)

// isLikelyCustomerName checks whether text looks like a company or person
// name rather than an address.
func isLikelyCustomerName(text string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, kw := range addressKeywords {
		if strings.Contains(lower, kw) {
			return false
		}
	}

	hasCompanyIndicator := false
	for _, ind := range companyIndicators {
		if strings.Contains(lower, ind) {
			hasCompanyIndicator = true
			break
		}
	}

	first, _ := utf8.DecodeRuneInString(text)
	wellFormatted := len(text) > 2 && (unicode.IsUpper(first) || isUpperString(text))
	if !wellFormatted || len(text) < 4 {
		return false
	}
	return hasCompanyIndicator || !strings.Contains(text, " ") || len(strings.Fields(text)) <= 5
}

// isLikelyAddress checks whether text looks like an address: location
// keywords, or numeric tokens combined with multiple parts.
func isLikelyAddress(text string) bool {
	if text == "" {
		return false
	}
	lower := strings.ToLower(text)
	for _, ind := range addressIndicators {
		if strings.Contains(lower, ind) {
			return true
		}
	}
	hasNumbers := digitRe.MatchString(text)
	hasMultipart := strings.Contains(text, ",") || strings.Contains(text, " ")
	return hasNumbers && hasMultipart && len(text) > 5
}

// isUpperString mirrors a "fully uppercase" test: all cased characters are
// upper and at least one cased character exists.
func isUpperString(s string) bool {
	return s == strings.ToUpper(s) && s != strings.ToLower(s)
}

// --- code number ---

var codeNoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)Code\s*No\s*[:=]\s*([^\n]+)`),
	regexp.MustCompile(`(?im)Code\s*#\s*[:=]\s*([^\n]+)`),
	regexp.MustCompile(`(?i)Code\s*No\.?\s*[:=]?\s*([A-Z0-9\-]+)`),
	regexp.MustCompile(`(?im)Code\s*[:=]\s*([^\n]+)`),
}

var (
	codeNoTrailerRe = regexp.MustCompile(`(?i)\s+(?:Customer|Date|Reference|PI|Tel|Phone|Address)\b.*`)
	looseCodeRe     = regexp.MustCompile(`(?i)Code\s*(?:No|#)?\s*[:=]?\s*([A-Z0-9\-]{3,20})`)
)

func extractCodeNo(text string, cleanedLines []string) *string {
	for _, re := range codeNoPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		code := strings.TrimSpace(codeNoTrailerRe.ReplaceAllString(strings.TrimSpace(m[1]), ""))
		if len(code) > 1 {
			return &code
		}
	}

	// Loosest tier: a standalone code token in the header region.
	header := strings.Join(headLines(cleanedLines, 20), "\n")
	if m := looseCodeRe.FindStringSubmatch(header); m != nil {
		code := strings.TrimSpace(m[1])
		if code != "" {
			return &code
		}
	}
	return nil
}

// --- customer name ---

var (
	customerNameRe        = regexp.MustCompile(`(?im)Customer\s+Name\s*[:=]?\s*([A-Z][^\n]*)`)
	customerNameLeadRe    = regexp.MustCompile(`(?i)^Customer\s*Name?\s*[:=]?\s*`)
	customerNameTrailRe   = regexp.MustCompile(`(?i)\s+Customer\s*Name?.*`)
	customerLabelTrailRe  = regexp.MustCompile(`(?i)\s+(?:Reference|Ref\.?|Address|Tel|Phone|Fax|Email|Attended|Kind|Code|PI|Date|Cust|Del\.|Type|Qty|Rate|Value)\b.*`)
	customerNameLabelRe   = regexp.MustCompile(`(?i)Customer\s*Name\s*:?`)
	contactLabelStartRe   = regexp.MustCompile(`(?i)^(?:Address|Tel|Fax|Email|Phone|Reference)\b`)
	degenerateNameUppers  = map[string]bool{"REFERENCE": true, "ADDRESS": true, "TEL": true, "FAX": true, "EMAIL": true}
	customerNameMaxLength = 200
)

func extractCustomerName(text string) *string {
	name := ""

	// Strategy 1: explicit "Customer Name" label, value on the same line.
	if m := customerNameRe.FindStringSubmatch(text); m != nil {
		name = strings.TrimSpace(m[1])
		// Scrambled layouts can duplicate the label around the value.
		name = strings.TrimSpace(customerNameLeadRe.ReplaceAllString(name, ""))
		name = strings.TrimSpace(customerNameTrailRe.ReplaceAllString(name, ""))
		name = strings.TrimSpace(customerLabelTrailRe.ReplaceAllString(name, ""))

		if name == "" || len(name) <= 3 || degenerateNameUppers[strings.ToUpper(name)] || contactLabelStartRe.MatchString(name) {
			name = ""
		}
	}

	// Strategy 2: scan forward from the label for a name-shaped line.
	if name == "" {
		lines := strings.Split(text, "\n")
		for i, line := range lines {
			if !customerNameLabelRe.MatchString(line) {
				continue
			}
			for j := i; j < min(i+4, len(lines)); j++ {
				candidate := strings.TrimSpace(lines[j])
				candidate = strings.TrimSpace(customerNameLeadRe.ReplaceAllString(candidate, ""))
				if candidate != "" && len(candidate) > 3 && isLikelyCustomerName(candidate) {
					name = candidate
					break
				}
			}
			if name != "" {
				break
			}
		}
	}

	// Strategy 3: alternative labels.
	if name == "" {
		name = FindLabeledValue(text, []string{`Bill\s*To`, `Buyer\s*Name`, `Client\s*Name`})
	}

	if name != "" {
		if isLikelyAddress(name) && !isLikelyCustomerName(name) {
			// Address-shaped: leave it for the address extractor.
			name = ""
		} else if len(name) > customerNameMaxLength {
			// Too long to be a name, probably corrupted.
			name = ""
		}
	}
	if name == "" {
		return nil
	}
	return &name
}

// --- address ---

var (
	poBoxRe            = regexp.MustCompile(`(?i)P\.?\s*O\.?\s*B|P\.?O\.?\s*BOX|POB|P\.O`)
	poBoxNumberRe      = regexp.MustCompile(`(?i)(?:P\.?\s*O\.?\s*B|P\.?O\.?\s*BOX|POB|P\.O).*?(\d{3,})`)
	addressStopRe      = regexp.MustCompile(`(?i)^(?:Tel|Fax|Attended|Kind|Reference|PI|Code|Type|Date|Email|Phone|Del|Customer|Cust|Ref|Invoice|Proforma)`)
	addressLabelStopRe = regexp.MustCompile(`(?i)^(?:Tel|Fax|Attended|Kind|Reference|PI|Code|Type|Date|Email|Phone|Del|Customer|Cust|Remarks|Payment|Delivery|Ref|Invoice|Proforma)`)
	cityAnchorStopRe   = regexp.MustCompile(`(?i)^(?:Tel|Fax|Email|Phone|Address|Reference|Code|Type|Date|Attended|Kind|Cust|Ref)`)
	addressInlineRe    = regexp.MustCompile(`(?i)\bAddress\s*[:=]\s*([^\n]+)`)
	addressLabelEndRe  = regexp.MustCompile(`(?i)\bAddress\s*[:=]?\s*$`)
	titleCaseLineRe    = regexp.MustCompile(`^[A-Z][A-Z\s\-.,]*$`)
)

func extractAddress(lines []string) *string {
	// Strategy 1: a postal box token plus greedy absorption of following
	// place-name / country / caps lines.
	for idx, line := range lines {
		if !poBoxRe.MatchString(line) {
			continue
		}
		m := poBoxNumberRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		parts := []string{"P.O.BOX " + m[1]}
	absorb:
		for j := idx + 1; j < min(idx+7, len(lines)); j++ {
			next := lines[j]
			if addressStopRe.MatchString(next) {
				break
			}
			switch {
			case cityRe.MatchString(next) || countryRe.MatchString(next):
				parts = append(parts, next)
			case len(next) > 2 && (isUpperString(next) || titleCaseLineRe.MatchString(next)):
				parts = append(parts, next)
			case len(next) < 3:
				// Very short, might be a separator.
				continue
			default:
				break absorb // stop at other content
			}
		}
		addr := strings.TrimSpace(strings.Join(parts, " "))
		if len(addr) > 8 { // more than just the box token
			return &addr
		}
	}

	// Strategy 2: explicit "Address" label with the same continuation.
	for idx, line := range lines {
		inline := addressInlineRe.FindStringSubmatch(line)
		if inline == nil && !addressLabelEndRe.MatchString(line) {
			continue
		}
		var parts []string
		if inline != nil && strings.TrimSpace(inline[1]) != "" {
			parts = append(parts, strings.TrimSpace(inline[1]))
		}
		for j := idx + 1; j < min(idx+7, len(lines)); j++ {
			next := lines[j]
			if addressLabelStopRe.MatchString(next) {
				break
			}
			parts = append(parts, next)
		}
		if addr := strings.TrimSpace(strings.Join(parts, " ")); addr != "" {
			return &addr
		}
	}

	// Strategy 3: known regional city anchors followed by a country line.
	for idx, line := range lines {
		if !cityRe.MatchString(line) {
			continue
		}
		parts := []string{line}
		for j := idx + 1; j < min(idx+4, len(lines)); j++ {
			next := lines[j]
			if cityAnchorStopRe.MatchString(next) {
				break
			}
			if countryRe.MatchString(next) {
				parts = append(parts, next)
				break
			}
			if len(next) > 2 && (isUpperString(next) || digitRe.MatchString(next)) {
				parts = append(parts, next)
			} else {
				break
			}
		}
		if addr := strings.TrimSpace(strings.Join(parts, " ")); addr != "" {
			return &addr
		}
	}
	return nil
}

// --- phone ---

var (
	telMarkerRe     = regexp.MustCompile(`(?i)\bTel\b`)
	telValueRe      = regexp.MustCompile(`(?i)\bTel\s*[:=]?\s*([^\n]+?)(?:\s*(?:Fax|Email|Del|Attended|Kind|Reference)|$)`)
	telTrailRe      = regexp.MustCompile(`(?i)\s+(?:Fax|Email|Del|Attended|Kind|Reference)\s*.*`)
	telEdgeNoiseRe  = regexp.MustCompile(`^[^\w+\-(]|[^\w)]$`)
	phonePairRe     = regexp.MustCompile(`\d{3,}\s*[/\-]\s*\d{3,}`)
	phoneExcludeRe  = regexp.MustCompile(`(?i)PI\b|Invoice|Gross|Net|VAT|TSH|Qty|Rate|Value|Code|Sr\b|No\.`)
)

func extractPhone(lines []string) *string {
	for _, line := range lines {
		if !telMarkerRe.MatchString(line) {
			continue
		}
		m := telValueRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		candidate = strings.TrimSpace(telTrailRe.ReplaceAllString(candidate, ""))
		if len(candidate) <= 1 {
			continue
		}
		candidate = strings.TrimSpace(telEdgeNoiseRe.ReplaceAllString(candidate, ""))
		if digitRe.MatchString(candidate) && len(candidate) > 2 {
			return &candidate
		}
	}

	// Fallback: a standalone slash/dash-separated number line, excluding
	// rows that look like invoice, VAT, or quantity data.
	for _, line := range lines {
		if phonePairRe.MatchString(line) && !phoneExcludeRe.MatchString(line) {
			candidate := strings.TrimSpace(line)
			return &candidate
		}
	}
	return nil
}

func extractEmail(text string) *string {
	if m := emailRe.FindStringSubmatch(text); m != nil {
		return &m[1]
	}
	return nil
}

// --- reference ---

var (
	referenceRe      = regexp.MustCompile(`(?im)(?:Reference|Ref\.?)\s*[:=]?\s*([^\n:{]+)$`)
	referenceTrailRe = regexp.MustCompile(`(?i)\s+(?:Tel|Fax|Date|PI|Code)\b.*`)
)

func extractReference(text string) *string {
	m := referenceRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	ref := strings.TrimSpace(referenceTrailRe.ReplaceAllString(strings.TrimSpace(m[1]), ""))
	if ref == "" || strings.ToUpper(ref) == "NONE" || len(ref) < 2 {
		return nil
	}
	return &ref
}

// --- invoice / PI number ---

var piNoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)PI\s*(?:No|Number|#)\s*[:=]\s*([^\n]+)`),
	regexp.MustCompile(`(?i)PI\s*No\.?\s*[:=]?\s*([A-Z0-9\-]+)`),
	regexp.MustCompile(`(?im)PI\s*[:=]\s*([^\n]+)`),
	regexp.MustCompile(`(?im)Proforma\s*Invoice\s*(?:No|Number|#)\s*[:=]\s*([^\n]+)`),
	regexp.MustCompile(`(?im)Proforma\s*Invoice\s*[:=]\s*([^\n]+)`),
}

var invoiceNoPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?im)Invoice\s*(?:No|Number|#)\s*[:=]\s*([^\n]+)`),
	regexp.MustCompile(`(?i)Invoice\s*No\.?\s*[:=]?\s*([A-Z0-9\-]+)`),
	regexp.MustCompile(`(?im)Invoice\s*[:=]\s*([^\n]+)`),
}

var (
	piNoTrailerRe      = regexp.MustCompile(`(?i)\s+(?:Date|Cust|Ref|Del|Code|Customer|Address|Tel)\b.*`)
	invoiceNoTrailerRe = regexp.MustCompile(`(?i)\s+(?:Date|Cust|Ref|Del|Code)\b.*`)
	looseInvoiceNoRe   = regexp.MustCompile(`(?i)(?:PI|INV|Invoice)[\s\-]*([A-Z0-9\-]{3,20})`)
)

func extractInvoiceNo(text string, cleanedLines []string) *string {
	for _, re := range piNoPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		no := strings.TrimSpace(piNoTrailerRe.ReplaceAllString(strings.TrimSpace(m[1]), ""))
		if len(no) > 1 {
			return &no
		}
	}

	for _, re := range invoiceNoPatterns {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		no := strings.TrimSpace(invoiceNoTrailerRe.ReplaceAllString(strings.TrimSpace(m[1]), ""))
		if len(no) > 1 {
			return &no
		}
	}

	// Loosest tier: a bare PI/INV token in the header region.
	header := strings.Join(headLines(cleanedLines, 15), "\n")
	if m := looseInvoiceNoRe.FindStringSubmatch(header); m != nil {
		no := strings.TrimSpace(m[1])
		if no != "" {
			return &no
		}
	}
	return nil
}

// --- date ---

var (
	labeledDateRe = regexp.MustCompile(`(?i)(?:Invoice\s*)?Date\s*[:=]?\s*(\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4})`)
	bareDateRe    = regexp.MustCompile(`\d{1,2}[/\-]\d{1,2}[/\-]\d{2,4}`)
)

// extractDate keeps the matched string raw; downstream consumers parse it
// into a calendar value if they need one.
func extractDate(text string) *string {
	if m := labeledDateRe.FindStringSubmatch(text); m != nil {
		return &m[1]
	}
	if m := bareDateRe.FindString(text); m != "" {
		return &m
	}
	return nil
}

// --- monetary amounts ---

var (
	subtotalLabels = []string{`Net\s*Value`, `Net\s*Amount`, `Subtotal`, `Net\s*:`}
	taxLabels      = []string{`VAT`, `Tax`, `GST`, `Sales\s*Tax`}
	totalLabels    = []string{`Gross\s*Value`, `Total\s*Amount`, `Grand\s*Total`, `Total\s*(?::|\s)`}

	amountSeparators = []string{`\s*:\s*`, `\s*=\s*`, `\s+`}
	nextLineAmountRe = regexp.MustCompile(`(?i)^(?:TSH|TZS|UGX)?\s*([0-9,.]+)`)
)

// findAmount locates a monetary amount after any of the label patterns:
// same line with colon, equals, or space separation (optionally prefixed by
// a currency code), or on one of the next two lines when the layout got
// scrambled. The raw match goes through NormalizeAmount.
func findAmount(text string, labels []string) *decimal.Decimal {
	for _, label := range labels {
		for _, sep := range amountSeparators {
			re := regexp.MustCompile(`(?im)` + label + sep + `(?:TSH|TZS|UGX)?\s*([0-9,.]+)`)
			if m := re.FindStringSubmatch(text); m != nil {
				return toDecimal(m[1])
			}
		}

		labelRe := regexp.MustCompile(`(?i)` + label)
		inlineRe := regexp.MustCompile(`(?i)` + label + `\s*[:=]?\s*([0-9,.]+)`)
		lines := strings.Split(text, "\n")
		for i, line := range lines {
			if !labelRe.MatchString(line) {
				continue
			}
			if m := inlineRe.FindStringSubmatch(line); m != nil {
				return toDecimal(m[1])
			}
			for j := 1; j <= 2 && i+j < len(lines); j++ {
				next := strings.TrimSpace(lines[i+j])
				if m := nextLineAmountRe.FindStringSubmatch(next); m != nil {
					return toDecimal(m[1])
				}
			}
		}
	}
	return nil
}

var taxRatePercentRe = regexp.MustCompile(`(?i)VAT.*?(\d+(?:\.\d+)?)\s*%|Tax\s*Rate.*?(\d+(?:\.\d+)?)\s*%`)

func extractTaxRate(text string, subtotal, tax *decimal.Decimal) *decimal.Decimal {
	if m := taxRatePercentRe.FindStringSubmatch(text); m != nil {
		rateStr := m[1]
		if rateStr == "" {
			rateStr = m[2]
		}
		if d, err := decimal.NewFromString(rateStr); err == nil {
			return &d
		}
	}

	// Derive from the known amounts when the document omits the rate.
	if subtotal != nil && tax != nil && subtotal.IsPositive() {
		rate := tax.Div(*subtotal).Mul(decimal.NewFromInt(100))
		return &rate
	}
	return nil
}

// --- payment method ---

var (
	paymentRe      = regexp.MustCompile(`(?im)(?:Payment|Payment\s*Method|Payment\s*Type)\s*[:=]?\s*([^\n:{]+)$`)
	paymentTrailRe = regexp.MustCompile(`(?i)\s+(?:Delivery|Remarks|Net|Gross|Due|NOTE)\b.*`)
)

// paymentVocabulary maps keyword containment to the canonical payment
// method strings. Order matters: earlier keywords win.
var paymentVocabulary = []struct {
	keyword   string
	canonical string
}{
	{"cash", "cash"},
	{"cheque", "cheque"},
	{"chq", "cheque"},
	{"bank", "bank_transfer"},
	{"transfer", "bank_transfer"},
	{"card", "card"},
	{"mpesa", "mpesa"},
	{"credit", "on_credit"},
	{"delivery", "on_delivery"},
	{"cod", "on_delivery"},
}

func extractPaymentMethod(text string) *string {
	m := paymentRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	method := strings.TrimSpace(paymentTrailRe.ReplaceAllString(strings.TrimSpace(m[1]), ""))
	if len(method) <= 1 {
		return nil
	}

	lower := strings.ToLower(method)
	for _, entry := range paymentVocabulary {
		if strings.Contains(lower, entry.keyword) {
			canonical := entry.canonical
			return &canonical
		}
	}
	// Unmapped but non-empty values pass through unchanged.
	return &method
}

// --- delivery terms ---

var (
	deliveryRe      = regexp.MustCompile(`(?im)(?:Delivery|Delivery\s*Terms)\s*[:=]?\s*([^\n:{]+)$`)
	deliveryTrailRe = regexp.MustCompile(`(?i)\s+(?:Remarks|Notes|NOTE|Net|Gross|Payment)\b.*`)
)

func extractDeliveryTerms(text string) *string {
	m := deliveryRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	terms := strings.TrimSpace(deliveryTrailRe.ReplaceAllString(strings.TrimSpace(m[1]), ""))
	if len(terms) < 2 {
		return nil
	}
	return &terms
}

// --- remarks ---

var (
	remarksRe        = regexp.MustCompile(`(?im)(?:Remarks|Notes|NOTE)\s*[:=]?\s*([^\n]+)`)
	remarksNumberRe  = regexp.MustCompile(`(?i)\d+\s*:|^NOTE\s*\d+\s*:`)
	remarksTrailRe   = regexp.MustCompile(`(?i)(?:Payment|Delivery|Due|See|Qty|Code|SR)\b.*`)
)

func extractRemarks(text string) *string {
	m := remarksRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	remarks := strings.Join(strings.Fields(m[1]), " ")
	remarks = strings.TrimSpace(remarksNumberRe.ReplaceAllString(remarks, ""))
	remarks = strings.TrimSpace(remarksTrailRe.ReplaceAllString(remarks, ""))
	if len(remarks) < 2 {
		return nil
	}
	return &remarks
}

// --- attended by / kind attention ---

var (
	attendedByRe      = regexp.MustCompile(`(?im)Attended\s*(?:By|:)?\s*([^\n:{]+)$`)
	attendedByTrailRe = regexp.MustCompile(`(?i)\s+(?:Kind|Reference|Tel|Remarks|Payment)\b.*`)
)

func extractAttendedBy(text string) *string {
	m := attendedByRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	attended := strings.TrimSpace(attendedByTrailRe.ReplaceAllString(strings.TrimSpace(m[1]), ""))
	if len(attended) < 2 {
		return nil
	}
	return &attended
}

var (
	kindAttentionRe      = regexp.MustCompile(`(?im)Kind\s*(?:Attention|Attn|:)?\s*([^\n:{]+)$`)
	kindAttentionTrailRe = regexp.MustCompile(`(?i)\s+(?:Reference|Remarks|Tel|Attended|Payment|Delivery)\b.*`)
)

func extractKindAttention(text string) *string {
	m := kindAttentionRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	attention := strings.TrimSpace(kindAttentionTrailRe.ReplaceAllString(strings.TrimSpace(m[1]), ""))
	if len(attention) < 2 {
		return nil
	}
	return &attention
}

// headLines returns at most n leading lines.
func headLines(lines []string, n int) []string {
	if len(lines) > n {
		return lines[:n]
	}
	return lines
}
