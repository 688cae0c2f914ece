package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/abbakary/nwwpos123456/dto"
)

// Keyword categories whose density marks the item-table header line.
var itemHeaderCategories = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(?:Sr|S\.N|Serial|No\.?)\b`),
	regexp.MustCompile(`(?i)\b(?:Item|Code)\b`),
	regexp.MustCompile(`(?i)\b(?:Description|Desc)\b`),
	regexp.MustCompile(`(?i)\b(?:Qty|Quantity|Qty\.?|Type)\b`),
	regexp.MustCompile(`(?i)\b(?:Rate|Price|Unit|UnitPrice)\b`),
	regexp.MustCompile(`(?i)\b(?:Value|Amount|Total)\b`),
}

// itemHeaderThreshold is how many categories a line must hit to count as
// the table header.
const itemHeaderThreshold = 3

var (
	itemTotalsMarkerRe = regexp.MustCompile(`(?i)(?:Net\s*Value|Gross\s*Value|Grand\s*Total|Total\s*:|Payment|Delivery|Remarks|NOTE)`)
	itemNumberRe       = regexp.MustCompile(`[0-9,]+\.?\d*`)
	unitTokenRe        = regexp.MustCompile(`(?i)\b(NOS|PCS|KG|HR|LTR|PIECES?|UNITS?|BOX|CASE|SETS?|PC|KIT|UNT)\b`)
	bareNumberLineRe   = regexp.MustCompile(`^\d+(?:\.\d+)?%?\s*$`)
	letterRe           = regexp.MustCompile(`[A-Za-z]`)
	serialNoRe         = regexp.MustCompile(`^(\d{1,3})\s+`)
	leadingItemCodeRe  = regexp.MustCompile(`^(\d{3,10})\s+`)
	anyItemCodeRe      = regexp.MustCompile(`\b(\d{3,10})\b`)
	decimalWordRe      = regexp.MustCompile(`^\d+[,.]\d+`)
	bigNumberWordRe    = regexp.MustCompile(`^\d{4,}`)
	unitWordRe         = regexp.MustCompile(`(?i)^(?:PCS|NOS|KG|HR|LTR|PIECES|UNITS|KIT|BOX|CASE|SETS|PC|UNT)$`)
)

const maxDescriptionLength = 255

// ParseLineItems runs a small state machine over the body lines: seek the
// item-table header by keyword density, then classify and parse each
// subsequent line as an item row until a totals or summary marker closes
// the table. A malformed row never aborts extraction of the remaining
// table; it is logged and skipped.
func ParseLineItems(lines []string) []dto.LineItem {
	items := []dto.LineItem{}
	started := false
	headerIdx := -1

	for idx, line := range lines {
		hits := 0
		for _, re := range itemHeaderCategories {
			if re.MatchString(line) {
				hits++
			}
		}
		if hits >= itemHeaderThreshold {
			started = true
			headerIdx = idx
			continue
		}

		if started && idx > headerIdx+1 && itemTotalsMarkerRe.MatchString(line) {
			break
		}

		if started && idx > headerIdx {
			if item, ok := parseItemRow(line); ok {
				items = append(items, item)
			}
		}
	}
	return items
}

// parseItemRow extracts one LineItem from a candidate table row.
func parseItemRow(line string) (item dto.LineItem, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			zap.S().Warnw("failed to parse item row", "line", line, "error", r)
			ok = false
		}
	}()

	rawNumbers := itemNumberRe.FindAllString(line, -1)
	var numbers []float64
	for _, raw := range rawNumbers {
		cleaned := strings.TrimSpace(strings.ReplaceAll(raw, ",", ""))
		if cleaned == "" || cleaned == "." {
			continue
		}
		if f, err := strconv.ParseFloat(cleaned, 64); err == nil {
			numbers = append(numbers, f)
		}
	}

	var unit *string
	if m := unitTokenRe.FindStringSubmatch(line); m != nil {
		u := strings.ToUpper(m[1])
		unit = &u
	}

	// An item row has text and at least one number; a lone unit token or a
	// bare percentage is a continuation line, not a row.
	isItemRow := len(line) > 5 && len(rawNumbers) > 0 && letterRe.MatchString(line)
	isContinuation := (unit != nil || bareNumberLineRe.MatchString(line)) && len(numbers) <= 2
	if !isItemRow || isContinuation {
		return item, false
	}

	// Strip a leading serial number so it is not mistaken for a quantity.
	lineForParsing := line
	if m := serialNoRe.FindStringSubmatch(line); m != nil {
		serial, _ := strconv.Atoi(m[1])
		if serial > 0 && serial < 1000 {
			lineForParsing = strings.TrimSpace(serialNoRe.ReplaceAllString(line, ""))
			if len(numbers) > 0 && numbers[0] == float64(serial) {
				numbers = numbers[1:]
			}
		}
	}

	// Item codes are 3-10 digit tokens, usually right after the serial.
	var code *string
	descText := lineForParsing
	if m := leadingItemCodeRe.FindStringSubmatch(lineForParsing); m != nil {
		code = &m[1]
		descText = strings.TrimSpace(leadingItemCodeRe.ReplaceAllString(lineForParsing, ""))
	} else if m := anyItemCodeRe.FindStringSubmatch(lineForParsing); m != nil {
		code = &m[1]
	}

	description := extractDescription(descText)
	if len(description) < 2 {
		return item, false
	}

	if len(numbers) == 0 {
		return item, false
	}

	item = dto.LineItem{
		Description: description,
		Qty:         1,
		Unit:        unit,
		Code:        code,
	}
	assignNumericRoles(&item, numbers)

	// Keep only rows with meaningful data.
	if item.Value == nil && item.Qty <= 1 {
		return item, false
	}
	return item, true
}

// extractDescription takes the word run up to the first large number or
// unit token, falling back to the first alphabetic words when no stop
// point exists.
func extractDescription(descText string) string {
	words := strings.Fields(descText)
	end := len(words)
	for i, word := range words {
		if decimalWordRe.MatchString(word) || (len(word) > 8 && bigNumberWordRe.MatchString(word)) {
			end = i
			break
		}
		if unitWordRe.MatchString(word) {
			end = i
			break
		}
	}

	description := strings.TrimSpace(strings.Join(words[:end], " "))
	if len(description) < 2 {
		var letterWords []string
		for _, word := range headWords(words, 20) {
			if letterRe.MatchString(word) {
				letterWords = append(letterWords, word)
			}
		}
		if len(letterWords) > 0 {
			description = strings.Join(headWords(letterWords, 15), " ")
		} else if len(words) > 0 {
			description = words[0]
		}
	}

	description = strings.Join(strings.Fields(description), " ")
	if len(description) > maxDescriptionLength {
		description = description[:maxDescriptionLength]
	}
	return description
}

// assignNumericRoles maps the remaining numbers of a row onto quantity,
// rate, and value. The tie-breaks here are best-effort: a two-number row
// where neither number is a small whole quantity falls back to treating
// the larger one as the value.
func assignNumericRoles(item *dto.LineItem, numbers []float64) {
	maxNum := numbers[0]
	for _, n := range numbers {
		if n > maxNum {
			maxNum = n
		}
	}

	switch {
	case len(numbers) == 1:
		item.Value = decimalFromFloat(numbers[0])

	case len(numbers) == 2:
		switch {
		case isSmallWhole(numbers[0]):
			item.Qty = int(numbers[0])
			item.Value = decimalFromFloat(numbers[1])
		case isSmallWhole(numbers[1]):
			item.Qty = int(numbers[1])
			item.Value = decimalFromFloat(numbers[0])
		default:
			item.Value = decimalFromFloat(maxNum)
		}
		if item.Qty > 0 && item.Value != nil {
			item.Rate = decimalFromFloat(item.Value.InexactFloat64() / float64(item.Qty))
		}

	default:
		// The largest number is almost always the row value.
		item.Value = decimalFromFloat(maxNum)

		// Quantity: the smallest whole number under 1000 that is not the
		// value itself.
		qty := 0
		for _, n := range numbers {
			if n == math.Trunc(n) && n > 0 && n < 1000 && n != maxNum {
				if qty == 0 || int(n) < qty {
					qty = int(n)
				}
			}
		}
		if qty > 0 {
			item.Qty = qty
			if maxNum > 0 {
				item.Rate = decimalFromFloat(maxNum / float64(qty))
			}
		}
	}
}

// isSmallWhole reports whether n is a whole number under 100, the shape a
// quantity takes in a two-number row.
func isSmallWhole(n float64) bool {
	return n < 100 && n == math.Trunc(n)
}

func decimalFromFloat(f float64) *decimal.Decimal {
	d := decimal.NewFromFloat(f)
	return &d
}

func headWords(words []string, n int) []string {
	if len(words) > n {
		return words[:n]
	}
	return words
}
