package utils

import (
	"regexp"
	"strings"
)

// stopLabels is the shared set of field-label keywords used to bound
// free-text captures. Every extractor consumes this one table so that
// adding a new field label cannot drift between extractors.
var stopLabels = []string{
	"Tel", "Fax", "Del", "Ref", "Date", "Kind", "Attended", "Type",
	"Payment", "Delivery", "Reference", "PI", "Cust", "Qty", "Rate",
	"Value", "Address", "Customer", "Code",
}

var (
	stopLabelAlt = strings.Join(stopLabels, "|")

	// A candidate value that itself starts with a stop label is unlabeled
	// leftover from a scrambled column, not a value.
	stopLabelStartRe = regexp.MustCompile(`(?i)^(?:` + stopLabelAlt + `)\b`)

	// A line that opens with "Label:" or "Label=" marks the next field.
	stopLabelLineRe = regexp.MustCompile(`(?i)^(?:` + stopLabelAlt + `)\s*[:=]`)
)

// eastAfricanCities anchor address detection when no postal box or
// explicit label is present.
var cityRe = regexp.MustCompile(`(?i)\b(DAR|DAR-ES-SALAAM|SALAAM|NAIROBI|KAMPALA|KIGALI|MOMBASA|MOSHI|ARUSHA|DODOMA)\b`)

var countryRe = regexp.MustCompile(`(?i)\b(TANZANIA|KENYA|UGANDA|RWANDA|BURUNDI|CONGO|MALAWI|ZAMBIA)\b`)

// addressKeywords strongly indicate an address rather than a company name.
var addressKeywords = []string{
	"street", "avenue", "road", "box", "p.o", "po box", "floor", "apt",
	"suite", "district", "region", "city", "zip", "postal code", "building",
}

// addressIndicators is the wider set used when testing whether a candidate
// line is address-shaped (includes regional place names).
var addressIndicators = []string{
	"street", "avenue", "road", "box", "p.o", "po box", "floor", "apt",
	"suite", "district", "region", "city", "country", "zip", "postal",
	"dar", "dar-es", "tanzania", "nairobi", "kenya", "building",
}

// companyIndicators suggest a company name.
var companyIndicators = []string{
	"ltd", "inc", "corp", "co", "company", "llc", "limited", "enterprise",
	"trading", "group", "industries", "services", "solutions", "consulting",
}
