package utils

import (
	"regexp"
	"strings"
)

// defaultSearchDistance is how many lines past a label the locator will
// look for a displaced value.
const defaultSearchDistance = 10

var doubleSpaceBoundaryRe = regexp.MustCompile(`\s{2,}[A-Za-z]`)

// FindLabeledValue returns the first plausible value following any of the
// label patterns, or "" when none is found. Three strategies run in fixed
// order; the third one tolerates PDF layouts where column text gets
// linearized out of order by searching nearby lines for the value.
func FindLabeledValue(text string, labelPatterns []string) string {
	return findLabeledValue(text, labelPatterns, defaultSearchDistance)
}

func findLabeledValue(text string, labelPatterns []string, maxDistance int) string {
	for _, pattern := range labelPatterns {
		// Strategy 1: "Label: Value" or "Label = Value" on the same line.
		re := regexp.MustCompile(`(?im)` + pattern + `\s*[:=]\s*([^\n:{]+)`)
		if m := re.FindStringSubmatch(text); m != nil {
			value := strings.TrimSpace(m[1])
			if value != "" && !stopLabelStartRe.MatchString(value) {
				return value
			}
		}

		// Strategy 2: "Label Value" space separated, a capitalized run
		// bounded by end of line or a double-space column gap.
		re = regexp.MustCompile(`(?im)` + pattern + `\s+([A-Z][^\n:{]*)`)
		if m := re.FindStringSubmatch(text); m != nil {
			value := strings.TrimSpace(m[1])
			if loc := doubleSpaceBoundaryRe.FindStringIndex(value); loc != nil {
				value = strings.TrimSpace(value[:loc[0]])
			}
			if len(value) > 2 && !stopLabelStartRe.MatchString(value) {
				return value
			}
		}

		// Strategy 3: locate the label line, then take the inline remainder
		// or the first surviving line within maxDistance.
		labelRe := regexp.MustCompile(`(?i)` + pattern)
		inlineRe := regexp.MustCompile(`(?i)` + pattern + `\s*[:=]?\s*(.+)$`)
		lines := strings.Split(text, "\n")
		for i, line := range lines {
			if !labelRe.MatchString(line) {
				continue
			}
			if m := inlineRe.FindStringSubmatch(line); m != nil {
				value := strings.TrimSpace(m[1])
				if value != "" && value != ":" && value != "=" {
					return value
				}
			}
			limit := maxDistance
			if rest := len(lines) - i; rest < limit {
				limit = rest
			}
			for j := 1; j < limit; j++ {
				next := strings.TrimSpace(lines[i+j])
				if next == "" {
					continue
				}
				// A "Label:" line means we ran into the next field.
				if stopLabelLineRe.MatchString(next) {
					break
				}
				return next
			}
		}
	}
	return ""
}
