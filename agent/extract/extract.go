// Package extract holds the pure text parsers the tool selector relies on.
// Each pattern is deliberately small and pinned by tests; these are the most
// ambiguity-prone pieces of the request flow.
package extract

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// "under $120", "under 120", "under  $ 120"
	priceCapPattern = regexp.MustCompile(`(?i)under\s*\$?\s*(\d+)`)

	// 5 or 6 digit token, e.g. "560001"
	postalCodePattern = regexp.MustCompile(`\b\d{5,6}\b`)

	// A letter followed by four or more digits, optionally preceded by the
	// word "order". Loose on purpose: first match wins, same as the message
	// flows this grew out of.
	orderIDPattern = regexp.MustCompile(`(?i)(?:order\s*)?([A-Za-z]\d{4,})`)

	emailPattern = regexp.MustCompile(`([A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,})`)
)

// tagVocabulary is the closed set of product tags recognized in free text.
var tagVocabulary = []string{"wedding", "midi"}

// DefaultPostalCode is the sentinel used when no postal token is present.
const DefaultPostalCode = "00000"

// PriceCap returns the price ceiling from an "under $<number>" phrase.
// The first match wins.
func PriceCap(text string) (float64, bool) {
	m := priceCapPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	cap, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return cap, true
}

// Tags returns the vocabulary tags present in the text, in vocabulary order.
func Tags(text string) []string {
	low := strings.ToLower(text)
	var tags []string
	for _, tag := range tagVocabulary {
		if strings.Contains(low, tag) {
			tags = append(tags, tag)
		}
	}
	return tags
}

// PostalCode returns the first 5-6 digit token, or DefaultPostalCode when
// the text carries none.
func PostalCode(text string) string {
	if m := postalCodePattern.FindString(text); m != "" {
		return m
	}
	return DefaultPostalCode
}

// OrderID returns the first order-identifier token.
func OrderID(text string) (string, bool) {
	m := orderIDPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// Email returns the first e-mail address token.
func Email(text string) (string, bool) {
	m := emailPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}
