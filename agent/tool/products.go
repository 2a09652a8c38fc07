package tool

import (
	"context"
	"regexp"
	"sort"
	"strings"

	statex "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/state"
)

var queryTokenPattern = regexp.MustCompile(`[a-z0-9]+`)

// stopWords are size labels and filler tokens that carry no product signal.
var stopWords = map[string]struct{}{
	"under": {}, "less": {}, "budget": {},
	"m": {}, "l": {}, "xl": {}, "s": {},
	"eta": {}, "to": {}, "guest": {}, "between": {},
	"im": {}, "i": {}, "zip": {},
}

// SearchProducts filters the catalog by price ceiling and either a tag set
// or free-text tokens, then sorts by price ascending with id as tie-break so
// the "top two" picks are reproducible byte for byte.
func (c *Catalog) SearchProducts(ctx context.Context, query string, priceMax *float64, tags []string) ([]statex.Product, error) {
	items, err := c.loadProducts()
	if err != nil {
		return nil, err
	}

	tokens := meaningfulTokens(query)

	matched := make([]statex.Product, 0, len(items))
	for _, item := range items {
		if priceMax != nil && item.Price > *priceMax {
			continue
		}
		if len(tags) > 0 {
			// A tag match is sufficient; token matching is skipped.
			if hasAllTags(item, tags) {
				matched = append(matched, item)
			}
			continue
		}
		if matchesTokens(item, tokens) {
			matched = append(matched, item)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Price != matched[j].Price {
			return matched[i].Price < matched[j].Price
		}
		return matched[i].ID < matched[j].ID
	})

	return matched, nil
}

func (c *Catalog) RecommendSize(ctx context.Context, text string) statex.SizeAdvice {
	low := strings.ToLower(text)
	if strings.Contains(low, "loose") || strings.Contains(low, "oversized") {
		return statex.SizeAdvice{
			Recommended: "L",
			Rationale:   "You prefer a looser fit; L should feel roomier. Choose M for a snugger fit.",
		}
	}
	return statex.SizeAdvice{
		Recommended: "M",
		Rationale:   "You mentioned you're between M and L; we suggest M for a closer fit or L if you prefer a roomier feel.",
	}
}

// EstimateDelivery maps a postal-code prefix to a delivery window. First
// matching prefix rule wins.
func (c *Catalog) EstimateDelivery(ctx context.Context, zip string) statex.DeliveryEstimate {
	window := "2–5 business days"
	switch {
	case strings.HasPrefix(zip, "56"):
		window = "3–5 business days"
	case strings.HasPrefix(zip, "10"), strings.HasPrefix(zip, "11"), strings.HasPrefix(zip, "12"):
		window = "2–3 business days"
	}
	return statex.DeliveryEstimate{Zip: zip, Window: window}
}

func meaningfulTokens(query string) []string {
	raw := queryTokenPattern.FindAllString(strings.ToLower(query), -1)
	tokens := make([]string, 0, len(raw))
	for _, tok := range raw {
		if _, skip := stopWords[tok]; !skip {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

func hasAllTags(item statex.Product, tags []string) bool {
	have := make(map[string]struct{}, len(item.Tags))
	for _, t := range item.Tags {
		have[strings.ToLower(t)] = struct{}{}
	}
	for _, want := range tags {
		if _, ok := have[strings.ToLower(want)]; !ok {
			return false
		}
	}
	return true
}

// matchesTokens reports whether any meaningful token appears in the item's
// title, tags, or color. With no meaningful tokens, everything matches.
func matchesTokens(item statex.Product, tokens []string) bool {
	if len(tokens) == 0 {
		return true
	}
	hay := strings.ToLower(item.Title + " " + strings.Join(item.Tags, " ") + " " + item.Color)
	for _, tok := range tokens {
		if strings.Contains(hay, tok) {
			return true
		}
	}
	return false
}
