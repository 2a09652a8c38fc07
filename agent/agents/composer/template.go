// Package composer provides the two interchangeable reply composition
// strategies: a fixed template table and a model-backed strategy working
// only from the serialized request context.
package composer

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	contractx "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/contract"
	statex "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/state"
)

type TemplateComposer struct{}

var _ contractx.Composer = TemplateComposer{}

func NewTemplateComposer() TemplateComposer {
	return TemplateComposer{}
}

// Compose renders one branch of the fixed table per invocation. Exactly one
// branch fires; there is no fallthrough.
func (TemplateComposer) Compose(ctx context.Context, st *statex.RequestState) (string, error) {
	if st == nil {
		return "", fmt.Errorf("%w: request state is nil", contractx.ErrValidation)
	}

	switch st.Intent {
	case statex.IntentProductAssist:
		return productAssistMessage(st), nil
	case statex.IntentOrderHelp:
		return orderHelpMessage(st), nil
	default:
		return otherMessage(), nil
	}
}

func productAssistMessage(st *statex.RequestState) string {
	if len(st.Products) == 0 {
		return "I couldn't find items that match your filters. If you can relax the budget or tags, I can search again."
	}

	lines := make([]string, 0, len(st.Products))
	for _, p := range st.Products {
		lines = append(lines, fmt.Sprintf("• %s — $%s | sizes: %s",
			p.Title, formatPrice(p.Price), strings.Join(p.Sizes, ", ")))
	}

	rec := "M"
	rationale := ""
	if st.Size != nil {
		rec = st.Size.Recommended
		rationale = st.Size.Rationale
	}

	zip := ""
	window := "2–5 business days"
	if st.ETA != nil {
		zip = st.ETA.Zip
		window = st.ETA.Window
	}

	return "Here are two options under your budget:\n" + strings.Join(lines, "\n") +
		fmt.Sprintf("\n\nSize tip: go **%s**. %s\nETA to %s: %s.", rec, rationale, zip, window)
}

func orderHelpMessage(st *statex.RequestState) string {
	if st.Order == nil {
		return "I couldn’t verify that order. Please double-check the order ID and email, or I can hand you to support."
	}

	if st.PolicyDecision != nil && st.PolicyDecision.CancelAllowed {
		return fmt.Sprintf("✅ Order %s is cancelled successfully. You’ll see a confirmation email shortly.", st.Order.OrderID)
	}

	reason := ">60 min"
	if st.PolicyDecision != nil && st.PolicyDecision.Reason != "" {
		reason = st.PolicyDecision.Reason
	}
	return fmt.Sprintf("❌ I can’t cancel order %s because our policy allows cancellations only within 60 minutes of purchase (%s).\n", st.Order.OrderID, reason) +
		"Next best options:\n" +
		"• Edit the delivery address (if the carrier hasn’t picked it up)\n" +
		"• Convert to store credit after delivery\n" +
		"• Or I can hand you off to a human agent"
}

func otherMessage() string {
	return "I can’t generate custom discount codes. You can still save by:\n" +
		"• Joining our newsletter for first-order perks\n" +
		"• Watching seasonal sales on the site\n" +
		"• Building a wishlist so we alert you if prices drop"
}

func formatPrice(price float64) string {
	return strconv.FormatFloat(price, 'f', -1, 64)
}
