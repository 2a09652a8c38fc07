package node

import (
	"context"
	"fmt"

	contractx "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/contract"
	"github.com/tanpawarit/EvoAI-Commerce-Agent/agent/extract"
	statex "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/state"
)

// SelectTools dispatches purely on the routed intent, extracts structured
// parameters from the prompt, and invokes the matching domain tools. Fields
// belonging to an intent not taken stay unset.
func SelectTools(ctx context.Context, st *statex.RequestState, tools contractx.ToolGateway) (*statex.RequestState, error) {
	if st == nil {
		return nil, fmt.Errorf("%w: request state is nil", contractx.ErrValidation)
	}

	switch st.Intent {
	case statex.IntentProductAssist:
		if err := selectProductTools(ctx, st, tools); err != nil {
			return nil, err
		}
	case statex.IntentOrderHelp:
		if err := selectOrderTools(ctx, st, tools); err != nil {
			return nil, err
		}
	case statex.IntentOther:
		// no tool invocations
	default:
		return nil, fmt.Errorf("%w: intent %q", contractx.ErrValidation, st.Intent)
	}

	return st, nil
}

func selectProductTools(ctx context.Context, st *statex.RequestState, tools contractx.ToolGateway) error {
	var priceMax *float64
	if cap, ok := extract.PriceCap(st.Prompt); ok {
		priceMax = &cap
	}
	tags := extract.Tags(st.Prompt)

	products, err := tools.SearchProducts(ctx, st.Prompt, priceMax, tags)
	if err != nil {
		return err
	}
	st.RecordTool(contractx.ToolProductSearch)

	size := tools.RecommendSize(ctx, st.Prompt)
	st.RecordTool(contractx.ToolSizeRecommender)

	eta := tools.EstimateDelivery(ctx, extract.PostalCode(st.Prompt))
	st.RecordTool(contractx.ToolETA)

	// Results arrive price/id sorted; the first two are the shown picks.
	picks := products
	if len(picks) > 2 {
		picks = picks[:2]
	}
	st.Products = picks
	st.Size = &size
	st.ETA = &eta

	for _, p := range picks {
		st.AddEvidence(statex.Evidence{
			"id":    p.ID,
			"title": p.Title,
			"price": p.Price,
			"sizes": p.Sizes,
		})
	}
	return nil
}

func selectOrderTools(ctx context.Context, st *statex.RequestState, tools contractx.ToolGateway) error {
	orderID, hasID := extract.OrderID(st.Prompt)
	email, hasEmail := extract.Email(st.Prompt)

	var order *statex.Order
	if hasID && hasEmail {
		found, err := tools.LookupOrder(ctx, orderID, email)
		if err != nil {
			return err
		}
		order = found
	}
	// Recorded regardless of whether both identifiers were present.
	st.RecordTool(contractx.ToolOrderLookup)

	st.OrderID = orderID
	st.Email = email
	st.Order = order
	st.AddEvidence(statex.Evidence{
		"order_id": orderID,
		"email":    email,
		"found":    order != nil,
	})
	return nil
}
