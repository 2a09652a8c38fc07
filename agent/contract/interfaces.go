package contract

import (
	"context"

	statex "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/state"
)

// Classifier maps free text to one intent from the closed set. Implemented
// by a keyword ruleset and by a model-backed strategy; the choice is made
// once at configuration time, never per call.
type Classifier interface {
	Classify(ctx context.Context, prompt string) (statex.Intent, error)
}

// Composer renders the final user reply from the accumulated request state.
type Composer interface {
	Compose(ctx context.Context, st *statex.RequestState) (string, error)
}

type Registry interface {
	Classifier() Classifier
	Composer() Composer
}

// Tool names as they appear in the tools_called audit trail.
const (
	ToolProductSearch   = "product_search"
	ToolSizeRecommender = "size_recommender"
	ToolETA             = "eta"
	ToolOrderLookup     = "order_lookup"
)

// ToolGateway is the boundary to the domain tools. Implementations are pure
// functions over a static dataset plus a reference clock; they re-read their
// data source per call.
type ToolGateway interface {
	SearchProducts(ctx context.Context, query string, priceMax *float64, tags []string) ([]statex.Product, error)
	RecommendSize(ctx context.Context, text string) statex.SizeAdvice
	EstimateDelivery(ctx context.Context, zip string) statex.DeliveryEstimate
	LookupOrder(ctx context.Context, orderID string, email string) (*statex.Order, error)
	CheckCancellation(ctx context.Context, orderID string) (statex.PolicyDecision, error)
}
