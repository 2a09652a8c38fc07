package node

import (
	"context"
	"fmt"

	contractx "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/contract"
	statex "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/state"
)

// GuardPolicy evaluates the cancellation rule for order_help only; for every
// other intent the decision stays nil.
func GuardPolicy(ctx context.Context, st *statex.RequestState, tools contractx.ToolGateway) (*statex.RequestState, error) {
	if st == nil {
		return nil, fmt.Errorf("%w: request state is nil", contractx.ErrValidation)
	}

	if st.Intent != statex.IntentOrderHelp {
		st.PolicyDecision = nil
		return st, nil
	}

	if st.Order == nil {
		st.PolicyDecision = &statex.PolicyDecision{
			CancelAllowed: false,
			Reason:        "order_not_found_or_missing_credentials",
		}
		return st, nil
	}

	decision, err := tools.CheckCancellation(ctx, st.Order.OrderID)
	if err != nil {
		return nil, err
	}
	st.PolicyDecision = &decision
	return st, nil
}
