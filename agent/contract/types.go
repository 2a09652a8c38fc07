package contract

import (
	statex "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/state"
)

// RunResult is what one invocation hands back to the caller: the full audit
// trace plus the reply text by itself.
type RunResult struct {
	Trace statex.Trace `json:"trace"`
	Reply string       `json:"reply"`
}

// ComposeContext is the serialized view of the request state given to a
// model-backed composer. The composer must not invent facts outside of it.
type ComposeContext struct {
	Intent         statex.Intent            `json:"intent"`
	Evidence       []statex.Evidence        `json:"evidence"`
	PolicyDecision *statex.PolicyDecision   `json:"policy_decision"`
	Products       []statex.Product         `json:"products,omitempty"`
	Size           *statex.SizeAdvice       `json:"size,omitempty"`
	ETA            *statex.DeliveryEstimate `json:"eta,omitempty"`
	Order          *statex.Order            `json:"order,omitempty"`
}

func NewComposeContext(st *statex.RequestState) ComposeContext {
	if st == nil {
		return ComposeContext{}
	}
	return ComposeContext{
		Intent:         st.Intent,
		Evidence:       st.Evidence,
		PolicyDecision: st.PolicyDecision,
		Products:       st.Products,
		Size:           st.Size,
		ETA:            st.ETA,
		Order:          st.Order,
	}
}
