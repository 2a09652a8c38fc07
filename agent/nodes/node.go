// Package node holds the stage functions of the request pipeline. Each node
// reads and extends the same request-scoped state; no node re-invokes an
// earlier one. All branching lives inside the node bodies, never in the
// sequencing between them.
package node

import (
	"fmt"

	contractx "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/contract"
	statex "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/state"
)

type GraphInput struct {
	Prompt string
}

type GraphOutput struct {
	Result contractx.RunResult
}

// ValidateRequest seeds a fresh request state from the raw prompt. Each
// invocation starts from an empty state; nothing survives between calls.
func ValidateRequest(in GraphInput) (*statex.RequestState, error) {
	st, err := statex.NewRequestState(in.Prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", contractx.ErrValidation, err)
	}
	return st, nil
}
