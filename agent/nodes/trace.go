package node

import (
	"fmt"

	contractx "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/contract"
	statex "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/state"
)

// Trace is the terminal pass-through: it snapshots the finished state for
// the caller without further mutation.
func Trace(st *statex.RequestState) (GraphOutput, error) {
	if st == nil {
		return GraphOutput{}, fmt.Errorf("%w: request state is nil", contractx.ErrValidation)
	}
	if st.FinalMessage == "" {
		return GraphOutput{}, fmt.Errorf("%w: responder produced no message", contractx.ErrValidation)
	}

	return GraphOutput{
		Result: contractx.RunResult{
			Trace: st.Snapshot(),
			Reply: st.FinalMessage,
		},
	}, nil
}
