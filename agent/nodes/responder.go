package node

import (
	"context"
	"fmt"

	contractx "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/contract"
	statex "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/state"
)

// ComposeReply renders the final message from the accumulated state. The
// message is written exactly once.
func ComposeReply(ctx context.Context, st *statex.RequestState, composer contractx.Composer) (*statex.RequestState, error) {
	if st == nil {
		return nil, fmt.Errorf("%w: request state is nil", contractx.ErrValidation)
	}

	msg, err := composer.Compose(ctx, st)
	if err != nil {
		return nil, err
	}
	if err := st.SetFinalMessage(msg); err != nil {
		return nil, fmt.Errorf("%w: %v", contractx.ErrValidation, err)
	}
	return st, nil
}
