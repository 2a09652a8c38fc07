package node

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	contractx "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/contract"
	statex "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/state"
)

// Router classifies the prompt and resets the per-invocation accumulators:
// classification always opens a fresh tool and evidence window.
func Router(ctx context.Context, st *statex.RequestState, classifier contractx.Classifier) (*statex.RequestState, error) {
	if st == nil {
		return nil, fmt.Errorf("%w: request state is nil", contractx.ErrValidation)
	}

	intent, err := classifier.Classify(ctx, st.Prompt)
	if err != nil {
		return nil, err
	}
	if err := st.SetIntent(intent); err != nil {
		return nil, fmt.Errorf("%w: %v", contractx.ErrValidation, err)
	}

	log.Debug().
		Str("invocation_id", st.ID).
		Str("intent", string(intent)).
		Msg("intent classified")

	return st, nil
}
