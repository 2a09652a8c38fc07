package composer

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/contract"
	statex "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/state"
)

type modelComposer struct {
	runner      compose.Runnable[map[string]any, *schema.Message]
	instruction string
}

var _ contractx.Composer = (*modelComposer)(nil)

// NewModelComposer compiles the composition runner once. instruction is the
// fixed composition brief; the request state travels as serialized context.
func NewModelComposer(
	ctx context.Context,
	chatModel einomodel.BaseChatModel,
	systemPrompt string,
	instruction string,
) (contractx.Composer, error) {
	runner, err := compileChatGraph(ctx, chatModel, systemPrompt, "composer.model_graph")
	if err != nil {
		return nil, fmt.Errorf("%w: compile composer graph: %v", contractx.ErrCompositionUnavailable, err)
	}
	return &modelComposer{
		runner:      runner,
		instruction: strings.TrimSpace(instruction),
	}, nil
}

func (c *modelComposer) Compose(ctx context.Context, st *statex.RequestState) (string, error) {
	if st == nil {
		return "", fmt.Errorf("%w: request state is nil", contractx.ErrValidation)
	}

	context_, err := json.MarshalIndent(contractx.NewComposeContext(st), "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: marshal compose context: %v", contractx.ErrValidation, err)
	}

	msg, err := c.runner.Invoke(ctx, map[string]any{
		"input": c.instruction + "\n\nContext:\n" + string(context_),
	})
	if err != nil {
		return "", fmt.Errorf("%w: composer invoke: %v", contractx.ErrCompositionUnavailable, err)
	}
	if msg == nil {
		return "", fmt.Errorf("%w: empty composition response", contractx.ErrCompositionUnavailable)
	}

	reply := strings.TrimSpace(msg.Content)
	if reply == "" {
		return "", fmt.Errorf("%w: empty composition response", contractx.ErrCompositionUnavailable)
	}
	return reply, nil
}
