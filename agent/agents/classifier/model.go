package classifier

import (
	"context"
	"fmt"
	"strings"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/contract"
	statex "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/state"
)

type modelClassifier struct {
	runner      compose.Runnable[map[string]any, *schema.Message]
	instruction string
}

var _ contractx.Classifier = (*modelClassifier)(nil)

// NewModelClassifier compiles the classification runner once. instruction is
// the fixed classification request prefixed to the user prompt.
func NewModelClassifier(
	ctx context.Context,
	chatModel einomodel.BaseChatModel,
	systemPrompt string,
	instruction string,
) (contractx.Classifier, error) {
	runner, err := compileChatGraph(ctx, chatModel, systemPrompt, "classifier.model_graph")
	if err != nil {
		return nil, fmt.Errorf("%w: compile classifier graph: %v", contractx.ErrClassificationUnavailable, err)
	}
	return &modelClassifier{
		runner:      runner,
		instruction: strings.TrimSpace(instruction),
	}, nil
}

func (c *modelClassifier) Classify(ctx context.Context, prompt string) (statex.Intent, error) {
	msg, err := c.runner.Invoke(ctx, map[string]any{
		"input": c.instruction + "\nUser: " + prompt,
	})
	if err != nil {
		return "", fmt.Errorf("%w: classifier invoke: %v", contractx.ErrClassificationUnavailable, err)
	}
	if msg == nil || strings.TrimSpace(msg.Content) == "" {
		return "", fmt.Errorf("%w: empty classification response", contractx.ErrClassificationUnavailable)
	}

	return intentFromResponse(msg.Content), nil
}

// intentFromResponse interprets the returned text by keyword containment;
// the first matching keyword wins, with no further disambiguation.
func intentFromResponse(text string) statex.Intent {
	switch {
	case strings.Contains(text, "product"):
		return statex.IntentProductAssist
	case strings.Contains(text, "order"):
		return statex.IntentOrderHelp
	default:
		return statex.IntentOther
	}
}
