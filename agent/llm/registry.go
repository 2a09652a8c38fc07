package llm

import (
	"context"
	"fmt"

	einomodel "github.com/cloudwego/eino/components/model"

	classifierx "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/agents/classifier"
	composerx "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/agents/composer"
	contractx "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/contract"
	promptx "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/prompt"
	geminix "github.com/tanpawarit/EvoAI-Commerce-Agent/pkg/gemini"
	openaix "github.com/tanpawarit/EvoAI-Commerce-Agent/pkg/openai"
)

type registryImpl struct {
	classifier contractx.Classifier
	composer   contractx.Composer
}

func (r *registryImpl) Classifier() contractx.Classifier {
	return r.classifier
}

func (r *registryImpl) Composer() contractx.Composer {
	return r.composer
}

// NewRegistry decides the classification/composition strategy pair once, at
// configuration time. The deterministic flag or missing credentials for the
// selected provider yield the rule/template pair; otherwise both strategies
// share one chat model for the chosen back-end.
func NewRegistry(
	ctx context.Context,
	cfg Config,
	openaiCfg openaix.Config,
	geminiCfg geminix.Config,
) (contractx.Registry, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	delegated := !cfg.Deterministic
	if delegated {
		switch cfg.provider() {
		case ProviderGemini:
			delegated = geminiCfg.Enabled()
		default:
			delegated = openaiCfg.Enabled()
		}
	}

	if !delegated {
		return &registryImpl{
			classifier: classifierx.NewRuleClassifier(),
			composer:   composerx.NewTemplateComposer(),
		}, nil
	}

	var (
		chatModel einomodel.BaseChatModel
		err       error
	)
	switch cfg.provider() {
	case ProviderGemini:
		chatModel, err = geminix.NewChatModel(ctx, geminiCfg)
	default:
		chatModel, err = openaix.NewChatModel(openaiCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: create %s chat model: %v", contractx.ErrConfig, cfg.provider(), err)
	}

	prompts := promptx.LoadPromptSet()

	classifier, err := classifierx.NewModelClassifier(ctx, chatModel, prompts.System, prompts.Classify)
	if err != nil {
		return nil, err
	}
	composer, err := composerx.NewModelComposer(ctx, chatModel, prompts.System, prompts.Compose)
	if err != nil {
		return nil, err
	}

	return &registryImpl{
		classifier: classifier,
		composer:   composer,
	}, nil
}
