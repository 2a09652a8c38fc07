// Package pipeline runs the fixed five-stage request workflow:
// router → tool_selector → policy_guard → responder → trace.
package pipeline

import (
	"context"
	"errors"
	"time"

	"github.com/cloudwego/eino/compose"
	"github.com/rs/zerolog/log"

	contractx "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/contract"
	nodex "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/nodes"
)

type Pipeline struct {
	classifier contractx.Classifier
	composer   contractx.Composer
	tools      contractx.ToolGateway

	graphRunner compose.Runnable[nodex.GraphInput, nodex.GraphOutput]
}

func New(
	registry contractx.Registry,
	tools contractx.ToolGateway,
) (*Pipeline, error) {
	if registry == nil {
		return nil, errors.New("strategy registry is required")
	}
	if tools == nil {
		return nil, errors.New("tool gateway is required")
	}

	p := &Pipeline{
		classifier: registry.Classifier(),
		composer:   registry.Composer(),
		tools:      tools,
	}
	if p.classifier == nil {
		return nil, errors.New("classifier is required")
	}
	if p.composer == nil {
		return nil, errors.New("composer is required")
	}

	graphRunner, err := p.compileRunGraph(context.Background())
	if err != nil {
		return nil, err
	}
	p.graphRunner = graphRunner

	return p, nil
}

// Run executes one invocation. The request state is created fresh here,
// owned by the graph for the duration of the call, and returned only as the
// terminal trace; nothing is retained between invocations.
func (p *Pipeline) Run(ctx context.Context, prompt string) (contractx.RunResult, error) {
	started := time.Now()

	out, err := p.graphRunner.Invoke(ctx, nodex.GraphInput{Prompt: prompt})
	if err != nil {
		return contractx.RunResult{}, err
	}

	log.Info().
		Str("invocation_id", out.Result.Trace.InvocationID).
		Str("intent", string(out.Result.Trace.Intent)).
		Strs("tools_called", out.Result.Trace.ToolsCalled).
		Dur("elapsed", time.Since(started)).
		Msg("invocation finished")

	return out.Result, nil
}
