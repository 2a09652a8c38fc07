package pipeline

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"

	nodex "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/nodes"
	statex "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/state"
)

// compileRunGraph assembles the invocation graph. The edge list is the
// literal stage order: every transition is unconditional, stages branch
// internally on the state, and no stage re-enters an earlier one.
func (p *Pipeline) compileRunGraph(
	ctx context.Context,
) (compose.Runnable[nodex.GraphInput, nodex.GraphOutput], error) {
	graph := compose.NewGraph[nodex.GraphInput, nodex.GraphOutput]()

	if err := graph.AddLambdaNode("validate_request",
		compose.InvokableLambda(func(ctx context.Context, in nodex.GraphInput) (*statex.RequestState, error) {
			return nodex.ValidateRequest(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node validate_request: %w", err)
	}

	if err := graph.AddLambdaNode("router",
		compose.InvokableLambda(func(ctx context.Context, in *statex.RequestState) (*statex.RequestState, error) {
			return nodex.Router(ctx, in, p.classifier)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node router: %w", err)
	}

	if err := graph.AddLambdaNode("tool_selector",
		compose.InvokableLambda(func(ctx context.Context, in *statex.RequestState) (*statex.RequestState, error) {
			return nodex.SelectTools(ctx, in, p.tools)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node tool_selector: %w", err)
	}

	if err := graph.AddLambdaNode("policy_guard",
		compose.InvokableLambda(func(ctx context.Context, in *statex.RequestState) (*statex.RequestState, error) {
			return nodex.GuardPolicy(ctx, in, p.tools)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node policy_guard: %w", err)
	}

	if err := graph.AddLambdaNode("responder",
		compose.InvokableLambda(func(ctx context.Context, in *statex.RequestState) (*statex.RequestState, error) {
			return nodex.ComposeReply(ctx, in, p.composer)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node responder: %w", err)
	}

	if err := graph.AddLambdaNode("trace",
		compose.InvokableLambda(func(ctx context.Context, in *statex.RequestState) (nodex.GraphOutput, error) {
			return nodex.Trace(in)
		}),
	); err != nil {
		return nil, fmt.Errorf("add node trace: %w", err)
	}

	edges := [][2]string{
		{compose.START, "validate_request"},
		{"validate_request", "router"},
		{"router", "tool_selector"},
		{"tool_selector", "policy_guard"},
		{"policy_guard", "responder"},
		{"responder", "trace"},
		{"trace", compose.END},
	}

	for _, edge := range edges {
		if err := graph.AddEdge(edge[0], edge[1]); err != nil {
			return nil, fmt.Errorf("add edge %s->%s: %w", edge[0], edge[1], err)
		}
	}

	runner, err := graph.Compile(ctx, compose.WithGraphName("pipeline.run"))
	if err != nil {
		return nil, fmt.Errorf("compile pipeline graph: %w", err)
	}
	return runner, nil
}
