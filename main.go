package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"

	"github.com/rs/zerolog/log"

	pipelinex "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/agents/pipeline"
	llmx "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/llm"
	toolx "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/tool"
	configx "github.com/tanpawarit/EvoAI-Commerce-Agent/pkg/config"
	geminix "github.com/tanpawarit/EvoAI-Commerce-Agent/pkg/gemini"
	_ "github.com/tanpawarit/EvoAI-Commerce-Agent/pkg/logger/autoload"
	openaix "github.com/tanpawarit/EvoAI-Commerce-Agent/pkg/openai"
)

// referencePrompts exercise each branch of the workflow when no prompt is
// given on the command line.
var referencePrompts = []string{
	"Wedding guest, midi, under $120 — I’m between M/L. ETA to 560001?",
	"Cancel order A1003 — email mira@example.com.",
	"Cancel order A1002 — email alex@example.com.",
	"Can you give me a discount code that doesn’t exist?",
}

func main() {
	llmCfg := configx.MustNew[llmx.Config]("LLM")
	openaiCfg := configx.MustNew[openaix.Config]("OPENAI")
	geminiCfg := configx.MustNew[geminix.Config]("GEMINI")
	toolCfg := configx.MustNew[toolx.Config]("AGENT")

	ctx := context.Background()

	catalog, err := toolx.NewCatalog(*toolCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open tool catalog")
	}

	registry, err := llmx.NewRegistry(ctx, *llmCfg, *openaiCfg, *geminiCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build strategy registry")
	}

	pipe, err := pipelinex.New(registry, catalog)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build pipeline")
	}

	prompts := flag.Args()
	if len(prompts) == 0 {
		prompts = referencePrompts
	}

	for _, prompt := range prompts {
		result, err := pipe.Run(ctx, prompt)
		if err != nil {
			log.Fatal().Err(err).Str("prompt", prompt).Msg("invocation failed")
		}

		trace, err := json.MarshalIndent(result.Trace, "", "  ")
		if err != nil {
			log.Fatal().Err(err).Msg("failed to encode trace")
		}
		fmt.Println(string(trace))
		fmt.Println()
		fmt.Println(result.Reply)
	}
}
