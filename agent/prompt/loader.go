package prompt

import (
	_ "embed"
	"strings"
)

var (
	//go:embed template/system.txt
	systemRaw string

	//go:embed template/classify.txt
	classifyRaw string

	//go:embed template/compose.txt
	composeRaw string
)

// PromptSet holds loaded prompt content.
type PromptSet struct {
	System   string
	Classify string
	Compose  string
}

// LoadPromptSet returns a PromptSet with trimmed prompt strings.
// This is safe to call concurrently; the embed is compile-time, and trimming is cheap.
func LoadPromptSet() PromptSet {
	return PromptSet{
		System:   strings.TrimSpace(systemRaw),
		Classify: strings.TrimSpace(classifyRaw),
		Compose:  strings.TrimSpace(composeRaw),
	}
}
