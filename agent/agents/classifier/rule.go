// Package classifier provides the two interchangeable intent classification
// strategies: a keyword ruleset and a model-backed strategy. Which one runs
// is decided once at configuration time.
package classifier

import (
	"context"
	"strings"

	contractx "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/contract"
	statex "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/state"
)

// Order keywords take precedence over product keywords. The trailing space
// in "order " keeps a bare "ordered" from matching on its own.
var (
	orderKeywords   = []string{"cancel order", "order status", "order help", "where is my order", "order ", "refund"}
	productKeywords = []string{"dress", "product", "wedding", "midi", "size", "eta", "zip"}
)

type RuleClassifier struct{}

var _ contractx.Classifier = RuleClassifier{}

func NewRuleClassifier() RuleClassifier {
	return RuleClassifier{}
}

func (RuleClassifier) Classify(ctx context.Context, prompt string) (statex.Intent, error) {
	low := strings.ToLower(prompt)

	for _, k := range orderKeywords {
		if strings.Contains(low, k) {
			return statex.IntentOrderHelp, nil
		}
	}
	for _, k := range productKeywords {
		if strings.Contains(low, k) {
			return statex.IntentProductAssist, nil
		}
	}
	return statex.IntentOther, nil
}
