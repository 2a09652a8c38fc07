package state

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Intent is the closed-set classification of a user message. It decides
// which tool and policy logic runs for the invocation.
type Intent string

const (
	IntentProductAssist Intent = "product_assist"
	IntentOrderHelp     Intent = "order_help"
	IntentOther         Intent = "other"
)

var (
	ErrEmptyPrompt   = errors.New("prompt is empty")
	ErrMessageSet    = errors.New("final message already set")
	ErrEmptyMessage  = errors.New("final message is empty")
	ErrUnknownIntent = errors.New("unknown intent")
)

// Product is immutable reference data from the product catalog.
type Product struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Price float64  `json:"price"`
	Sizes []string `json:"sizes"`
	Tags  []string `json:"tags"`
	Color string   `json:"color"`
}

// Order is immutable reference data from the order book. OrderID and Email
// are matched case-insensitively.
type Order struct {
	OrderID   string    `json:"order_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// PolicyDecision is the outcome of the 60-minute cancellation rule.
type PolicyDecision struct {
	CancelAllowed bool   `json:"cancel_allowed"`
	Reason        string `json:"reason"`
}

type SizeAdvice struct {
	Recommended string `json:"recommended"`
	Rationale   string `json:"rationale"`
}

type DeliveryEstimate struct {
	Zip    string `json:"zip"`
	Window string `json:"eta_window"`
}

// Evidence is one structured fact supporting the final reply.
type Evidence map[string]any

// RequestState is the record threaded through all stages of one invocation.
// It is owned exclusively by the pipeline for its lifetime: created at
// invocation start, populated monotonically stage by stage, discarded after
// the caller reads the trace. Fields belonging to an intent not taken stay
// at their zero value.
type RequestState struct {
	ID     string
	Prompt string

	Intent         Intent
	ToolsCalled    []string
	Evidence       []Evidence
	PolicyDecision *PolicyDecision

	// product_assist working fields
	Products []Product
	Size     *SizeAdvice
	ETA      *DeliveryEstimate

	// order_help working fields
	Order   *Order
	OrderID string
	Email   string

	FinalMessage string
}

// Trace is the audit view of a finished invocation.
type Trace struct {
	InvocationID   string          `json:"invocation_id"`
	Intent         Intent          `json:"intent"`
	ToolsCalled    []string        `json:"tools_called"`
	Evidence       []Evidence      `json:"evidence"`
	PolicyDecision *PolicyDecision `json:"policy_decision"`
	FinalMessage   string          `json:"final_message"`
}

func NewRequestState(prompt string) (*RequestState, error) {
	trimmed := strings.TrimSpace(prompt)
	if trimmed == "" {
		return nil, ErrEmptyPrompt
	}
	return &RequestState{
		ID:     uuid.NewString(),
		Prompt: trimmed,
	}, nil
}

// SetIntent records the router decision and opens a fresh accumulation
// window: the tool and evidence logs always restart with classification.
func (s *RequestState) SetIntent(intent Intent) error {
	switch intent {
	case IntentProductAssist, IntentOrderHelp, IntentOther:
	default:
		return ErrUnknownIntent
	}
	s.Intent = intent
	s.ToolsCalled = []string{}
	s.Evidence = []Evidence{}
	return nil
}

// RecordTool appends to the ordered tool-call log. Insertion order is the
// audit trail and is never rewritten.
func (s *RequestState) RecordTool(name string) {
	s.ToolsCalled = append(s.ToolsCalled, name)
}

func (s *RequestState) AddEvidence(ev Evidence) {
	s.Evidence = append(s.Evidence, ev)
}

// SetFinalMessage writes the reply exactly once.
func (s *RequestState) SetFinalMessage(msg string) error {
	if s.FinalMessage != "" {
		return ErrMessageSet
	}
	trimmed := strings.TrimSpace(msg)
	if trimmed == "" {
		return ErrEmptyMessage
	}
	s.FinalMessage = trimmed
	return nil
}

// Snapshot builds the trace returned to the caller. The slices are copied so
// the trace stays stable once the state is discarded.
func (s *RequestState) Snapshot() Trace {
	tools := make([]string, len(s.ToolsCalled))
	copy(tools, s.ToolsCalled)

	evidence := make([]Evidence, len(s.Evidence))
	copy(evidence, s.Evidence)

	return Trace{
		InvocationID:   s.ID,
		Intent:         s.Intent,
		ToolsCalled:    tools,
		Evidence:       evidence,
		PolicyDecision: s.PolicyDecision,
		FinalMessage:   s.FinalMessage,
	}
}
