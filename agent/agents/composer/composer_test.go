package composer

import (
	"context"
	"errors"
	"strings"
	"testing"

	einomodel "github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	contractx "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/contract"
	statex "github.com/tanpawarit/EvoAI-Commerce-Agent/agent/state"
)

type fakeChatModel struct {
	reply     string
	err       error
	lastInput []*schema.Message
}

var _ einomodel.BaseChatModel = (*fakeChatModel)(nil)

func (f *fakeChatModel) Generate(_ context.Context, input []*schema.Message, _ ...einomodel.Option) (*schema.Message, error) {
	f.lastInput = input
	if f.err != nil {
		return nil, f.err
	}
	return schema.AssistantMessage(f.reply, nil), nil
}

func (f *fakeChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...einomodel.Option) (*schema.StreamReader[*schema.Message], error) {
	msg, err := f.Generate(ctx, input, opts...)
	if err != nil {
		return nil, err
	}
	return schema.StreamReaderFromArray([]*schema.Message{msg}), nil
}

func stateWithIntent(t *testing.T, prompt string, intent statex.Intent) *statex.RequestState {
	t.Helper()
	st, err := statex.NewRequestState(prompt)
	if err != nil {
		t.Fatalf("NewRequestState: %v", err)
	}
	if err := st.SetIntent(intent); err != nil {
		t.Fatalf("SetIntent: %v", err)
	}
	return st
}

func TestTemplateComposerProductPicks(t *testing.T) {
	t.Parallel()

	st := stateWithIntent(t, "wedding midi under $120", statex.IntentProductAssist)
	st.Products = []statex.Product{
		{ID: "P1001", Title: "Satin Midi Dress", Price: 99, Sizes: []string{"S", "M", "L"}},
		{ID: "P1002", Title: "Floral Wrap Midi Dress", Price: 119, Sizes: []string{"M", "L"}},
	}
	st.Size = &statex.SizeAdvice{
		Recommended: "M",
		Rationale:   "You mentioned you're between M and L; we suggest M for a closer fit or L if you prefer a roomier feel.",
	}
	st.ETA = &statex.DeliveryEstimate{Zip: "560001", Window: "3–5 business days"}

	got, err := NewTemplateComposer().Compose(context.Background(), st)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "Here are two options under your budget:\n" +
		"• Satin Midi Dress — $99 | sizes: S, M, L\n" +
		"• Floral Wrap Midi Dress — $119 | sizes: M, L\n\n" +
		"Size tip: go **M**. You mentioned you're between M and L; we suggest M for a closer fit or L if you prefer a roomier feel.\n" +
		"ETA to 560001: 3–5 business days."
	if got != want {
		t.Fatalf("unexpected message:\n%q\nwant:\n%q", got, want)
	}
}

func TestTemplateComposerNoMatches(t *testing.T) {
	t.Parallel()

	st := stateWithIntent(t, "wedding midi under $10", statex.IntentProductAssist)

	got, err := NewTemplateComposer().Compose(context.Background(), st)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "I couldn't find items that match your filters. If you can relax the budget or tags, I can search again."
	if got != want {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestTemplateComposerOrderNotVerified(t *testing.T) {
	t.Parallel()

	st := stateWithIntent(t, "cancel order A9999", statex.IntentOrderHelp)
	st.PolicyDecision = &statex.PolicyDecision{
		CancelAllowed: false,
		Reason:        "order_not_found_or_missing_credentials",
	}

	got, err := NewTemplateComposer().Compose(context.Background(), st)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "I couldn’t verify that order. Please double-check the order ID and email, or I can hand you to support."
	if got != want {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestTemplateComposerCancelAllowed(t *testing.T) {
	t.Parallel()

	st := stateWithIntent(t, "cancel order A1003 — email mira@example.com", statex.IntentOrderHelp)
	st.Order = &statex.Order{OrderID: "A1003", Email: "mira@example.com"}
	st.PolicyDecision = &statex.PolicyDecision{
		CancelAllowed: true,
		Reason:        "within_60_min (35.0 min)",
	}

	got, err := NewTemplateComposer().Compose(context.Background(), st)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "✅ Order A1003 is cancelled successfully. You’ll see a confirmation email shortly."
	if got != want {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestTemplateComposerCancelBlocked(t *testing.T) {
	t.Parallel()

	st := stateWithIntent(t, "cancel order A1002 — email alex@example.com", statex.IntentOrderHelp)
	st.Order = &statex.Order{OrderID: "A1002", Email: "alex@example.com"}
	st.PolicyDecision = &statex.PolicyDecision{
		CancelAllowed: false,
		Reason:        ">60 min (160.0 min)",
	}

	got, err := NewTemplateComposer().Compose(context.Background(), st)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "❌ I can’t cancel order A1002 because our policy allows cancellations only within 60 minutes of purchase (>60 min (160.0 min)).\n" +
		"Next best options:\n" +
		"• Edit the delivery address (if the carrier hasn’t picked it up)\n" +
		"• Convert to store credit after delivery\n" +
		"• Or I can hand you off to a human agent"
	if got != want {
		t.Fatalf("unexpected message:\n%q\nwant:\n%q", got, want)
	}
}

func TestTemplateComposerOther(t *testing.T) {
	t.Parallel()

	st := stateWithIntent(t, "Can you give me a discount code that doesn't exist?", statex.IntentOther)

	got, err := NewTemplateComposer().Compose(context.Background(), st)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(got, "I can’t generate custom discount codes.") {
		t.Fatalf("unexpected message: %q", got)
	}
	if strings.Count(got, "•") != 3 {
		t.Fatalf("expected three alternatives, got:\n%q", got)
	}
}

func TestTemplateComposerPriceFormatting(t *testing.T) {
	t.Parallel()

	st := stateWithIntent(t, "dress", statex.IntentProductAssist)
	st.Products = []statex.Product{
		{ID: "P9", Title: "Sale Dress", Price: 79.5, Sizes: []string{"M"}},
	}

	got, err := NewTemplateComposer().Compose(context.Background(), st)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "$79.5 ") {
		t.Fatalf("fractional price must render without padding zeroes: %q", got)
	}
	if strings.Contains(got, "$79.50") {
		t.Fatalf("unexpected trailing zero: %q", got)
	}
}

func TestModelComposerSendsSerializedContext(t *testing.T) {
	t.Parallel()

	chat := &fakeChatModel{reply: "  a composed reply  "}
	c, err := NewModelComposer(context.Background(), chat, "system prompt", "Compose the final reply.")
	if err != nil {
		t.Fatalf("NewModelComposer: %v", err)
	}

	st := stateWithIntent(t, "cancel order A1003 — email mira@example.com", statex.IntentOrderHelp)
	st.Order = &statex.Order{OrderID: "A1003", Email: "mira@example.com"}
	st.PolicyDecision = &statex.PolicyDecision{CancelAllowed: true, Reason: "within_60_min (35.0 min)"}
	st.AddEvidence(statex.Evidence{"order_id": "A1003", "email": "mira@example.com", "found": true})

	got, err := c.Compose(context.Background(), st)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "a composed reply" {
		t.Fatalf("reply must be trimmed, got %q", got)
	}

	if len(chat.lastInput) != 2 {
		t.Fatalf("expected system + user message, got %d", len(chat.lastInput))
	}
	user := chat.lastInput[1].Content
	if !strings.Contains(user, "Compose the final reply.") {
		t.Fatalf("instruction missing from input: %q", user)
	}
	for _, fragment := range []string{`"intent": "order_help"`, `"order_id": "A1003"`, `"cancel_allowed": true`} {
		if !strings.Contains(user, fragment) {
			t.Fatalf("serialized context missing %q:\n%s", fragment, user)
		}
	}
}

func TestModelComposerWrapsFailure(t *testing.T) {
	t.Parallel()

	chat := &fakeChatModel{err: errors.New("upstream down")}
	c, err := NewModelComposer(context.Background(), chat, "system", "compose")
	if err != nil {
		t.Fatalf("NewModelComposer: %v", err)
	}

	st := stateWithIntent(t, "hello", statex.IntentOther)
	if _, err := c.Compose(context.Background(), st); !errors.Is(err, contractx.ErrCompositionUnavailable) {
		t.Fatalf("expected ErrCompositionUnavailable, got %v", err)
	}
}

func TestModelComposerRejectsEmptyResponse(t *testing.T) {
	t.Parallel()

	chat := &fakeChatModel{reply: "   "}
	c, err := NewModelComposer(context.Background(), chat, "system", "compose")
	if err != nil {
		t.Fatalf("NewModelComposer: %v", err)
	}

	st := stateWithIntent(t, "hello", statex.IntentOther)
	if _, err := c.Compose(context.Background(), st); !errors.Is(err, contractx.ErrCompositionUnavailable) {
		t.Fatalf("expected ErrCompositionUnavailable, got %v", err)
	}
}
