package state

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewRequestStateTrimsPrompt(t *testing.T) {
	t.Parallel()

	st, err := NewRequestState("  hello  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.Prompt != "hello" {
		t.Fatalf("unexpected prompt: %q", st.Prompt)
	}
	if st.ID == "" {
		t.Fatal("expected invocation id")
	}
}

func TestNewRequestStateEmptyPrompt(t *testing.T) {
	t.Parallel()

	if _, err := NewRequestState("   "); !errors.Is(err, ErrEmptyPrompt) {
		t.Fatalf("expected ErrEmptyPrompt, got %v", err)
	}
}

func TestSetIntentResetsAccumulators(t *testing.T) {
	t.Parallel()

	st, err := NewRequestState("hi")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	st.RecordTool("stale_tool")
	st.AddEvidence(Evidence{"stale": true})

	if err := st.SetIntent(IntentOrderHelp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(st.ToolsCalled) != 0 || len(st.Evidence) != 0 {
		t.Fatalf("accumulators not reset: tools=%v evidence=%v", st.ToolsCalled, st.Evidence)
	}
}

func TestSetIntentRejectsUnknown(t *testing.T) {
	t.Parallel()

	st, _ := NewRequestState("hi")
	if err := st.SetIntent(Intent("billing")); !errors.Is(err, ErrUnknownIntent) {
		t.Fatalf("expected ErrUnknownIntent, got %v", err)
	}
}

func TestRecordToolPreservesOrder(t *testing.T) {
	t.Parallel()

	st, _ := NewRequestState("hi")
	_ = st.SetIntent(IntentProductAssist)

	st.RecordTool("product_search")
	st.RecordTool("size_recommender")
	st.RecordTool("eta")

	want := []string{"product_search", "size_recommender", "eta"}
	if !reflect.DeepEqual(st.ToolsCalled, want) {
		t.Fatalf("tools_called = %v, want %v", st.ToolsCalled, want)
	}
}

func TestSetFinalMessageOnce(t *testing.T) {
	t.Parallel()

	st, _ := NewRequestState("hi")
	if err := st.SetFinalMessage("  done  "); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if st.FinalMessage != "done" {
		t.Fatalf("unexpected message: %q", st.FinalMessage)
	}
	if err := st.SetFinalMessage("again"); !errors.Is(err, ErrMessageSet) {
		t.Fatalf("expected ErrMessageSet, got %v", err)
	}
}

func TestSetFinalMessageRejectsEmpty(t *testing.T) {
	t.Parallel()

	st, _ := NewRequestState("hi")
	if err := st.SetFinalMessage("   "); !errors.Is(err, ErrEmptyMessage) {
		t.Fatalf("expected ErrEmptyMessage, got %v", err)
	}
}

func TestSnapshotIsStable(t *testing.T) {
	t.Parallel()

	st, _ := NewRequestState("hi")
	_ = st.SetIntent(IntentOrderHelp)
	st.RecordTool("order_lookup")
	st.AddEvidence(Evidence{"order_id": "A1003", "found": true})
	st.PolicyDecision = &PolicyDecision{CancelAllowed: true, Reason: "within_60_min (35.0 min)"}
	_ = st.SetFinalMessage("ok")

	trace := st.Snapshot()

	// Later mutation must not leak into the snapshot.
	st.RecordTool("late_tool")
	st.AddEvidence(Evidence{"late": true})

	if len(trace.ToolsCalled) != 1 || trace.ToolsCalled[0] != "order_lookup" {
		t.Fatalf("unexpected tools in trace: %v", trace.ToolsCalled)
	}
	if len(trace.Evidence) != 1 {
		t.Fatalf("unexpected evidence in trace: %v", trace.Evidence)
	}
	if trace.InvocationID != st.ID {
		t.Fatalf("trace id %q != state id %q", trace.InvocationID, st.ID)
	}
	if trace.FinalMessage != "ok" {
		t.Fatalf("unexpected final message: %q", trace.FinalMessage)
	}
}
