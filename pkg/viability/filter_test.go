package viability

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confscout/scout/ent"
	"github.com/confscout/scout/pkg/config"
	"github.com/confscout/scout/pkg/llm"
	"github.com/confscout/scout/pkg/llm/cache"
	"github.com/confscout/scout/pkg/taxonomy"
)

// fakeLLM returns a fixed assessment and counts calls.
type fakeLLM struct {
	calls   atomic.Int64
	content string
	err     error
}

func (f *fakeLLM) Complete(ctx context.Context, req *llm.Request) (*llm.Response, error) {
	f.calls.Add(1)
	if f.err != nil {
		return nil, f.err
	}
	return &llm.Response{Content: f.content, Role: llm.RoleAssistant, FinishReason: "stop"}, nil
}

func newTestFilter(t *testing.T, client llm.Client) *Filter {
	t.Helper()
	c, err := cache.New[Decision](100, time.Hour)
	require.NoError(t, err)
	t.Cleanup(c.Close)

	return NewFilter(
		config.GetBuiltinViability(),
		&config.LLMConfig{Model: "gpt-4o-mini", Temperature: 0.3},
		client,
		c,
		taxonomy.NewClassifier(config.GetBuiltinPriorities()),
		slog.Default(),
	)
}

func TestFilterHardExclusionSkipsLLM(t *testing.T) {
	upstream := &fakeLLM{content: "DECISION: VIABLE\nCONFIDENCE: 95\nREASON: fine"}
	f := newTestFilter(t, upstream)

	result := f.Filter(context.Background(), []*ent.Startup{
		{ID: 1, Name: "DatingApp Inc", Description: "dating app for singles"},
	})

	require.Len(t, result.Rejected, 1)
	assert.Empty(t, result.Accepted)
	assert.Equal(t, "HardExcluded(dating app)", result.Rejected[0].Reason)
	assert.EqualValues(t, 0, upstream.calls.Load(), "hard exclusion must not reach the LLM")
}

func TestFilterKeywordGateSkipsLLM(t *testing.T) {
	upstream := &fakeLLM{content: "irrelevant"}
	f := newTestFilter(t, upstream)

	result := f.Filter(context.Background(), []*ent.Startup{
		{ID: 1, Name: "Coverly", Description: "enterprise insurance claims software"},
	})

	require.Len(t, result.Accepted, 1)
	assert.Equal(t, "KeywordMatch(enterprise)", result.Accepted[0].Reason)
	assert.EqualValues(t, 0, upstream.calls.Load())
}

func TestFilterLLMDecisions(t *testing.T) {
	// Neither excluded nor gated: plain-language description.
	candidate := func(id int64) *ent.Startup {
		return &ent.Startup{ID: id, Name: "Quietly", Description: "software for architects"}
	}

	tests := []struct {
		name       string
		content    string
		accepted   bool
		wantReason string
	}{
		{
			"confident viable",
			"DECISION: VIABLE\nCONFIDENCE: 85\nREASON: established vendor",
			true,
			"Viable(established vendor)",
		},
		{
			"confident not viable",
			"DECISION: NOT_VIABLE\nCONFIDENCE: 90\nREASON: consumer product",
			false,
			"NotViable(consumer product)",
		},
		{
			"low confidence rejects",
			"DECISION: VIABLE\nCONFIDENCE: 40\nREASON: unsure",
			false,
			"LowConfidence(40)",
		},
		{
			"garbage output rejects",
			"I think it could work out",
			false,
			"LowConfidence(0)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFilter(t, &fakeLLM{content: tt.content})
			result := f.Filter(context.Background(), []*ent.Startup{candidate(1)})

			var got Outcome
			if tt.accepted {
				require.Len(t, result.Accepted, 1)
				got = result.Accepted[0]
			} else {
				require.Len(t, result.Rejected, 1)
				got = result.Rejected[0]
			}
			assert.Equal(t, tt.wantReason, got.Reason)
		})
	}
}

func TestFilterAssessmentCached(t *testing.T) {
	upstream := &fakeLLM{content: "DECISION: VIABLE\nCONFIDENCE: 85\nREASON: fine"}
	f := newTestFilter(t, upstream)
	s := &ent.Startup{ID: 1, Name: "Quietly", Description: "software for architects"}

	f.Filter(context.Background(), []*ent.Startup{s})
	f.Filter(context.Background(), []*ent.Startup{s})

	assert.EqualValues(t, 1, upstream.calls.Load(), "second pass must hit the cache")
}

func TestFilterUnavailableWhenCircuitOpen(t *testing.T) {
	upstream := &fakeLLM{err: &llm.Error{Kind: llm.KindCircuitOpen, Message: "open"}}
	f := newTestFilter(t, upstream)

	result := f.Filter(context.Background(), []*ent.Startup{
		{ID: 1, Name: "Quietly", Description: "software for architects"},
	})

	require.Len(t, result.Rejected, 1)
	assert.Equal(t, "Unavailable", result.Rejected[0].Reason)
}

func TestFilterPartitionsInputInOrder(t *testing.T) {
	f := newTestFilter(t, &fakeLLM{content: "DECISION: VIABLE\nCONFIDENCE: 85\nREASON: fine"})

	candidates := []*ent.Startup{
		{ID: 1, Name: "A", Description: "enterprise saas"},
		{ID: 2, Name: "B", Description: "dating app"},
		{ID: 3, Name: "C", Description: "b2b risk tooling"},
		{ID: 4, Name: "D", Description: "software for architects"},
		{ID: 5, Name: "E", Description: "mobile game studio"},
	}
	result := f.Filter(context.Background(), candidates)

	assert.Empty(t, result.Pending)
	assert.Equal(t, len(candidates), len(result.Accepted)+len(result.Rejected))

	acceptedIDs := []int64{}
	for _, o := range result.Accepted {
		acceptedIDs = append(acceptedIDs, o.Startup.ID)
	}
	rejectedIDs := []int64{}
	for _, o := range result.Rejected {
		rejectedIDs = append(rejectedIDs, o.Startup.ID)
	}
	assert.Equal(t, []int64{1, 3, 4}, acceptedIDs)
	assert.Equal(t, []int64{2, 5}, rejectedIDs)
}

func TestFilterCancelledContextReturnsPending(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := newTestFilter(t, &fakeLLM{content: "DECISION: VIABLE\nCONFIDENCE: 85\nREASON: fine"})
	candidates := []*ent.Startup{
		{ID: 1, Name: "A", Description: "software for architects"},
		{ID: 2, Name: "B", Description: "software for dentists"},
	}
	result := f.Filter(ctx, candidates)

	total := len(result.Accepted) + len(result.Rejected) + len(result.Pending)
	assert.Equal(t, len(candidates), total, "every candidate accounted for")
	assert.NotEmpty(t, result.Pending, "cancelled run must report pending work")
}

func TestParseAssessment(t *testing.T) {
	d := parseAssessment("DECISION: NOT_VIABLE\nCONFIDENCE: 72\nREASON: consumer focus")
	assert.Equal(t, DecisionNotViable, d.Kind)
	assert.Equal(t, 72, d.Confidence)
	assert.Equal(t, "consumer focus", d.Reason)

	d = parseAssessment("decision: viable\nconfidence: 88\nreason: strong enterprise traction")
	assert.Equal(t, DecisionViable, d.Kind, "parsing is case-insensitive")
	assert.Equal(t, 88, d.Confidence)

	d = parseAssessment("DECISION: VIABLE\nREASON: but no confidence line")
	assert.Equal(t, DecisionUncertain, d.Kind, "decision without confidence is untrusted")
}
