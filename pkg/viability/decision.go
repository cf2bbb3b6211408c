// Package viability implements the provider-viability filter: a pipeline of
// hard exclusions, a keyword gate, and a cached conservative LLM assessment,
// run over a bounded worker pool.
package viability

import (
	"fmt"

	"github.com/confscout/scout/ent"
)

// Decision is the outcome of the LLM assessment stage before the
// conservative policy is applied.
type Decision struct {
	Kind       DecisionKind
	Confidence int
	Reason     string
}

// DecisionKind enumerates assessment outcomes.
type DecisionKind string

const (
	DecisionViable    DecisionKind = "viable"
	DecisionNotViable DecisionKind = "not_viable"
	DecisionUncertain DecisionKind = "uncertain"
)

// Outcome is the final per-candidate filter verdict.
type Outcome struct {
	Startup  *ent.Startup
	Accepted bool

	// Reason explains the verdict: HardExcluded(phrase), KeywordMatch(kw),
	// Viable(...), NotViable(...), LowConfidence(n), Unavailable.
	Reason string

	// Score is the composite provider score, set for accepted candidates.
	Score float64
}

// Result is the filter output. Accepted and Rejected preserve the input
// order. Pending lists candidates not reached before cancellation.
type Result struct {
	Accepted []Outcome
	Rejected []Outcome
	Pending  []*ent.Startup
}

// fold applies the conservative acceptance policy: only a confident VIABLE
// verdict accepts; anything uncertain rejects.
func fold(d Decision, threshold int) (accepted bool, reason string) {
	switch {
	case d.Kind == DecisionViable && d.Confidence >= threshold:
		return true, fmt.Sprintf("Viable(%s)", d.Reason)
	case d.Kind == DecisionNotViable && d.Confidence >= threshold:
		return false, fmt.Sprintf("NotViable(%s)", d.Reason)
	default:
		return false, fmt.Sprintf("LowConfidence(%d)", d.Confidence)
	}
}
