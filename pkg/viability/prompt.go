package viability

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

const assessSystemPrompt = `You evaluate whether a company could plausibly serve as a B2B technology supplier to a large enterprise. Be conservative: when in doubt, answer NOT_VIABLE with low confidence.

Respond with exactly three lines:
DECISION: VIABLE or NOT_VIABLE
CONFIDENCE: an integer from 0 to 100
REASON: one short sentence`

// assessUserPrompt renders the candidate for assessment.
func assessUserPrompt(name, description, industry string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Company: %s\n", name)
	if industry != "" {
		fmt.Fprintf(&b, "Industry: %s\n", industry)
	}
	fmt.Fprintf(&b, "Description: %s", description)
	return b.String()
}

var (
	decisionRe   = regexp.MustCompile(`(?im)^\s*DECISION:\s*(VIABLE|NOT_VIABLE)\s*$`)
	confidenceRe = regexp.MustCompile(`(?im)^\s*CONFIDENCE:\s*(\d{1,3})\s*$`)
	reasonRe     = regexp.MustCompile(`(?im)^\s*REASON:\s*(.+)$`)
)

// parseAssessment extracts the structured verdict from the model output.
// Anything that fails to parse is treated as Uncertain with zero confidence.
func parseAssessment(content string) Decision {
	d := Decision{Kind: DecisionUncertain}

	if m := decisionRe.FindStringSubmatch(content); m != nil {
		if strings.EqualFold(m[1], "VIABLE") {
			d.Kind = DecisionViable
		} else {
			d.Kind = DecisionNotViable
		}
	}
	if m := confidenceRe.FindStringSubmatch(content); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 0 && n <= 100 {
			d.Confidence = n
		}
	}
	if m := reasonRe.FindStringSubmatch(content); m != nil {
		d.Reason = strings.TrimSpace(m[1])
	}

	// A decision without a parsed confidence stays untrusted.
	if d.Kind != DecisionUncertain && !confidenceRe.MatchString(content) {
		d.Kind = DecisionUncertain
		d.Confidence = 0
	}
	return d
}
