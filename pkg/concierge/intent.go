// Package concierge answers natural-language questions about the conference
// corpus: it classifies the question's intent, drives the LLM through a
// bounded tool-call loop, and routes special intents to dedicated sub-flows.
package concierge

import (
	"strings"

	"github.com/confscout/scout/pkg/models"
)

// QuestionType is the classified intent of an incoming question.
type QuestionType string

const (
	IntentLinkedInPost QuestionType = "linkedin_post"
	IntentFeedbackFlow QuestionType = "feedback_flow"
	IntentDirections   QuestionType = "directions"
	IntentStartupInfo  QuestionType = "startup_info"
	IntentEventInfo    QuestionType = "event_info"
	IntentGeneral      QuestionType = "general"
)

// Ordered so the more specific intents win when a question matches several
// keyword families.
var intentKeywords = []struct {
	intent   QuestionType
	keywords []string
}{
	{IntentLinkedInPost, []string{
		"linkedin post", "linkedin", "write a post", "generate post", "draft a post", "social media post",
	}},
	{IntentFeedbackFlow, []string{
		"feedback", "meeting notes", "debrief", "how did the meeting go",
	}},
	{IntentDirections, []string{
		"directions", "how do i get to", "how to get to", "navigate to", "way to the",
	}},
	{IntentStartupInfo, []string{
		"startup", "company", "companies", "founder", "funding", "investor", "who is building",
	}},
	{IntentEventInfo, []string{
		"event", "session", "talk", "keynote", "schedule", "agenda", "workshop", "when does",
	}},
}

var knownIntents = map[QuestionType]bool{
	IntentLinkedInPost: true,
	IntentFeedbackFlow: true,
	IntentDirections:   true,
	IntentStartupInfo:  true,
	IntentEventInfo:    true,
	IntentGeneral:      true,
}

// classifyIntent lower-cases the question and matches the keyword families in
// priority order. When nothing matches, a role hint from the user context may
// decide; otherwise the intent is general.
func classifyIntent(question string, userCtx *models.UserContext) QuestionType {
	q := strings.ToLower(question)
	for _, family := range intentKeywords {
		for _, kw := range family.keywords {
			if strings.Contains(q, kw) {
				return family.intent
			}
		}
	}
	if userCtx != nil {
		if hint := QuestionType(strings.ToLower(userCtx.Role)); knownIntents[hint] {
			return hint
		}
	}
	return IntentGeneral
}
