package feedback

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/confscout/scout/ent/schema/schematype"
	"github.com/confscout/scout/pkg/llm"
)

// Question categories, assigned in this order.
const (
	CategoryTechnical = "Technical"
	CategoryBusiness  = "Business"
	CategoryAction    = "Action"
)

var questionCategories = []string{CategoryTechnical, CategoryBusiness, CategoryAction}

const questionSystemPrompt = `You prepare three debrief questions for an investor who just met a startup. Question 1 probes the technology, question 2 the business value, question 3 the concrete next step. Keep each under 20 words and specific to the startup.

Respond with a JSON array of exactly three strings and nothing else.`

// generateQuestions asks the LLM for tailored questions and falls back to
// the deterministic set when the gateway is down or returns something
// unusable. A feedback session must always be able to start.
func (s *Service) generateQuestions(ctx context.Context, startupName, startupDescription string) []schematype.Question {
	prompt := fmt.Sprintf("Startup: %s\nDescription: %s", startupName, startupDescription)
	resp, err := s.llm.Complete(ctx, &llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: questionSystemPrompt},
			{Role: llm.RoleUser, Content: prompt},
		},
		MaxTokens: 300,
	})
	if err != nil {
		s.logger.Warn("Question generation unavailable, using fallback",
			"startup", startupName, "error_kind", llm.KindOf(err))
		return fallbackQuestions(startupName)
	}

	texts := parseQuestionList(resp.Content)
	if len(texts) != 3 {
		s.logger.Warn("Question generation returned unusable output, using fallback",
			"startup", startupName)
		return fallbackQuestions(startupName)
	}
	return buildQuestions(texts)
}

// parseQuestionList accepts a JSON array of strings, tolerating code fences
// around it.
func parseQuestionList(content string) []string {
	trimmed := strings.TrimSpace(content)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")

	var texts []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(trimmed)), &texts); err != nil {
		return nil
	}
	out := texts[:0]
	for _, t := range texts {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func buildQuestions(texts []string) []schematype.Question {
	questions := make([]schematype.Question, len(texts))
	for i, text := range texts {
		questions[i] = schematype.Question{
			ID:          fmt.Sprintf("q%d", i+1),
			Text:        text,
			Category:    questionCategories[i],
			Placeholder: placeholderFor(questionCategories[i]),
		}
	}
	return questions
}

// fallbackQuestions is the deterministic question set used when the LLM is
// unavailable.
func fallbackQuestions(startupName string) []schematype.Question {
	return buildQuestions([]string{
		fmt.Sprintf("What stood out about %s's technology and how it works?", startupName),
		fmt.Sprintf("What business value could %s deliver, and for whom?", startupName),
		fmt.Sprintf("What is the concrete next step with %s?", startupName),
	})
}

func placeholderFor(category string) string {
	switch category {
	case CategoryTechnical:
		return "e.g. architecture, differentiation, maturity of the tech"
	case CategoryBusiness:
		return "e.g. impact, pricing, target customers"
	default:
		return "e.g. schedule a demo, intro to the team, pass"
	}
}
