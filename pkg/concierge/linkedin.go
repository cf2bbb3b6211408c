package concierge

import (
	"context"
	"fmt"
	"strings"

	"github.com/confscout/scout/pkg/llm"
	"github.com/confscout/scout/pkg/models"
	"github.com/confscout/scout/pkg/services"
)

const (
	linkedInTemperature = 0.8
	linkedInMaxTokens   = 2500

	linkedInSystemPrompt = `You write LinkedIn posts for a technology conference attendee. Every post follows this structure, in order:
1. Hook: one attention-grabbing opening line.
2. Context: one or two sentences setting the scene.
3. Body: 3-5 short bullet points with the substance.
4. Evidence: a concrete number, quote or observation.
5. Tags: mention the requested people or companies with @.
6. Call to action: one closing line inviting engagement.
7. Hashtags: 5 to 8 relevant hashtags on the final line.

Write in first person. No preamble, output only the post.`
)

// GenerateLinkedInPost runs the deterministic LinkedIn sub-flow: a fixed
// post structure rendered by the LLM at high temperature.
func (c *Concierge) GenerateLinkedInPost(ctx context.Context, req *models.LinkedInPostRequest) (*models.AskResponse, error) {
	topic := strings.TrimSpace(req.Topic)
	if topic == "" {
		return nil, services.NewValidationError("topic", "must not be empty")
	}

	temp := linkedInTemperature
	resp, err := c.client.Complete(ctx, &llm.Request{
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: linkedInSystemPrompt},
			{Role: llm.RoleUser, Content: renderLinkedInBrief(req)},
		},
		Temperature: &temp,
		MaxTokens:   linkedInMaxTokens,
	})
	if err != nil {
		return nil, mapLLMError(err)
	}

	return &models.AskResponse{
		Answer:       resp.Content,
		QuestionType: string(IntentLinkedInPost),
	}, nil
}

func renderLinkedInBrief(req *models.LinkedInPostRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Topic: %s\n", req.Topic)
	if len(req.KeyPoints) > 0 {
		b.WriteString("Key points:\n")
		for _, p := range req.KeyPoints {
			fmt.Fprintf(&b, "- %s\n", p)
		}
	}
	if len(req.TagHandles) > 0 {
		fmt.Fprintf(&b, "Tag: %s\n", strings.Join(req.TagHandles, ", "))
	}
	if req.CallToAction != "" {
		fmt.Fprintf(&b, "Call to action: %s\n", req.CallToAction)
	}
	if req.Link != "" {
		fmt.Fprintf(&b, "Include this link: %s\n", req.Link)
	}
	return b.String()
}
