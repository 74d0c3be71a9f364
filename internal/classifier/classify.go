package classifier

import (
	"context"
	"encoding/json"
	"strings"

	"personal-task-assistant/internal/model"
	"personal-task-assistant/pkg/gemini"
)

// Classify determines user intent from a message. A transport error,
// malformed response or missing credential yields a clarification result
// carrying an apology; the conversation continues either way.
func (c *LLMClassifier) Classify(ctx context.Context, userText, contextHint string) model.Intent {
	if !c.llm.HasKey() {
		return clarification(MsgMissingKey)
	}

	cacheKey := contextHint + "|" + userText
	if cached, ok := c.cache.Get(cacheKey); ok {
		c.l.Debugf(ctx, "%s: cache hit", LogPrefixClassify)
		return cached
	}

	prompt := userText
	if contextHint != "" {
		prompt = PromptContextPrefix + contextHint + "\n\n" + PromptRequestPrefix + userText
	}

	resp, err := c.llm.GenerateContent(ctx, gemini.GenerateRequest{
		SystemInstruction: &gemini.Content{
			Parts: []gemini.Part{{Text: PromptSystem}},
		},
		Contents: []gemini.Content{
			{
				Role:  "user",
				Parts: []gemini.Part{{Text: prompt}},
			},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature:      Temperature,
			MaxOutputTokens:  MaxTokens,
			ResponseMIMEType: "application/json",
			ResponseSchema:   responseSchema(),
		},
	})
	if err != nil {
		c.l.Warnf(ctx, "%s: LLM call failed: %v", LogPrefixClassify, err)
		return clarification(MsgApology)
	}

	responseText := stripCodeFences(resp.Text())
	if responseText == "" {
		c.l.Warnf(ctx, "%s: empty LLM response", LogPrefixClassify)
		return clarification(MsgApology)
	}

	var intent model.Intent
	if err := json.Unmarshal([]byte(responseText), &intent); err != nil {
		c.l.Warnf(ctx, "%s: failed to parse LLM response: %v", LogPrefixClassify, err)
		return clarification(MsgApology)
	}

	intent = sanitize(intent)
	c.cache.Add(cacheKey, intent)

	c.l.Infof(ctx, "%s: classified as %s", LogPrefixClassify, intent.Kind)
	return intent
}

// sanitize validates the tagged union once at the boundary: unknown kinds
// collapse to clarification, payloads missing their required fields are
// dropped so downstream code never sees a half-filled record.
func sanitize(in model.Intent) model.Intent {
	if !in.Kind.Valid() {
		return clarification(MsgApology)
	}
	if in.TextResponse == "" {
		in.TextResponse = MsgApology
	}

	if in.Task != nil && in.Task.Description == "" {
		in.Task = nil
	}
	if in.Event != nil && (in.Event.Summary == "" || in.Event.Start == "") {
		in.Event = nil
	}
	if in.Email != nil && in.Email.Subject == "" && in.Email.Body == "" {
		in.Email = nil
	}

	return in
}

func clarification(text string) model.Intent {
	return model.Intent{
		Kind:         model.IntentClarification,
		TextResponse: text,
	}
}

// stripCodeFences removes ```json ... ``` wrappers LLMs sometimes add even
// in structured-output mode.
func stripCodeFences(text string) string {
	text = strings.TrimSpace(text)
	if strings.HasPrefix(text, "```") {
		text = strings.TrimPrefix(text, "```json")
		text = strings.TrimPrefix(text, "```")
		text = strings.TrimSuffix(text, "```")
		text = strings.TrimSpace(text)
	}
	return text
}
