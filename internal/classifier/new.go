package classifier

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"personal-task-assistant/internal/model"
	"personal-task-assistant/pkg/gemini"
	"personal-task-assistant/pkg/log"
)

// Classifier turns a user utterance into a validated Intent. It never
// returns an error: every failure mode degrades to a clarification-kind
// result with a user-facing message.
type Classifier interface {
	Classify(ctx context.Context, userText, contextHint string) model.Intent
}

// LLMClassifier classifies user intent using the Gemini structured-output
// API, with a short-lived result cache in front.
type LLMClassifier struct {
	llm   *gemini.Client
	cache *expirable.LRU[string, model.Intent]
	l     log.Logger
}

// Ensure LLMClassifier implements Classifier interface
var _ Classifier = (*LLMClassifier)(nil)

// New creates a new LLMClassifier. cacheTTL bounds how long an identical
// (text, context) pair reuses a previous result.
func New(llm *gemini.Client, l log.Logger, cacheTTL time.Duration) *LLMClassifier {
	return &LLMClassifier{
		llm:   llm,
		cache: expirable.NewLRU[string, model.Intent](CacheSize, nil, cacheTTL),
		l:     l,
	}
}
