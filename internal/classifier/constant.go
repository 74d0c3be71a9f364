package classifier

// Log prefixes
const (
	LogPrefixClassify = "internal.classifier.Classify"
)

// Classifier prompts
const (
	PromptSystem = `You are a personal time-management assistant for busy people.

YOUR JOB:
Turn the user's free-form, often fragmentary message into structured data.
Recognize RECURRENCE as well.

RULES:
1. RECURRENCE:
   - "every day" -> daily
   - "every monday/tuesday/..." -> weekly
   - "once a month" -> monthly
2. If the message names a concrete clock time (e.g. "at noon", "half past four"), classify it as "event".
3. If only a day is mentioned with no time, classify it as "task".
4. "query", "completion" and "email" messages produce no record, only a textResponse (and emailData for emails).
5. When unsure, answer with type "clarification" and ask a short follow-up question.

DATE FORMAT: YYYY-MM-DD or YYYY-MM-DDTHH:mm:ss (no timezone suffix).
ANSWER: JSON only, with a warm, encouraging textResponse.`

	PromptContextPrefix = "CONTEXT: "
	PromptRequestPrefix = "REQUEST: "
)

// User-facing fallback messages. Classification never surfaces a raw fault;
// it degrades to one of these clarification replies.
const (
	MsgMissingKey = "I'm not fully set up yet — my language-model API key is missing. Please add one in the configuration and try again."
	MsgApology    = "Sorry, something got stuck on my end. Could you say that again? I'm listening!"
)

// Classifier configuration
const (
	Temperature = 0.2
	MaxTokens   = 1024
	CacheSize   = 256
)
