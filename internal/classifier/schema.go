package classifier

// responseSchema is the structured-output contract sent with every
// classification request. The model must emit JSON matching it.
func responseSchema() map[string]any {
	recurrenceEnum := []string{"daily", "weekly", "monthly", "none"}

	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"type": map[string]any{
				"type": "STRING",
				"enum": []string{"task", "event", "query", "completion", "email", "clarification"},
			},
			"textResponse": map[string]any{"type": "STRING"},
			"calendarData": map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"summary":    map[string]any{"type": "STRING"},
					"start":      map[string]any{"type": "STRING"},
					"end":        map[string]any{"type": "STRING"},
					"recurrence": map[string]any{"type": "STRING", "enum": recurrenceEnum},
				},
				"required": []string{"summary", "start"},
			},
			"taskData": map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"description": map[string]any{"type": "STRING"},
					"priority":    map[string]any{"type": "STRING", "enum": []string{"critical", "high", "medium", "low"}},
					"dueDate":     map[string]any{"type": "STRING"},
					"recurrence":  map[string]any{"type": "STRING", "enum": recurrenceEnum},
				},
				"required": []string{"description", "priority"},
			},
			"emailData": map[string]any{
				"type": "OBJECT",
				"properties": map[string]any{
					"subject": map[string]any{"type": "STRING"},
					"body":    map[string]any{"type": "STRING"},
				},
				"required": []string{"subject", "body"},
			},
		},
		"required": []string{"type", "textResponse"},
	}
}
