package http

import (
	"personal-task-assistant/internal/assistant"
	"personal-task-assistant/pkg/response"
)

// mapError translates use-case errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case assistant.ErrEmptyInput:
		return response.NewHTTPError(400, "message text is required")
	case assistant.ErrBusy:
		return response.NewHTTPError(409, "assistant is still processing the previous message")
	case assistant.ErrInvalidAccount:
		return response.NewHTTPError(400, "email, access token and a positive expiry are required")
	case assistant.ErrUnknownAccount:
		return response.NewHTTPError(404, "no linked account with that email")
	default:
		return response.NewHTTPError(500, response.DefaultErrorMessage)
	}
}
