package assistant

import "errors"

// Domain-specific errors for the assistant package.
var (
	ErrEmptyInput     = errors.New("input text is empty")
	ErrBusy           = errors.New("a classification request is already in flight")
	ErrInvalidAccount = errors.New("account email, token and expiry are required")
	ErrUnknownAccount = errors.New("no linked account with that email")
)
