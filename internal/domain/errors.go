package domain

import "errors"

var (
	ErrInvalidRequest  = errors.New("missing required fields: messages, model, apiKey")
	ErrUnknownProvider = errors.New("unknown provider")
	ErrProviderError   = errors.New("provider error")
)
