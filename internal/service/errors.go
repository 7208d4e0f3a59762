package service

import "errors"

var (
	// ErrMalformedResponse means the model's completion could not be turned
	// into a valid form or question descriptor.
	ErrMalformedResponse = errors.New("malformed AI response")

	// ErrUpstreamUnavailable covers transport, auth, quota and timeout
	// failures of the AI provider, as opposed to a bad completion.
	ErrUpstreamUnavailable = errors.New("AI provider unavailable")

	// ErrInvalidInput marks a request that failed server-side validation.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks a lookup by an unknown identifier.
	ErrNotFound = errors.New("not found")
)
