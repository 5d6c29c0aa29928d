package llm

import "errors"

var (
	// ErrUnavailable indicates the API endpoint is unreachable.
	ErrUnavailable = errors.New("language model service unavailable")

	// ErrTimeout indicates the request exceeded the configured timeout.
	ErrTimeout = errors.New("llm request timed out")

	// ErrInvalidOutput indicates the response body could not be parsed
	// into the expected chat-completion format.
	ErrInvalidOutput = errors.New("invalid llm output format")
)
