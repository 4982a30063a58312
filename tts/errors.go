package tts

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyText indicates a synthesis request without text
	ErrEmptyText = errors.New("synthesis text is empty")

	// ErrInvalidLanguage indicates an unsupported target language
	ErrInvalidLanguage = errors.New("unsupported target language")

	// ErrInvalidStyle indicates an unsupported speaking style
	ErrInvalidStyle = errors.New("unsupported speaking style")
)

// UpstreamError reports a failure from the speech provider: a non-2xx
// response, or a 2xx response that carried no audio. The reason is opaque
// to this layer (it may be content-safety filtering); callers surface it
// to the user and may retry the whole call.
type UpstreamError struct {
	// StatusCode is the HTTP status, or 0 when the response itself was
	// well-formed but carried no audio.
	StatusCode int
	// Message is the provider's error text, possibly truncated.
	Message string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("speech provider error: status=%d, message=%s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("speech provider error: %s", e.Message)
}
