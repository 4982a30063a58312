package pcm

import "errors"

var (
	// ErrInvalidFormat indicates a Format that cannot describe a PCM stream
	ErrInvalidFormat = errors.New("invalid raw PCM format")

	// ErrTruncatedSample indicates the byte stream ends mid-sample
	ErrTruncatedSample = errors.New("raw PCM data truncated mid-sample")
)
