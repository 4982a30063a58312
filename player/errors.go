package player

import "errors"

var (
	// ErrInvalidRate indicates a negative playback rate
	ErrInvalidRate = errors.New("playback rate must be positive")

	// ErrDetuneOutOfRange indicates a detune outside [-1200, 1200] cents
	ErrDetuneOutOfRange = errors.New("detune out of range")

	// ErrInvalidSampleRate indicates a buffer without a positive sample rate
	ErrInvalidSampleRate = errors.New("buffer sample rate must be positive")
)
