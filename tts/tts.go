// SPDX-License-Identifier: EPL-2.0

package tts

import "context"

// Language selects the synthesis target language.
type Language string

const (
	LanguageSpanish Language = "es"
	LanguageEnglish Language = "en"
)

// Valid reports whether the language is one the provider accepts.
func (l Language) Valid() bool {
	return l == LanguageSpanish || l == LanguageEnglish
}

// Style selects the speaking style of the generated voice.
type Style string

const (
	StyleNatural     Style = "natural"
	StyleJoyful      Style = "joyful"
	StyleSad         Style = "sad"
	StyleWhisper     Style = "whisper"
	StyleStoryteller Style = "storyteller"
)

// Valid reports whether the style is one the provider accepts.
func (s Style) Valid() bool {
	switch s {
	case StyleNatural, StyleJoyful, StyleSad, StyleWhisper, StyleStoryteller:
		return true
	}
	return false
}

// Request carries the text and voice parameters for one synthesis call.
type Request struct {
	// Text is the content to speak. Must be non-empty.
	Text string
	// Language is the target language.
	Language Language
	// AccentRegion refines the language into a regional variant
	// (e.g. "MX" for es-MX). Optional.
	AccentRegion string
	// Style is the speaking style. Zero value means StyleNatural.
	Style Style
	// Voice is the provider-specific voice identifier.
	Voice string
}

// LanguageCode returns the BCP-47-style code the provider expects,
// combining Language with the optional AccentRegion.
func (r Request) LanguageCode() string {
	if r.AccentRegion == "" {
		return string(r.Language)
	}
	return string(r.Language) + "-" + r.AccentRegion
}

// Synthesizer generates speech audio for a request. Implementations
// return the raw audio payload bytes; the payload's format is opaque and
// is resolved downstream by the decode probe.
type Synthesizer interface {
	Synthesize(ctx context.Context, req Request) ([]byte, error)
}
