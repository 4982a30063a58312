// SPDX-License-Identifier: EPL-2.0

package ttsbox

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/dshemer/ttsbox/audio"
	"github.com/dshemer/ttsbox/formats/aiff"
	"github.com/dshemer/ttsbox/formats/mp3"
	"github.com/dshemer/ttsbox/formats/pcm"
	"github.com/dshemer/ttsbox/formats/vorbis"
	"github.com/dshemer/ttsbox/formats/wav"
)

var (
	registryOnce sync.Once
	registry     *audio.Registry
)

// containerRegistry returns the registry of container decoders the payload
// probe consults, keyed by the format names sniffFormat reports.
func containerRegistry() *audio.Registry {
	registryOnce.Do(func() {
		registry = audio.NewRegistry()
		registry.Register("wav", wav.Decoder{})
		registry.Register("mp3", mp3.Decoder{})
		registry.Register("ogg vorbis", vorbis.Decoder{})
		registry.Register("aiff", aiff.Decoder{})
	})
	return registry
}

// sniffFormat inspects the payload's magic bytes and reports the matching
// container format key, if any.
func sniffFormat(data []byte) (string, bool) {
	if len(data) < 12 {
		return "", false
	}

	switch {
	case bytes.Equal(data[0:4], []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WAVE")):
		return "wav", true
	case bytes.Equal(data[0:4], []byte("OggS")):
		return "ogg vorbis", true
	case bytes.Equal(data[0:4], []byte("FORM")) && (bytes.Equal(data[8:12], []byte("AIFF")) || bytes.Equal(data[8:12], []byte("AIFC"))):
		return "aiff", true
	case bytes.Equal(data[0:3], []byte("ID3")):
		return "mp3", true
	case data[0] == 0xFF && data[1]&0xE0 == 0xE0:
		// Bare MPEG frame sync. Raw PCM can start this way too; a failed
		// MP3 decode falls through to the raw fallback.
		return "mp3", true
	}

	return "", false
}

// DecodePayload converts an opaque audio payload into a Buffer.
//
// The probe runs two strategies in order:
//
//  1. If the payload's magic bytes match a known container format
//     (WAV, MP3, Ogg Vorbis, AIFF), the matching decoder is tried and its
//     output materialized.
//  2. On sniff miss or container decode failure, the bytes are
//     reinterpreted as headerless raw PCM in fallback. A zero-value
//     fallback selects pcm.DefaultFormat (24 kHz mono 16-bit), the
//     convention of the speech provider this probe was written against.
//
// An empty payload decodes to a zero-frame Buffer without error. If both
// strategies fail, the returned error wraps ErrUndecodablePayload.
//
// The probe reads data without copying it; callers that hand the same
// backing slice to other goroutines must not mutate it concurrently.
func DecodePayload(data []byte, fallback pcm.Format) (*audio.Buffer, error) {
	if key, ok := sniffFormat(data); ok {
		if dec, found := containerRegistry().Get(key); found {
			if src, err := dec.Decode(bytes.NewReader(data)); err == nil {
				if buf, err := audio.ReadAll(src); err == nil {
					return buf, nil
				}
			}
		}
	}

	src, err := pcm.Decoder{Format: fallback}.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUndecodablePayload, err)
	}

	buf, err := audio.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUndecodablePayload, err)
	}

	return buf, nil
}
